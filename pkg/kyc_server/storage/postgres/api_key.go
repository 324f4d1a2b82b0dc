package postgres

import (
	"context"

	"github.com/humanface/humanface/pkg/kyc_server/auth"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
)

func (s *_Storage) StoreAPIKey(ctx context.Context, tx storage.Tx, key auth.APIKey) error {
	query := `
WITH new_data AS (
	INSERT INTO api_key (id, "version", key_value, enterprise_id, key_type, revoked_at, expires_at, created_at, updated_at, api_key)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
		"version" = excluded."version",
		revoked_at = excluded.revoked_at,
		expires_at = excluded.expires_at,
		updated_at = excluded.updated_at,
		api_key = excluded.api_key
	RETURNING id, "version", updated_at, api_key
)
INSERT INTO api_key_history (id, "version", created_at, api_key)
SELECT * FROM new_data`

	_, err := tx.Exec(
		ctx,
		query,
		key.ID,
		key.Version,
		key.KeyValue,
		key.EnterpriseID,
		key.KeyType,
		key.RevokedAt,
		key.ExpiresAt,
		key.UpdatedAt,
		key,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetActiveAPIKey is the authentication lookup. Revocation and expiry are
// evaluated against the database clock inside the query, so a miss carries no
// information about which condition failed.
func (s *_Storage) GetActiveAPIKey(ctx context.Context, tx storage.Tx, keyValue, enterpriseID string) (auth.APIKey, error) {
	query := `
SELECT api_key FROM api_key
WHERE key_value = $1 AND enterprise_id = $2 AND revoked_at IS NULL AND expires_at > EXTRACT(EPOCH FROM NOW())::BIGINT`

	row := tx.QueryRow(ctx, query, keyValue, enterpriseID)
	key := auth.APIKey{}
	if err := row.Scan(&key); err != nil {
		return auth.APIKey{}, err
	}

	return key, nil
}

func (s *_Storage) GetAPIKey(ctx context.Context, tx storage.Tx, id string) (auth.APIKey, error) {
	query := `SELECT api_key FROM api_key WHERE id = $1`
	row := tx.QueryRow(ctx, query, id)
	key := auth.APIKey{}
	if err := row.Scan(&key); err != nil {
		return auth.APIKey{}, err
	}

	return key, nil
}

func (s *_Storage) ListAPIKeys(ctx context.Context, tx storage.Tx, req auth.ListAPIKeysRequest) (auth.ListAPIKeysResult, error) {
	query := `
WITH filtered_record AS (
	SELECT rec_id, api_key FROM api_key
	WHERE
		(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR enterprise_id = ANY($3)) AND
		(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR id = ANY($4))
)
SELECT
	total,
	api_key
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT api_key FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE`

	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.EnterpriseIDs, req.IDs)
	if err != nil {
		return auth.ListAPIKeysResult{}, err
	}
	defer rows.Close()

	result := auth.ListAPIKeysResult{}
	for rows.Next() {
		var total *int
		var key *auth.APIKey
		if err := rows.Scan(&total, &key); err != nil {
			return auth.ListAPIKeysResult{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if key != nil {
			result.Keys = append(result.Keys, *key)
		}
	}
	if err := rows.Err(); err != nil {
		return auth.ListAPIKeysResult{}, err
	}

	return result, nil
}
