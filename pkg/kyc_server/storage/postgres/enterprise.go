package postgres

import (
	"context"

	"github.com/humanface/humanface/pkg/kyc_server/auth"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
)

func (s *_Storage) StoreEnterprise(ctx context.Context, tx storage.Tx, enterprise auth.Enterprise) error {
	query := `
WITH new_data AS (
	INSERT INTO enterprise (id, "version", name, created_at, updated_at, enterprise)
	VALUES ($1, $2, $3, $4, $4, $5)
	ON CONFLICT (id) DO UPDATE SET
		"version" = excluded."version",
		name = excluded.name,
		updated_at = excluded.updated_at,
		enterprise = excluded.enterprise
	RETURNING id, "version", updated_at, enterprise
)
INSERT INTO enterprise_history (id, "version", created_at, enterprise)
SELECT * FROM new_data`

	_, err := tx.Exec(
		ctx,
		query,
		enterprise.ID,
		enterprise.Version,
		enterprise.Name,
		enterprise.UpdatedAt,
		enterprise,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) ListEnterprise(ctx context.Context, tx storage.Tx, req auth.ListEnterpriseRequest) (auth.ListEnterpriseResult, error) {
	query := `
WITH filtered_record AS (
	SELECT rec_id, enterprise FROM enterprise
	WHERE
		(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR id = ANY($3))
)
SELECT
	total,
	enterprise
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT enterprise FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE`

	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.IDs)
	if err != nil {
		return auth.ListEnterpriseResult{}, err
	}
	defer rows.Close()

	result := auth.ListEnterpriseResult{}
	for rows.Next() {
		var total *int
		var enterprise *auth.Enterprise
		if err := rows.Scan(&total, &enterprise); err != nil {
			return auth.ListEnterpriseResult{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if enterprise != nil {
			result.Records = append(result.Records, *enterprise)
		}
	}
	if err := rows.Err(); err != nil {
		return auth.ListEnterpriseResult{}, err
	}

	return result, nil
}
