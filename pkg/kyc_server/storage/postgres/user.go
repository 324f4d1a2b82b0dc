package postgres

import (
	"context"

	"github.com/humanface/humanface/pkg/kyc_server/auth"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
)

func (s *_Storage) StoreUser(ctx context.Context, tx storage.Tx, user auth.User) error {
	query := `
WITH new_data AS (
	INSERT INTO operator_user (id, "version", status, created_at, updated_at, "user")
	VALUES ($1, $2, $3, $4, $4, $5)
	ON CONFLICT (id) DO UPDATE SET
		"version" = excluded."version",
		status = excluded.status,
		updated_at = excluded.updated_at,
		"user" = excluded."user"
	RETURNING id, "version", updated_at, "user"
)
INSERT INTO operator_user_history (id, "version", created_at, "user")
SELECT * FROM new_data`

	_, err := tx.Exec(
		ctx,
		query,
		user.ID,
		user.Version,
		user.Status,
		user.UpdatedAt,
		user,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) ListUsers(ctx context.Context, tx storage.Tx, req auth.ListUserRequest) (auth.ListUserResult, error) {
	query := `
WITH filtered_record AS (
	SELECT rec_id, "user" FROM operator_user
	WHERE
		(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR id = ANY($3))
)
SELECT
	total,
	"user"
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT "user" FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE`

	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.IDs)
	if err != nil {
		return auth.ListUserResult{}, err
	}
	defer rows.Close()

	result := auth.ListUserResult{}
	for rows.Next() {
		var total *int
		var user *auth.User
		if err := rows.Scan(&total, &user); err != nil {
			return auth.ListUserResult{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if user != nil {
			result.Users = append(result.Users, *user)
		}
	}
	if err := rows.Err(); err != nil {
		return auth.ListUserResult{}, err
	}

	return result, nil
}

func (s *_Storage) StoreUserToken(ctx context.Context, tx storage.Tx, token auth.UserToken) error {
	query := `INSERT INTO operator_user_token (token, user_id, created_at, expired_at) VALUES ($1, $2, $3, $4)`
	_, err := tx.Exec(ctx, query, token.Token, token.UserID, token.CreatedAt, token.ExpiredAt)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) GetUserToken(ctx context.Context, tx storage.Tx, token string) (auth.UserToken, error) {
	query := `SELECT token, user_id, created_at, expired_at FROM operator_user_token WHERE token = $1`
	row := tx.QueryRow(ctx, query, token)

	userToken := auth.UserToken{}
	if err := row.Scan(&userToken.Token, &userToken.UserID, &userToken.CreatedAt, &userToken.ExpiredAt); err != nil {
		return auth.UserToken{}, err
	}

	return userToken, nil
}
