package postgres

import (
	"context"

	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
)

func (s *_Storage) StoreSession(ctx context.Context, tx storage.Tx, session model.KYCSession) error {
	query := `
INSERT INTO kyc_session (id, "version", enterprise_id, status, verification_id, created_at, expires_at, updated_at, session)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
	"version" = excluded."version",
	status = excluded.status,
	verification_id = excluded.verification_id,
	updated_at = excluded.updated_at,
	session = excluded.session`

	var verificationID *string
	if session.VerificationID != "" {
		verificationID = &session.VerificationID
	}
	_, err := tx.Exec(
		ctx,
		query,
		session.ID,
		session.Version,
		session.EnterpriseID,
		session.Status,
		verificationID,
		session.CreatedAt,
		session.ExpiresAt,
		session.UpdatedAt,
		session,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) ListSession(ctx context.Context, tx storage.Tx, req storage.ListSessionRequest) (storage.ListSessionResult, error) {
	query := `
WITH filtered_record AS (
	SELECT rec_id, session FROM kyc_session
	WHERE
		($3 = '' OR enterprise_id = $3) AND
		(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR id = ANY($4)) AND
		(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR verification_id = ANY($5)) AND
		(COALESCE(array_length($6::TEXT[], 1), 0) = 0 OR status = ANY($6))
)
SELECT
	total,
	session
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT session FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE`

	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.EnterpriseID, req.IDs, req.VerificationIDs, req.Statuses)
	if err != nil {
		return storage.ListSessionResult{}, err
	}
	defer rows.Close()

	result := storage.ListSessionResult{}
	for rows.Next() {
		var total *int
		var session *model.KYCSession
		if err := rows.Scan(&total, &session); err != nil {
			return storage.ListSessionResult{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if session != nil {
			result.Records = append(result.Records, *session)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListSessionResult{}, err
	}

	return result, nil
}

func (s *_Storage) StoreDocument(ctx context.Context, tx storage.Tx, doc model.Document) error {
	query := `
INSERT INTO kyc_document (id, created_at, document)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET
	document = excluded.document`

	_, err := tx.Exec(ctx, query, doc.ID, doc.CreatedAt, doc)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) GetDocument(ctx context.Context, tx storage.Tx, id string) (model.Document, error) {
	query := `SELECT document FROM kyc_document WHERE id = $1`
	row := tx.QueryRow(ctx, query, id)

	doc := model.Document{}
	if err := row.Scan(&doc); err != nil {
		return model.Document{}, err
	}

	return doc, nil
}

func (s *_Storage) StoreVerification(ctx context.Context, tx storage.Tx, verification model.Verification) error {
	query := `
INSERT INTO kyc_verification (id, "version", session_id, document_id, status, created_at, updated_at, verification)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
	"version" = excluded."version",
	status = excluded.status,
	updated_at = excluded.updated_at,
	verification = excluded.verification`

	_, err := tx.Exec(
		ctx,
		query,
		verification.ID,
		verification.Version,
		verification.SessionID,
		verification.DocumentID,
		verification.Status,
		verification.CreatedAt,
		verification.UpdatedAt,
		verification,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) ListVerification(ctx context.Context, tx storage.Tx, req storage.ListVerificationRequest) (storage.ListVerificationResult, error) {
	query := `
WITH filtered_record AS (
	SELECT rec_id, verification FROM kyc_verification
	WHERE
		(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR id = ANY($3)) AND
		(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR session_id = ANY($4))
)
SELECT
	total,
	verification
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT verification FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE`

	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.IDs, req.SessionIDs)
	if err != nil {
		return storage.ListVerificationResult{}, err
	}
	defer rows.Close()

	result := storage.ListVerificationResult{}
	for rows.Next() {
		var total *int
		var verification *model.Verification
		if err := rows.Scan(&total, &verification); err != nil {
			return storage.ListVerificationResult{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if verification != nil {
			result.Records = append(result.Records, *verification)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListVerificationResult{}, err
	}

	return result, nil
}
