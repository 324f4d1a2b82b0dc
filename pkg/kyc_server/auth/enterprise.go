package auth

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
	"github.com/humanface/humanface/pkg/util"
)

// Enterprise is an organization consuming the API. It owns API keys, webhook
// subscriptions and KYC sessions. Only the branding fields (name, logo) may
// change after creation.
type Enterprise struct {
	ID      string `json:"id"`      // Unique identifier of the enterprise.
	Version int64  `json:"version"` // Version number of the enterprise.

	Name    string `json:"name"`     // Display name shown to customers during onboarding.
	LogoUrl string `json:"logo_url"` // Logo shown on the hosted verification page.

	CreatedAt int64  `json:"created_at"` // Unix Time (in second) when the enterprise was created.
	CreatedBy string `json:"created_by"` // User who created the enterprise.
	UpdatedAt int64  `json:"updated_at"` // Unix Time (in second) when the enterprise was last updated.
	UpdatedBy string `json:"updated_by"` // User who last updated the enterprise.
}

type EnterpriseManager interface {
	CreateEnterprise(ctx context.Context, ts int64, req CreateEnterpriseRequest) (Enterprise, error)
	UpdateBranding(ctx context.Context, ts int64, req UpdateBrandingRequest) (Enterprise, error)
	ListEnterprises(ctx context.Context, req ListEnterpriseRequest) (ListEnterpriseResult, error)
}

type CreateEnterpriseRequest struct {
	Requester string `json:"requester"`
	Name      string `json:"name"`
	LogoUrl   string `json:"logo_url"`
}

type UpdateBrandingRequest struct {
	Requester    string `json:"requester"`
	EnterpriseID string `json:"enterprise_id"`
	Name         string `json:"name"`
	LogoUrl      string `json:"logo_url"`
}

type ListEnterpriseRequest struct {
	Offset int `json:"offset"` // Offset for pagination.
	Limit  int `json:"limit"`  // Limit for pagination.

	IDs []string `json:"ids"` // Filter by enterprise ID.
}

type ListEnterpriseResult struct {
	Total   int          `json:"total"`
	Records []Enterprise `json:"records"`
}

// EnterpriseStorage represents a storage interface for managing enterprises.
type EnterpriseStorage interface {
	CreateTx(ctx context.Context, options ...storage.CreateTxOption) (storage.Tx, context.Context, error)
	StoreEnterprise(ctx context.Context, tx storage.Tx, enterprise Enterprise) error
	ListEnterprise(ctx context.Context, tx storage.Tx, req ListEnterpriseRequest) (ListEnterpriseResult, error)
}

type _EnterpriseManager struct {
	storage EnterpriseStorage
}

func NewEnterpriseManager(s EnterpriseStorage) EnterpriseManager {
	return &_EnterpriseManager{storage: s}
}

func (m *_EnterpriseManager) CreateEnterprise(ctx context.Context, ts int64, req CreateEnterpriseRequest) (Enterprise, error) {
	if err := ValidateCreateEnterpriseRequest(req); err != nil {
		return Enterprise{}, err
	}

	enterprise := Enterprise{
		ID:        fmt.Sprintf("ent_%s", util.NewUUID()),
		Version:   1,
		Name:      req.Name,
		LogoUrl:   req.LogoUrl,
		CreatedAt: ts,
		CreatedBy: req.Requester,
		UpdatedAt: ts,
		UpdatedBy: req.Requester,
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return Enterprise{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := m.storage.StoreEnterprise(ctx, tx, enterprise); err != nil {
		return Enterprise{}, fmt.Errorf("failed to store enterprise: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Enterprise{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return enterprise, nil
}

func (m *_EnterpriseManager) UpdateBranding(ctx context.Context, ts int64, req UpdateBrandingRequest) (Enterprise, error) {
	if err := ValidateUpdateBrandingRequest(req); err != nil {
		return Enterprise{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return Enterprise{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	enterprise, err := m.getEnterprise(ctx, tx, req.EnterpriseID)
	if err != nil {
		return Enterprise{}, err
	}

	enterprise.Version += 1
	enterprise.Name = req.Name
	enterprise.LogoUrl = req.LogoUrl
	enterprise.UpdatedAt = ts
	enterprise.UpdatedBy = req.Requester

	if err := m.storage.StoreEnterprise(ctx, tx, enterprise); err != nil {
		return Enterprise{}, fmt.Errorf("failed to store enterprise: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Enterprise{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return enterprise, nil
}

func (m *_EnterpriseManager) ListEnterprises(ctx context.Context, req ListEnterpriseRequest) (ListEnterpriseResult, error) {
	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return ListEnterpriseResult{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return m.storage.ListEnterprise(ctx, tx, req)
}

func (m *_EnterpriseManager) getEnterprise(ctx context.Context, tx storage.Tx, id string) (Enterprise, error) {
	res, err := m.storage.ListEnterprise(ctx, tx, ListEnterpriseRequest{Limit: 1, IDs: []string{id}})
	if err != nil {
		return Enterprise{}, err
	}
	if len(res.Records) == 0 {
		return Enterprise{}, model.ErrEnterpriseNotFound
	}
	return res.Records[0], nil
}
