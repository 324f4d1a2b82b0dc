// Package auth provides API key authentication for the public API and
// management of enterprises, API keys and operator users.
package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"

	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
	"github.com/humanface/humanface/pkg/util"
	"github.com/mr-tron/base58"
)

type APIKeyType string

const (
	APIKeyTypeTest = APIKeyType("test")
	APIKeyTypeLive = APIKeyType("live")
)

// APIKey is a credential scoped to one enterprise. The key value is an opaque
// string presented by the client in the x-api-key header on every request.
//
// A key is valid only if RevokedAt is unset AND ExpiresAt is strictly in the
// future. Both conditions are evaluated database-side at lookup time so the
// application clock never participates in the decision.
type APIKey struct {
	ID           string     `json:"id"`                  // Unique ID of the API key.
	Version      int64      `json:"version"`             // Version of the API key.
	KeyValue     string     `json:"key_value,omitempty"` // The opaque credential value.
	EnterpriseID string     `json:"enterprise_id"`       // The enterprise this key belongs to.
	KeyType      APIKeyType `json:"key_type"`            // test or live.
	RevokedAt    *int64     `json:"revoked_at,omitempty"`
	ExpiresAt    int64      `json:"expires_at"`

	CreatedAt int64  `json:"created_at"` // Unix Time (in second) when the API key was created.
	CreatedBy string `json:"created_by"` // User who created the API key.
	UpdatedAt int64  `json:"updated_at"` // Unix Time (in second) when the API key was last updated.
	UpdatedBy string `json:"updated_by"` // User who last updated the API key.
}

// NewAPIKeyValue generates a fresh credential value of the form
// hf_<type>_<random>.
func NewAPIKeyValue(keyType APIKeyType) (string, error) {
	secretBytes := make([]byte, 32)
	if _, err := rand.Read(secretBytes); err != nil {
		return "", err
	}
	return fmt.Sprintf("hf_%s_%s", keyType, base58.Encode(secretBytes)), nil
}

type APIKeyAuthenticator interface {
	// Authenticate resolves the (key value, enterprise id) pair against the
	// store. The store only returns keys that are not revoked and not expired,
	// so any miss collapses into model.ErrInvalidCredentials without telling
	// the caller which check failed.
	Authenticate(ctx context.Context, keyValue, enterpriseID string) (APIKey, error)

	CreateAPIKey(ctx context.Context, ts int64, req CreateAPIKeyRequest) (APIKey, error)
	RevokeAPIKey(ctx context.Context, ts int64, req RevokeAPIKeyRequest) (APIKey, error)
	ListAPIKeys(ctx context.Context, req ListAPIKeysRequest) (ListAPIKeysResult, error)
}

type CreateAPIKeyRequest struct {
	Requester    string     `json:"requester"`
	EnterpriseID string     `json:"enterprise_id"`
	KeyType      APIKeyType `json:"key_type"`
	ExpiresAt    int64      `json:"expires_at"`
}

type RevokeAPIKeyRequest struct {
	Requester    string `json:"requester"`
	EnterpriseID string `json:"enterprise_id"`
	ID           string `json:"id"`
}

type ListAPIKeysRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	EnterpriseIDs []string `json:"enterprise_ids"`
	IDs           []string `json:"ids"`
}

type ListAPIKeysResult struct {
	Total int      `json:"total"`
	Keys  []APIKey `json:"keys"`
}

// APIKeyStorage is the persistence interface consumed by the authenticator.
type APIKeyStorage interface {
	CreateTx(ctx context.Context, options ...storage.CreateTxOption) (storage.Tx, context.Context, error)
	StoreAPIKey(ctx context.Context, tx storage.Tx, key APIKey) error

	// GetActiveAPIKey returns the key matching (keyValue, enterpriseID) that
	// is not revoked and not expired. The revocation/expiry filtering happens
	// in SQL against the database clock. Misses surface as sql.ErrNoRows.
	GetActiveAPIKey(ctx context.Context, tx storage.Tx, keyValue, enterpriseID string) (APIKey, error)

	GetAPIKey(ctx context.Context, tx storage.Tx, id string) (APIKey, error)
	ListAPIKeys(ctx context.Context, tx storage.Tx, req ListAPIKeysRequest) (ListAPIKeysResult, error)
}

type _APIKeyAuthenticator struct {
	storage APIKeyStorage
}

func NewAPIKeyAuthenticator(s APIKeyStorage) APIKeyAuthenticator {
	return &_APIKeyAuthenticator{storage: s}
}

func (a *_APIKeyAuthenticator) Authenticate(ctx context.Context, keyValue, enterpriseID string) (APIKey, error) {
	tx, ctx, err := a.storage.CreateTx(ctx)
	if err != nil {
		return APIKey{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	key, err := a.storage.GetActiveAPIKey(ctx, tx, keyValue, enterpriseID)
	if errors.Is(err, sql.ErrNoRows) {
		return APIKey{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return APIKey{}, err
	}

	return key, nil
}

func (a *_APIKeyAuthenticator) CreateAPIKey(ctx context.Context, ts int64, req CreateAPIKeyRequest) (APIKey, error) {
	if err := ValidateCreateAPIKeyRequest(req); err != nil {
		return APIKey{}, err
	}

	keyValue, err := NewAPIKeyValue(req.KeyType)
	if err != nil {
		return APIKey{}, err
	}

	key := APIKey{
		ID:           fmt.Sprintf("ak_%s", util.NewUUID()),
		Version:      1,
		KeyValue:     keyValue,
		EnterpriseID: req.EnterpriseID,
		KeyType:      req.KeyType,
		ExpiresAt:    req.ExpiresAt,
		CreatedAt:    ts,
		CreatedBy:    req.Requester,
		UpdatedAt:    ts,
		UpdatedBy:    req.Requester,
	}

	tx, ctx, err := a.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return APIKey{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := a.storage.StoreAPIKey(ctx, tx, key); err != nil {
		return APIKey{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return APIKey{}, err
	}

	return key, nil
}

func (a *_APIKeyAuthenticator) RevokeAPIKey(ctx context.Context, ts int64, req RevokeAPIKeyRequest) (APIKey, error) {
	if err := ValidateRevokeAPIKeyRequest(req); err != nil {
		return APIKey{}, err
	}

	tx, ctx, err := a.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return APIKey{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	key, err := a.storage.GetAPIKey(ctx, tx, req.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return APIKey{}, model.ErrAPIKeyNotFound
	}
	if err != nil {
		return APIKey{}, err
	}
	if key.EnterpriseID != req.EnterpriseID {
		return APIKey{}, model.ErrAPIKeyNotFound
	}
	if key.RevokedAt != nil {
		return APIKey{}, model.ErrAPIKeyRevoked
	}

	key.Version += 1
	key.RevokedAt = util.Ptr(ts)
	key.UpdatedAt = ts
	key.UpdatedBy = req.Requester
	if err := a.storage.StoreAPIKey(ctx, tx, key); err != nil {
		return APIKey{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return APIKey{}, err
	}

	key.KeyValue = ""
	return key, nil
}

func (a *_APIKeyAuthenticator) ListAPIKeys(ctx context.Context, req ListAPIKeysRequest) (ListAPIKeysResult, error) {
	if err := ValidateListAPIKeysRequest(req); err != nil {
		return ListAPIKeysResult{}, err
	}

	tx, ctx, err := a.storage.CreateTx(ctx)
	if err != nil {
		return ListAPIKeysResult{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := a.storage.ListAPIKeys(ctx, tx, req)
	if err != nil {
		return ListAPIKeysResult{}, err
	}
	for i := range result.Keys {
		result.Keys[i].KeyValue = ""
	}
	return result, nil
}
