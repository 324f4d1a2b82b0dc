package storage

import (
	"context"
	"database/sql"

	"github.com/humanface/humanface/pkg/kyc_server/model"
)

type StorageContextKey string

const (
	TRANSACTION StorageContextKey = "transaction"
)

type TxWrapperOption struct {
	write bool
	level sql.IsolationLevel
}

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete. Not every database or database
	// driver may support this.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// ListWebhookRequest is the request to list webhook subscriptions.
type ListWebhookRequest struct {
	Offset int `json:"offset"` // Offset of the webhooks to be listed.
	Limit  int `json:"limit"`  // Limit of the webhooks to be listed.

	// Filters
	EnterpriseID string   `json:"enterprise_id"` // The ID of the enterprise this webhook belongs to.
	IDs          []string `json:"ids"`           // The IDs of the webhook.
	Events       []string `json:"events"`        // The Events the webhook is interested in.
	ActiveOnly   bool     `json:"active_only"`   // Only return webhooks with the active flag set.
}

// ListWebhookResult is the result of listing webhook subscriptions.
type ListWebhookResult struct {
	Total   int             `json:"total"`   // Total number of webhooks.
	Records []model.Webhook `json:"records"` // Records of webhook.
}

// ListDeliveryEventRequest is the request to list webhook delivery attempts.
type ListDeliveryEventRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	WebhookIDs []string `json:"webhook_ids"` // The webhooks the deliveries were attempted against.
	EventTypes []string `json:"event_types"` // The delivered event types.
	Statuses   []string `json:"statuses"`    // Delivery outcomes (success/failed).
}

// ListDeliveryEventResult is the result of listing webhook delivery attempts.
type ListDeliveryEventResult struct {
	Total   int                          `json:"total"`
	Records []model.WebhookDeliveryEvent `json:"records"`
}

type WebhookStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	AddWebhook(ctx context.Context, tx Tx, webhook model.Webhook) error
	ListWebhook(ctx context.Context, tx Tx, req ListWebhookRequest) (ListWebhookResult, error)
	AddDeliveryEvent(ctx context.Context, tx Tx, event model.WebhookDeliveryEvent) error
	ListDeliveryEvent(ctx context.Context, tx Tx, req ListDeliveryEventRequest) (ListDeliveryEventResult, error)
}

// ListSessionRequest is the request to list KYC sessions.
type ListSessionRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	EnterpriseID    string   `json:"enterprise_id"`    // The enterprise the sessions belong to.
	IDs             []string `json:"ids"`              // Unique IDs of the sessions.
	VerificationIDs []string `json:"verification_ids"` // Linked verification IDs.
	Statuses        []string `json:"statuses"`         // Session statuses.
}

// ListSessionResult is the result of listing KYC sessions.
type ListSessionResult struct {
	Total   int                `json:"total"`
	Records []model.KYCSession `json:"records"`
}

// ListVerificationRequest is the request to list verifications.
type ListVerificationRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	IDs        []string `json:"ids"`         // Unique IDs of the verifications.
	SessionIDs []string `json:"session_ids"` // The sessions the verifications belong to.
}

// ListVerificationResult is the result of listing verifications.
type ListVerificationResult struct {
	Total   int                  `json:"total"`
	Records []model.Verification `json:"records"`
}

type SessionStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	StoreSession(ctx context.Context, tx Tx, session model.KYCSession) error
	ListSession(ctx context.Context, tx Tx, req ListSessionRequest) (ListSessionResult, error)
	StoreDocument(ctx context.Context, tx Tx, doc model.Document) error
	GetDocument(ctx context.Context, tx Tx, id string) (model.Document, error)
	StoreVerification(ctx context.Context, tx Tx, verification model.Verification) error
	ListVerification(ctx context.Context, tx Tx, req ListVerificationRequest) (ListVerificationResult, error)
}
