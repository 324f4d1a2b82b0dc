// Package kyc implements the session/verification lifecycle: hosted
// onboarding sessions, document submission and the verification state
// machine that drives webhook notifications.
package kyc

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/humanface/humanface/pkg/kyc_server/auth"
	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
	"github.com/humanface/humanface/pkg/kyc_server/webhook"
	"github.com/humanface/humanface/pkg/util"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type KYCManager interface {
	CreateSession(ctx context.Context, ts int64, req CreateSessionRequest) (CreateSessionResult, error)
	GetSession(ctx context.Context, req GetSessionRequest) (GetSessionResult, error)
	SubmitVerification(ctx context.Context, ts int64, req SubmitVerificationRequest) (model.Verification, error)
	GetVerificationStatus(ctx context.Context, ts int64, req GetVerificationStatusRequest) (VerificationStatusResult, error)
	ResolveVerification(ctx context.Context, ts int64, req ResolveVerificationRequest) (model.Verification, error)
}

type CreateSessionRequest struct {
	EnterpriseID  string `json:"enterprise_id"`
	APIKeyID      string `json:"api_key_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerName  string `json:"customer_name"`
}

type CreateSessionResult struct {
	Session    model.KYCSession `json:"session"`
	SessionUrl string           `json:"session_url"`
	Enterprise auth.Enterprise  `json:"enterprise"`
}

type GetSessionRequest struct {
	EnterpriseID string `json:"enterprise_id"`
	SessionID    string `json:"session_id"`
}

type GetSessionResult struct {
	Session        model.KYCSession    `json:"session"`
	EnterpriseName string              `json:"enterprise_name"`
	Verification   *model.Verification `json:"verification,omitempty"`
}

type SubmitVerificationRequest struct {
	EnterpriseID string             `json:"enterprise_id"`
	SessionID    string             `json:"session_id"`
	DocumentType model.DocumentType `json:"document_type"`
	DocumentUrl  string             `json:"document_url"`
	LivenessUrl  string             `json:"liveness_url"`
}

type GetVerificationStatusRequest struct {
	EnterpriseID   string `json:"enterprise_id"`
	VerificationID string `json:"verification_id"`
}

type VerificationStatusResult struct {
	Status         model.VerificationStatus `json:"status"`
	DocumentStatus string                   `json:"document_status"`
	LivenessStatus string                   `json:"liveness_status"`
	RiskScore      decimal.Decimal          `json:"risk_score"`
}

type ResolveVerificationRequest struct {
	Requester      string                   `json:"requester"`
	VerificationID string                   `json:"verification_id"`
	Status         model.VerificationStatus `json:"status"`
	RiskScore      decimal.Decimal          `json:"risk_score"`
	DocumentStatus string                   `json:"document_status"`
	LivenessStatus string                   `json:"liveness_status"`
}

// SessionCreatedEvent is the payload delivered for session.created.
type SessionCreatedEvent struct {
	SessionID      string `json:"session_id"`
	CustomerEmail  string `json:"customer_email"`
	CustomerName   string `json:"customer_name"`
	EnterpriseName string `json:"enterprise_name"`
	CreatedAt      string `json:"created_at"`
}

// VerificationStatusEvent is the payload delivered for
// verification.status_update.
type VerificationStatusEvent struct {
	VerificationID string                   `json:"verification_id"`
	SessionID      string                   `json:"session_id"`
	Status         model.VerificationStatus `json:"status"`
	DocumentStatus string                   `json:"document_status,omitempty"`
	LivenessStatus string                   `json:"liveness_status,omitempty"`
	RiskScore      decimal.Decimal          `json:"risk_score"`
	UpdatedAt      string                   `json:"updated_at"`
}

type KYCManagerOption func(m *_KYCManager)

// WithAppURL sets the base URL of the hosted verification page embedded in
// session URLs.
func WithAppURL(appURL string) KYCManagerOption {
	return func(m *_KYCManager) {
		m.appURL = appURL
	}
}

// WithSessionTTL sets how long a newly created session stays usable.
func WithSessionTTL(ttl time.Duration) KYCManagerOption {
	return func(m *_KYCManager) {
		m.sessionTTL = ttl
	}
}

// WithEmitOnRead controls when status reads emit verification.status_update.
// When true (the default) every read emits. When false a read emits only if
// the status changed since the last delivered notification.
func WithEmitOnRead(emitOnRead bool) KYCManagerOption {
	return func(m *_KYCManager) {
		m.emitOnRead = emitOnRead
	}
}

type _KYCManager struct {
	sessionStorage    storage.SessionStorage
	enterpriseStorage auth.EnterpriseStorage
	dispatcher        webhook.Dispatcher

	appURL     string
	sessionTTL time.Duration
	emitOnRead bool
}

func NewKYCManager(sessionStorage storage.SessionStorage, enterpriseStorage auth.EnterpriseStorage, dispatcher webhook.Dispatcher, opts ...KYCManagerOption) KYCManager {
	m := &_KYCManager{
		sessionStorage:    sessionStorage,
		enterpriseStorage: enterpriseStorage,
		dispatcher:        dispatcher,
		appURL:            "http://localhost:3000",
		sessionTTL:        24 * time.Hour,
		emitOnRead:        true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *_KYCManager) CreateSession(ctx context.Context, ts int64, req CreateSessionRequest) (CreateSessionResult, error) {
	if err := ValidateCreateSessionRequest(req); err != nil {
		return CreateSessionResult{}, err
	}

	enterprise, err := m.getEnterprise(ctx, req.EnterpriseID)
	if err != nil {
		return CreateSessionResult{}, err
	}

	session := model.KYCSession{
		ID:            fmt.Sprintf("sess_%s", util.NewUUID()),
		Version:       1,
		EnterpriseID:  req.EnterpriseID,
		APIKeyID:      req.APIKeyID,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		Status:        model.SessionStatusPending,
		CreatedAt:     ts,
		ExpiresAt:     ts + int64(m.sessionTTL/time.Second),
		UpdatedAt:     ts,
	}

	tx, ctx, err := m.sessionStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return CreateSessionResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := m.sessionStorage.StoreSession(ctx, tx, session); err != nil {
		return CreateSessionResult{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return CreateSessionResult{}, err
	}

	event := SessionCreatedEvent{
		SessionID:      session.ID,
		CustomerEmail:  session.CustomerEmail,
		CustomerName:   session.CustomerName,
		EnterpriseName: enterprise.Name,
		CreatedAt:      time.Unix(ts, 0).UTC().Format(time.RFC3339),
	}
	if err := m.dispatcher.Dispatch(ctx, ts, session.EnterpriseID, model.WebhookEventSessionCreated, event); err != nil {
		logrus.Errorf("dispatch session.created for %s: %v", session.ID, err)
	}

	return CreateSessionResult{
		Session:    session,
		SessionUrl: fmt.Sprintf("%s/kyc?session_id=%s", m.appURL, session.ID),
		Enterprise: enterprise,
	}, nil
}

func (m *_KYCManager) GetSession(ctx context.Context, req GetSessionRequest) (GetSessionResult, error) {
	if err := ValidateGetSessionRequest(req); err != nil {
		return GetSessionResult{}, err
	}

	tx, ctx, err := m.sessionStorage.CreateTx(ctx)
	if err != nil {
		return GetSessionResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	session, err := m.getSession(ctx, tx, req.EnterpriseID, req.SessionID)
	if err != nil {
		return GetSessionResult{}, err
	}

	result := GetSessionResult{Session: session}
	if session.VerificationID != "" {
		verifications, err := m.sessionStorage.ListVerification(ctx, tx, storage.ListVerificationRequest{
			Limit: 1,
			IDs:   []string{session.VerificationID},
		})
		if err != nil {
			return GetSessionResult{}, err
		}
		if len(verifications.Records) > 0 {
			result.Verification = &verifications.Records[0]
		}
	}

	enterprise, err := m.getEnterprise(ctx, session.EnterpriseID)
	if err != nil {
		return GetSessionResult{}, err
	}
	result.EnterpriseName = enterprise.Name

	return result, nil
}

func (m *_KYCManager) SubmitVerification(ctx context.Context, ts int64, req SubmitVerificationRequest) (model.Verification, error) {
	if err := ValidateSubmitVerificationRequest(req); err != nil {
		return model.Verification{}, err
	}

	tx, ctx, err := m.sessionStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Verification{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	session, err := m.getSession(ctx, tx, req.EnterpriseID, req.SessionID)
	if err != nil {
		return model.Verification{}, err
	}
	if session.Status == model.SessionStatusCompleted || session.Status == model.SessionStatusFailed {
		return model.Verification{}, model.ErrInvalidStatusTransition
	}

	document := model.Document{
		ID:                 fmt.Sprintf("doc_%s", util.NewUUID()),
		Type:               req.DocumentType,
		Url:                req.DocumentUrl,
		Status:             model.DocumentStatusProcessing,
		VerificationMethod: model.VerificationMethodAI,
		CreatedAt:          ts,
	}
	if err := m.sessionStorage.StoreDocument(ctx, tx, document); err != nil {
		return model.Verification{}, err
	}

	verification := model.Verification{
		ID:          fmt.Sprintf("vrf_%s", util.NewUUID()),
		Version:     1,
		SessionID:   session.ID,
		DocumentID:  document.ID,
		Status:      model.VerificationStatusProcessing,
		LivenessUrl: req.LivenessUrl,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := m.sessionStorage.StoreVerification(ctx, tx, verification); err != nil {
		return model.Verification{}, err
	}

	session.Version += 1
	session.Status = model.SessionStatusProcessing
	session.VerificationID = verification.ID
	session.UpdatedAt = ts
	if err := m.sessionStorage.StoreSession(ctx, tx, session); err != nil {
		return model.Verification{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Verification{}, err
	}

	return verification, nil
}

func (m *_KYCManager) GetVerificationStatus(ctx context.Context, ts int64, req GetVerificationStatusRequest) (VerificationStatusResult, error) {
	if err := ValidateGetVerificationStatusRequest(req); err != nil {
		return VerificationStatusResult{}, err
	}

	tx, txCtx, err := m.sessionStorage.CreateTx(ctx)
	if err != nil {
		return VerificationStatusResult{}, err
	}

	verification, session, document, err := m.loadVerification(txCtx, tx, req.EnterpriseID, req.VerificationID)
	_ = tx.Rollback(txCtx)
	if err != nil {
		return VerificationStatusResult{}, err
	}

	result := VerificationStatusResult{
		Status:         verification.Status,
		DocumentStatus: document.Status,
		LivenessStatus: verification.LivenessStatus,
		RiskScore:      verification.RiskScore,
	}

	if m.emitOnRead || verification.LastNotifiedStatus != verification.Status {
		event := VerificationStatusEvent{
			VerificationID: verification.ID,
			SessionID:      session.ID,
			Status:         verification.Status,
			DocumentStatus: document.Status,
			LivenessStatus: verification.LivenessStatus,
			RiskScore:      verification.RiskScore,
			UpdatedAt:      time.Unix(ts, 0).UTC().Format(time.RFC3339),
		}
		if err := m.dispatcher.Dispatch(ctx, ts, session.EnterpriseID, model.WebhookEventVerificationStatusUpdate, event); err != nil {
			logrus.Errorf("dispatch verification.status_update for %s: %v", verification.ID, err)
		} else if verification.LastNotifiedStatus != verification.Status {
			m.markNotified(ctx, ts, verification)
		}
	}

	return result, nil
}

func (m *_KYCManager) ResolveVerification(ctx context.Context, ts int64, req ResolveVerificationRequest) (model.Verification, error) {
	if err := ValidateResolveVerificationRequest(req); err != nil {
		return model.Verification{}, err
	}

	tx, ctx, err := m.sessionStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Verification{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	verification, session, document, err := m.loadVerification(ctx, tx, "", req.VerificationID)
	if err != nil {
		return model.Verification{}, err
	}
	if verification.Status != model.VerificationStatusProcessing {
		return model.Verification{}, model.ErrInvalidStatusTransition
	}

	verification.Version += 1
	verification.Status = req.Status
	verification.RiskScore = req.RiskScore
	verification.LivenessStatus = req.LivenessStatus
	verification.UpdatedAt = ts
	if err := m.sessionStorage.StoreVerification(ctx, tx, verification); err != nil {
		return model.Verification{}, err
	}

	if req.DocumentStatus != "" {
		document.Status = req.DocumentStatus
		if err := m.sessionStorage.StoreDocument(ctx, tx, document); err != nil {
			return model.Verification{}, err
		}
	}

	session.Version += 1
	if req.Status == model.VerificationStatusSuccess {
		session.Status = model.SessionStatusCompleted
	} else {
		session.Status = model.SessionStatusFailed
	}
	session.UpdatedAt = ts
	if err := m.sessionStorage.StoreSession(ctx, tx, session); err != nil {
		return model.Verification{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Verification{}, err
	}

	return verification, nil
}

func (m *_KYCManager) getSession(ctx context.Context, tx storage.Tx, enterpriseID, id string) (model.KYCSession, error) {
	res, err := m.sessionStorage.ListSession(ctx, tx, storage.ListSessionRequest{
		Limit:        1,
		EnterpriseID: enterpriseID,
		IDs:          []string{id},
	})
	if err != nil {
		return model.KYCSession{}, err
	}
	if len(res.Records) == 0 {
		return model.KYCSession{}, model.ErrSessionNotFound
	}
	return res.Records[0], nil
}

// loadVerification resolves a verification together with its session and
// document. An enterprise mismatch is indistinguishable from a missing
// verification.
func (m *_KYCManager) loadVerification(ctx context.Context, tx storage.Tx, enterpriseID, id string) (model.Verification, model.KYCSession, model.Document, error) {
	verifications, err := m.sessionStorage.ListVerification(ctx, tx, storage.ListVerificationRequest{
		Limit: 1,
		IDs:   []string{id},
	})
	if err != nil {
		return model.Verification{}, model.KYCSession{}, model.Document{}, err
	}
	if len(verifications.Records) == 0 {
		return model.Verification{}, model.KYCSession{}, model.Document{}, model.ErrVerificationNotFound
	}
	verification := verifications.Records[0]

	session, err := m.getSession(ctx, tx, enterpriseID, verification.SessionID)
	if err != nil {
		return model.Verification{}, model.KYCSession{}, model.Document{}, model.ErrVerificationNotFound
	}

	document, err := m.sessionStorage.GetDocument(ctx, tx, verification.DocumentID)
	if err != nil {
		return model.Verification{}, model.KYCSession{}, model.Document{}, err
	}

	return verification, session, document, nil
}

func (m *_KYCManager) markNotified(ctx context.Context, ts int64, verification model.Verification) {
	tx, ctx, err := m.sessionStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		logrus.Errorf("mark verification %s notified: %v", verification.ID, err)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	verification.Version += 1
	verification.LastNotifiedStatus = verification.Status
	verification.UpdatedAt = ts
	if err := m.sessionStorage.StoreVerification(ctx, tx, verification); err != nil {
		logrus.Errorf("mark verification %s notified: %v", verification.ID, err)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		logrus.Errorf("mark verification %s notified: %v", verification.ID, err)
	}
}

func (m *_KYCManager) getEnterprise(ctx context.Context, id string) (auth.Enterprise, error) {
	tx, ctx, err := m.enterpriseStorage.CreateTx(ctx)
	if err != nil {
		return auth.Enterprise{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := m.enterpriseStorage.ListEnterprise(ctx, tx, auth.ListEnterpriseRequest{Limit: 1, IDs: []string{id}})
	if err != nil {
		return auth.Enterprise{}, err
	}
	if len(res.Records) == 0 {
		return auth.Enterprise{}, model.ErrEnterpriseNotFound
	}
	return res.Records[0], nil
}
