// Package api exposes the public, API-key authenticated HTTP surface:
// session creation, session lookup, verification submission and
// verification status reads.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/humanface/humanface/pkg/kyc_server/auth"
	"github.com/humanface/humanface/pkg/kyc_server/kyc"
	"github.com/humanface/humanface/pkg/kyc_server/middleware"
	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/humanface/humanface/pkg/kyc_server/storage/postgres"
	"github.com/humanface/humanface/pkg/kyc_server/webhook"
	"github.com/humanface/humanface/pkg/util"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type WebhookConfig struct {
	Timeout    int     `yaml:"timeout"`      // Per-subscriber delivery timeout in seconds.
	RateLimit  float64 `yaml:"rate_limit"`   // Outbound deliveries per second. 0 disables throttling.
	Burst      int     `yaml:"burst"`        // Burst size for the outbound rate limiter.
	EmitOnRead *bool   `yaml:"emit_on_read"` // Emit verification.status_update on every status read. Default true.
}

type APIConfig struct {
	Database     util.PostgresDatabaseConfig `yaml:"database"`
	LocalAddress string                      `yaml:"local_address"`
	AppURL       string                      `yaml:"app_url"`
	SessionTTL   int                         `yaml:"session_ttl"` // Session lifetime in seconds.
	Webhook      WebhookConfig               `yaml:"webhook"`
}

type API struct {
	apiKeyMgr auth.APIKeyAuthenticator
	kycMgr    kyc.KYCManager

	httpServer *http.Server
}

func NewAPIWithConfig(cfg APIConfig) (*API, error) {
	storage, err := postgres.NewStorageWithConfig(cfg.Database)
	if err != nil {
		logrus.Errorf("failed to create storage: %v", err)
		return nil, err
	}

	dispatcherOpts := []webhook.DispatcherOption{}
	if cfg.Webhook.Timeout > 0 {
		dispatcherOpts = append(dispatcherOpts, webhook.WithTimeout(time.Duration(cfg.Webhook.Timeout)*time.Second))
	}
	if cfg.Webhook.RateLimit > 0 {
		burst := cfg.Webhook.Burst
		if burst <= 0 {
			burst = 1
		}
		dispatcherOpts = append(dispatcherOpts, webhook.WithRateLimit(rate.Limit(cfg.Webhook.RateLimit), burst))
	}
	dispatcher := webhook.NewDispatcher(storage, dispatcherOpts...)

	kycOpts := []kyc.KYCManagerOption{}
	if cfg.AppURL != "" {
		kycOpts = append(kycOpts, kyc.WithAppURL(cfg.AppURL))
	}
	if cfg.SessionTTL > 0 {
		kycOpts = append(kycOpts, kyc.WithSessionTTL(time.Duration(cfg.SessionTTL)*time.Second))
	}
	if cfg.Webhook.EmitOnRead != nil {
		kycOpts = append(kycOpts, kyc.WithEmitOnRead(*cfg.Webhook.EmitOnRead))
	}

	apiKeyMgr := auth.NewAPIKeyAuthenticator(storage)
	kycMgr := kyc.NewKYCManager(storage, storage, dispatcher, kycOpts...)
	return NewAPIWithController(apiKeyMgr, kycMgr, cfg.LocalAddress)
}

func NewAPIWithController(apiKeyMgr auth.APIKeyAuthenticator, kycMgr kyc.KYCManager, localAddress string) (*API, error) {
	apiServer := &API{
		apiKeyMgr: apiKeyMgr,
		kycMgr:    kycMgr,
	}

	r := mux.NewRouter()
	r.Use(middleware.NewAPIKeyAuth(apiServer.apiKeyMgr).Authenticate)
	r.HandleFunc("/api/sessions", apiServer.createSession).Methods(http.MethodPost)
	r.HandleFunc("/api/sessions/{id}", apiServer.getSession).Methods(http.MethodGet)
	r.HandleFunc("/api/verify", apiServer.submitVerification).Methods(http.MethodPost)
	r.HandleFunc("/api/verify/{id}/status", apiServer.getVerificationStatus).Methods(http.MethodGet)

	apiServer.httpServer = &http.Server{
		Addr:    localAddress,
		Handler: r,
	}
	return apiServer, nil
}

func (a *API) Run() error {
	err := a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Close(ctx context.Context) error {
	a.httpServer.SetKeepAlivesEnabled(false)
	return a.httpServer.Shutdown(ctx)
}

type createSessionRequest struct {
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
}

type sessionEnterpriseResponse struct {
	Name    string `json:"name"`
	LogoUrl string `json:"logo_url"`
}

type createSessionResponse struct {
	SessionID  string                    `json:"sessionId"`
	SessionUrl string                    `json:"sessionUrl"`
	ExpiresAt  int64                     `json:"expiresAt"`
	Enterprise sessionEnterpriseResponse `json:"enterprise"`
}

func (a *API) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	enterpriseID, _ := ctx.Value(middleware.ENTERPRISE_ID).(string)
	apiKeyID, _ := ctx.Value(middleware.API_KEY_ID).(string)

	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.kycMgr.CreateSession(ctx, time.Now().Unix(), kyc.CreateSessionRequest{
		EnterpriseID:  enterpriseID,
		APIKeyID:      apiKeyID,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
	})
	if errors.Is(err, model.ErrInvalidParameter) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		logrus.Errorf("Error creating session: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, createSessionResponse{
		SessionID:  result.Session.ID,
		SessionUrl: result.SessionUrl,
		ExpiresAt:  result.Session.ExpiresAt,
		Enterprise: sessionEnterpriseResponse{
			Name:    result.Enterprise.Name,
			LogoUrl: result.Enterprise.LogoUrl,
		},
	})
}

type getSessionResponse struct {
	model.KYCSession
	Enterprise   sessionEnterpriseResponse `json:"enterprise"`
	Verification *model.Verification       `json:"verification,omitempty"`
}

func (a *API) getSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	enterpriseID, _ := ctx.Value(middleware.ENTERPRISE_ID).(string)
	id := mux.Vars(r)["id"]

	result, err := a.kycMgr.GetSession(ctx, kyc.GetSessionRequest{
		EnterpriseID: enterpriseID,
		SessionID:    id,
	})
	if errors.Is(err, model.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	if errors.Is(err, model.ErrInvalidParameter) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		logrus.Errorf("Error getting session: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	writeJSON(w, http.StatusOK, getSessionResponse{
		KYCSession:   result.Session,
		Enterprise:   sessionEnterpriseResponse{Name: result.EnterpriseName},
		Verification: result.Verification,
	})
}

type submitVerificationRequest struct {
	SessionID    string `json:"sessionId"`
	DocumentType string `json:"documentType"`
	DocumentUrl  string `json:"documentUrl"`
	LivenessUrl  string `json:"livenessUrl"`
}

type submitVerificationResponse struct {
	VerificationID string `json:"verificationId"`
	Status         string `json:"status"`
}

func (a *API) submitVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	enterpriseID, _ := ctx.Value(middleware.ENTERPRISE_ID).(string)

	var req submitVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	verification, err := a.kycMgr.SubmitVerification(ctx, time.Now().Unix(), kyc.SubmitVerificationRequest{
		EnterpriseID: enterpriseID,
		SessionID:    req.SessionID,
		DocumentType: model.DocumentType(req.DocumentType),
		DocumentUrl:  req.DocumentUrl,
		LivenessUrl:  req.LivenessUrl,
	})
	if errors.Is(err, model.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	if errors.Is(err, model.ErrInvalidStatusTransition) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if errors.Is(err, model.ErrInvalidParameter) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		logrus.Errorf("Error submitting verification: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit verification")
		return
	}

	writeJSON(w, http.StatusOK, submitVerificationResponse{
		VerificationID: verification.ID,
		Status:         string(verification.Status),
	})
}

type verificationStatusResponse struct {
	Status         string          `json:"status"`
	DocumentStatus string          `json:"documentStatus"`
	LivenessStatus string          `json:"livenessStatus"`
	RiskScore      decimal.Decimal `json:"riskScore"`
}

func (a *API) getVerificationStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	enterpriseID, _ := ctx.Value(middleware.ENTERPRISE_ID).(string)
	id := mux.Vars(r)["id"]

	result, err := a.kycMgr.GetVerificationStatus(ctx, time.Now().Unix(), kyc.GetVerificationStatusRequest{
		EnterpriseID:   enterpriseID,
		VerificationID: id,
	})
	if errors.Is(err, model.ErrVerificationNotFound) {
		writeError(w, http.StatusNotFound, "Verification not found")
		return
	}
	if errors.Is(err, model.ErrInvalidParameter) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		logrus.Errorf("Error getting verification status: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get verification status")
		return
	}

	writeJSON(w, http.StatusOK, verificationStatusResponse{
		Status:         string(result.Status),
		DocumentStatus: result.DocumentStatus,
		LivenessStatus: result.LivenessStatus,
		RiskScore:      result.RiskScore,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Warnf("failed to encode/write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
