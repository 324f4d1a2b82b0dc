// Package manager exposes the operator-facing HTTP surface: user accounts,
// enterprises, API keys, webhook subscriptions and verification resolution.
package manager

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/humanface/humanface/pkg/kyc_server/auth"
	"github.com/humanface/humanface/pkg/kyc_server/kyc"
	"github.com/humanface/humanface/pkg/kyc_server/middleware"
	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
	"github.com/humanface/humanface/pkg/kyc_server/storage/postgres"
	"github.com/humanface/humanface/pkg/kyc_server/webhook"
	"github.com/humanface/humanface/pkg/util"
	"github.com/sirupsen/logrus"
)

type ManagerAPIConfig struct {
	Database     util.PostgresDatabaseConfig `yaml:"database"`
	LocalAddress string                      `yaml:"local_address"`
}

type ManagerAPI struct {
	userMgr       auth.UserManager
	enterpriseMgr auth.EnterpriseManager
	apiKeyMgr     auth.APIKeyAuthenticator
	webhookCtrl   webhook.WebhookController
	kycMgr        kyc.KYCManager
	httpServer    *http.Server
}

func NewManagerAPI(cfg ManagerAPIConfig) (*ManagerAPI, error) {
	store, err := postgres.NewStorageWithConfig(cfg.Database)
	if err != nil {
		logrus.Errorf("failed to create storage: %v", err)
		return nil, err
	}

	userMgr := auth.NewUserManager(store)
	enterpriseMgr := auth.NewEnterpriseManager(store)
	apiKeyMgr := auth.NewAPIKeyAuthenticator(store)
	webhookCtrl := webhook.NewWebhookController(store)
	kycMgr := kyc.NewKYCManager(store, store, webhook.NewDispatcher(store))
	return NewManagerAPIWithControllers(userMgr, enterpriseMgr, apiKeyMgr, webhookCtrl, kycMgr, cfg.LocalAddress)
}

func NewManagerAPIWithControllers(
	userMgr auth.UserManager,
	enterpriseMgr auth.EnterpriseManager,
	apiKeyMgr auth.APIKeyAuthenticator,
	webhookCtrl webhook.WebhookController,
	kycMgr kyc.KYCManager,
	localAddress string,
) (*ManagerAPI, error) {
	apiServer := &ManagerAPI{}

	apiServer.userMgr = userMgr
	apiServer.enterpriseMgr = enterpriseMgr
	apiServer.apiKeyMgr = apiKeyMgr
	apiServer.webhookCtrl = webhookCtrl
	apiServer.kycMgr = kycMgr

	userTokenMiddleware := middleware.NewUserTokenAuth(apiServer.userMgr)

	r := mux.NewRouter()
	loginRouter := r.NewRoute().Subrouter()
	loginRouter.HandleFunc("/login", apiServer.login).Methods(http.MethodGet)

	mgrRouter := r.NewRoute().Subrouter()
	mgrRouter.Use(userTokenMiddleware.Authenticate)
	mgrRouter.HandleFunc("/user", apiServer.getUserList).Methods(http.MethodGet)
	mgrRouter.HandleFunc("/user", apiServer.createUser).Methods(http.MethodPost)
	mgrRouter.HandleFunc("/user/{id}", apiServer.getUser).Methods(http.MethodGet)
	mgrRouter.HandleFunc("/user/{id}/change_password", apiServer.changeUserPassword).Methods(http.MethodPost)
	mgrRouter.HandleFunc("/enterprise", apiServer.createEnterprise).Methods(http.MethodPost)
	mgrRouter.HandleFunc("/enterprise", apiServer.getEnterpriseList).Methods(http.MethodGet)
	mgrRouter.HandleFunc("/enterprise/{id}", apiServer.getEnterprise).Methods(http.MethodGet)
	mgrRouter.HandleFunc("/enterprise/{id}", apiServer.updateEnterprise).Methods(http.MethodPost)
	mgrRouter.HandleFunc("/enterprise/{id}/api_key", apiServer.createAPIKey).Methods(http.MethodPost)
	mgrRouter.HandleFunc("/enterprise/{id}/api_key", apiServer.listAPIKey).Methods(http.MethodGet)
	mgrRouter.HandleFunc("/enterprise/{id}/api_key/{key_id}", apiServer.revokeAPIKey).Methods(http.MethodDelete)
	mgrRouter.HandleFunc("/enterprise/{id}/webhook", apiServer.createWebhook).Methods(http.MethodPost)
	mgrRouter.HandleFunc("/enterprise/{id}/webhook", apiServer.listWebhook).Methods(http.MethodGet)
	mgrRouter.HandleFunc("/enterprise/{id}/webhook/{webhook_id}", apiServer.updateWebhook).Methods(http.MethodPost)
	mgrRouter.HandleFunc("/enterprise/{id}/webhook/{webhook_id}", apiServer.deleteWebhook).Methods(http.MethodDelete)
	mgrRouter.HandleFunc("/webhook/{id}/delivery_event", apiServer.listDeliveryEvent).Methods(http.MethodGet)
	mgrRouter.HandleFunc("/verification/{id}/resolve", apiServer.resolveVerification).Methods(http.MethodPost)

	httpServer := &http.Server{
		Addr:         localAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	apiServer.httpServer = httpServer
	return apiServer, nil
}

func (s *ManagerAPI) Run() error {
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
func (s *ManagerAPI) Close(ctx context.Context) error {
	s.httpServer.SetKeepAlivesEnabled(false)
	return s.httpServer.Shutdown(ctx)
}

func (s *ManagerAPI) login(w http.ResponseWriter, r *http.Request) {
	extractBasicAuthCredentials := func(r *http.Request) (string, string, error) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			return "", "", errors.New("header `Authorization` is missing")
		}

		authParts := strings.SplitN(authHeader, " ", 2)
		if len(authParts) != 2 || authParts[0] != "Basic" {
			return "", "", errors.New("invalid `Authorization` header")
		}

		decoded, err := base64.StdEncoding.DecodeString(authParts[1])
		if err != nil {
			return "", "", fmt.Errorf("failed to decode credentials: %w", err)
		}

		credentials := strings.SplitN(string(decoded), ":", 2)
		if len(credentials) != 2 {
			return "", "", errors.New("invalid credentials format")
		}

		return credentials[0], credentials[1], nil
	}

	userID, password, err := extractBasicAuthCredentials(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	req := auth.AuthenticateUserRequest{
		UserID:   userID,
		Password: auth.RawPassword(password),
	}
	userToken, err := s.userMgr.Authenticate(r.Context(), time.Now().Unix(), req)
	if errors.Is(err, model.ErrUserError) {
		logrus.Warnf("failed to authenticate user %q: %v", userID, err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(userToken)
}

func (s *ManagerAPI) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userToken, _ := r.Context().Value(middleware.USER_TOKEN).(auth.UserToken)

	var req auth.CreateUserRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.RequestUser = userToken.UserID

	user, err := s.userMgr.CreateUser(ctx, time.Now().Unix(), req)
	if errors.Is(err, model.ErrUserAlreadyExists) {
		logrus.Warnf("failed to create user %q: %v", req.UserID, err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	} else if errors.Is(err, model.ErrInvalidParameter) {
		logrus.Warnf("failed to create user %q: %v", req.UserID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		logrus.Errorf("failed to create user %q: %v", req.UserID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(user)
}

func (s *ManagerAPI) getUserList(w http.ResponseWriter, r *http.Request) {
	listReq := auth.ListUserRequest{
		Offset: 0,
		Limit:  10,
	}
	if !parsePagination(w, r, &listReq.Offset, &listReq.Limit) {
		return
	}

	result, err := s.userMgr.ListUsers(r.Context(), listReq)
	if err != nil {
		logrus.Errorf("failed to list users: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}

func (s *ManagerAPI) getUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	listReq := auth.ListUserRequest{
		Limit: 1,
		IDs:   []string{userID},
	}
	result, err := s.userMgr.ListUsers(r.Context(), listReq)
	if err != nil {
		logrus.Errorf("failed to get user %q: %v", userID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(result.Users) == 0 {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result.Users[0])
}

func (s *ManagerAPI) changeUserPassword(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	req := auth.ChangePasswordRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.UserID = userID

	_, err := s.userMgr.ChangePassword(r.Context(), time.Now().Unix(), req)
	if errors.Is(err, model.ErrUserNotFound) {
		logrus.Warnf("failed to change password for user %q: %v", userID, err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	} else if errors.Is(err, model.ErrUserAuthenticationFail) || errors.Is(err, model.ErrInvalidParameter) {
		logrus.Warnf("failed to change password for user %q: %v", userID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		logrus.Errorf("failed to change password for user %q: %v", userID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *ManagerAPI) createEnterprise(w http.ResponseWriter, r *http.Request) {
	userToken, _ := r.Context().Value(middleware.USER_TOKEN).(auth.UserToken)

	var req auth.CreateEnterpriseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = userToken.UserID

	enterprise, err := s.enterpriseMgr.CreateEnterprise(r.Context(), time.Now().Unix(), req)
	if errors.Is(err, model.ErrInvalidParameter) {
		logrus.Warnf("failed to create enterprise %q: %v", req.Name, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		logrus.Errorf("failed to create enterprise %q: %v", req.Name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(enterprise)
}

func (s *ManagerAPI) getEnterpriseList(w http.ResponseWriter, r *http.Request) {
	listReq := auth.ListEnterpriseRequest{
		Limit: 10,
	}
	if !parsePagination(w, r, &listReq.Offset, &listReq.Limit) {
		return
	}

	result, err := s.enterpriseMgr.ListEnterprises(r.Context(), listReq)
	if err != nil {
		logrus.Errorf("failed to list enterprises: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}

func (s *ManagerAPI) getEnterprise(w http.ResponseWriter, r *http.Request) {
	enterpriseID := mux.Vars(r)["id"]

	listReq := auth.ListEnterpriseRequest{
		Limit: 1,
		IDs:   []string{enterpriseID},
	}
	result, err := s.enterpriseMgr.ListEnterprises(r.Context(), listReq)
	if err != nil {
		logrus.Errorf("failed to get enterprise %q: %v", enterpriseID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(result.Records) == 0 {
		http.Error(w, "enterprise not found", http.StatusNotFound)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result.Records[0])
}

func (s *ManagerAPI) updateEnterprise(w http.ResponseWriter, r *http.Request) {
	userToken, _ := r.Context().Value(middleware.USER_TOKEN).(auth.UserToken)
	enterpriseID := mux.Vars(r)["id"]

	req := auth.UpdateBrandingRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = userToken.UserID
	req.EnterpriseID = enterpriseID

	enterprise, err := s.enterpriseMgr.UpdateBranding(r.Context(), time.Now().Unix(), req)
	if errors.Is(err, model.ErrInvalidParameter) {
		logrus.Warnf("failed to update enterprise %q: %v", enterpriseID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, model.ErrEnterpriseNotFound) {
		logrus.Warnf("failed to update enterprise %q: %v", enterpriseID, err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		logrus.Errorf("failed to update enterprise %q: %v", enterpriseID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(enterprise)
}

func (s *ManagerAPI) createAPIKey(w http.ResponseWriter, r *http.Request) {
	userToken, _ := r.Context().Value(middleware.USER_TOKEN).(auth.UserToken)
	enterpriseID := mux.Vars(r)["id"]

	request := auth.CreateAPIKeyRequest{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	request.EnterpriseID = enterpriseID
	request.Requester = userToken.UserID

	// The key value is returned exactly once, at creation.
	key, err := s.apiKeyMgr.CreateAPIKey(r.Context(), time.Now().Unix(), request)
	if errors.Is(err, model.ErrInvalidParameter) {
		logrus.Warnf("failed to create API key: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		logrus.Errorf("failed to create API key: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(key)
}

func (s *ManagerAPI) listAPIKey(w http.ResponseWriter, r *http.Request) {
	enterpriseID := mux.Vars(r)["id"]
	listRequest := auth.ListAPIKeysRequest{
		Limit:         10,
		EnterpriseIDs: []string{enterpriseID},
	}
	if !parsePagination(w, r, &listRequest.Offset, &listRequest.Limit) {
		return
	}

	result, err := s.apiKeyMgr.ListAPIKeys(r.Context(), listRequest)
	if err != nil {
		logrus.Errorf("failed to list API keys: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}

func (s *ManagerAPI) revokeAPIKey(w http.ResponseWriter, r *http.Request) {
	userToken, _ := r.Context().Value(middleware.USER_TOKEN).(auth.UserToken)
	enterpriseID := mux.Vars(r)["id"]
	apiKeyID := mux.Vars(r)["key_id"]

	request := auth.RevokeAPIKeyRequest{
		ID:           apiKeyID,
		EnterpriseID: enterpriseID,
		Requester:    userToken.UserID,
	}

	_, err := s.apiKeyMgr.RevokeAPIKey(r.Context(), time.Now().Unix(), request)
	if errors.Is(err, model.ErrInvalidParameter) || errors.Is(err, model.ErrAPIKeyRevoked) {
		logrus.Warnf("failed to revoke API key %q: %v", apiKeyID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if errors.Is(err, model.ErrAPIKeyNotFound) {
		logrus.Warnf("failed to revoke API key %q: %v", apiKeyID, err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	} else if err != nil {
		logrus.Errorf("failed to revoke API key %q: %v", apiKeyID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *ManagerAPI) createWebhook(w http.ResponseWriter, r *http.Request) {
	userToken, _ := r.Context().Value(middleware.USER_TOKEN).(auth.UserToken)
	enterpriseID := mux.Vars(r)["id"]

	req := webhook.CreateWebhookRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = userToken.UserID
	req.EnterpriseID = enterpriseID

	hook, err := s.webhookCtrl.Create(r.Context(), time.Now().Unix(), req)
	if errors.Is(err, model.ErrInvalidParameter) {
		logrus.Warnf("failed to create webhook: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		logrus.Errorf("failed to create webhook: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(hook)
}

func (s *ManagerAPI) listWebhook(w http.ResponseWriter, r *http.Request) {
	enterpriseID := mux.Vars(r)["id"]

	listReq := webhook.ListWebhookRequest{
		Limit:        10,
		EnterpriseID: enterpriseID,
	}
	if !parsePagination(w, r, &listReq.Offset, &listReq.Limit) {
		return
	}

	result, err := s.webhookCtrl.List(r.Context(), listReq)
	if err != nil {
		logrus.Errorf("failed to list webhooks: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}

func (s *ManagerAPI) updateWebhook(w http.ResponseWriter, r *http.Request) {
	userToken, _ := r.Context().Value(middleware.USER_TOKEN).(auth.UserToken)
	enterpriseID := mux.Vars(r)["id"]
	webhookID := mux.Vars(r)["webhook_id"]

	req := webhook.UpdateWebhookRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ID = webhookID
	req.Requester = userToken.UserID
	req.EnterpriseID = enterpriseID

	hook, err := s.webhookCtrl.Update(r.Context(), time.Now().Unix(), req)
	if errors.Is(err, model.ErrInvalidParameter) {
		logrus.Warnf("failed to update webhook %q: %v", webhookID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, model.ErrWebhookNotFound) {
		logrus.Warnf("failed to update webhook %q: %v", webhookID, err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		logrus.Errorf("failed to update webhook %q: %v", webhookID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(hook)
}

func (s *ManagerAPI) deleteWebhook(w http.ResponseWriter, r *http.Request) {
	userToken, _ := r.Context().Value(middleware.USER_TOKEN).(auth.UserToken)
	enterpriseID := mux.Vars(r)["id"]
	webhookID := mux.Vars(r)["webhook_id"]

	req := webhook.DeleteWebhookRequest{
		ID:           webhookID,
		Requester:    userToken.UserID,
		EnterpriseID: enterpriseID,
	}

	err := s.webhookCtrl.Delete(r.Context(), time.Now().Unix(), req)
	if errors.Is(err, model.ErrWebhookNotFound) {
		logrus.Warnf("failed to delete webhook %q: %v", webhookID, err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	} else if err != nil {
		logrus.Errorf("failed to delete webhook %q: %v", webhookID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *ManagerAPI) listDeliveryEvent(w http.ResponseWriter, r *http.Request) {
	webhookID := mux.Vars(r)["id"]

	listReq := storage.ListDeliveryEventRequest{
		Limit:      10,
		WebhookIDs: []string{webhookID},
	}
	if !parsePagination(w, r, &listReq.Offset, &listReq.Limit) {
		return
	}
	if status := r.URL.Query().Get("status"); status != "" {
		listReq.Statuses = []string{status}
	}
	if eventType := r.URL.Query().Get("event_type"); eventType != "" {
		listReq.EventTypes = []string{eventType}
	}

	result, err := s.webhookCtrl.ListDeliveryEvents(r.Context(), listReq)
	if err != nil {
		logrus.Errorf("failed to list delivery events: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}

func (s *ManagerAPI) resolveVerification(w http.ResponseWriter, r *http.Request) {
	userToken, _ := r.Context().Value(middleware.USER_TOKEN).(auth.UserToken)
	verificationID := mux.Vars(r)["id"]

	req := kyc.ResolveVerificationRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = userToken.UserID
	req.VerificationID = verificationID

	verification, err := s.kycMgr.ResolveVerification(r.Context(), time.Now().Unix(), req)
	if errors.Is(err, model.ErrInvalidParameter) {
		logrus.Warnf("failed to resolve verification %q: %v", verificationID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, model.ErrVerificationNotFound) {
		logrus.Warnf("failed to resolve verification %q: %v", verificationID, err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if errors.Is(err, model.ErrInvalidStatusTransition) {
		logrus.Warnf("failed to resolve verification %q: %v", verificationID, err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		logrus.Errorf("failed to resolve verification %q: %v", verificationID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(verification)
}

func parsePagination(w http.ResponseWriter, r *http.Request, offset, limit *int) bool {
	offsetStr := r.URL.Query().Get("offset")
	limitStr := r.URL.Query().Get("limit")
	if offsetStr != "" {
		v, err := strconv.ParseInt(offsetStr, 10, 32)
		if err != nil || v < 0 {
			http.Error(w, "offset is invalid", http.StatusBadRequest)
			return false
		}
		*offset = int(v)
	}
	if limitStr != "" {
		v, err := strconv.ParseInt(limitStr, 10, 32)
		if err != nil || v < 1 {
			http.Error(w, "limit is invalid", http.StatusBadRequest)
			return false
		}
		*limit = int(v)
	}
	return true
}
