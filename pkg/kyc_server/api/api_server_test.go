package api_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/humanface/humanface/pkg/kyc_server/api"
	"github.com/humanface/humanface/pkg/kyc_server/auth"
	"github.com/humanface/humanface/pkg/kyc_server/kyc"
	"github.com/humanface/humanface/pkg/kyc_server/model"
	mock_auth "github.com/humanface/humanface/test/mock/kyc_server/auth"
	mock_kyc "github.com/humanface/humanface/test/mock/kyc_server/kyc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type APIServerTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	apiKeyMgr *mock_auth.MockAPIKeyAuthenticator
	kycMgr    *mock_kyc.MockKYCManager

	basePortNumber int32
	localAddress   string
	api            *api.API

	apiKey auth.APIKey
}

func TestAPIServer(t *testing.T) {
	suite.Run(t, new(APIServerTestSuite))
}

func (s *APIServerTestSuite) SetupSuite() {
	s.basePortNumber = 9300
}

func (s *APIServerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.apiKeyMgr = mock_auth.NewMockAPIKeyAuthenticator(s.ctrl)
	s.kycMgr = mock_kyc.NewMockKYCManager(s.ctrl)

	portNum := atomic.AddInt32(&s.basePortNumber, 1)
	s.localAddress = fmt.Sprintf("localhost:%d", portNum)
	apiServer, err := api.NewAPIWithController(s.apiKeyMgr, s.kycMgr, s.localAddress)
	s.Require().NoError(err)
	s.api = apiServer
	go func() {
		_ = s.api.Run()
	}()
	time.Sleep(100 * time.Millisecond)

	s.apiKey = auth.APIKey{ID: "ak_id", EnterpriseID: "ent_id"}
}

func (s *APIServerTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	s.Require().NoError(s.api.Close(ctx))
	s.ctrl.Finish()
}

func (s *APIServerTestSuite) expectAuth() {
	s.apiKeyMgr.EXPECT().Authenticate(gomock.Any(), "hf_test_key", "ent_id").Return(s.apiKey, nil)
}

func (s *APIServerTestSuite) doRequest(method, path, body string) *http.Response {
	req, err := http.NewRequest(method, fmt.Sprintf("http://%s%s", s.localAddress, path), strings.NewReader(body))
	s.Require().NoError(err)
	req.Header.Set("x-api-key", "hf_test_key")
	req.Header.Set("x-enterprise-id", "ent_id")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *APIServerTestSuite) TestCreateSession() {
	s.expectAuth()

	result := kyc.CreateSessionResult{
		Session: model.KYCSession{
			ID:            "sess_id",
			EnterpriseID:  "ent_id",
			CustomerEmail: "customer@example.com",
			Status:        model.SessionStatusPending,
			ExpiresAt:     1700000000,
		},
		SessionUrl: "https://verify.example.com/kyc?session_id=sess_id",
		Enterprise: auth.Enterprise{Name: "Acme Corp", LogoUrl: "https://acme.example.com/logo.png"},
	}

	s.kycMgr.EXPECT().CreateSession(gomock.Any(), gomock.Any(), kyc.CreateSessionRequest{
		EnterpriseID:  "ent_id",
		APIKeyID:      "ak_id",
		CustomerEmail: "customer@example.com",
		CustomerName:  "Customer Name",
	}).Return(result, nil)

	resp := s.doRequest(http.MethodPost, "/api/sessions", `{"customerEmail": "customer@example.com", "customerName": "Customer Name"}`)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	body := map[string]any{}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Assert().Equal("sess_id", body["sessionId"])
	s.Assert().Equal("https://verify.example.com/kyc?session_id=sess_id", body["sessionUrl"])
	s.Assert().Equal(float64(1700000000), body["expiresAt"])
	enterprise := body["enterprise"].(map[string]any)
	s.Assert().Equal("Acme Corp", enterprise["name"])
	s.Assert().Equal("https://acme.example.com/logo.png", enterprise["logo_url"])
}

func (s *APIServerTestSuite) TestCreateSessionWithInvalidRequest() {
	s.expectAuth()

	s.kycMgr.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(kyc.CreateSessionResult{}, model.ErrInvalidParameter)

	resp := s.doRequest(http.MethodPost, "/api/sessions", `{"customerName": "Customer Name"}`)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *APIServerTestSuite) TestCreateSessionWithoutCredentials() {
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s/api/sessions", s.localAddress), strings.NewReader(`{}`))
	s.Require().NoError(err)

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusUnauthorized, resp.StatusCode)

	body := map[string]string{}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Assert().Equal("Missing required headers: x-api-key and x-enterprise-id", body["error"])
}

func (s *APIServerTestSuite) TestGetSession() {
	s.expectAuth()

	verification := model.Verification{ID: "vrf_id", SessionID: "sess_id", Status: model.VerificationStatusProcessing}
	result := kyc.GetSessionResult{
		Session: model.KYCSession{
			ID:           "sess_id",
			EnterpriseID: "ent_id",
			Status:       model.SessionStatusProcessing,
		},
		EnterpriseName: "Acme Corp",
		Verification:   &verification,
	}

	s.kycMgr.EXPECT().GetSession(gomock.Any(), kyc.GetSessionRequest{EnterpriseID: "ent_id", SessionID: "sess_id"}).Return(result, nil)

	resp := s.doRequest(http.MethodGet, "/api/sessions/sess_id", "")
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	body := map[string]any{}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Assert().Equal("sess_id", body["id"])
	s.Assert().Equal("processing", body["status"])
	s.Assert().Equal("Acme Corp", body["enterprise"].(map[string]any)["name"])
	s.Assert().Equal("vrf_id", body["verification"].(map[string]any)["id"])
}

func (s *APIServerTestSuite) TestGetSessionWithNonExistSession() {
	s.expectAuth()

	s.kycMgr.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(kyc.GetSessionResult{}, model.ErrSessionNotFound)

	resp := s.doRequest(http.MethodGet, "/api/sessions/sess_id", "")
	defer resp.Body.Close()

	s.Require().Equal(http.StatusNotFound, resp.StatusCode)

	body := map[string]string{}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Assert().Equal("Session not found", body["error"])
}

func (s *APIServerTestSuite) TestSubmitVerification() {
	s.expectAuth()

	verification := model.Verification{
		ID:        "vrf_id",
		SessionID: "sess_id",
		Status:    model.VerificationStatusProcessing,
	}

	s.kycMgr.EXPECT().SubmitVerification(gomock.Any(), gomock.Any(), kyc.SubmitVerificationRequest{
		EnterpriseID: "ent_id",
		SessionID:    "sess_id",
		DocumentType: model.DocumentTypePassport,
		DocumentUrl:  "https://storage.example.com/doc.jpg",
		LivenessUrl:  "https://storage.example.com/liveness.mp4",
	}).Return(verification, nil)

	resp := s.doRequest(http.MethodPost, "/api/verify", `{
		"sessionId": "sess_id",
		"documentType": "passport",
		"documentUrl": "https://storage.example.com/doc.jpg",
		"livenessUrl": "https://storage.example.com/liveness.mp4"
	}`)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	body := map[string]string{}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Assert().Equal("vrf_id", body["verificationId"])
	s.Assert().Equal("processing", body["status"])
}

func (s *APIServerTestSuite) TestSubmitVerificationOnTerminalSession() {
	s.expectAuth()

	s.kycMgr.EXPECT().SubmitVerification(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Verification{}, model.ErrInvalidStatusTransition)

	resp := s.doRequest(http.MethodPost, "/api/verify", `{"sessionId": "sess_id", "documentType": "passport", "documentUrl": "https://storage.example.com/doc.jpg"}`)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusConflict, resp.StatusCode)
}

func (s *APIServerTestSuite) TestGetVerificationStatus() {
	s.expectAuth()

	result := kyc.VerificationStatusResult{
		Status:         model.VerificationStatusSuccess,
		DocumentStatus: "verified",
		LivenessStatus: "passed",
		RiskScore:      decimal.NewFromFloat(0.12),
	}

	s.kycMgr.EXPECT().GetVerificationStatus(gomock.Any(), gomock.Any(), kyc.GetVerificationStatusRequest{
		EnterpriseID:   "ent_id",
		VerificationID: "vrf_id",
	}).Return(result, nil)

	resp := s.doRequest(http.MethodGet, "/api/verify/vrf_id/status", "")
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	body := map[string]any{}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Assert().Equal("success", body["status"])
	s.Assert().Equal("verified", body["documentStatus"])
	s.Assert().Equal("passed", body["livenessStatus"])
}

func (s *APIServerTestSuite) TestGetVerificationStatusWithNonExistVerification() {
	s.expectAuth()

	s.kycMgr.EXPECT().GetVerificationStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(kyc.VerificationStatusResult{}, model.ErrVerificationNotFound)

	resp := s.doRequest(http.MethodGet, "/api/verify/vrf_id/status", "")
	defer resp.Body.Close()

	s.Require().Equal(http.StatusNotFound, resp.StatusCode)

	body := map[string]string{}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Assert().Equal("Verification not found", body["error"])
}
