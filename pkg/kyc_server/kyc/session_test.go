package kyc_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/humanface/humanface/pkg/kyc_server/auth"
	"github.com/humanface/humanface/pkg/kyc_server/kyc"
	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
	mock_auth "github.com/humanface/humanface/test/mock/kyc_server/auth"
	mock_storage "github.com/humanface/humanface/test/mock/kyc_server/storage"
	mock_webhook "github.com/humanface/humanface/test/mock/kyc_server/webhook"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type KYCManagerTestSuite struct {
	suite.Suite
	ctx               context.Context
	ctrl              *gomock.Controller
	sessionStorage    *mock_storage.MockSessionStorage
	enterpriseStorage *mock_auth.MockEnterpriseStorage
	dispatcher        *mock_webhook.MockDispatcher
	tx                *mock_storage.MockTx
	manager           kyc.KYCManager
}

func TestKYCManager(t *testing.T) {
	suite.Run(t, new(KYCManagerTestSuite))
}

func (s *KYCManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.sessionStorage = mock_storage.NewMockSessionStorage(s.ctrl)
	s.enterpriseStorage = mock_auth.NewMockEnterpriseStorage(s.ctrl)
	s.dispatcher = mock_webhook.NewMockDispatcher(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.manager = kyc.NewKYCManager(s.sessionStorage, s.enterpriseStorage, s.dispatcher, kyc.WithAppURL("https://verify.example.com"))
}

func (s *KYCManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *KYCManagerTestSuite) TestCreateSession() {
	ts := time.Now().Unix()

	req := kyc.CreateSessionRequest{
		EnterpriseID:  "ent_id",
		APIKeyID:      "ak_id",
		CustomerEmail: "customer@example.com",
		CustomerName:  "Customer Name",
	}

	enterprise := auth.Enterprise{
		ID:      "ent_id",
		Version: 1,
		Name:    "Acme Corp",
		LogoUrl: "https://acme.example.com/logo.png",
	}

	receivedSession := model.KYCSession{}
	receivedEvent := kyc.SessionCreatedEvent{}

	gomock.InOrder(
		s.enterpriseStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.enterpriseStorage.EXPECT().ListEnterprise(gomock.Any(), s.tx, auth.ListEnterpriseRequest{Limit: 1, IDs: []string{"ent_id"}}).Return(
			auth.ListEnterpriseResult{Total: 1, Records: []auth.Enterprise{enterprise}}, nil,
		),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		s.sessionStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.sessionStorage.EXPECT().StoreSession(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, session model.KYCSession) error {
				receivedSession = session
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), ts, "ent_id", model.WebhookEventSessionCreated, gomock.Any()).DoAndReturn(
			func(ctx context.Context, ts int64, enterpriseID string, eventType model.WebhookEventType, payload any) error {
				receivedEvent = payload.(kyc.SessionCreatedEvent)
				return nil
			},
		),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.manager.CreateSession(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal(receivedSession, result.Session)
	s.Assert().True(strings.HasPrefix(result.Session.ID, "sess_"))
	s.Assert().Equal(model.SessionStatusPending, result.Session.Status)
	s.Assert().Equal(ts, result.Session.CreatedAt)
	s.Assert().Equal(ts+86400, result.Session.ExpiresAt)
	s.Assert().Equal("https://verify.example.com/kyc?session_id="+result.Session.ID, result.SessionUrl)
	s.Assert().Equal(enterprise, result.Enterprise)

	s.Assert().Equal(result.Session.ID, receivedEvent.SessionID)
	s.Assert().Equal("customer@example.com", receivedEvent.CustomerEmail)
	s.Assert().Equal("Acme Corp", receivedEvent.EnterpriseName)
	s.Assert().Equal(time.Unix(ts, 0).UTC().Format(time.RFC3339), receivedEvent.CreatedAt)
}

func (s *KYCManagerTestSuite) TestCreateSessionWithNonExistEnterprise() {
	ts := time.Now().Unix()

	req := kyc.CreateSessionRequest{
		EnterpriseID:  "ent_id",
		APIKeyID:      "ak_id",
		CustomerEmail: "customer@example.com",
		CustomerName:  "Customer Name",
	}

	gomock.InOrder(
		s.enterpriseStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.enterpriseStorage.EXPECT().ListEnterprise(gomock.Any(), s.tx, gomock.Any()).Return(auth.ListEnterpriseResult{}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.CreateSession(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrEnterpriseNotFound)
}

func (s *KYCManagerTestSuite) TestGetSession() {
	session := model.KYCSession{
		ID:             "sess_id",
		Version:        2,
		EnterpriseID:   "ent_id",
		Status:         model.SessionStatusProcessing,
		VerificationID: "vrf_id",
	}

	verification := model.Verification{
		ID:        "vrf_id",
		SessionID: "sess_id",
		Status:    model.VerificationStatusProcessing,
	}

	enterprise := auth.Enterprise{ID: "ent_id", Name: "Acme Corp"}

	gomock.InOrder(
		s.sessionStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.sessionStorage.EXPECT().ListSession(gomock.Any(), s.tx, storage.ListSessionRequest{Limit: 1, EnterpriseID: "ent_id", IDs: []string{"sess_id"}}).Return(
			storage.ListSessionResult{Total: 1, Records: []model.KYCSession{session}}, nil,
		),
		s.sessionStorage.EXPECT().ListVerification(gomock.Any(), s.tx, storage.ListVerificationRequest{Limit: 1, IDs: []string{"vrf_id"}}).Return(
			storage.ListVerificationResult{Total: 1, Records: []model.Verification{verification}}, nil,
		),
		s.enterpriseStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.enterpriseStorage.EXPECT().ListEnterprise(gomock.Any(), s.tx, gomock.Any()).Return(
			auth.ListEnterpriseResult{Total: 1, Records: []auth.Enterprise{enterprise}}, nil,
		),
	)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil).Times(2)

	result, err := s.manager.GetSession(s.ctx, kyc.GetSessionRequest{EnterpriseID: "ent_id", SessionID: "sess_id"})
	s.Require().NoError(err)
	s.Assert().Equal(session, result.Session)
	s.Assert().Equal("Acme Corp", result.EnterpriseName)
	s.Require().NotNil(result.Verification)
	s.Assert().Equal(verification, *result.Verification)
}

func (s *KYCManagerTestSuite) TestGetSessionWithNonExistSession() {
	gomock.InOrder(
		s.sessionStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.sessionStorage.EXPECT().ListSession(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListSessionResult{}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.GetSession(s.ctx, kyc.GetSessionRequest{EnterpriseID: "ent_id", SessionID: "sess_id"})
	s.Require().ErrorIs(err, model.ErrSessionNotFound)
}

func (s *KYCManagerTestSuite) TestSubmitVerification() {
	ts := time.Now().Unix()

	req := kyc.SubmitVerificationRequest{
		EnterpriseID: "ent_id",
		SessionID:    "sess_id",
		DocumentType: model.DocumentTypePassport,
		DocumentUrl:  "https://storage.example.com/doc.jpg",
		LivenessUrl:  "https://storage.example.com/liveness.mp4",
	}

	session := model.KYCSession{
		ID:           "sess_id",
		Version:      1,
		EnterpriseID: "ent_id",
		Status:       model.SessionStatusPending,
	}

	receivedDocument := model.Document{}
	receivedVerification := model.Verification{}
	receivedSession := model.KYCSession{}

	gomock.InOrder(
		s.sessionStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.sessionStorage.EXPECT().ListSession(gomock.Any(), s.tx, storage.ListSessionRequest{Limit: 1, EnterpriseID: "ent_id", IDs: []string{"sess_id"}}).Return(
			storage.ListSessionResult{Total: 1, Records: []model.KYCSession{session}}, nil,
		),
		s.sessionStorage.EXPECT().StoreDocument(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, doc model.Document) error {
				receivedDocument = doc
				return nil
			},
		),
		s.sessionStorage.EXPECT().StoreVerification(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, verification model.Verification) error {
				receivedVerification = verification
				return nil
			},
		),
		s.sessionStorage.EXPECT().StoreSession(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, session model.KYCSession) error {
				receivedSession = session
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	verification, err := s.manager.SubmitVerification(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal(receivedVerification, verification)

	s.Assert().True(strings.HasPrefix(receivedDocument.ID, "doc_"))
	s.Assert().Equal(model.DocumentTypePassport, receivedDocument.Type)
	s.Assert().Equal(model.DocumentStatusProcessing, receivedDocument.Status)
	s.Assert().Equal(model.VerificationMethodAI, receivedDocument.VerificationMethod)

	s.Assert().True(strings.HasPrefix(verification.ID, "vrf_"))
	s.Assert().Equal(int64(1), verification.Version)
	s.Assert().Equal("sess_id", verification.SessionID)
	s.Assert().Equal(receivedDocument.ID, verification.DocumentID)
	s.Assert().Equal(model.VerificationStatusProcessing, verification.Status)

	s.Assert().Equal(int64(2), receivedSession.Version)
	s.Assert().Equal(model.SessionStatusProcessing, receivedSession.Status)
	s.Assert().Equal(verification.ID, receivedSession.VerificationID)
}

func (s *KYCManagerTestSuite) TestSubmitVerificationWithTerminalSession() {
	ts := time.Now().Unix()

	req := kyc.SubmitVerificationRequest{
		EnterpriseID: "ent_id",
		SessionID:    "sess_id",
		DocumentType: model.DocumentTypePassport,
		DocumentUrl:  "https://storage.example.com/doc.jpg",
	}

	session := model.KYCSession{
		ID:           "sess_id",
		Version:      3,
		EnterpriseID: "ent_id",
		Status:       model.SessionStatusCompleted,
	}

	gomock.InOrder(
		s.sessionStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.sessionStorage.EXPECT().ListSession(gomock.Any(), s.tx, gomock.Any()).Return(
			storage.ListSessionResult{Total: 1, Records: []model.KYCSession{session}}, nil,
		),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.SubmitVerification(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrInvalidStatusTransition)
}

func (s *KYCManagerTestSuite) expectLoadVerification(verification model.Verification, session model.KYCSession, document model.Document) {
	gomock.InOrder(
		s.sessionStorage.EXPECT().ListVerification(gomock.Any(), s.tx, storage.ListVerificationRequest{Limit: 1, IDs: []string{verification.ID}}).Return(
			storage.ListVerificationResult{Total: 1, Records: []model.Verification{verification}}, nil,
		),
		s.sessionStorage.EXPECT().ListSession(gomock.Any(), s.tx, gomock.Any()).Return(
			storage.ListSessionResult{Total: 1, Records: []model.KYCSession{session}}, nil,
		),
		s.sessionStorage.EXPECT().GetDocument(gomock.Any(), s.tx, verification.DocumentID).Return(document, nil),
	)
}

func (s *KYCManagerTestSuite) TestGetVerificationStatus() {
	ts := time.Now().Unix()

	verification := model.Verification{
		ID:             "vrf_id",
		Version:        2,
		SessionID:      "sess_id",
		DocumentID:     "doc_id",
		Status:         model.VerificationStatusSuccess,
		LivenessStatus: "passed",
		RiskScore:      decimal.NewFromFloat(0.12),
	}
	session := model.KYCSession{ID: "sess_id", EnterpriseID: "ent_id", Status: model.SessionStatusCompleted}
	document := model.Document{ID: "doc_id", Status: "verified"}

	receivedEvent := kyc.VerificationStatusEvent{}

	s.sessionStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil)
	s.expectLoadVerification(verification, session, document)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), ts, "ent_id", model.WebhookEventVerificationStatusUpdate, gomock.Any()).DoAndReturn(
		func(ctx context.Context, ts int64, enterpriseID string, eventType model.WebhookEventType, payload any) error {
			receivedEvent = payload.(kyc.VerificationStatusEvent)
			return nil
		},
	)

	// status changed since last notification, so the read marks it delivered
	s.sessionStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.sessionStorage.EXPECT().StoreVerification(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, v model.Verification) error {
			s.Assert().Equal(model.VerificationStatusSuccess, v.LastNotifiedStatus)
			s.Assert().Equal(int64(3), v.Version)
			return nil
		},
	)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	result, err := s.manager.GetVerificationStatus(s.ctx, ts, kyc.GetVerificationStatusRequest{EnterpriseID: "ent_id", VerificationID: "vrf_id"})
	s.Require().NoError(err)
	s.Assert().Equal(model.VerificationStatusSuccess, result.Status)
	s.Assert().Equal("verified", result.DocumentStatus)
	s.Assert().Equal("passed", result.LivenessStatus)
	s.Assert().True(result.RiskScore.Equal(decimal.NewFromFloat(0.12)))

	s.Assert().Equal("vrf_id", receivedEvent.VerificationID)
	s.Assert().Equal("sess_id", receivedEvent.SessionID)
	s.Assert().Equal(model.VerificationStatusSuccess, receivedEvent.Status)
}

func (s *KYCManagerTestSuite) TestGetVerificationStatusEmitOnChangeOnly() {
	manager := kyc.NewKYCManager(s.sessionStorage, s.enterpriseStorage, s.dispatcher, kyc.WithEmitOnRead(false))
	ts := time.Now().Unix()

	verification := model.Verification{
		ID:                 "vrf_id",
		Version:            3,
		SessionID:          "sess_id",
		DocumentID:         "doc_id",
		Status:             model.VerificationStatusSuccess,
		LastNotifiedStatus: model.VerificationStatusSuccess,
	}
	session := model.KYCSession{ID: "sess_id", EnterpriseID: "ent_id"}
	document := model.Document{ID: "doc_id", Status: "verified"}

	// already notified for this status, so no dispatch happens
	s.sessionStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil)
	s.expectLoadVerification(verification, session, document)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	result, err := manager.GetVerificationStatus(s.ctx, ts, kyc.GetVerificationStatusRequest{EnterpriseID: "ent_id", VerificationID: "vrf_id"})
	s.Require().NoError(err)
	s.Assert().Equal(model.VerificationStatusSuccess, result.Status)
}

func (s *KYCManagerTestSuite) TestGetVerificationStatusWithWrongEnterprise() {
	ts := time.Now().Unix()

	verification := model.Verification{
		ID:         "vrf_id",
		SessionID:  "sess_id",
		DocumentID: "doc_id",
		Status:     model.VerificationStatusProcessing,
	}

	gomock.InOrder(
		s.sessionStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.sessionStorage.EXPECT().ListVerification(gomock.Any(), s.tx, gomock.Any()).Return(
			storage.ListVerificationResult{Total: 1, Records: []model.Verification{verification}}, nil,
		),
		s.sessionStorage.EXPECT().ListSession(gomock.Any(), s.tx, storage.ListSessionRequest{Limit: 1, EnterpriseID: "ent_other", IDs: []string{"sess_id"}}).Return(
			storage.ListSessionResult{}, nil,
		),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.GetVerificationStatus(s.ctx, ts, kyc.GetVerificationStatusRequest{EnterpriseID: "ent_other", VerificationID: "vrf_id"})
	s.Require().ErrorIs(err, model.ErrVerificationNotFound)
}

func (s *KYCManagerTestSuite) TestResolveVerification() {
	ts := time.Now().Unix()

	req := kyc.ResolveVerificationRequest{
		Requester:      "operator",
		VerificationID: "vrf_id",
		Status:         model.VerificationStatusSuccess,
		RiskScore:      decimal.NewFromFloat(0.25),
		DocumentStatus: "verified",
		LivenessStatus: "passed",
	}

	verification := model.Verification{
		ID:         "vrf_id",
		Version:    1,
		SessionID:  "sess_id",
		DocumentID: "doc_id",
		Status:     model.VerificationStatusProcessing,
	}
	session := model.KYCSession{ID: "sess_id", Version: 2, EnterpriseID: "ent_id", Status: model.SessionStatusProcessing}
	document := model.Document{ID: "doc_id", Status: "processing"}

	receivedSession := model.KYCSession{}
	receivedDocument := model.Document{}

	s.sessionStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.expectLoadVerification(verification, session, document)
	s.sessionStorage.EXPECT().StoreVerification(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, v model.Verification) error {
			s.Assert().Equal(int64(2), v.Version)
			s.Assert().Equal(model.VerificationStatusSuccess, v.Status)
			s.Assert().Equal("passed", v.LivenessStatus)
			s.Assert().True(v.RiskScore.Equal(decimal.NewFromFloat(0.25)))
			return nil
		},
	)
	s.sessionStorage.EXPECT().StoreDocument(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, doc model.Document) error {
			receivedDocument = doc
			return nil
		},
	)
	s.sessionStorage.EXPECT().StoreSession(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, sess model.KYCSession) error {
			receivedSession = sess
			return nil
		},
	)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	result, err := s.manager.ResolveVerification(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal(model.VerificationStatusSuccess, result.Status)
	s.Assert().Equal("verified", receivedDocument.Status)
	s.Assert().Equal(model.SessionStatusCompleted, receivedSession.Status)
	s.Assert().Equal(int64(3), receivedSession.Version)
}

func (s *KYCManagerTestSuite) TestResolveVerificationWithError() {
	ts := time.Now().Unix()

	req := kyc.ResolveVerificationRequest{
		Requester:      "operator",
		VerificationID: "vrf_id",
		Status:         model.VerificationStatusError,
	}

	verification := model.Verification{
		ID:         "vrf_id",
		Version:    1,
		SessionID:  "sess_id",
		DocumentID: "doc_id",
		Status:     model.VerificationStatusProcessing,
	}
	session := model.KYCSession{ID: "sess_id", Version: 2, EnterpriseID: "ent_id", Status: model.SessionStatusProcessing}
	document := model.Document{ID: "doc_id", Status: "processing"}

	receivedSession := model.KYCSession{}

	s.sessionStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.expectLoadVerification(verification, session, document)
	s.sessionStorage.EXPECT().StoreVerification(gomock.Any(), s.tx, gomock.Any()).Return(nil)
	s.sessionStorage.EXPECT().StoreSession(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx storage.Tx, sess model.KYCSession) error {
			receivedSession = sess
			return nil
		},
	)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	result, err := s.manager.ResolveVerification(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal(model.VerificationStatusError, result.Status)
	s.Assert().Equal(model.SessionStatusFailed, receivedSession.Status)
}

func (s *KYCManagerTestSuite) TestResolveVerificationAlreadyTerminal() {
	ts := time.Now().Unix()

	req := kyc.ResolveVerificationRequest{
		Requester:      "operator",
		VerificationID: "vrf_id",
		Status:         model.VerificationStatusSuccess,
	}

	verification := model.Verification{
		ID:         "vrf_id",
		Version:    2,
		SessionID:  "sess_id",
		DocumentID: "doc_id",
		Status:     model.VerificationStatusSuccess,
	}
	session := model.KYCSession{ID: "sess_id", EnterpriseID: "ent_id", Status: model.SessionStatusCompleted}
	document := model.Document{ID: "doc_id", Status: "verified"}

	s.sessionStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.expectLoadVerification(verification, session, document)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	_, err := s.manager.ResolveVerification(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrInvalidStatusTransition)
}
