package webhook_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
	"github.com/humanface/humanface/pkg/kyc_server/webhook"
	mock_storage "github.com/humanface/humanface/test/mock/kyc_server/storage"
	"github.com/stretchr/testify/suite"
)

type WebhookControllerTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	storage     *mock_storage.MockWebhookStorage
	tx          *mock_storage.MockTx
	webhookCtrl webhook.WebhookController
}

func TestWebhookController(t *testing.T) {
	suite.Run(t, new(WebhookControllerTestSuite))
}

func (s *WebhookControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockWebhookStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.webhookCtrl = webhook.NewWebhookController(s.storage)
}

func (s *WebhookControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *WebhookControllerTestSuite) TestCreateWebhook() {
	ts := time.Now().Unix()

	req := webhook.CreateWebhookRequest{
		Requester:    "requester",
		EnterpriseID: "ent_id",
		Events:       []model.WebhookEventType{model.WebhookEventSessionCreated, model.WebhookEventVerificationStatusUpdate},
		Url:          "https://example.com/notify",
		Secret:       "secret_key",
	}

	expectedWebhook := model.Webhook{
		Version:      1,
		EnterpriseID: "ent_id",
		Events:       []model.WebhookEventType{model.WebhookEventSessionCreated, model.WebhookEventVerificationStatusUpdate},
		Url:          "https://example.com/notify",
		Secret:       "secret_key",
		Active:       true,
		CreatedAt:    ts,
		CreatedBy:    "requester",
		UpdatedAt:    ts,
		UpdatedBy:    "requester",
		Deleted:      false,
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().AddWebhook(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, webhook model.Webhook) error {
				expectedWebhook.ID = webhook.ID
				s.Assert().Equal(expectedWebhook, webhook)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.webhookCtrl.Create(s.ctx, ts, req)
	s.NoError(err)
	s.Require().Empty(res.Secret)
	res.Secret = expectedWebhook.Secret
	s.Assert().Equal(expectedWebhook, res)
}

func (s *WebhookControllerTestSuite) TestCreateWebhookWithInvalidRequest() {
	ts := time.Now().Unix()

	req := webhook.CreateWebhookRequest{
		Requester:    "requester",
		EnterpriseID: "ent_id",
		Events:       []model.WebhookEventType{model.WebhookEventType("session.deleted")},
		Url:          "https://example.com/notify",
		Secret:       "secret_key",
	}

	_, err := s.webhookCtrl.Create(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *WebhookControllerTestSuite) TestUpdateWebhook() {
	ts := time.Now().Unix()

	req := webhook.UpdateWebhookRequest{
		ID: "whk_id",
		CreateWebhookRequest: webhook.CreateWebhookRequest{
			Requester:    "requester",
			EnterpriseID: "ent_id",
			Events:       []model.WebhookEventType{model.WebhookEventVerificationStatusUpdate},
			Url:          "https://example.com/notify-v2",
			Secret:       "new_secret",
		},
		Active: false,
	}

	oldWebhook := model.Webhook{
		ID:           "whk_id",
		Version:      1,
		EnterpriseID: "ent_id",
		Events:       []model.WebhookEventType{model.WebhookEventSessionCreated},
		Url:          "https://example.com/notify",
		Secret:       "secret_key",
		Active:       true,
		CreatedAt:    ts - 1000,
		CreatedBy:    "creator",
		UpdatedAt:    ts - 1000,
		UpdatedBy:    "creator",
	}

	newWebhook := oldWebhook
	newWebhook.Version += 1
	newWebhook.Events = req.Events
	newWebhook.Url = req.Url
	newWebhook.Secret = req.Secret
	newWebhook.Active = false
	newWebhook.UpdatedAt = ts
	newWebhook.UpdatedBy = "requester"

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, storage.ListWebhookRequest{Limit: 1, EnterpriseID: "ent_id", IDs: []string{"whk_id"}}).Return(
			storage.ListWebhookResult{Total: 1, Records: []model.Webhook{oldWebhook}}, nil,
		),
		s.storage.EXPECT().AddWebhook(gomock.Any(), s.tx, gomock.Eq(newWebhook)).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.webhookCtrl.Update(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Require().Empty(res.Secret)
	res.Secret = newWebhook.Secret
	s.Assert().Equal(newWebhook, res)
}

func (s *WebhookControllerTestSuite) TestUpdateWebhookWithNonExistWebhook() {
	ts := time.Now().Unix()

	req := webhook.UpdateWebhookRequest{
		ID: "whk_id",
		CreateWebhookRequest: webhook.CreateWebhookRequest{
			Requester:    "requester",
			EnterpriseID: "ent_id",
			Events:       []model.WebhookEventType{model.WebhookEventSessionCreated},
			Url:          "https://example.com/notify",
			Secret:       "secret_key",
		},
		Active: true,
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListWebhookResult{}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.webhookCtrl.Update(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrWebhookNotFound)
}

func (s *WebhookControllerTestSuite) TestDeleteWebhook() {
	ts := time.Now().Unix()

	req := webhook.DeleteWebhookRequest{
		ID:           "whk_id",
		Requester:    "requester",
		EnterpriseID: "ent_id",
	}

	oldWebhook := model.Webhook{
		ID:           "whk_id",
		Version:      1,
		EnterpriseID: "ent_id",
		Events:       []model.WebhookEventType{model.WebhookEventSessionCreated},
		Url:          "https://example.com/notify",
		Secret:       "secret_key",
		Active:       true,
	}

	newWebhook := oldWebhook
	newWebhook.Version += 1
	newWebhook.Active = false
	newWebhook.Deleted = true
	newWebhook.UpdatedAt = ts
	newWebhook.UpdatedBy = "requester"

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, storage.ListWebhookRequest{Limit: 1, EnterpriseID: "ent_id", IDs: []string{"whk_id"}}).Return(
			storage.ListWebhookResult{Total: 1, Records: []model.Webhook{oldWebhook}}, nil,
		),
		s.storage.EXPECT().AddWebhook(gomock.Any(), s.tx, gomock.Eq(newWebhook)).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	err := s.webhookCtrl.Delete(s.ctx, ts, req)
	s.Require().NoError(err)
}

func (s *WebhookControllerTestSuite) TestListWebhook() {
	req := webhook.ListWebhookRequest{
		Limit:        10,
		EnterpriseID: "ent_id",
	}

	listResult := storage.ListWebhookResult{
		Total: 1,
		Records: []model.Webhook{
			{
				ID:           "whk_id",
				Version:      1,
				EnterpriseID: "ent_id",
				Secret:       "secret_key",
				Active:       true,
			},
		},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, storage.ListWebhookRequest{Limit: 10, EnterpriseID: "ent_id"}).Return(listResult, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.webhookCtrl.List(s.ctx, req)
	s.Require().NoError(err)
	s.Assert().Equal(1, result.Total)
	s.Assert().Empty(result.Records[0].Secret)
}

func (s *WebhookControllerTestSuite) TestListDeliveryEvents() {
	req := storage.ListDeliveryEventRequest{
		Limit:      10,
		WebhookIDs: []string{"whk_id"},
		Statuses:   []string{"failed"},
	}

	listResult := storage.ListDeliveryEventResult{
		Total: 1,
		Records: []model.WebhookDeliveryEvent{
			{
				WebhookID: "whk_id",
				EventType: model.WebhookEventSessionCreated,
				Status:    model.WebhookDeliveryFailed,
			},
		},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListDeliveryEvent(gomock.Any(), s.tx, req).Return(listResult, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.webhookCtrl.ListDeliveryEvents(s.ctx, req)
	s.Require().NoError(err)
	s.Assert().Equal(listResult, result)
}
