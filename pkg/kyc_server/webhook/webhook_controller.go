package webhook

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
	"github.com/humanface/humanface/pkg/util"
)

type WebhookController interface {
	Create(ctx context.Context, ts int64, req CreateWebhookRequest) (model.Webhook, error)
	Update(ctx context.Context, ts int64, req UpdateWebhookRequest) (model.Webhook, error)
	Delete(ctx context.Context, ts int64, req DeleteWebhookRequest) error
	List(ctx context.Context, req ListWebhookRequest) (storage.ListWebhookResult, error)
	ListDeliveryEvents(ctx context.Context, req storage.ListDeliveryEventRequest) (storage.ListDeliveryEventResult, error)
}

type CreateWebhookRequest struct {
	Requester    string                   `json:"requester"`
	EnterpriseID string                   `json:"enterprise_id"`
	Events       []model.WebhookEventType `json:"events"`
	Url          string                   `json:"url"`
	Secret       string                   `json:"secret"`
}

type UpdateWebhookRequest struct {
	ID string `json:"id"`
	CreateWebhookRequest
	Active bool `json:"active"`
}

type DeleteWebhookRequest struct {
	ID           string `json:"id"`
	Requester    string `json:"requester"`
	EnterpriseID string `json:"enterprise_id"`
}

type ListWebhookRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	EnterpriseID string   `json:"enterprise_id"`
	IDs          []string `json:"ids"`
}

type _WebhookController struct {
	storage storage.WebhookStorage
}

func NewWebhookController(storage storage.WebhookStorage) WebhookController {
	return &_WebhookController{
		storage: storage,
	}
}

func (c *_WebhookController) Create(ctx context.Context, ts int64, req CreateWebhookRequest) (model.Webhook, error) {
	err := ValidateCreateWebhookRequest(req)
	if err != nil {
		return model.Webhook{}, err
	}

	webhook := model.Webhook{
		ID:           fmt.Sprintf("whk_%s", util.NewUUID()),
		Version:      1,
		EnterpriseID: req.EnterpriseID,
		Url:          req.Url,
		Events:       req.Events,
		Secret:       req.Secret,
		Active:       true,
		CreatedAt:    ts,
		CreatedBy:    req.Requester,
		UpdatedAt:    ts,
		UpdatedBy:    req.Requester,
		Deleted:      false,
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Webhook{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = c.storage.AddWebhook(ctx, tx, webhook)
	if err != nil {
		return model.Webhook{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return model.Webhook{}, err
	}

	webhook.Secret = ""
	return webhook, nil
}

func (c *_WebhookController) Update(ctx context.Context, ts int64, req UpdateWebhookRequest) (model.Webhook, error) {
	err := ValidateUpdateWebhookRequest(req)
	if err != nil {
		return model.Webhook{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Webhook{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	webhook, err := c.getWebhook(ctx, tx, req.EnterpriseID, req.ID)
	if err != nil {
		return model.Webhook{}, err
	}

	webhook.Version += 1
	webhook.Url = req.Url
	webhook.Events = req.Events
	webhook.Secret = req.Secret
	webhook.Active = req.Active
	webhook.UpdatedAt = ts
	webhook.UpdatedBy = req.Requester

	err = c.storage.AddWebhook(ctx, tx, webhook)
	if err != nil {
		return model.Webhook{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return model.Webhook{}, err
	}

	webhook.Secret = ""
	return webhook, nil
}

func (c *_WebhookController) Delete(ctx context.Context, ts int64, req DeleteWebhookRequest) error {
	err := ValidateDeleteWebhookRequest(req)
	if err != nil {
		return err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	webhook, err := c.getWebhook(ctx, tx, req.EnterpriseID, req.ID)
	if err != nil {
		return err
	}

	webhook.Version += 1
	webhook.Active = false
	webhook.Deleted = true
	webhook.UpdatedAt = ts
	webhook.UpdatedBy = req.Requester

	err = c.storage.AddWebhook(ctx, tx, webhook)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (c *_WebhookController) List(ctx context.Context, req ListWebhookRequest) (storage.ListWebhookResult, error) {
	err := ValidateListWebhookRequest(req)
	if err != nil {
		return storage.ListWebhookResult{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListWebhookResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := c.storage.ListWebhook(ctx, tx, storage.ListWebhookRequest{
		Offset:       req.Offset,
		Limit:        req.Limit,
		EnterpriseID: req.EnterpriseID,
		IDs:          req.IDs,
	})
	if err != nil {
		return storage.ListWebhookResult{}, err
	}

	for i := range result.Records {
		result.Records[i].Secret = ""
	}
	return result, nil
}

func (c *_WebhookController) ListDeliveryEvents(ctx context.Context, req storage.ListDeliveryEventRequest) (storage.ListDeliveryEventResult, error) {
	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListDeliveryEventResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.ListDeliveryEvent(ctx, tx, req)
}

func (c *_WebhookController) getWebhook(ctx context.Context, tx storage.Tx, enterpriseID, id string) (model.Webhook, error) {
	res, err := c.storage.ListWebhook(ctx, tx, storage.ListWebhookRequest{
		Limit:        1,
		EnterpriseID: enterpriseID,
		IDs:          []string{id},
	})
	if err != nil {
		return model.Webhook{}, err
	}
	if len(res.Records) == 0 {
		return model.Webhook{}, model.ErrWebhookNotFound
	}
	return res.Records[0], nil
}
