package postgres

import (
	"context"

	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
	"github.com/samber/lo"
)

func (s *_Storage) AddWebhook(ctx context.Context, tx storage.Tx, webhook model.Webhook) error {
	query := `
WITH new_data AS (
	INSERT INTO webhook (id, "version", deleted, active, enterprise_id, events, webhook, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	ON CONFLICT (id) DO UPDATE SET
		"version" = excluded."version",
		deleted = excluded.deleted,
		active = excluded.active,
		enterprise_id = excluded.enterprise_id,
		events = excluded.events,
		webhook = excluded.webhook,
		updated_at = excluded.updated_at
	RETURNING id, "version", webhook, updated_at
)
INSERT INTO webhook_history (id, "version", webhook, created_at)
SELECT * FROM new_data`

	events := lo.Map(webhook.Events, func(e model.WebhookEventType, _ int) string { return string(e) })
	_, err := tx.Exec(
		ctx,
		query,
		webhook.ID,
		webhook.Version,
		webhook.Deleted,
		webhook.Active,
		webhook.EnterpriseID,
		events,
		webhook,
		webhook.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) ListWebhook(ctx context.Context, tx storage.Tx, req storage.ListWebhookRequest) (storage.ListWebhookResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		rec_id,
		webhook
	FROM webhook w
	WHERE
		NOT deleted AND
		($3 = '' OR enterprise_id = $3) AND
		(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR id = ANY($4)) AND
		(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR events @> $5) AND
		(NOT $6 OR active)
)
SELECT
	total,
	webhook
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT webhook FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE`

	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.EnterpriseID, req.IDs, req.Events, req.ActiveOnly)
	if err != nil {
		return storage.ListWebhookResult{}, err
	}
	defer rows.Close()

	var res storage.ListWebhookResult
	for rows.Next() {
		var total *int
		var webhook *model.Webhook

		if err := rows.Scan(&total, &webhook); err != nil {
			return storage.ListWebhookResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if webhook != nil {
			res.Records = append(res.Records, *webhook)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListWebhookResult{}, err
	}

	return res, nil
}

func (s *_Storage) AddDeliveryEvent(ctx context.Context, tx storage.Tx, event model.WebhookDeliveryEvent) error {
	query := `
INSERT INTO webhook_delivery_event (webhook_id, event_type, status, payload, response, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(
		ctx,
		query,
		event.WebhookID,
		event.EventType,
		event.Status,
		event.Payload,
		event.Response,
		event.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) ListDeliveryEvent(ctx context.Context, tx storage.Tx, req storage.ListDeliveryEventRequest) (storage.ListDeliveryEventResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		rec_id,
		webhook_id,
		event_type,
		status,
		payload,
		response,
		created_at
	FROM webhook_delivery_event
	WHERE
		(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR webhook_id = ANY($3)) AND
		(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR event_type = ANY($4)) AND
		(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR status = ANY($5))
)
SELECT
	total,
	webhook_id,
	event_type,
	status,
	payload,
	response,
	created_at
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (
	SELECT webhook_id, event_type, status, payload, response, created_at
	FROM filtered_record ORDER BY rec_id DESC OFFSET $1 LIMIT $2
) AS record ON FALSE`

	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.WebhookIDs, req.EventTypes, req.Statuses)
	if err != nil {
		return storage.ListDeliveryEventResult{}, err
	}
	defer rows.Close()

	var res storage.ListDeliveryEventResult
	for rows.Next() {
		var total *int
		var webhookID *string
		var eventType *string
		var status *string
		var payload []byte
		var response []byte
		var createdAt *int64

		if err := rows.Scan(&total, &webhookID, &eventType, &status, &payload, &response, &createdAt); err != nil {
			return storage.ListDeliveryEventResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if webhookID != nil {
			res.Records = append(res.Records, model.WebhookDeliveryEvent{
				WebhookID: *webhookID,
				EventType: model.WebhookEventType(*eventType),
				Status:    model.WebhookDeliveryStatus(*status),
				Payload:   payload,
				Response:  response,
				CreatedAt: *createdAt,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListDeliveryEventResult{}, err
	}

	return res, nil
}
