package webhook

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/humanface/humanface/pkg/kyc_server/signature"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	SignatureHeader = "X-HumanFace-Signature"
	TimestampHeader = "X-HumanFace-Timestamp"

	// Cap on how many subscribers a single event fans out to.
	maxSubscribers = 100

	// Cap on how much of a subscriber response body gets recorded.
	maxResponseBody = 4096
)

// Dispatcher fans an event out to every active webhook of an enterprise that
// subscribes to the event type. Deliveries run concurrently and Dispatch
// blocks until all of them have finished. A failed delivery never fails the
// operation that emitted the event; each attempt is recorded and failures are
// only logged.
type Dispatcher interface {
	Dispatch(ctx context.Context, ts int64, enterpriseID string, eventType model.WebhookEventType, payload any) error
}

type DispatcherOption func(d *_Dispatcher)

// WithTimeout bounds each subscriber delivery. A slow subscriber can delay
// the dispatching request by at most this much.
func WithTimeout(timeout time.Duration) DispatcherOption {
	return func(d *_Dispatcher) {
		d.timeout = timeout
	}
}

// WithRateLimit throttles outbound deliveries across all events.
func WithRateLimit(limit rate.Limit, burst int) DispatcherOption {
	return func(d *_Dispatcher) {
		d.limiter = rate.NewLimiter(limit, burst)
	}
}

type _Dispatcher struct {
	storage storage.WebhookStorage
	timeout time.Duration
	limiter *rate.Limiter
}

func NewDispatcher(s storage.WebhookStorage, opts ...DispatcherOption) Dispatcher {
	d := &_Dispatcher{
		storage: s,
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *_Dispatcher) Dispatch(ctx context.Context, ts int64, enterpriseID string, eventType model.WebhookEventType, payload any) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	webhooks, err := d.listSubscribers(ctx, enterpriseID, eventType)
	if err != nil {
		return fmt.Errorf("list webhooks: %w", err)
	}
	if len(webhooks) == 0 {
		return nil
	}

	wg := sync.WaitGroup{}
	for i := range webhooks {
		wg.Add(1)
		go func(hook model.Webhook) {
			defer wg.Done()
			d.deliver(ctx, ts, hook, eventType, payloadBytes)
		}(webhooks[i])
	}
	wg.Wait()

	return nil
}

func (d *_Dispatcher) listSubscribers(ctx context.Context, enterpriseID string, eventType model.WebhookEventType) ([]model.Webhook, error) {
	tx, ctx, err := d.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := d.storage.ListWebhook(ctx, tx, storage.ListWebhookRequest{
		Limit:        maxSubscribers,
		EnterpriseID: enterpriseID,
		Events:       []string{string(eventType)},
		ActiveOnly:   true,
	})
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

func (d *_Dispatcher) deliver(ctx context.Context, ts int64, hook model.Webhook, eventType model.WebhookEventType, payload []byte) {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			d.record(ctx, ts, hook, eventType, payload, model.WebhookDeliveryFailed, deliveryResponse{Error: err.Error()})
			return
		}
	}

	status, response := d.post(ctx, hook, payload)
	if status == model.WebhookDeliveryFailed {
		logrus.Warnf("webhook delivery to %s (%s) failed: %s", hook.ID, hook.Url, response.Error)
	}
	d.record(ctx, ts, hook, eventType, payload, status, response)
}

type deliveryResponse struct {
	StatusCode int    `json:"status_code,omitempty"`
	Body       string `json:"body,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (d *_Dispatcher) post(ctx context.Context, hook model.Webhook, payload []byte) (model.WebhookDeliveryStatus, deliveryResponse) {
	signedAt := time.Now().UnixMilli()
	digest := signature.Sign(signedAt, payload, hook.Secret)

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	transport.MaxIdleConnsPerHost = -1
	client := http.Client{Timeout: d.timeout, Transport: transport}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hook.Url, bytes.NewReader(payload))
	if err != nil {
		return model.WebhookDeliveryFailed, deliveryResponse{Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, digest)
	req.Header.Set(TimestampHeader, fmt.Sprintf("%d", signedAt))

	resp, err := client.Do(req)
	if err != nil {
		return model.WebhookDeliveryFailed, deliveryResponse{Error: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	response := deliveryResponse{StatusCode: resp.StatusCode, Body: string(body)}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		response.Error = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		return model.WebhookDeliveryFailed, response
	}
	return model.WebhookDeliverySuccess, response
}

func (d *_Dispatcher) record(ctx context.Context, ts int64, hook model.Webhook, eventType model.WebhookEventType, payload []byte, status model.WebhookDeliveryStatus, response deliveryResponse) {
	responseBytes, err := json.Marshal(response)
	if err != nil {
		responseBytes = []byte("{}")
	}

	event := model.WebhookDeliveryEvent{
		WebhookID: hook.ID,
		EventType: eventType,
		Status:    status,
		Payload:   payload,
		Response:  responseBytes,
		CreatedAt: ts,
	}

	tx, ctx, err := d.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		logrus.Errorf("record webhook delivery for %s: %v", hook.ID, err)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := d.storage.AddDeliveryEvent(ctx, tx, event); err != nil {
		logrus.Errorf("record webhook delivery for %s: %v", hook.ID, err)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		logrus.Errorf("record webhook delivery for %s: %v", hook.ID, err)
	}
}
