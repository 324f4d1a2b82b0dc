package model

import "encoding/json"

type WebhookEventType string

const (
	WebhookEventSessionCreated           WebhookEventType = "session.created"
	WebhookEventVerificationStatusUpdate WebhookEventType = "verification.status_update"
)

type WebhookDeliveryStatus string

const (
	WebhookDeliverySuccess = WebhookDeliveryStatus("success")
	WebhookDeliveryFailed  = WebhookDeliveryStatus("failed")
)

// Webhook is an enterprise-configured delivery target for WebhookEvents.
type Webhook struct {
	ID           string             `json:"id"`                // Unique ID of a Webhook.
	Version      int64              `json:"version"`           // Version of the Webhook.
	EnterpriseID string             `json:"enterprise_id"`     // The ID of the enterprise this Webhook belongs to.
	Url          string             `json:"url"`               // The URL the event payload is POSTed to.
	Events       []WebhookEventType `json:"events"`            // List of events to trigger the Webhook.
	Secret       string             `json:"secret,omitempty"`  // Secret used to generate the HMAC-SHA256 signature.
	Active       bool               `json:"active"`            // Whether the Webhook receives deliveries.
	CreatedAt    int64              `json:"created_at"`        // Unix Time (in second) when the Webhook was created.
	CreatedBy    string             `json:"created_by"`        // User who created the Webhook.
	UpdatedAt    int64              `json:"updated_at"`        // Unix Time (in second) when the Webhook was last updated.
	UpdatedBy    string             `json:"updated_by"`        // User who last updated the Webhook.
	Deleted      bool               `json:"deleted,omitempty"` // Whether the Webhook is deleted.
}

// WebhookDeliveryEvent records one attempted delivery to one Webhook.
// Exactly one row is written per attempt, success or failure.
type WebhookDeliveryEvent struct {
	WebhookID string                `json:"webhook_id"` // The Webhook the delivery was attempted against.
	EventType WebhookEventType      `json:"event_type"` // Type of the delivered event.
	Status    WebhookDeliveryStatus `json:"status"`     // Outcome of the delivery attempt.
	Payload   json.RawMessage       `json:"payload"`    // Snapshot of the delivered payload.
	Response  json.RawMessage       `json:"response"`   // Subscriber response snapshot or error detail.
	CreatedAt int64                 `json:"created_at"` // Unix Time (in second) when the attempt happened.
}
