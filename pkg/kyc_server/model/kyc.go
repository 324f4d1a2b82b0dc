package model

import "github.com/shopspring/decimal"

type SessionStatus string

const (
	SessionStatusPending    = SessionStatus("pending")
	SessionStatusProcessing = SessionStatus("processing")
	SessionStatusCompleted  = SessionStatus("completed")
	SessionStatusFailed     = SessionStatus("failed")
)

type VerificationStatus string

const (
	VerificationStatusProcessing = VerificationStatus("processing")
	VerificationStatusSuccess    = VerificationStatus("success")
	VerificationStatusError      = VerificationStatus("error")
)

type DocumentType string

const (
	DocumentTypePassport       = DocumentType("passport")
	DocumentTypeDriversLicense = DocumentType("drivers_license")
	DocumentTypeNationalID     = DocumentType("national_id")
)

const (
	DocumentStatusProcessing = "processing"
	DocumentStatusVerified   = "verified"

	VerificationMethodAI = "ai"
)

// KYCSession is a single customer verification attempt.
// Sessions are never hard-deleted. They only expire.
type KYCSession struct {
	ID             string        `json:"id"`                        // Unique ID of the session.
	Version        int64         `json:"version"`                   // Version of the session.
	EnterpriseID   string        `json:"enterprise_id"`             // The enterprise the session belongs to.
	APIKeyID       string        `json:"api_key_id"`                // The API key the session was created with.
	CustomerEmail  string        `json:"customer_email"`            // Email of the customer being verified.
	CustomerName   string        `json:"customer_name"`             // Name of the customer being verified.
	Status         SessionStatus `json:"status"`                    // pending -> processing -> completed | failed.
	VerificationID string        `json:"verification_id,omitempty"` // Linked verification, set on submission.
	CreatedAt      int64         `json:"created_at"`                // Unix Time (in second) when the session was created.
	ExpiresAt      int64         `json:"expires_at"`                // Unix Time (in second) when the session expires.
	UpdatedAt      int64         `json:"updated_at"`                // Unix Time (in second) when the session was last updated.
}

// Document is an identity document submitted for a verification.
type Document struct {
	ID                 string       `json:"id"`                  // Unique ID of the document.
	Type               DocumentType `json:"type"`                // passport | drivers_license | national_id.
	Url                string       `json:"url"`                 // Where the captured document image is stored.
	Status             string       `json:"status"`              // Analysis status of the document itself.
	VerificationMethod string       `json:"verification_method"` // How the document is checked, e.g. "ai".
	CreatedAt          int64        `json:"created_at"`          // Unix Time (in second) when the document was stored.
}

// Verification is the document/liveness check tied to a session.
// Terminal once Status is success or error.
type Verification struct {
	ID                 string             `json:"id"`                             // Unique ID of the verification.
	Version            int64              `json:"version"`                        // Version of the verification.
	SessionID          string             `json:"session_id"`                     // The session this verification belongs to.
	DocumentID         string             `json:"document_id"`                    // The document being verified.
	Status             VerificationStatus `json:"status"`                         // processing -> success | error.
	LivenessUrl        string             `json:"liveness_url,omitempty"`         // Where the captured liveness frames are stored.
	LivenessStatus     string             `json:"liveness_status,omitempty"`      // Outcome of the liveness check.
	RiskScore          decimal.Decimal    `json:"risk_score"`                     // Risk score assigned by the analysis service.
	LastNotifiedStatus VerificationStatus `json:"last_notified_status,omitempty"` // Last status delivered via webhook.
	CreatedAt          int64              `json:"created_at"`                     // Unix Time (in second) when the verification was created.
	UpdatedAt          int64              `json:"updated_at"`                     // Unix Time (in second) when the verification was last updated.
}
