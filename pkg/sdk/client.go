// Package sdk is the Go client for the HumanFace verification API.
package sdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"github.com/humanface/humanface/pkg/kyc_server/signature"
)

const DefaultBaseURL = "https://api.humanface.xyz"

type Config struct {
	APIKey       string
	EnterpriseID string
	BaseURL      string // Defaults to DefaultBaseURL.
}

type SessionEnterprise struct {
	Name    string `json:"name"`
	LogoUrl string `json:"logo_url"`
}

type Session struct {
	SessionID  string            `json:"sessionId"`
	SessionUrl string            `json:"sessionUrl"`
	ExpiresAt  int64             `json:"expiresAt"`
	Enterprise SessionEnterprise `json:"enterprise"`
}

type VerificationRequest struct {
	SessionID    string `json:"sessionId"`
	DocumentType string `json:"documentType"`
	DocumentUrl  string `json:"documentUrl"`
	LivenessUrl  string `json:"livenessUrl,omitempty"`
}

type VerificationResponse struct {
	VerificationID string `json:"verificationId"`
	Status         string `json:"status"`
}

type VerificationStatus struct {
	Status         string `json:"status"`
	DocumentStatus string `json:"documentStatus"`
	LivenessStatus string `json:"livenessStatus"`
	RiskScore      string `json:"riskScore"`
}

type apiError struct {
	Error string `json:"error"`
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) CreateSession(ctx context.Context, customerEmail, customerName string) (Session, error) {
	body := map[string]string{
		"customerEmail": customerEmail,
		"customerName":  customerName,
	}

	session := Session{}
	if err := c.do(ctx, http.MethodPost, "/api/sessions", body, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (json.RawMessage, error) {
	var session json.RawMessage
	err := c.doWithRetry(ctx, http.MethodGet, fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (c *Client) SubmitVerification(ctx context.Context, req VerificationRequest) (VerificationResponse, error) {
	response := VerificationResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/verify", req, &response); err != nil {
		return VerificationResponse{}, err
	}
	return response, nil
}

// GetVerificationStatus polls the current verification status. The read is
// idempotent, so transient failures are retried.
func (c *Client) GetVerificationStatus(ctx context.Context, verificationID string) (VerificationStatus, error) {
	status := VerificationStatus{}
	err := c.doWithRetry(ctx, http.MethodGet, fmt.Sprintf("/api/verify/%s/status", verificationID), nil, &status)
	if err != nil {
		return VerificationStatus{}, err
	}
	return status, nil
}

// VerifyWebhook checks the signature of a received webhook delivery.
// composite is "<timestamp>.<hex digest>" assembled from the
// X-HumanFace-Timestamp and X-HumanFace-Signature headers.
func (c *Client) VerifyWebhook(payload []byte, composite, webhookSecret string) bool {
	return signature.Verify(composite, payload, webhookSecret)
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.config.APIKey)
	req.Header.Set("x-enterprise-id", c.config.EnterpriseID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := apiError{}
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("HumanFace API Error: %s", apiErr.Error)
		}
		return fmt.Errorf("HumanFace API Error: unexpected status code %d", resp.StatusCode)
	}

	if result == nil {
		return nil
	}
	return json.Unmarshal(data, result)
}

func (c *Client) doWithRetry(ctx context.Context, method, path string, body, result any) error {
	return retry.Do(
		func() error {
			return c.do(ctx, method, path, body, result)
		},
		retry.Attempts(3),
		retry.Context(ctx),
	)
}
