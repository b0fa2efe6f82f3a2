// Package emailjs is a small client for the EmailJS REST API, the
// transactional email service the contact forms relay through.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public EmailJS endpoint.
const DefaultBaseURL = "https://api.emailjs.com"

const sendPath = "/api/v1.0/email/send"

// Client sends templated emails. PublicKey is the account's public key
// ("user_id" on the wire); AccessToken is the optional private key required
// when the account enables strict mode for server-side calls.
type Client struct {
	BaseURL     string
	PublicKey   string
	AccessToken string
	HTTPClient  *http.Client
}

// NewClient creates a client with a bounded HTTP timeout.
func NewClient(baseURL, publicKey, accessToken string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		PublicKey:   publicKey,
		AccessToken: accessToken,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendRequest is the JSON body of the send endpoint.
type SendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
	AccessToken    string            `json:"accessToken,omitempty"`
}

// Error is returned for any non-200 answer. EmailJS replies with plain text,
// so Body is kept verbatim.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("emailjs: HTTP %d: %s", e.StatusCode, e.Body)
}

// Send dispatches one templated email. There is no retry.
func (c *Client) Send(ctx context.Context, serviceID, templateID string, params map[string]string) error {
	payload, err := json.Marshal(SendRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         c.PublicKey,
		TemplateParams: params,
		AccessToken:    c.AccessToken,
	})
	if err != nil {
		return fmt.Errorf("emailjs: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+sendPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("emailjs: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if resp.StatusCode != http.StatusOK {
		return &Error{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return nil
}
