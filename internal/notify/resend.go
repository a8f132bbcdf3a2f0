package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/doyensec/safeurl"

	"github.com/dtroode/aethercure-server/internal/model"
)

const (
	// DefaultResendEndpoint is the Resend email API.
	DefaultResendEndpoint = "https://api.resend.com/emails"

	maxErrorBody = 4 << 10
)

var _ model.Notifier = (*Resend)(nil)

// Resend sends email through the Resend HTTP API.
type Resend struct {
	client   *http.Client
	endpoint string
	apiKey   string
	from     string
}

type resendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// NewResend creates a Resend notifier. A nil client gets an SSRF-guarded
// client restricted to https on port 443.
func NewResend(client *http.Client, endpoint, apiKey, from string) *Resend {
	if client == nil {
		client = NewSafeClient(10 * time.Second)
	}
	if endpoint == "" {
		endpoint = DefaultResendEndpoint
	}
	return &Resend{
		client:   client,
		endpoint: endpoint,
		apiKey:   apiKey,
		from:     from,
	}
}

// NewSafeClient returns an HTTP client that refuses private, loopback and
// link-local destinations.
func NewSafeClient(timeout time.Duration) *http.Client {
	config := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("https").
		SetAllowedPorts(443).
		Build()

	return safeurl.Client(config).Client
}

// Send posts one email. Non-2xx responses are returned as errors.
func (n *Resend) Send(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(resendRequest{
		From:    n.from,
		To:      to,
		Subject: subject,
		HTML:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("email api returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
