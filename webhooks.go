package resend

import (
	"context"
	"net/http"
)

// WebhookStatus enables or disables delivery to a webhook.
type WebhookStatus string

const (
	WebhookEnabled  WebhookStatus = "enabled"
	WebhookDisabled WebhookStatus = "disabled"
)

// WebhooksService manages webhook endpoints.
type WebhooksService struct {
	service
}

// CreateWebhookRequest registers an endpoint for the given event types.
type CreateWebhookRequest struct {
	Endpoint string      `json:"endpoint"`
	Events   []EventType `json:"events"`
}

// CreateWebhookResponse holds the new webhook and the secret used to sign
// its deliveries. Pass the secret to VerifyWebhook.
type CreateWebhookResponse struct {
	Object        string    `json:"object,omitempty"`
	ID            WebhookID `json:"id"`
	SigningSecret string    `json:"signing_secret"`
}

// Webhook is a registered endpoint.
type Webhook struct {
	Object    string        `json:"object,omitempty"`
	ID        WebhookID     `json:"id"`
	CreatedAt string        `json:"created_at"`
	Status    WebhookStatus `json:"status"`
	Endpoint  string        `json:"endpoint"`
	Events    []EventType   `json:"events"`
}

// UpdateWebhookRequest changes a webhook. Empty fields are left unchanged.
type UpdateWebhookRequest struct {
	Endpoint string        `json:"endpoint,omitempty"`
	Events   []EventType   `json:"events,omitempty"`
	Status   WebhookStatus `json:"status,omitempty"`
}

// WebhookRef is returned by operations that modify a webhook.
type WebhookRef struct {
	Object string    `json:"object,omitempty"`
	ID     WebhookID `json:"id"`
}

// Create registers a webhook endpoint.
func (s *WebhooksService) Create(ctx context.Context, req CreateWebhookRequest) (*CreateWebhookResponse, error) {
	if req.Endpoint == "" {
		return nil, newValidationError("webhook endpoint is empty", nil)
	}
	if len(req.Events) == 0 {
		return nil, newValidationError("webhook needs at least one event type", nil)
	}
	var result CreateWebhookResponse
	if err := s.do(ctx, "webhooks.create", http.MethodPost, "/webhooks", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves a webhook.
func (s *WebhooksService) Get(ctx context.Context, id WebhookID) (*Webhook, error) {
	escaped, err := id.check("webhook id")
	if err != nil {
		return nil, err
	}
	var result Webhook
	if err := s.do(ctx, "webhooks.get", http.MethodGet, "/webhooks/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Update changes a webhook.
func (s *WebhooksService) Update(ctx context.Context, id WebhookID, req UpdateWebhookRequest) (*WebhookRef, error) {
	escaped, err := id.check("webhook id")
	if err != nil {
		return nil, err
	}
	var result WebhookRef
	if err := s.do(ctx, "webhooks.update", http.MethodPatch, "/webhooks/"+escaped, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns a page of webhooks.
func (s *WebhooksService) List(ctx context.Context, opts *ListOptions) (*ListResponse[Webhook], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var result ListResponse[Webhook]
	if err := s.do(ctx, "webhooks.list", http.MethodGet, "/webhooks", nil, &result, opts.requestOptions()...); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a webhook and consumes id.
func (s *WebhooksService) Delete(ctx context.Context, id WebhookID) (*Deleted, error) {
	escaped, err := id.check("webhook id")
	if err != nil {
		return nil, err
	}
	if err := id.consume("webhook id"); err != nil {
		return nil, err
	}
	var result Deleted
	if err := s.do(ctx, "webhooks.delete", http.MethodDelete, "/webhooks/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
