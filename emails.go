package resend

import (
	"context"
	"net/http"

	"github.com/sendkit/resend-go/internal/api"
)

// EmailsService sends and inspects individual emails.
//
// See https://resend.com/docs/api-reference/emails.
type EmailsService struct {
	service
}

// SendEmailRequest is the payload of a single email.
type SendEmailRequest struct {
	// From accepts "Name <sender@domain.com>".
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`

	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	CC      []string `json:"cc,omitempty"`
	BCC     []string `json:"bcc,omitempty"`
	ReplyTo []string `json:"reply_to,omitempty"`

	Headers     map[string]string `json:"headers,omitempty"`
	Attachments []Attachment      `json:"attachments,omitempty"`
	Tags        []Tag             `json:"tags,omitempty"`

	// ScheduledAt schedules delivery. It takes an ISO 8601 timestamp or a
	// natural-language expression such as "in 1 hour".
	ScheduledAt string `json:"scheduled_at,omitempty"`
}

// Attachment is a file sent with an email, given either inline as base64
// Content or as a remote Path the API fetches.
type Attachment struct {
	Content     string `json:"content,omitempty"`
	Path        string `json:"path,omitempty"`
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// Tag is a custom name/value pair attached to an email.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// SendEmailResponse identifies an accepted email.
type SendEmailResponse struct {
	ID EmailID `json:"id"`
}

// Email is a sent or scheduled email.
type Email struct {
	Object      string   `json:"object"`
	ID          EmailID  `json:"id"`
	From        string   `json:"from"`
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	CreatedAt   string   `json:"created_at"`
	HTML        string   `json:"html,omitempty"`
	Text        string   `json:"text,omitempty"`
	CC          []string `json:"cc,omitempty"`
	BCC         []string `json:"bcc,omitempty"`
	ReplyTo     []string `json:"reply_to,omitempty"`
	LastEvent   string   `json:"last_event,omitempty"`
	ScheduledAt string   `json:"scheduled_at,omitempty"`
}

// UpdateEmailRequest reschedules a scheduled email.
type UpdateEmailRequest struct {
	ScheduledAt string `json:"scheduled_at"`
}

// EmailRef is returned by operations that modify an email.
type EmailRef struct {
	Object string  `json:"object"`
	ID     EmailID `json:"id"`
}

// Send sends one email. A key on req makes the send idempotent: retrying with
// the same key and payload does not send a second email.
func (s *EmailsService) Send(ctx context.Context, req Idempotent[SendEmailRequest]) (*SendEmailResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	var result SendEmailResponse
	if err := s.do(ctx, "emails.send", http.MethodPost, "/emails", req.Payload, &result,
		api.WithIdempotencyKey(req.Key)); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves a single email.
func (s *EmailsService) Get(ctx context.Context, id EmailID) (*Email, error) {
	escaped, err := id.check("email id")
	if err != nil {
		return nil, err
	}
	var result Email
	if err := s.do(ctx, "emails.get", http.MethodGet, "/emails/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Update changes the delivery time of a scheduled email.
func (s *EmailsService) Update(ctx context.Context, id EmailID, req UpdateEmailRequest) (*EmailRef, error) {
	escaped, err := id.check("email id")
	if err != nil {
		return nil, err
	}
	var result EmailRef
	if err := s.do(ctx, "emails.update", http.MethodPatch, "/emails/"+escaped, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Cancel cancels a scheduled email.
func (s *EmailsService) Cancel(ctx context.Context, id EmailID) (*EmailRef, error) {
	escaped, err := id.check("email id")
	if err != nil {
		return nil, err
	}
	var result EmailRef
	if err := s.do(ctx, "emails.cancel", http.MethodPost, "/emails/"+escaped+"/cancel", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns a page of sent emails.
func (s *EmailsService) List(ctx context.Context, opts *ListOptions) (*ListResponse[Email], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var result ListResponse[Email]
	if err := s.do(ctx, "emails.list", http.MethodGet, "/emails", nil, &result, opts.requestOptions()...); err != nil {
		return nil, err
	}
	return &result, nil
}
