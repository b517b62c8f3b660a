package resend

import (
	"context"
	"net/http"
)

// ReceivingService reads emails delivered to receiving domains.
type ReceivingService struct {
	service
}

// InboundEmail is an email received by the account.
type InboundEmail struct {
	Object      string              `json:"object,omitempty"`
	ID          InboundEmailID      `json:"id"`
	From        string              `json:"from"`
	To          []string            `json:"to"`
	Cc          []string            `json:"cc,omitempty"`
	Bcc         []string            `json:"bcc,omitempty"`
	ReplyTo     []string            `json:"reply_to,omitempty"`
	Subject     string              `json:"subject"`
	HTML        string              `json:"html,omitempty"`
	Text        string              `json:"text,omitempty"`
	MessageID   string              `json:"message_id,omitempty"`
	Headers     map[string]string   `json:"headers,omitempty"`
	CreatedAt   string              `json:"created_at"`
	Attachments []InboundAttachment `json:"attachments,omitempty"`
}

// InboundAttachment describes an attachment of a received email. The
// content itself is fetched separately.
type InboundAttachment struct {
	ID                 string `json:"id"`
	Filename           string `json:"filename"`
	ContentType        string `json:"content_type"`
	ContentID          string `json:"content_id,omitempty"`
	ContentDisposition string `json:"content_disposition"`
}

// Get retrieves a received email.
func (s *ReceivingService) Get(ctx context.Context, id InboundEmailID) (*InboundEmail, error) {
	escaped, err := id.check("inbound email id")
	if err != nil {
		return nil, err
	}
	var result InboundEmail
	if err := s.do(ctx, "receiving.get", http.MethodGet, "/emails/receiving/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns a page of received emails.
func (s *ReceivingService) List(ctx context.Context, opts *ListOptions) (*ListResponse[InboundEmail], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var result ListResponse[InboundEmail]
	if err := s.do(ctx, "receiving.list", http.MethodGet, "/emails/receiving", nil, &result, opts.requestOptions()...); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAttachments returns a page of attachment descriptors for a received
// email.
func (s *ReceivingService) ListAttachments(ctx context.Context, id InboundEmailID, opts *ListOptions) (*ListResponse[InboundAttachment], error) {
	escaped, err := id.check("inbound email id")
	if err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var result ListResponse[InboundAttachment]
	path := "/emails/receiving/" + escaped + "/attachments"
	if err := s.do(ctx, "receiving.list_attachments", http.MethodGet, path, nil, &result, opts.requestOptions()...); err != nil {
		return nil, err
	}
	return &result, nil
}
