package resend

import (
	"context"
	"net/http"
)

// BroadcastsService manages broadcasts, emails sent to a whole audience.
type BroadcastsService struct {
	service
}

// CreateBroadcastRequest drafts a broadcast.
type CreateBroadcastRequest struct {
	AudienceID AudienceID `json:"audience_id"`
	From       string     `json:"from"`
	Subject    string     `json:"subject"`
	ReplyTo    []string   `json:"reply_to,omitempty"`
	HTML       string     `json:"html,omitempty"`
	Text       string     `json:"text,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// UpdateBroadcastRequest changes a draft broadcast. Empty fields are left
// unchanged.
type UpdateBroadcastRequest struct {
	AudienceID *AudienceID `json:"audience_id,omitempty"`
	From       string      `json:"from,omitempty"`
	Subject    string      `json:"subject,omitempty"`
	ReplyTo    []string    `json:"reply_to,omitempty"`
	HTML       string      `json:"html,omitempty"`
	Text       string      `json:"text,omitempty"`
	Name       string      `json:"name,omitempty"`
}

// SendBroadcastRequest sends a broadcast now, or at ScheduledAt when set.
type SendBroadcastRequest struct {
	ScheduledAt string `json:"scheduled_at,omitempty"`
}

// Broadcast is a drafted, scheduled or sent broadcast.
type Broadcast struct {
	Object      string      `json:"object,omitempty"`
	ID          BroadcastID `json:"id"`
	Name        string      `json:"name"`
	AudienceID  AudienceID  `json:"audience_id"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"created_at"`
	ScheduledAt string      `json:"scheduled_at,omitempty"`
	SentAt      string      `json:"sent_at,omitempty"`
	From        string      `json:"from,omitempty"`
	Subject     string      `json:"subject,omitempty"`
	ReplyTo     []string    `json:"reply_to,omitempty"`
	PreviewText string      `json:"preview_text,omitempty"`
}

// BroadcastRef is returned by operations that create or modify a broadcast.
type BroadcastRef struct {
	Object string      `json:"object,omitempty"`
	ID     BroadcastID `json:"id"`
}

// Create drafts a broadcast.
func (s *BroadcastsService) Create(ctx context.Context, req CreateBroadcastRequest) (*BroadcastRef, error) {
	if _, err := req.AudienceID.check("audience id"); err != nil {
		return nil, err
	}
	var result BroadcastRef
	if err := s.do(ctx, "broadcasts.create", http.MethodPost, "/broadcasts", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves a broadcast.
func (s *BroadcastsService) Get(ctx context.Context, id BroadcastID) (*Broadcast, error) {
	escaped, err := id.check("broadcast id")
	if err != nil {
		return nil, err
	}
	var result Broadcast
	if err := s.do(ctx, "broadcasts.get", http.MethodGet, "/broadcasts/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Update changes a draft broadcast.
func (s *BroadcastsService) Update(ctx context.Context, id BroadcastID, req UpdateBroadcastRequest) (*BroadcastRef, error) {
	escaped, err := id.check("broadcast id")
	if err != nil {
		return nil, err
	}
	if req.AudienceID != nil {
		if _, err := req.AudienceID.check("audience id"); err != nil {
			return nil, err
		}
	}
	var result BroadcastRef
	if err := s.do(ctx, "broadcasts.update", http.MethodPatch, "/broadcasts/"+escaped, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Send sends or schedules a broadcast.
func (s *BroadcastsService) Send(ctx context.Context, id BroadcastID, req SendBroadcastRequest) (*BroadcastRef, error) {
	escaped, err := id.check("broadcast id")
	if err != nil {
		return nil, err
	}
	var result BroadcastRef
	if err := s.do(ctx, "broadcasts.send", http.MethodPost, "/broadcasts/"+escaped+"/send", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns a page of broadcasts.
func (s *BroadcastsService) List(ctx context.Context, opts *ListOptions) (*ListResponse[Broadcast], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var result ListResponse[Broadcast]
	if err := s.do(ctx, "broadcasts.list", http.MethodGet, "/broadcasts", nil, &result, opts.requestOptions()...); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a draft broadcast and consumes id.
func (s *BroadcastsService) Delete(ctx context.Context, id BroadcastID) (*Deleted, error) {
	escaped, err := id.check("broadcast id")
	if err != nil {
		return nil, err
	}
	if err := id.consume("broadcast id"); err != nil {
		return nil, err
	}
	var result Deleted
	if err := s.do(ctx, "broadcasts.delete", http.MethodDelete, "/broadcasts/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
