package resend

import (
	"context"
	"net/http"
)

// AudiencesService manages audiences, the contact lists broadcasts go to.
type AudiencesService struct {
	service
}

// CreateAudienceRequest creates an audience.
type CreateAudienceRequest struct {
	Name string `json:"name"`
}

// Audience is a named contact list.
type Audience struct {
	Object    string     `json:"object,omitempty"`
	ID        AudienceID `json:"id"`
	Name      string     `json:"name"`
	CreatedAt string     `json:"created_at,omitempty"`
}

// Create creates an audience.
func (s *AudiencesService) Create(ctx context.Context, req CreateAudienceRequest) (*Audience, error) {
	if req.Name == "" {
		return nil, newValidationError("audience name is empty", nil)
	}
	var result Audience
	if err := s.do(ctx, "audiences.create", http.MethodPost, "/audiences", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves an audience.
func (s *AudiencesService) Get(ctx context.Context, id AudienceID) (*Audience, error) {
	escaped, err := id.check("audience id")
	if err != nil {
		return nil, err
	}
	var result Audience
	if err := s.do(ctx, "audiences.get", http.MethodGet, "/audiences/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns a page of audiences.
func (s *AudiencesService) List(ctx context.Context, opts *ListOptions) (*ListResponse[Audience], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var result ListResponse[Audience]
	if err := s.do(ctx, "audiences.list", http.MethodGet, "/audiences", nil, &result, opts.requestOptions()...); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes an audience and consumes id.
func (s *AudiencesService) Delete(ctx context.Context, id AudienceID) (*Deleted, error) {
	escaped, err := id.check("audience id")
	if err != nil {
		return nil, err
	}
	if err := id.consume("audience id"); err != nil {
		return nil, err
	}
	var result Deleted
	if err := s.do(ctx, "audiences.delete", http.MethodDelete, "/audiences/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
