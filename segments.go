package resend

import (
	"context"
	"net/http"
)

// SegmentsService manages segments.
type SegmentsService struct {
	service
}

// CreateSegmentRequest creates a segment.
type CreateSegmentRequest struct {
	Name string `json:"name"`
}

// Segment is a named group of contacts.
type Segment struct {
	Object    string    `json:"object,omitempty"`
	ID        SegmentID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at,omitempty"`
}

// Create creates a segment.
func (s *SegmentsService) Create(ctx context.Context, req CreateSegmentRequest) (*Segment, error) {
	if req.Name == "" {
		return nil, newValidationError("segment name is empty", nil)
	}
	var result Segment
	if err := s.do(ctx, "segments.create", http.MethodPost, "/segments", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves a segment.
func (s *SegmentsService) Get(ctx context.Context, id SegmentID) (*Segment, error) {
	escaped, err := id.check("segment id")
	if err != nil {
		return nil, err
	}
	var result Segment
	if err := s.do(ctx, "segments.get", http.MethodGet, "/segments/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns a page of segments.
func (s *SegmentsService) List(ctx context.Context, opts *ListOptions) (*ListResponse[Segment], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var result ListResponse[Segment]
	if err := s.do(ctx, "segments.list", http.MethodGet, "/segments", nil, &result, opts.requestOptions()...); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a segment and consumes id.
func (s *SegmentsService) Delete(ctx context.Context, id SegmentID) (*Deleted, error) {
	escaped, err := id.check("segment id")
	if err != nil {
		return nil, err
	}
	if err := id.consume("segment id"); err != nil {
		return nil, err
	}
	var result Deleted
	if err := s.do(ctx, "segments.delete", http.MethodDelete, "/segments/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
