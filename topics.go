package resend

import (
	"context"
	"net/http"
)

// TopicsService manages subscription topics shown on the unsubscribe page.
type TopicsService struct {
	service
}

// SubscriptionType is the subscription state new contacts start in.
type SubscriptionType string

const (
	SubscriptionOptIn  SubscriptionType = "opt_in"
	SubscriptionOptOut SubscriptionType = "opt_out"
)

// TopicVisibility controls who sees a topic on the unsubscribe page.
type TopicVisibility string

const (
	// TopicPublic topics are shown to every contact.
	TopicPublic TopicVisibility = "public"
	// TopicPrivate topics are shown only to contacts opted in to them.
	TopicPrivate TopicVisibility = "private"
)

// CreateTopicRequest creates a topic.
type CreateTopicRequest struct {
	Name                string           `json:"name"`
	DefaultSubscription SubscriptionType `json:"default_subscription"`
	Description         string           `json:"description,omitempty"`
	Visibility          TopicVisibility  `json:"visibility,omitempty"`
}

// UpdateTopicRequest changes a topic. Empty fields are left unchanged.
type UpdateTopicRequest struct {
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Visibility  TopicVisibility `json:"visibility,omitempty"`
}

// Topic is a subscription topic.
type Topic struct {
	Object              string           `json:"object,omitempty"`
	ID                  TopicID          `json:"id"`
	Name                string           `json:"name"`
	Description         string           `json:"description,omitempty"`
	DefaultSubscription SubscriptionType `json:"default_subscription"`
	Visibility          TopicVisibility  `json:"visibility"`
	CreatedAt           string           `json:"created_at"`
}

// TopicResult is returned by operations that create or modify a topic.
type TopicResult struct {
	Object string  `json:"object,omitempty"`
	ID     TopicID `json:"id"`
}

// Create creates a topic.
func (s *TopicsService) Create(ctx context.Context, req CreateTopicRequest) (*TopicResult, error) {
	if req.Name == "" {
		return nil, newValidationError("topic name is empty", nil)
	}
	switch req.DefaultSubscription {
	case SubscriptionOptIn, SubscriptionOptOut:
	default:
		return nil, newValidationError("topic default subscription must be opt_in or opt_out", nil)
	}
	var result TopicResult
	if err := s.do(ctx, "topics.create", http.MethodPost, "/topics", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves a topic.
func (s *TopicsService) Get(ctx context.Context, id TopicID) (*Topic, error) {
	escaped, err := id.check("topic id")
	if err != nil {
		return nil, err
	}
	var result Topic
	if err := s.do(ctx, "topics.get", http.MethodGet, "/topics/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Update changes a topic.
func (s *TopicsService) Update(ctx context.Context, id TopicID, req UpdateTopicRequest) (*TopicResult, error) {
	escaped, err := id.check("topic id")
	if err != nil {
		return nil, err
	}
	var result TopicResult
	if err := s.do(ctx, "topics.update", http.MethodPatch, "/topics/"+escaped, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns a page of topics.
func (s *TopicsService) List(ctx context.Context, opts *ListOptions) (*ListResponse[Topic], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var result ListResponse[Topic]
	if err := s.do(ctx, "topics.list", http.MethodGet, "/topics", nil, &result, opts.requestOptions()...); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a topic and consumes id.
func (s *TopicsService) Delete(ctx context.Context, id TopicID) (*Deleted, error) {
	escaped, err := id.check("topic id")
	if err != nil {
		return nil, err
	}
	if err := id.consume("topic id"); err != nil {
		return nil, err
	}
	var result Deleted
	if err := s.do(ctx, "topics.delete", http.MethodDelete, "/topics/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
