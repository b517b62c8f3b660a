package resend

import (
	"context"
	"net/http"
)

// Permission is the access level of an API key.
type Permission string

const (
	PermissionFullAccess    Permission = "full_access"
	PermissionSendingAccess Permission = "sending_access"
)

// APIKeysService manages API keys.
type APIKeysService struct {
	service
}

// CreateAPIKeyRequest creates an API key. DomainID restricts a sending key
// to one domain.
type CreateAPIKeyRequest struct {
	Name       string     `json:"name"`
	Permission Permission `json:"permission,omitempty"`
	DomainID   *DomainID  `json:"domain_id,omitempty"`
}

// CreateAPIKeyResponse holds the new key. Token is shown only once.
type CreateAPIKeyResponse struct {
	ID    APIKeyID `json:"id"`
	Token string   `json:"token"`
}

// APIKey describes an existing key. The token itself is never returned.
type APIKey struct {
	ID        APIKeyID `json:"id"`
	Name      string   `json:"name"`
	CreatedAt string   `json:"created_at"`
}

// Create creates an API key.
func (s *APIKeysService) Create(ctx context.Context, req CreateAPIKeyRequest) (*CreateAPIKeyResponse, error) {
	if req.Name == "" {
		return nil, newValidationError("api key name is empty", nil)
	}
	if req.DomainID != nil {
		if _, err := req.DomainID.check("domain id"); err != nil {
			return nil, err
		}
	}
	var result CreateAPIKeyResponse
	if err := s.do(ctx, "api_keys.create", http.MethodPost, "/api-keys", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns a page of API keys.
func (s *APIKeysService) List(ctx context.Context, opts *ListOptions) (*ListResponse[APIKey], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var result ListResponse[APIKey]
	if err := s.do(ctx, "api_keys.list", http.MethodGet, "/api-keys", nil, &result, opts.requestOptions()...); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete revokes an API key and consumes id.
func (s *APIKeysService) Delete(ctx context.Context, id APIKeyID) error {
	escaped, err := id.check("api key id")
	if err != nil {
		return err
	}
	if err := id.consume("api key id"); err != nil {
		return err
	}
	return s.do(ctx, "api_keys.delete", http.MethodDelete, "/api-keys/"+escaped, nil, nil)
}
