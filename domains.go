package resend

import (
	"context"
	"net/http"
)

// Region is a sending region for a domain.
type Region string

// Supported regions.
const (
	RegionUSEast1      Region = "us-east-1"
	RegionEUWest1      Region = "eu-west-1"
	RegionSAEast1      Region = "sa-east-1"
	RegionAPNortheast1 Region = "ap-northeast-1"
)

// TLS modes for UpdateDomainRequest.
const (
	TLSOpportunistic = "opportunistic"
	TLSEnforced      = "enforced"
)

// DomainsService manages sending domains.
type DomainsService struct {
	service
}

// CreateDomainRequest registers a domain.
type CreateDomainRequest struct {
	Name             string `json:"name"`
	Region           Region `json:"region,omitempty"`
	CustomReturnPath string `json:"custom_return_path,omitempty"`
}

// Domain is a sending domain and its DNS records.
type Domain struct {
	Object      string         `json:"object,omitempty"`
	ID          DomainID       `json:"id"`
	Name        string         `json:"name"`
	Status      string         `json:"status"`
	CreatedAt   string         `json:"created_at"`
	Region      Region         `json:"region"`
	Records     []DomainRecord `json:"records,omitempty"`
	DNSProvider string         `json:"dnsProvider,omitempty"`
}

// DomainRecord is a DNS record the domain owner must publish.
type DomainRecord struct {
	Record   string `json:"record"`
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	TTL      string `json:"ttl,omitempty"`
	Status   string `json:"status,omitempty"`
	Value    string `json:"value,omitempty"`
	Priority *int   `json:"priority,omitempty"`
}

// UpdateDomainRequest changes tracking and TLS settings. Nil fields are left
// unchanged.
type UpdateDomainRequest struct {
	ClickTracking *bool  `json:"click_tracking,omitempty"`
	OpenTracking  *bool  `json:"open_tracking,omitempty"`
	TLS           string `json:"tls,omitempty"`
}

// DomainRef is returned by operations that modify a domain.
type DomainRef struct {
	Object string   `json:"object"`
	ID     DomainID `json:"id"`
}

// Create registers a domain and returns the records to publish.
func (s *DomainsService) Create(ctx context.Context, req CreateDomainRequest) (*Domain, error) {
	if req.Name == "" {
		return nil, newValidationError("domain name is empty", nil)
	}
	var result Domain
	if err := s.do(ctx, "domains.create", http.MethodPost, "/domains", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves a domain.
func (s *DomainsService) Get(ctx context.Context, id DomainID) (*Domain, error) {
	escaped, err := id.check("domain id")
	if err != nil {
		return nil, err
	}
	var result Domain
	if err := s.do(ctx, "domains.get", http.MethodGet, "/domains/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Verify starts asynchronous DNS verification of a domain.
func (s *DomainsService) Verify(ctx context.Context, id DomainID) (*DomainRef, error) {
	escaped, err := id.check("domain id")
	if err != nil {
		return nil, err
	}
	var result DomainRef
	if err := s.do(ctx, "domains.verify", http.MethodPost, "/domains/"+escaped+"/verify", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Update changes domain settings.
func (s *DomainsService) Update(ctx context.Context, id DomainID, req UpdateDomainRequest) (*DomainRef, error) {
	escaped, err := id.check("domain id")
	if err != nil {
		return nil, err
	}
	var result DomainRef
	if err := s.do(ctx, "domains.update", http.MethodPatch, "/domains/"+escaped, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns a page of domains.
func (s *DomainsService) List(ctx context.Context, opts *ListOptions) (*ListResponse[Domain], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var result ListResponse[Domain]
	if err := s.do(ctx, "domains.list", http.MethodGet, "/domains", nil, &result, opts.requestOptions()...); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a domain and consumes id, whatever the outcome of the call.
func (s *DomainsService) Delete(ctx context.Context, id DomainID) (*Deleted, error) {
	escaped, err := id.check("domain id")
	if err != nil {
		return nil, err
	}
	if err := id.consume("domain id"); err != nil {
		return nil, err
	}
	var result Deleted
	if err := s.do(ctx, "domains.delete", http.MethodDelete, "/domains/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
