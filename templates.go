package resend

import (
	"context"
	"net/http"
	"net/url"
)

// TemplatesService manages reusable email templates.
type TemplatesService struct {
	service
}

// VariableType is the value type a template variable accepts.
type VariableType string

const (
	VariableString VariableType = "string"
	VariableNumber VariableType = "number"
)

// TemplateStatus reports whether a template has been published.
type TemplateStatus string

const (
	TemplateDraft     TemplateStatus = "draft"
	TemplatePublished TemplateStatus = "published"
)

// TemplateVariable declares a placeholder in a template. Without a Fallback
// every send must supply a value for Key.
type TemplateVariable struct {
	Key      string       `json:"key"`
	Type     VariableType `json:"type"`
	Fallback any          `json:"fallback_value,omitempty"`
}

// CreateTemplateRequest creates a draft template. Update takes the same
// shape and replaces the template's content.
type CreateTemplateRequest struct {
	Name      string             `json:"name"`
	HTML      string             `json:"html"`
	Alias     string             `json:"alias,omitempty"`
	From      string             `json:"from,omitempty"`
	Subject   string             `json:"subject,omitempty"`
	ReplyTo   []string           `json:"reply_to,omitempty"`
	Text      string             `json:"text,omitempty"`
	Variables []TemplateVariable `json:"variables,omitempty"`
}

// UpdateTemplateRequest replaces the content of a template.
type UpdateTemplateRequest = CreateTemplateRequest

// Template is a stored template.
type Template struct {
	Object      string             `json:"object,omitempty"`
	ID          TemplateID         `json:"id"`
	Alias       string             `json:"alias,omitempty"`
	Name        string             `json:"name"`
	Status      TemplateStatus     `json:"status"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
	PublishedAt string             `json:"published_at,omitempty"`
	From        string             `json:"from,omitempty"`
	Subject     string             `json:"subject,omitempty"`
	ReplyTo     []string           `json:"reply_to,omitempty"`
	HTML        string             `json:"html,omitempty"`
	Text        string             `json:"text,omitempty"`
	Variables   []TemplateVariable `json:"variables,omitempty"`
}

// TemplateResult is returned by operations that create or modify a template.
type TemplateResult struct {
	Object string     `json:"object,omitempty"`
	ID     TemplateID `json:"id"`
}

// TemplateRef names a template by ID or by alias.
type TemplateRef struct {
	id    TemplateID
	alias string
}

// TemplateByID refers to a template by its ID.
func TemplateByID(id TemplateID) TemplateRef {
	return TemplateRef{id: id}
}

// TemplateByAlias refers to a template by its alias.
func TemplateByAlias(alias string) TemplateRef {
	return TemplateRef{alias: alias}
}

func (r TemplateRef) path() (string, error) {
	if r.alias != "" {
		return url.PathEscape(r.alias), nil
	}
	return r.id.check("template id")
}

func (r CreateTemplateRequest) validate() error {
	if r.Name == "" {
		return newValidationError("template name is empty", nil)
	}
	if r.HTML == "" {
		return newValidationError("template html is empty", nil)
	}
	for _, v := range r.Variables {
		if v.Key == "" {
			return newValidationError("template variable key is empty", nil)
		}
	}
	return nil
}

// Create drafts a template.
func (s *TemplatesService) Create(ctx context.Context, req CreateTemplateRequest) (*TemplateResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	var result TemplateResult
	if err := s.do(ctx, "templates.create", http.MethodPost, "/templates", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves a template by ID or alias.
func (s *TemplatesService) Get(ctx context.Context, ref TemplateRef) (*Template, error) {
	escaped, err := ref.path()
	if err != nil {
		return nil, err
	}
	var result Template
	if err := s.do(ctx, "templates.get", http.MethodGet, "/templates/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Update replaces a template's content.
func (s *TemplatesService) Update(ctx context.Context, ref TemplateRef, req UpdateTemplateRequest) (*TemplateResult, error) {
	escaped, err := ref.path()
	if err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	var result TemplateResult
	if err := s.do(ctx, "templates.update", http.MethodPatch, "/templates/"+escaped, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Publish makes the current draft of a template available for sending.
func (s *TemplatesService) Publish(ctx context.Context, id TemplateID) (*TemplateResult, error) {
	escaped, err := id.check("template id")
	if err != nil {
		return nil, err
	}
	var result TemplateResult
	if err := s.do(ctx, "templates.publish", http.MethodPost, "/templates/"+escaped+"/publish", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Duplicate copies a template into a new draft and returns the copy's ID.
func (s *TemplatesService) Duplicate(ctx context.Context, id TemplateID) (*TemplateResult, error) {
	escaped, err := id.check("template id")
	if err != nil {
		return nil, err
	}
	var result TemplateResult
	if err := s.do(ctx, "templates.duplicate", http.MethodPost, "/templates/"+escaped+"/duplicate", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns a page of templates.
func (s *TemplatesService) List(ctx context.Context, opts *ListOptions) (*ListResponse[Template], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var result ListResponse[Template]
	if err := s.do(ctx, "templates.list", http.MethodGet, "/templates", nil, &result, opts.requestOptions()...); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a template and consumes id.
func (s *TemplatesService) Delete(ctx context.Context, id TemplateID) (*Deleted, error) {
	escaped, err := id.check("template id")
	if err != nil {
		return nil, err
	}
	if err := id.consume("template id"); err != nil {
		return nil, err
	}
	var result Deleted
	if err := s.do(ctx, "templates.delete", http.MethodDelete, "/templates/"+escaped, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
