package resend

import (
	"context"
	"net/http"
	"net/url"
)

// ContactsService manages the contacts of an audience.
type ContactsService struct {
	service
}

// ContactRef addresses a contact either by ID or by email address.
type ContactRef struct {
	id    ContactID
	email string
}

// ContactByID refers to a contact by its ID.
func ContactByID(id ContactID) ContactRef {
	return ContactRef{id: id}
}

// ContactByEmail refers to a contact by its email address.
func ContactByEmail(email string) ContactRef {
	return ContactRef{email: email}
}

func (r ContactRef) path() (string, error) {
	if r.email != "" {
		return url.PathEscape(r.email), nil
	}
	return r.id.check("contact id")
}

// CreateContactRequest adds a contact to an audience.
type CreateContactRequest struct {
	Email        string `json:"email"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Unsubscribed *bool  `json:"unsubscribed,omitempty"`
}

// UpdateContactRequest changes a contact. Nil fields are left unchanged.
type UpdateContactRequest struct {
	Email        *string `json:"email,omitempty"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Unsubscribed *bool   `json:"unsubscribed,omitempty"`
}

// Contact is a member of an audience.
type Contact struct {
	Object       string    `json:"object,omitempty"`
	ID           ContactID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	CreatedAt    string    `json:"created_at,omitempty"`
	Unsubscribed bool      `json:"unsubscribed"`
}

// ContactResponse is returned by operations that create or modify a contact.
type ContactResponse struct {
	Object string    `json:"object"`
	ID     ContactID `json:"id"`
}

func contactsPath(audience AudienceID) (string, error) {
	escaped, err := audience.check("audience id")
	if err != nil {
		return "", err
	}
	return "/audiences/" + escaped + "/contacts", nil
}

// Create adds a contact to an audience.
func (s *ContactsService) Create(ctx context.Context, audience AudienceID, req CreateContactRequest) (*ContactResponse, error) {
	base, err := contactsPath(audience)
	if err != nil {
		return nil, err
	}
	if req.Email == "" {
		return nil, newValidationError("contact email is empty", nil)
	}
	var result ContactResponse
	if err := s.do(ctx, "contacts.create", http.MethodPost, base, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves a contact.
func (s *ContactsService) Get(ctx context.Context, audience AudienceID, ref ContactRef) (*Contact, error) {
	base, err := contactsPath(audience)
	if err != nil {
		return nil, err
	}
	p, err := ref.path()
	if err != nil {
		return nil, err
	}
	var result Contact
	if err := s.do(ctx, "contacts.get", http.MethodGet, base+"/"+p, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Update changes a contact.
func (s *ContactsService) Update(ctx context.Context, audience AudienceID, ref ContactRef, req UpdateContactRequest) (*ContactResponse, error) {
	base, err := contactsPath(audience)
	if err != nil {
		return nil, err
	}
	p, err := ref.path()
	if err != nil {
		return nil, err
	}
	var result ContactResponse
	if err := s.do(ctx, "contacts.update", http.MethodPatch, base+"/"+p, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a contact. A contact addressed by ID has its ID consumed.
func (s *ContactsService) Delete(ctx context.Context, audience AudienceID, ref ContactRef) (*Deleted, error) {
	base, err := contactsPath(audience)
	if err != nil {
		return nil, err
	}
	p, err := ref.path()
	if err != nil {
		return nil, err
	}
	if ref.email == "" {
		if err := ref.id.consume("contact id"); err != nil {
			return nil, err
		}
	}
	var result Deleted
	if err := s.do(ctx, "contacts.delete", http.MethodDelete, base+"/"+p, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns a page of an audience's contacts.
func (s *ContactsService) List(ctx context.Context, audience AudienceID, opts *ListOptions) (*ListResponse[Contact], error) {
	base, err := contactsPath(audience)
	if err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	var result ListResponse[Contact]
	if err := s.do(ctx, "contacts.list", http.MethodGet, base, nil, &result, opts.requestOptions()...); err != nil {
		return nil, err
	}
	return &result, nil
}
