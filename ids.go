package resend

import (
	"encoding/json"
	"net/url"
	"sync/atomic"
)

// Identifier kinds. They are never instantiated; they only tell the ID
// types apart.
type (
	emailKind     struct{}
	domainKind    struct{}
	apiKeyKind    struct{}
	audienceKind  struct{}
	contactKind   struct{}
	broadcastKind struct{}
	webhookKind   struct{}
	templateKind  struct{}
	topicKind     struct{}
	segmentKind   struct{}
	inboundKind   struct{}
)

// Typed identifiers for each resource. An EmailID cannot be passed where a
// DomainID is expected.
type (
	EmailID     = ID[emailKind]
	DomainID    = ID[domainKind]
	APIKeyID    = ID[apiKeyKind]
	AudienceID  = ID[audienceKind]
	ContactID   = ID[contactKind]
	BroadcastID = ID[broadcastKind]
	WebhookID   = ID[webhookKind]
	TemplateID  = ID[templateKind]
	TopicID     = ID[topicKind]
	SegmentID   = ID[segmentKind]

	// InboundEmailID names an email received on a receiving domain.
	InboundEmailID = ID[inboundKind]
)

// ID is an opaque server-assigned identifier.
//
// Deleting a resource consumes its identifier: the delete call marks it and
// every copy of it as consumed, and any later call that is handed a consumed
// identifier fails with ErrIdentifierConsumed before a request is sent. Use
// Clone to keep an independent identifier across a delete.
//
// The zero ID is empty and never valid.
type ID[K any] struct {
	value string
	state *idState
}

type idState struct {
	consumed atomic.Bool
}

func newID[K any](value string) ID[K] {
	return ID[K]{value: value, state: &idState{}}
}

// Constructors for identifiers held outside the client, such as IDs stored
// in a database.
func NewEmailID(s string) EmailID         { return newID[emailKind](s) }
func NewDomainID(s string) DomainID       { return newID[domainKind](s) }
func NewAPIKeyID(s string) APIKeyID       { return newID[apiKeyKind](s) }
func NewAudienceID(s string) AudienceID   { return newID[audienceKind](s) }
func NewContactID(s string) ContactID     { return newID[contactKind](s) }
func NewBroadcastID(s string) BroadcastID { return newID[broadcastKind](s) }
func NewWebhookID(s string) WebhookID     { return newID[webhookKind](s) }
func NewTemplateID(s string) TemplateID   { return newID[templateKind](s) }
func NewTopicID(s string) TopicID         { return newID[topicKind](s) }
func NewSegmentID(s string) SegmentID     { return newID[segmentKind](s) }

func NewInboundEmailID(s string) InboundEmailID { return newID[inboundKind](s) }

// String returns the identifier exactly as the server issued it.
func (id ID[K]) String() string {
	return id.value
}

// IsZero reports whether id is empty.
func (id ID[K]) IsZero() bool {
	return id.value == ""
}

// Consumed reports whether a delete call has taken ownership of id.
func (id ID[K]) Consumed() bool {
	return id.state != nil && id.state.consumed.Load()
}

// Clone returns a live copy of id that does not share consumption state.
func (id ID[K]) Clone() ID[K] {
	return newID[K](id.value)
}

// MarshalJSON encodes the bare identifier string.
func (id ID[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// UnmarshalJSON decodes a bare identifier string into a fresh, live ID.
func (id *ID[K]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = newID[K](s)
	return nil
}

// check validates id for use in a request and returns its escaped path form.
func (id ID[K]) check(name string) (string, error) {
	if id.value == "" {
		return "", newValidationError(name+" is empty", nil)
	}
	if id.Consumed() {
		return "", newValidationError(name+" "+id.value, ErrIdentifierConsumed)
	}
	return url.PathEscape(id.value), nil
}

// consume marks id as deleted. It fails if another delete got there first.
func (id ID[K]) consume(name string) error {
	if id.state == nil {
		return nil
	}
	if !id.state.consumed.CompareAndSwap(false, true) {
		return newValidationError(name+" "+id.value, ErrIdentifierConsumed)
	}
	return nil
}
