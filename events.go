package resend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	svix "github.com/svix/svix-webhooks/go"

	"github.com/sendkit/resend-go/internal/apierrors"
)

// EventType names a webhook event.
type EventType string

// Email events.
const (
	EventEmailSent            EventType = "email.sent"
	EventEmailDelivered       EventType = "email.delivered"
	EventEmailDeliveryDelayed EventType = "email.delivery_delayed"
	EventEmailComplained      EventType = "email.complained"
	EventEmailBounced         EventType = "email.bounced"
	EventEmailOpened          EventType = "email.opened"
	EventEmailClicked         EventType = "email.clicked"
)

// Contact events.
const (
	EventContactCreated EventType = "contact.created"
	EventContactUpdated EventType = "contact.updated"
	EventContactDeleted EventType = "contact.deleted"
)

// Domain events.
const (
	EventDomainCreated EventType = "domain.created"
	EventDomainUpdated EventType = "domain.updated"
	EventDomainDeleted EventType = "domain.deleted"
)

var knownEvents = map[EventType]struct{}{
	EventEmailSent: {}, EventEmailDelivered: {}, EventEmailDeliveryDelayed: {},
	EventEmailComplained: {}, EventEmailBounced: {}, EventEmailOpened: {}, EventEmailClicked: {},
	EventContactCreated: {}, EventContactUpdated: {}, EventContactDeleted: {},
	EventDomainCreated: {}, EventDomainUpdated: {}, EventDomainDeleted: {},
}

// IsEmail reports whether t is an email.* event.
func (t EventType) IsEmail() bool { return strings.HasPrefix(string(t), "email.") }

// IsContact reports whether t is a contact.* event.
func (t EventType) IsContact() bool { return strings.HasPrefix(string(t), "contact.") }

// IsDomain reports whether t is a domain.* event.
func (t EventType) IsDomain() bool { return strings.HasPrefix(string(t), "domain.") }

// Event is a parsed webhook payload. Exactly one of Email, Contact and Domain
// is set, matching the prefix of Type.
type Event struct {
	Type      EventType
	CreatedAt string

	Email   *EmailEventData
	Contact *ContactEventData
	Domain  *Domain
}

// EmailEventData is the data of an email.* event.
type EmailEventData struct {
	CreatedAt string      `json:"created_at"`
	EmailID   EmailID     `json:"email_id"`
	From      string      `json:"from"`
	To        []string    `json:"to"`
	Subject   string      `json:"subject"`
	Click     *ClickEvent `json:"click,omitempty"`
	Bounce    *Bounce     `json:"bounce,omitempty"`
	Tags      []Tag       `json:"tags,omitempty"`
}

// ClickEvent describes the link behind an email.clicked event.
type ClickEvent struct {
	IPAddress string `json:"ipAddress"`
	Link      string `json:"link"`
	Timestamp string `json:"timestamp"`
	UserAgent string `json:"userAgent"`
}

// Bounce describes an email.bounced event.
type Bounce struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	SubType string `json:"subType,omitempty"`
}

// ContactEventData is the data of a contact.* event.
type ContactEventData struct {
	ID           ContactID  `json:"id"`
	AudienceID   AudienceID `json:"audience_id"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Unsubscribed bool       `json:"unsubscribed"`
}

type rawEvent struct {
	Type      EventType       `json:"type"`
	CreatedAt string          `json:"created_at"`
	Data      json.RawMessage `json:"data"`
}

// ParseEvent decodes a webhook payload. Malformed payloads and unknown event
// types yield an error matching ErrParse.
func ParseEvent(payload []byte) (*Event, error) {
	var raw rawEvent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, &apierrors.Error{
			Kind:    apierrors.KindParse,
			Message: "decode webhook event",
			Snippet: apierrors.Snippet(payload),
			Err:     err,
		}
	}
	if _, ok := knownEvents[raw.Type]; !ok {
		return nil, apierrors.NewParseError(fmt.Sprintf("unknown webhook event type %q", raw.Type), nil)
	}
	if len(bytes.TrimSpace(raw.Data)) == 0 {
		return nil, apierrors.NewParseError(fmt.Sprintf("webhook event %s has no data", raw.Type), nil)
	}

	ev := &Event{Type: raw.Type, CreatedAt: raw.CreatedAt}
	var target any
	switch {
	case raw.Type.IsEmail():
		ev.Email = &EmailEventData{}
		target = ev.Email
	case raw.Type.IsContact():
		ev.Contact = &ContactEventData{}
		target = ev.Contact
	default:
		ev.Domain = &Domain{}
		target = ev.Domain
	}
	if err := json.Unmarshal(raw.Data, target); err != nil {
		return nil, apierrors.NewParseError(fmt.Sprintf("decode %s data", raw.Type), err)
	}
	return ev, nil
}

// Webhook signature headers.
const (
	HeaderWebhookID        = "svix-id"
	HeaderWebhookTimestamp = "svix-timestamp"
	HeaderWebhookSignature = "svix-signature"
)

// WebhookTolerance is the maximum accepted age, or clock skew, of a
// delivery's timestamp.
const WebhookTolerance = 5 * time.Minute

var (
	// ErrWebhookSignature is returned when no signature on a delivery matches.
	ErrWebhookSignature = errors.New("webhook signature mismatch")

	// ErrWebhookTimestamp is returned when a delivery's timestamp is missing,
	// malformed or outside WebhookTolerance.
	ErrWebhookTimestamp = errors.New("webhook timestamp outside tolerance")

	// ErrWebhookSecret is returned when the signing secret cannot be decoded.
	ErrWebhookSecret = errors.New("invalid webhook signing secret")
)

// VerifyWebhook checks that payload was signed with secret, the
// signing_secret returned when the webhook was created. header holds the
// delivery's HTTP headers. payload must be the raw request body.
func VerifyWebhook(payload []byte, header http.Header, secret string) error {
	return verifyWebhook(payload, header, secret, time.Now())
}

// ConstructEvent verifies a delivery and parses its payload.
func ConstructEvent(payload []byte, header http.Header, secret string) (*Event, error) {
	if err := VerifyWebhook(payload, header, secret); err != nil {
		return nil, err
	}
	return ParseEvent(payload)
}

func verifyWebhook(payload []byte, header http.Header, secret string, now time.Time) error {
	wh, err := newWebhookVerifier(secret)
	if err != nil {
		return err
	}

	msgID := header.Get(HeaderWebhookID)
	ts := header.Get(HeaderWebhookTimestamp)
	sigs := header.Get(HeaderWebhookSignature)
	if msgID == "" || sigs == "" {
		return fmt.Errorf("%w: missing %s or %s header", ErrWebhookSignature, HeaderWebhookID, HeaderWebhookSignature)
	}

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrWebhookTimestamp, ts)
	}
	sent := time.Unix(unix, 0)
	if now.Sub(sent) > WebhookTolerance || sent.Sub(now) > WebhookTolerance {
		return fmt.Errorf("%w: sent at %s", ErrWebhookTimestamp, sent.UTC().Format(time.RFC3339))
	}

	// The timestamp was checked against now above; svix checks the
	// signatures, accepting any of the space-separated entries.
	if err := wh.VerifyIgnoringTimestamp(payload, header); err != nil {
		return fmt.Errorf("%w: %v", ErrWebhookSignature, err)
	}
	return nil
}

func newWebhookVerifier(secret string) (*svix.Webhook, error) {
	if strings.TrimPrefix(secret, "whsec_") == "" {
		return nil, ErrWebhookSecret
	}
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWebhookSecret, err)
	}
	return wh, nil
}
