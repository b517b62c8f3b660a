package resend

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sendkit/resend-go/internal/api"
)

// MaxIdempotencyKeyLen is the longest idempotency key the API accepts.
const MaxIdempotencyKeyLen = api.MaxIdempotencyKeyLen

// Idempotent pairs a request payload with an optional idempotency key. Two
// calls carrying the same key and payload within the API's deduplication
// window produce one effect. An empty Key means no key is sent.
type Idempotent[T any] struct {
	Payload T
	Key     string
}

// NewIdempotent wraps payload without a key.
func NewIdempotent[T any](payload T) Idempotent[T] {
	return Idempotent[T]{Payload: payload}
}

// WithKey returns a copy of i carrying key.
func (i Idempotent[T]) WithKey(key string) Idempotent[T] {
	i.Key = key
	return i
}

// validate rejects keys the API would refuse with invalid_idempotency_key.
func (i Idempotent[T]) validate() error {
	if len(i.Key) > MaxIdempotencyKeyLen {
		return newValidationError(
			fmt.Sprintf("idempotency key is %d characters, maximum is %d", len(i.Key), MaxIdempotencyKeyLen), nil)
	}
	return nil
}

// IdempotentBatch wraps a batch of emails under a single key. The key covers
// the whole batch; it is sent once no matter how many emails it holds.
func IdempotentBatch(emails []SendEmailRequest, key string) Idempotent[[]SendEmailRequest] {
	return Idempotent[[]SendEmailRequest]{Payload: emails, Key: key}
}

// NewIdempotencyKey returns a random key suitable for one logical operation.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
