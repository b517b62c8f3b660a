package resend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendkit/resend-go/internal/api"
)

// BatchValidation selects how the API treats invalid emails in a batch.
type BatchValidation string

const (
	// BatchValidationStrict rejects the whole batch if any email is invalid.
	BatchValidationStrict BatchValidation = "strict"

	// BatchValidationPermissive sends the valid emails and reports the rest
	// in BatchResponse.Errors.
	BatchValidationPermissive BatchValidation = "permissive"
)

// BatchService sends many emails in one call.
type BatchService struct {
	service
}

// BatchResponse lists the accepted emails in request order.
type BatchResponse struct {
	Data   []SendEmailResponse `json:"data"`
	Errors []BatchError        `json:"errors,omitempty"`
}

// BatchError reports an email rejected in permissive mode.
type BatchError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// Send sends a batch with strict validation. The API accepts up to 100 emails
// per call. The batch's idempotency key, if any, covers the batch as a whole.
func (s *BatchService) Send(ctx context.Context, batch Idempotent[[]SendEmailRequest]) (*BatchResponse, error) {
	return s.SendWithValidation(ctx, batch, BatchValidationStrict)
}

// SendWithValidation sends a batch using the given validation mode.
func (s *BatchService) SendWithValidation(ctx context.Context, batch Idempotent[[]SendEmailRequest], mode BatchValidation) (*BatchResponse, error) {
	if err := batch.validate(); err != nil {
		return nil, err
	}
	if len(batch.Payload) == 0 {
		return nil, newValidationError("batch is empty", nil)
	}
	switch mode {
	case BatchValidationStrict, BatchValidationPermissive:
	default:
		return nil, newValidationError(fmt.Sprintf("unknown batch validation mode %q", mode), nil)
	}

	var result BatchResponse
	if err := s.do(ctx, "batch.send", http.MethodPost, "/emails/batch", batch.Payload, &result,
		api.WithIdempotencyKey(batch.Key),
		api.WithHeader("x-batch-validation", string(mode))); err != nil {
		return nil, err
	}
	return &result, nil
}
