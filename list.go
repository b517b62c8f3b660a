package resend

import "github.com/sendkit/resend-go/internal/api"

// ListOptions selects a page of a list endpoint. Zero fields are omitted.
// After and Before are mutually exclusive cursors holding a resource ID.
type ListOptions struct {
	Limit  int
	After  string
	Before string
}

func (o *ListOptions) requestOptions() []api.RequestOption {
	if o == nil {
		return nil
	}
	return []api.RequestOption{
		api.WithQueryInt("limit", o.Limit),
		api.WithQuery("after", o.After),
		api.WithQuery("before", o.Before),
	}
}

func (o *ListOptions) validate() error {
	if o == nil {
		return nil
	}
	if o.After != "" && o.Before != "" {
		return newValidationError("list options: after and before are mutually exclusive", nil)
	}
	if o.Limit < 0 || o.Limit > 100 {
		return newValidationError("list options: limit must be between 1 and 100", nil)
	}
	return nil
}

// ListResponse is the envelope shared by every list endpoint.
type ListResponse[T any] struct {
	Object  string `json:"object"`
	HasMore bool   `json:"has_more"`
	Data    []T    `json:"data"`
}
