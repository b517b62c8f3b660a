package resend

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
)

func TestListOptions_Query(t *testing.T) {
	tests := []struct {
		name string
		opts *ListOptions
		want url.Values
	}{
		{"nil", nil, url.Values{}},
		{"limit", &ListOptions{Limit: 10}, url.Values{"limit": {"10"}}},
		{"after", &ListOptions{Limit: 5, After: "d1"}, url.Values{"limit": {"5"}, "after": {"d1"}}},
		{"before", &ListOptions{Before: "d9"}, url.Values{"before": {"d9"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, http.StatusOK, `{"object":"list","has_more":true,"data":[{"id":"d1","name":"example.com"}]}`)

			resp, err := client.Domains.List(testContext(t), tt.opts)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if !resp.HasMore || len(resp.Data) != 1 || resp.Data[0].Name != "example.com" {
				t.Errorf("List() = %+v", resp)
			}

			got, _ := url.ParseQuery(rec.last(t).Query)
			if got.Encode() != tt.want.Encode() {
				t.Errorf("query = %q, want %q", got.Encode(), tt.want.Encode())
			}
		})
	}
}

func TestListOptions_Invalid(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	for _, opts := range []*ListOptions{
		{After: "a", Before: "b"},
		{Limit: 101},
		{Limit: -1},
	} {
		if _, err := client.Webhooks.List(testContext(t), opts); !errors.Is(err, ErrValidation) {
			t.Errorf("List(%+v) error = %v, want ErrValidation", opts, err)
		}
	}
	if n := len(rec.all()); n != 0 {
		t.Errorf("%d requests sent", n)
	}
}
