//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	resend "github.com/sendkit/resend-go"
)

var (
	apiKey    string
	baseURL   string
	fromEmail string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("RESEND_API_KEY")
	baseURL = os.Getenv("RESEND_BASE_URL")
	fromEmail = os.Getenv("RESEND_TEST_FROM")
	if fromEmail == "" {
		fromEmail = "Acme <onboarding@resend.dev>"
	}

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: RESEND_API_KEY not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Exit(m.Run())
}

func newClient(t *testing.T) *resend.Client {
	t.Helper()

	opts := []resend.Option{resend.WithTimeout(30 * time.Second)}
	if baseURL != "" {
		opts = append(opts, resend.WithBaseURL(baseURL))
	}

	client, err := resend.New(apiKey, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func testEmail(subject string) resend.SendEmailRequest {
	return resend.SendEmailRequest{
		From:    fromEmail,
		To:      []string{"delivered@resend.dev"},
		Subject: subject,
		Text:    "integration test",
	}
}

func TestIntegration_SendAndGetEmail(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	sent, err := client.Emails.Send(ctx, resend.NewIdempotent(testEmail("integration send")).
		WithKey(resend.NewIdempotencyKey()))
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	t.Logf("Sent email: %s", sent.ID)

	email, err := client.Emails.Get(ctx, sent.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if email.Subject != "integration send" {
		t.Errorf("Subject = %q", email.Subject)
	}
}

func TestIntegration_IdempotentSend(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	req := resend.NewIdempotent(testEmail("integration idempotent")).WithKey(resend.NewIdempotencyKey())
	first, err := client.Emails.Send(ctx, req)
	if err != nil {
		t.Fatalf("first Send() error = %v", err)
	}
	second, err := client.Emails.Send(ctx, req)
	if err != nil {
		t.Fatalf("second Send() error = %v", err)
	}
	if first.ID.String() != second.ID.String() {
		t.Errorf("same key produced two emails: %s, %s", first.ID, second.ID)
	}
}

func TestIntegration_Batch(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	emails := []resend.SendEmailRequest{testEmail("batch 1"), testEmail("batch 2")}
	resp, err := client.Batch.Send(ctx, resend.IdempotentBatch(emails, resend.NewIdempotencyKey()))
	if err != nil {
		t.Fatalf("Batch.Send() error = %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("got %d ids, want 2", len(resp.Data))
	}
}

func TestIntegration_AudienceLifecycle(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	audience, err := client.Audiences.Create(ctx, resend.CreateAudienceRequest{Name: "integration " + time.Now().Format(time.RFC3339)})
	if err != nil {
		t.Fatalf("Audiences.Create() error = %v", err)
	}

	if _, err := client.Contacts.Create(ctx, audience.ID, resend.CreateContactRequest{Email: "steve@example.com"}); err != nil {
		t.Errorf("Contacts.Create() error = %v", err)
	}

	if _, err := client.Audiences.Delete(ctx, audience.ID); err != nil {
		t.Fatalf("Audiences.Delete() error = %v", err)
	}
	if _, err := client.Audiences.Get(ctx, audience.ID); !errors.Is(err, resend.ErrIdentifierConsumed) {
		t.Errorf("Get() after Delete error = %v, want ErrIdentifierConsumed", err)
	}
}

func TestIntegration_InvalidKey(t *testing.T) {
	client, err := resend.New("re_invalid_key_for_tests")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	_, err = client.Domains.List(context.Background(), nil)
	if !errors.Is(err, resend.ErrAuthentication) {
		t.Errorf("List() error = %v, want ErrAuthentication", err)
	}
}

func TestIntegration_RateLimitedBurst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping burst test in short mode")
	}
	client := newClient(t)
	ctx := context.Background()

	// The client limiter keeps a burst under the API quota; none of these
	// should come back as 429.
	for i := 0; i < 12; i++ {
		if _, err := client.Domains.List(ctx, nil); err != nil {
			t.Fatalf("call %d error = %v", i, err)
		}
	}
}
