// Package resend is a Go client for the Resend email API.
//
// Basic usage:
//
//	client, err := resend.New("re_123")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	sent, err := client.Emails.Send(ctx, resend.NewIdempotent(resend.SendEmailRequest{
//	    From:    "Acme <onboarding@resend.dev>",
//	    To:      []string{"delivered@resend.dev"},
//	    Subject: "hello world",
//	    HTML:    "<p>it works!</p>",
//	}).WithKey("welcome/user-123"))
//
// # Rate Limiting
//
// Every call made through one Client passes a shared limiter that admits at
// most 9 requests per 1.1 seconds by default (see WithRateLimit). Calls wait
// for admission rather than failing. A call whose context deadline would pass
// before its turn fails immediately with ErrRateLimited.
//
// # Errors
//
// Every API failure is an *Error whose Kind is one of authentication,
// not_found, validation, rate_limit, server, transport or parse. Match kinds
// with errors.Is:
//
//	if errors.Is(err, resend.ErrRateLimited) {
//	    // back off
//	}
//
// The client never retries. Error.Retryable reports whether repeating the
// call is safe.
//
// # Identifiers
//
// Resource IDs are typed (EmailID, DomainID, ...). Delete operations consume
// the ID they are given; reusing it afterwards fails with
// ErrIdentifierConsumed without contacting the API. Clone an ID first to keep
// using it.
//
// # Blocking Build
//
// Building with -tags resend_blocking makes every call park its goroutine
// until admission and run to completion regardless of context cancellation.
// ExecutionMode reports the active discipline.
package resend
