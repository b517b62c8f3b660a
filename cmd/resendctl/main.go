package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	resend "github.com/sendkit/resend-go"
)

const usage = "usage: resendctl <send|batch|get-email|list-domains|verify-webhook> [flags]"

// Config holds the process streams and the client constructor, so tests can
// substitute both.
type Config struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Timeout   time.Duration
	NewClient func() (*resend.Client, error)
	Getenv    func(string) string
}

// DefaultConfig wires the real process streams and reads the API key from
// the environment or ./.env.
func DefaultConfig() Config {
	return Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Timeout: 60 * time.Second,
		NewClient: func() (*resend.Client, error) {
			return resend.NewFromEnv(resend.WithDotEnv(".env"))
		},
		Getenv: os.Getenv,
	}
}

func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return errors.New(usage)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	cmd, rest := args[1], args[2:]
	if cmd == "verify-webhook" {
		return verifyWebhook(cfg, rest)
	}

	client, err := cfg.NewClient()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer client.Close()

	switch cmd {
	case "send":
		return send(ctx, client, cfg, rest)
	case "batch":
		return batch(ctx, client, cfg, rest)
	case "get-email":
		if len(rest) < 1 {
			return errors.New("usage: resendctl get-email <id>")
		}
		email, err := client.Emails.Get(ctx, resend.NewEmailID(rest[0]))
		if err != nil {
			return fmt.Errorf("get email: %w", err)
		}
		return writeJSON(cfg.Stdout, email)
	case "list-domains":
		domains, err := client.Domains.List(ctx, nil)
		if err != nil {
			return fmt.Errorf("list domains: %w", err)
		}
		return writeJSON(cfg.Stdout, domains)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func send(ctx context.Context, client *resend.Client, cfg Config, args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	fs.SetOutput(cfg.Stderr)
	key := fs.String("key", "", "idempotency key (generated when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var req resend.SendEmailRequest
	if err := json.NewDecoder(cfg.Stdin).Decode(&req); err != nil {
		return fmt.Errorf("parse email: %w", err)
	}
	if *key == "" {
		*key = resend.NewIdempotencyKey()
	}

	sent, err := client.Emails.Send(ctx, resend.NewIdempotent(req).WithKey(*key))
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return writeJSON(cfg.Stdout, sent)
}

func batch(ctx context.Context, client *resend.Client, cfg Config, args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(cfg.Stderr)
	key := fs.String("key", "", "idempotency key for the whole batch (generated when empty)")
	permissive := fs.Bool("permissive", false, "send the valid emails even if some are rejected")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var emails []resend.SendEmailRequest
	if err := json.NewDecoder(cfg.Stdin).Decode(&emails); err != nil {
		return fmt.Errorf("parse batch: %w", err)
	}
	if *key == "" {
		*key = resend.NewIdempotencyKey()
	}

	mode := resend.BatchValidationStrict
	if *permissive {
		mode = resend.BatchValidationPermissive
	}
	resp, err := client.Batch.SendWithValidation(ctx, resend.IdempotentBatch(emails, *key), mode)
	if err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return writeJSON(cfg.Stdout, resp)
}

// verifyWebhook reads a delivery body from stdin and checks it against the
// svix headers given as flags.
func verifyWebhook(cfg Config, args []string) error {
	fs := flag.NewFlagSet("verify-webhook", flag.ContinueOnError)
	fs.SetOutput(cfg.Stderr)
	id := fs.String("id", "", "svix-id header")
	ts := fs.String("timestamp", "", "svix-timestamp header")
	sig := fs.String("signature", "", "svix-signature header")
	secret := fs.String("secret", "", "signing secret (default $RESEND_WEBHOOK_SECRET)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *secret == "" {
		*secret = cfg.Getenv("RESEND_WEBHOOK_SECRET")
	}

	payload, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	header := http.Header{}
	header.Set(resend.HeaderWebhookID, *id)
	header.Set(resend.HeaderWebhookTimestamp, *ts)
	header.Set(resend.HeaderWebhookSignature, *sig)

	ev, err := resend.ConstructEvent(payload, header, *secret)
	if err != nil {
		return fmt.Errorf("verify webhook: %w", err)
	}
	return writeJSON(cfg.Stdout, map[string]any{"valid": true, "type": ev.Type})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
