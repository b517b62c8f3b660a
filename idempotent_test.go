package resend

import (
	"strings"
	"testing"
)

func TestIdempotent_WithKeyCopies(t *testing.T) {
	base := NewIdempotent(testEmail())
	keyed := base.WithKey("k1")

	if base.Key != "" {
		t.Errorf("WithKey modified the receiver: Key = %q", base.Key)
	}
	if keyed.Key != "k1" {
		t.Errorf("Key = %q, want k1", keyed.Key)
	}
	if keyed.Payload.Subject != base.Payload.Subject {
		t.Error("WithKey lost the payload")
	}
}

func TestIdempotent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"no key", "", false},
		{"short", "order-1", false},
		{"max length", strings.Repeat("a", MaxIdempotencyKeyLen), false},
		{"too long", strings.Repeat("a", MaxIdempotencyKeyLen+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewIdempotent(1).WithKey(tt.key).validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewIdempotencyKey(t *testing.T) {
	a, b := NewIdempotencyKey(), NewIdempotencyKey()
	if a == b {
		t.Error("NewIdempotencyKey() returned the same key twice")
	}
	if len(a) == 0 || len(a) > MaxIdempotencyKeyLen {
		t.Errorf("len = %d", len(a))
	}
}
