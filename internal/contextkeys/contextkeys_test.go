package contextkeys

import (
	"context"
	"sharespace/internal/core/domain"
	"testing"

	"github.com/google/uuid"
)

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()

	if LoggerFromContext(ctx) == nil {
		t.Fatal("logger must never be nil")
	}
	LoggerFromContext(ctx).WithFields(nil).Info("dropped", nil)

	if id := TraceIDFromContext(ctx); id != "" {
		t.Fatalf("unexpected trace id %q", id)
	}
	if _, ok := IdentityFromContext(ctx); ok {
		t.Fatal("empty context must not carry an identity")
	}
}

func TestValuesDoNotCollide(t *testing.T) {
	user := domain.Identity{UserID: uuid.New()}
	ctx := ContextWithTraceID(context.Background(), "trace-1")
	ctx = ContextWithIdentity(ctx, user)

	if got := TraceIDFromContext(ctx); got != "trace-1" {
		t.Fatalf("unexpected trace id %q", got)
	}
	if got, ok := IdentityFromContext(ctx); !ok || got != user {
		t.Fatalf("unexpected identity %+v %v", got, ok)
	}
	if _, ok := IdentityFromContext(ContextWithIdentity(ctx, domain.Identity{})); ok {
		t.Fatal("anonymous identity must be reported as missing")
	}
}
