package guard

import (
	"context"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

type validatedContextKey struct{}

// SetValidated stores the validated context in ctx.
func SetValidated(ctx context.Context, validated validator.Context) context.Context {
	return context.WithValue(ctx, validatedContextKey{}, validated)
}

// Validated returns the context validated by a Guard earlier in the chain.
func Validated(ctx context.Context) (validator.Context, bool) {
	v, ok := ctx.Value(validatedContextKey{}).(validator.Context)
	return v, ok
}

// MustValidated is Validated for handlers that are only mounted behind a Guard.
func MustValidated(ctx context.Context) validator.Context {
	v, ok := Validated(ctx)
	if !ok {
		panic(ErrNoValidatedContext)
	}
	return v
}
