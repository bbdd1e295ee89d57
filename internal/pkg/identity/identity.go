package identity

import (
	"context"

	"fulfillment/internal/entities"
)

type ctxKey struct{}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

// FromContext актор, положенный middleware аутентификации.
func FromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(entities.Actor)
	return actor, ok
}
