package services

import (
	"context"
	"errors"

	"github.com/instaguard/instaguard/internal/client/client"
	"github.com/instaguard/instaguard/internal/client/repositories/session"
)

// ErrSessionExpired is returned by any bearer call the server rejected
// with 401. The stored session is gone by the time the caller sees it.
var ErrSessionExpired = errors.New("session expired")

// guard funnels errors from bearer calls so that every 401 is handled the
// same way, whichever view issued the request.
type guard struct {
	client client.Client
	store  session.Repository
}

func (g guard) check(ctx context.Context, err error) error {
	if err == nil || !errors.Is(err, client.ErrUnauthorized) {
		return err
	}

	g.client.SetToken("")
	if cerr := g.store.Clear(ctx); cerr != nil {
		return errors.Join(ErrSessionExpired, cerr)
	}
	return ErrSessionExpired
}

func guarded[T any](ctx context.Context, g guard, call func(ctx context.Context) (T, error)) (T, error) {
	v, err := call(ctx)
	return v, g.check(ctx, err)
}
