package session

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/eapd/pkg/async"
)

// Race runs flow and waits up to timeout for it to finish. If the deadline
// passes first, onTimeout is called (typically to dispatch a failure event)
// and ErrFlowTimeout is returned. The flow itself is not cancelled: events it
// emits later are still dispatched, and the last one applied wins.
// A non-positive timeout waits for flow to finish.
//
// If ctx is already done, flow is not started; onTimeout is called so the
// caller still sees a terminal event, and ctx.Err() is returned.
func Race(ctx context.Context, timeout time.Duration, flow, onTimeout func(context.Context)) error {
	if err := ctx.Err(); err != nil {
		if onTimeout != nil {
			onTimeout(ctx)
		}
		return err
	}

	future := async.Go(ctx, func(ctx context.Context) (struct{}, error) {
		flow(ctx)
		return struct{}{}, nil
	})

	if timeout <= 0 {
		_, err := future.AwaitContext(ctx)
		return err
	}

	_, err := future.AwaitWithTimeout(timeout)
	if errors.Is(err, async.ErrTimeout) {
		if onTimeout != nil {
			onTimeout(ctx)
		}
		return ErrFlowTimeout
	}
	return err
}
