// Package async provides small generic helpers for running computations
// asynchronously and waiting for their completion.
//
// The package is centred around the generic type Future that represents the
// eventual result of an asynchronous operation. A Future is obtained from Go
// or Async, which start the supplied function in its own goroutine and return
// immediately. The caller can then wait with Await, bound the wait with
// AwaitWithTimeout or AwaitContext, or poll with IsComplete.
//
// Abandoning a wait does not stop the computation. This matches flows that
// cannot be cancelled once started: the caller decides what to do when the
// deadline passes, and the late result is simply ignored.
//
// # Usage
//
//	future := async.Go(ctx, func(ctx context.Context) (string, error) {
//	    return fetch(ctx)
//	})
//
//	res, err := future.AwaitWithTimeout(5 * time.Second)
//	if errors.Is(err, async.ErrTimeout) {
//	    // synthesize a failure
//	}
package async
