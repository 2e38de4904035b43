// Package broadcast provides type-safe, in-order message fan-out with
// subscriber management.
//
// The package uses Go generics to keep messages strongly typed. It is built
// for state snapshots: the sender never blocks, messages reach every
// subscriber in broadcast order, and a subscriber that falls behind loses its
// oldest pending messages rather than the newest one.
//
// Basic usage:
//
//	b := broadcast.NewMemoryBroadcaster[string](10, broadcast.WithReplay())
//	defer b.Close()
//
//	ctx := context.Background()
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	seq, _ := b.Broadcast(ctx, "hello")
//
//	for msg := range sub.Receive(ctx) {
//		fmt.Println(msg.Seq, msg.Data)
//	}
//
// Subscribers are removed when their context is cancelled, when they are
// closed, or when the broadcaster is closed.
package broadcast
