package broadcast

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBroadcaster_Subscribe(t *testing.T) {
	t.Run("subscribe creates active subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)
		require.NotNil(t, sub)
		require.NotNil(t, sub.Receive(ctx))
		assert.Equal(t, 1, b.Len())
	})

	t.Run("subscribe after close returns closed subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())

		ctx := context.Background()
		sub := b.Subscribe(ctx)
		require.NotNil(t, sub)

		_, ok := <-sub.Receive(ctx)
		assert.False(t, ok)
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		cancel()

		require.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, 5*time.Millisecond)

		_, err := b.Broadcast(context.Background(), "test")
		require.NoError(t, err)

		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})

	t.Run("replay delivers latest message to late subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10, WithReplay())
		defer b.Close()

		ctx := context.Background()
		_, err := b.Broadcast(ctx, "first")
		require.NoError(t, err)
		_, err = b.Broadcast(ctx, "second")
		require.NoError(t, err)

		sub := b.Subscribe(ctx)
		msg := <-sub.Receive(ctx)
		assert.Equal(t, "second", msg.Data)
		assert.Equal(t, uint64(2), msg.Seq)
	})

	t.Run("no replay without option", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx := context.Background()
		_, err := b.Broadcast(ctx, "first")
		require.NoError(t, err)

		sub := b.Subscribe(ctx)
		select {
		case msg := <-sub.Receive(ctx):
			t.Fatalf("unexpected message: %v", msg)
		case <-time.After(20 * time.Millisecond):
		}
	})
}

func TestMemoryBroadcaster_Broadcast(t *testing.T) {
	t.Run("broadcast to multiple subscribers", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](10)
		defer b.Close()

		ctx := context.Background()
		subs := make([]Subscriber[int], 5)
		for i := range subs {
			subs[i] = b.Subscribe(ctx)
		}

		seq, err := b.Broadcast(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), seq)

		for i, sub := range subs {
			select {
			case received := <-sub.Receive(ctx):
				assert.Equal(t, 42, received.Data, "subscriber %d", i)
			case <-time.After(100 * time.Millisecond):
				t.Fatalf("subscriber %d timeout", i)
			}
		}
	})

	t.Run("broadcast after close fails", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())

		_, err := b.Broadcast(context.Background(), "test")
		assert.ErrorIs(t, err, ErrClosed)
	})

	t.Run("slow subscriber keeps the newest messages", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](2)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)

		for i := range 10 {
			_, err := b.Broadcast(ctx, i)
			require.NoError(t, err)
		}

		first := <-sub.Receive(ctx)
		second := <-sub.Receive(ctx)
		assert.Equal(t, 8, first.Data)
		assert.Equal(t, 9, second.Data)
		assert.Equal(t, 1, b.Len(), "slow subscriber must stay subscribed")
	})

	t.Run("closed subscriber is removed on next broadcast", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](2)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		require.NoError(t, sub.Close())

		_, err := b.Broadcast(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 0, b.Len())
	})
}

func TestMemoryBroadcaster_Close(t *testing.T) {
	t.Run("close closes all subscribers", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)

		ctx := context.Background()
		subs := make([]Subscriber[string], 3)
		for i := range subs {
			subs[i] = b.Subscribe(ctx)
		}

		require.NoError(t, b.Close())

		for i, sub := range subs {
			_, ok := <-sub.Receive(ctx)
			assert.False(t, ok, "subscriber %d channel should be closed", i)
		}
	})

	t.Run("close does not wait for live contexts", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		b.Subscribe(ctx)

		done := make(chan struct{})
		go func() {
			_ = b.Close()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Close blocked on subscriber context")
		}
	})

	t.Run("double close is safe", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())
		require.NoError(t, b.Close())
	})
}

func TestMemoryBroadcaster_Ordering(t *testing.T) {
	b := NewMemoryBroadcaster[int](1000)
	defer b.Close()

	ctx := context.Background()
	subA := b.Subscribe(ctx)
	subB := b.Subscribe(ctx)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := range 50 {
				_, err := b.Broadcast(ctx, base*1000+j)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	drain := func(sub Subscriber[int]) []uint64 {
		var seqs []uint64
		for len(seqs) < 500 {
			msg := <-sub.Receive(ctx)
			seqs = append(seqs, msg.Seq)
		}
		return seqs
	}

	seqA := drain(subA)
	seqB := drain(subB)
	assert.Equal(t, seqA, seqB, "all subscribers observe the same order")
	for i := 1; i < len(seqA); i++ {
		assert.Less(t, seqA[i-1], seqA[i])
	}
}

func BenchmarkMemoryBroadcaster_Broadcast(b *testing.B) {
	broadcaster := NewMemoryBroadcaster[string](100)
	defer broadcaster.Close()

	ctx := context.Background()
	for range 10 {
		sub := broadcaster.Subscribe(ctx)
		go func(s Subscriber[string]) {
			for range s.Receive(ctx) {
			}
		}(sub)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = broadcaster.Broadcast(ctx, "benchmark")
		}
	})
}
