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
	t.Run("subscriber receives broadcast", func(t *testing.T) {
		b := NewMemoryBroadcaster[string]()
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)
		require.NoError(t, b.Broadcast(ctx, Message[string]{Data: "hello"}))

		select {
		case msg := <-sub.Receive(ctx):
			assert.Equal(t, "hello", msg.Data)
		case <-time.After(time.Second):
			t.Fatal("message not delivered")
		}
	})

	t.Run("subscribe after close returns closed subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string]()
		require.NoError(t, b.Close())

		sub := b.Subscribe(context.Background())
		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		b := NewMemoryBroadcaster[string]()
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		require.Equal(t, 1, b.Len())

		cancel()

		select {
		case _, ok := <-sub.Receive(context.Background()):
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("subscriber not closed after cancel")
		}
		assert.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, 10*time.Millisecond)
	})
}

func TestMemoryBroadcaster_LatestValueWins(t *testing.T) {
	b := NewMemoryBroadcaster[int]()
	defer b.Close()

	ctx := context.Background()
	sub := b.Subscribe(ctx)

	for i := 1; i <= 10; i++ {
		require.NoError(t, b.Broadcast(ctx, Message[int]{Data: i}))
	}

	msg := <-sub.Receive(ctx)
	assert.Equal(t, 10, msg.Data)

	select {
	case extra := <-sub.Receive(ctx):
		t.Fatalf("unexpected backlog message %d", extra.Data)
	default:
	}
}

func TestMemoryBroadcaster_Close(t *testing.T) {
	b := NewMemoryBroadcaster[string]()
	ctx := context.Background()
	sub1 := b.Subscribe(ctx)
	sub2 := b.Subscribe(ctx)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	_, ok := <-sub1.Receive(ctx)
	assert.False(t, ok)
	_, ok = <-sub2.Receive(ctx)
	assert.False(t, ok)

	assert.ErrorIs(t, b.Broadcast(ctx, Message[string]{Data: "late"}), ErrClosed)
}

func TestMemoryBroadcaster_SubscriberClose(t *testing.T) {
	b := NewMemoryBroadcaster[string]()
	defer b.Close()

	sub := b.Subscribe(context.Background())
	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())
	assert.Equal(t, 0, b.Len())

	assert.NoError(t, b.Broadcast(context.Background(), Message[string]{Data: "x"}))
}

func TestMemoryBroadcaster_Concurrent(t *testing.T) {
	b := NewMemoryBroadcaster[int]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		sub := b.Subscribe(ctx)
		wg.Add(1)
		go func() {
			defer wg.Done()
			last := 0
			for msg := range sub.Receive(ctx) {
				assert.GreaterOrEqual(t, msg.Data, last)
				last = msg.Data
				if msg.Data == 100 {
					return
				}
			}
		}()
	}

	for i := 1; i <= 100; i++ {
		require.NoError(t, b.Broadcast(ctx, Message[int]{Data: i}))
	}
	wg.Wait()
}
