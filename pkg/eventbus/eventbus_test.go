package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type pingEvent struct{ n int }

func (pingEvent) Name() string { return "ping" }

func TestBus_PublishReachesEverySubscriber(t *testing.T) {
	bus := New(zap.NewNop())

	var mu sync.Mutex
	var got []int
	record := func(ctx context.Context, e Event) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(pingEvent).n)
		return nil
	}
	bus.Subscribe("ping", record)
	bus.Subscribe("ping", record)
	bus.Subscribe("other", func(ctx context.Context, e Event) error {
		t.Error("unexpected listener call")
		return nil
	})

	bus.Publish(context.Background(), pingEvent{n: 7})
	bus.Wait()

	assert.Equal(t, []int{7, 7}, got)
}

func TestBus_ListenerErrorDoesNotStopOthers(t *testing.T) {
	bus := New(zap.NewNop())

	called := make(chan struct{}, 1)
	bus.Subscribe("ping", func(ctx context.Context, e Event) error { return errors.New("falla") })
	bus.Subscribe("ping", func(ctx context.Context, e Event) error {
		called <- struct{}{}
		return nil
	})

	bus.Publish(context.Background(), pingEvent{})
	bus.Wait()

	assert.Len(t, called, 1)
}
