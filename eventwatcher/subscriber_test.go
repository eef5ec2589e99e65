package eventwatcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenericSubscriberPublishesInOrder(t *testing.T) {
	sut := NewGenericSubscriberImpl[int]()
	a := sut.Subscribe("a")
	b := sut.Subscribe("b")
	require.ElementsMatch(t, []string{"a", "b"}, sut.Subscribers())

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, sut.Publish(ctx, i))
	}
	for i := 0; i < 3; i++ {
		require.Equal(t, i, <-a)
		require.Equal(t, i, <-b)
	}
}

func TestGenericSubscriberPublishBlockedByFullSubscriber(t *testing.T) {
	sut := NewGenericSubscriberImpl[int]()
	_ = sut.Subscribe("slow")
	ctx := context.Background()
	for i := 0; i < subscriberBuffer; i++ {
		require.NoError(t, sut.Publish(ctx, i))
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, sut.Publish(ctx, subscriberBuffer), context.DeadlineExceeded)
}

func TestGenericSubscriberSubscribeWhilePublishBlocked(t *testing.T) {
	sut := NewGenericSubscriberImpl[int]()
	slow := sut.Subscribe("slow")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for i := 0; i < subscriberBuffer; i++ {
		require.NoError(t, sut.Publish(ctx, i))
	}

	published := make(chan error, 1)
	go func() {
		published <- sut.Publish(ctx, subscriberBuffer)
	}()

	subscribed := make(chan struct{})
	go func() {
		_ = sut.Subscribe("late")
		close(subscribed)
	}()
	select {
	case <-subscribed:
	case <-time.After(time.Second):
		t.Fatal("Subscribe blocked by a pending Publish")
	}
	require.ElementsMatch(t, []string{"slow", "late"}, sut.Subscribers())

	require.Equal(t, 0, <-slow)
	require.NoError(t, <-published)
}
