package eventwatcher

import (
	"context"
	"sync"
)

// subscriberBuffer is the number of values a subscriber can lag behind before Publish blocks
const subscriberBuffer = 16

// GenericSubscriber fans out published values to named subscribers
type GenericSubscriber[T any] interface {
	Subscribe(subscriberName string) <-chan T
	Publish(ctx context.Context, data T) error
}

type GenericSubscriberImpl[T any] struct {
	// map of subscribers with names
	subs map[chan T]string
	mu   sync.RWMutex
}

func NewGenericSubscriberImpl[T any]() *GenericSubscriberImpl[T] {
	return &GenericSubscriberImpl[T]{
		subs: make(map[chan T]string),
	}
}

func (g *GenericSubscriberImpl[T]) Subscribe(subscriberName string) <-chan T {
	ch := make(chan T, subscriberBuffer)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subs[ch] = subscriberName
	return ch
}

// Publish delivers data to every subscriber, in publication order.
// It blocks while a subscriber buffer is full, until ctx is done. Subscribers
// added while Publish is blocked get the next value.
func (g *GenericSubscriberImpl[T]) Publish(ctx context.Context, data T) error {
	g.mu.RLock()
	subs := make([]chan T, 0, len(g.subs))
	for ch := range g.subs {
		subs = append(subs, ch)
	}
	g.mu.RUnlock()
	for _, ch := range subs {
		select {
		case ch <- data:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Subscribers returns the names of the current subscribers
func (g *GenericSubscriberImpl[T]) Subscribers() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, 0, len(g.subs))
	for _, name := range g.subs {
		names = append(names, name)
	}
	return names
}
