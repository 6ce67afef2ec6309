package eventbus

import (
	"testing"
	"time"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	b := New()
	defer b.Close()
	sub := b.Subscribe(4)

	b.Publish("hello")
	select {
	case got := <-sub:
		if got != "hello" {
			t.Fatalf("got %v", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("event not delivered")
	}
}

func TestBus_PublishNeverBlocks(t *testing.T) {
	b := New()
	defer b.Close()
	b.Subscribe(1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish(i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked on a full subscriber")
	}
}

func TestBus_UnsubscribeClosesChannel(t *testing.T) {
	b := New()
	defer b.Close()
	sub := b.Subscribe(0)
	b.Unsubscribe(sub)
	if _, ok := <-sub; ok {
		t.Fatalf("channel must be closed after unsubscribe")
	}
	// Idempotent.
	b.Unsubscribe(sub)
}

func TestBus_CloseIsFinal(t *testing.T) {
	b := New()
	sub := b.Subscribe(0)
	b.Close()
	if _, ok := <-sub; ok {
		t.Fatalf("channel must be closed after bus close")
	}
	b.Publish("ignored")
	late := b.Subscribe(0)
	if _, ok := <-late; ok {
		t.Fatalf("subscribing to a closed bus must yield a closed channel")
	}
}
