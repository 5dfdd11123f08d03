package services

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silentBroker accepts TCP connections and never answers the AMQP handshake.
func silentBroker(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var mu sync.Mutex
	var conns []net.Conn
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})
	return "amqp://guest:guest@" + ln.Addr().String() + "/"
}

func TestPublishDoesNotWaitForSilentBroker(t *testing.T) {
	p := newRabbitMQPublisher(silentBroker(t), 16, 300*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = p.Publish(ctx, EventVenueCreated, EntityEvent{ID: i + 1, Name: "The Musical Hop"})
		}(i)
	}
	wg.Wait()

	assert.Less(t, time.Since(start), 100*time.Millisecond)
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])

	// one bounded dial, then the second event is dropped during the backoff
	closeStart := time.Now()
	require.NoError(t, p.Close())
	assert.Less(t, time.Since(closeStart), 2*time.Second)
}

func TestPublishReportsFullQueue(t *testing.T) {
	// no worker drains this queue
	p := &RabbitMQPublisher{queue: make(chan outgoingEvent, 1), done: make(chan struct{})}

	require.NoError(t, p.Publish(context.Background(), EventArtistCreated, EntityEvent{ID: 1}))
	err := p.Publish(context.Background(), EventArtistCreated, EntityEvent{ID: 2})
	assert.ErrorIs(t, err, ErrEventQueueFull)
}

func TestPublishAfterClose(t *testing.T) {
	p := newRabbitMQPublisher(silentBroker(t), 1, 100*time.Millisecond)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	err := p.Publish(context.Background(), EventShowScheduled, ShowScheduledEvent{ShowID: 1})
	assert.ErrorIs(t, err, ErrPublisherClosed)
}
