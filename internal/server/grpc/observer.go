package grpc

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var errStreamClosed = errors.New("subscription stream closed")

// streamObserver bridges the notification hub and one Subscribe stream.
// Notify never blocks: a refresh waiting in the mailbox already covers any
// later one.
type streamObserver struct {
	id      uuid.UUID
	mailbox chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newStreamObserver() *streamObserver {
	return &streamObserver{
		id:      uuid.New(),
		mailbox: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (o *streamObserver) Notify(context.Context) error {
	select {
	case <-o.done:
		return errStreamClosed
	default:
	}

	select {
	case o.mailbox <- struct{}{}:
	default:
	}
	return nil
}

func (o *streamObserver) close() {
	o.once.Do(func() { close(o.done) })
}
