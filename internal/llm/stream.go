// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"sync"
)

// TextStream delivers generated text incrementally. The sequence is finite:
// Chunks() closes when the provider signals completion, the stream fails, or
// the consumer closes early. It is not restartable.
type TextStream interface {
	// Chunks returns the channel of text fragments in arrival order.
	Chunks() <-chan string

	// Err reports the terminal failure, if any. Valid after Chunks closes.
	Err() error

	// Close abandons the stream early and releases the underlying request.
	// Safe to call more than once and after normal completion.
	Close()
}

// Stream is the TextStream produced by Client. One producer goroutine reads
// provider deltas and forwards them; closing cancels the producer's context
// so the transport tears down the remote call.
type Stream struct {
	ch     chan string
	cancel context.CancelFunc

	mu  sync.Mutex
	err error

	closeOnce sync.Once
}

func newStream(cancel context.CancelFunc) *Stream {
	return &Stream{
		ch:     make(chan string),
		cancel: cancel,
	}
}

// Chunks returns the channel of text fragments.
func (s *Stream) Chunks() <-chan string {
	return s.ch
}

// Err reports the failure that terminated the stream, or nil after a clean
// finish or an early Close.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close cancels the producer and drains remaining fragments so the producer
// goroutine always exits.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		for range s.ch {
		}
	})
}

func (s *Stream) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
