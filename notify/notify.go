// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package notify implements a disposable change-notification emitter.
package notify

import (
	"errors"
	"slices"
)

// ErrClosed is reported by the methods of an Emitter after it is closed.
var ErrClosed = errors.New("emitter is closed")

// An Emitter delivers events of type T to a set of subscribers, in the order
// they subscribed. The zero value is ready for use.
//
// An Emitter is not safe for concurrent use by multiple goroutines. Delivery
// is synchronous: Fire returns after every subscriber has been called.
type Emitter[T any] struct {
	subs   []*subscriber[T]
	closed bool
}

type subscriber[T any] struct {
	f      func(T)
	active bool
}

// Subscribe adds f to the subscribers of e and returns a function that
// removes it. The cancel function may be called more than once. If e is
// closed, f is not added and cancel does nothing.
//
// A subscriber added while an event is being delivered does not receive that
// event.
func (e *Emitter[T]) Subscribe(f func(T)) (cancel func()) {
	if e.closed || f == nil {
		return func() {}
	}
	s := &subscriber[T]{f: f, active: true}
	e.subs = append(e.subs, s)
	return func() {
		if !s.active {
			return
		}
		s.active = false
		e.subs = slices.DeleteFunc(e.subs, func(t *subscriber[T]) bool { return t == s })
	}
}

// Fire delivers v to each current subscriber of e. If e is closed, Fire does
// nothing and reports ErrClosed.
//
// A subscriber removed while an event is being delivered is not called for
// that event if it has not already been.
func (e *Emitter[T]) Fire(v T) error {
	if e.closed {
		return ErrClosed
	}
	for _, s := range slices.Clone(e.subs) {
		if s.active {
			s.f(v)
		}
	}
	return nil
}

// Len reports the number of subscribers to e.
func (e *Emitter[T]) Len() int { return len(e.subs) }

// IsClosed reports whether e has been closed.
func (e *Emitter[T]) IsClosed() bool { return e.closed }

// Close removes all subscribers and closes e. Subsequent calls to Fire have
// no effect. Close reports ErrClosed if e was already closed.
func (e *Emitter[T]) Close() error {
	if e.closed {
		return ErrClosed
	}
	for _, s := range e.subs {
		s.active = false
	}
	e.subs, e.closed = nil, true
	return nil
}
