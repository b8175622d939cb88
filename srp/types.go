// SPDX-License-Identifier: MIT
// Package: solid/srp
//
// types.go — sequences, options and sentinel errors for the journal.
//
// Contract:
//   • Option constructors PANIC on nil inputs (programmer error).
//   • Journal methods never panic.
//   • No hidden globals: numbering flows through a Sequence.

package srp

import (
	"errors"
	"sync/atomic"
)

// ErrNotImplemented is returned by Journal.Save on every call.
var ErrNotImplemented = errors.New("srp: not implemented")

// Sequence hands out entry numbers. Implementations must return strictly
// increasing values.
type Sequence interface {
	Next() int
}

// SequenceFunc adapts an ordinary function to the Sequence interface.
type SequenceFunc func() int

// Next calls f().
func (f SequenceFunc) Next() int { return f() }

// Counter is a Sequence starting at 1. It is safe for concurrent use, so one
// Counter may be shared by several journals.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a Counter whose first Next() is 1.
func NewCounter() *Counter {
	return &Counter{}
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() int {
	return int(c.n.Add(1))
}

// Option configures a Journal at construction time.
type Option func(*journalConfig)

type journalConfig struct {
	seq Sequence
}

// WithSequence makes the journal draw entry numbers from seq.
// Panics on nil, including a nil *Counter.
func WithSequence(seq Sequence) Option {
	if seq == nil {
		panic("srp: WithSequence(nil)")
	}
	if c, ok := seq.(*Counter); ok && c == nil {
		panic("srp: WithSequence(nil *Counter)")
	}
	return func(c *journalConfig) {
		c.seq = seq
	}
}
