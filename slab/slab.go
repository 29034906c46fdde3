// Package slab provides a value slab that lends tagged references.
//
// A tagged reference borrows its target; it never owns it. Slab supplies the
// owner: it stores values of T in fixed-size chunks and hands out tagged
// references to the stored copies. A chunk is never reallocated, so the
// address behind a lent reference stays valid for the life of the slab.
//
// # Concurrency Model
//
// Slab is not safe for concurrent use. Lend from one goroutine; the shared
// references it produces may then be read from any number of goroutines,
// per the usual shared-borrow rules.
package slab

import (
	"log/slog"

	"github.com/hupe1980/tagref"
)

// DefaultChunkSize is the number of values per chunk.
const DefaultChunkSize = 256

type options struct {
	chunkSize int
	logger    *slog.Logger
}

// Option configures a Slab.
type Option func(*options)

// WithChunkSize configures the number of values per chunk.
//
// Larger chunks mean fewer allocations for bulk loads at the cost of a
// larger final-chunk overhang. Values below 1 fall back to the default.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithLogger configures structured logging for slab lifecycle events
// (chunk growth, reset). If nil is passed, logging stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Slab owns values of type T and lends out tagged references to them.
//
// The zero value is not usable; construct with New.
type Slab[T any, W tagref.Word] struct {
	chunks [][]T
	count  int
	opts   options
}

// New creates an empty slab.
func New[T any, W tagref.Word](opts ...Option) *Slab[T, W] {
	o := options{
		chunkSize: DefaultChunkSize,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, fn := range opts {
		fn(&o)
	}

	return &Slab[T, W]{opts: o}
}

// put stores v and returns the stable address of the stored copy.
func (s *Slab[T, W]) put(v T) *T {
	if s.count == len(s.chunks)*s.opts.chunkSize {
		s.chunks = append(s.chunks, make([]T, 0, s.opts.chunkSize))
		s.opts.logger.Debug("slab chunk added",
			"chunks", len(s.chunks),
			"chunk_size", s.opts.chunkSize,
		)
	}

	last := len(s.chunks) - 1
	s.chunks[last] = append(s.chunks[last], v)
	s.count++

	return &s.chunks[last][len(s.chunks[last])-1]
}

// Lend stores v and returns an exclusive tagged reference to the stored
// copy. The reference stays valid until Reset.
func (s *Slab[T, W]) Lend(v T, tag W) tagref.MutRef[T, W] {
	return tagref.TagMut(s.put(v), tag)
}

// LendShared stores v and returns a shared tagged reference to the stored
// copy. The reference stays valid until Reset.
func (s *Slab[T, W]) LendShared(v T, tag W) tagref.Ref[T, W] {
	return tagref.Tag(s.put(v), tag)
}

// Len returns the number of stored values.
func (s *Slab[T, W]) Len() int {
	return s.count
}

// Reset drops all stored values.
//
// Every reference lent before the call is invalidated: it keeps pointing at
// memory the slab no longer accounts for. Do not call Reset while lent
// references are still in use.
func (s *Slab[T, W]) Reset() {
	s.opts.logger.Debug("slab reset",
		"count", s.count,
		"chunks", len(s.chunks),
	)
	s.chunks = nil
	s.count = 0
}
