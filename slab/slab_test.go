package slab

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLend(t *testing.T) {
	s := New[int, uint]()

	r := s.Lend(5, 9001)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, uint(9001), r.Tag())
	assert.Equal(t, 5, r.Deref())
}

func TestLendShared(t *testing.T) {
	s := New[string, rune]()

	r := s.LendShared("hello", '?')

	assert.Equal(t, '?', r.Tag())
	assert.Equal(t, "hello", r.Deref())
}

func TestAddressesStableAcrossGrowth(t *testing.T) {
	s := New[int, uint](WithChunkSize(2))

	// Keep plain pointers from early lends, then force several chunk
	// additions and check the old pointers still see their values.
	ptrs := make([]*int, 0, 10)
	for i := range 10 {
		r := s.Lend(i, uint(i))
		ptrs = append(ptrs, r.Plain())
	}

	require.Equal(t, 10, s.Len())
	for i, p := range ptrs {
		assert.Equal(t, i, *p)
	}

	// Writes through an early reference land in the stored copy, not in a
	// relocated one.
	*ptrs[0] = 42
	assert.Equal(t, 42, *ptrs[0])
}

func TestLendCopies(t *testing.T) {
	s := New[int, uint]()

	x := 5
	r := s.Lend(x, 1)
	x = 6

	// The slab stores a copy; the caller's variable is independent.
	assert.Equal(t, 5, r.Deref())
}

func TestReset(t *testing.T) {
	s := New[int, uint](WithChunkSize(4))

	for i := range 9 {
		s.Lend(i, 0)
	}
	require.Equal(t, 9, s.Len())

	s.Reset()
	assert.Equal(t, 0, s.Len())

	// The slab is reusable after a reset.
	r := s.Lend(7, 7)
	assert.Equal(t, 7, r.Deref())
	assert.Equal(t, 1, s.Len())
}

func TestWithChunkSizeInvalid(t *testing.T) {
	s := New[int, uint](WithChunkSize(0))

	assert.Equal(t, DefaultChunkSize, s.opts.chunkSize)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := New[int, uint](WithChunkSize(1), WithLogger(logger))
	s.Lend(1, 0)
	s.Reset()

	out := buf.String()
	assert.Contains(t, out, "slab chunk added")
	assert.Contains(t, out, "slab reset")
}
