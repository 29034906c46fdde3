// Package tagindex provides a Roaring Bitmap inverted index over tag words.
//
// Given many slots (slab positions, array indices, record numbers) each
// carrying a tag, the index answers "which slots carry tag w" as cheap set
// operations instead of a linear scan.
//
// The index stores tag words by value; it holds no references and does not
// participate in the lifetime of any tagged reference.
package tagindex

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/tagref"
)

// Postings is the set of slots carrying some tag.
// It wraps a 32-bit Roaring Bitmap.
type Postings struct {
	rb *roaring.Bitmap
}

// NewPostings creates an empty postings set.
func NewPostings() *Postings {
	return &Postings{rb: roaring.New()}
}

// Add adds a slot to the set.
func (p *Postings) Add(slot uint32) {
	p.rb.Add(slot)
}

// Remove removes a slot from the set.
func (p *Postings) Remove(slot uint32) {
	p.rb.Remove(slot)
}

// Contains checks if a slot is in the set.
func (p *Postings) Contains(slot uint32) bool {
	return p.rb.Contains(slot)
}

// IsEmpty returns true if the set is empty.
func (p *Postings) IsEmpty() bool {
	return p.rb.IsEmpty()
}

// Cardinality returns the number of slots in the set.
func (p *Postings) Cardinality() uint64 {
	return p.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (p *Postings) Clone() *Postings {
	return &Postings{rb: p.rb.Clone()}
}

// And computes the intersection with another set.
func (p *Postings) And(other *Postings) {
	p.rb.And(other.rb)
}

// Or computes the union with another set.
func (p *Postings) Or(other *Postings) {
	p.rb.Or(other.rb)
}

// Iterator returns an iterator over the set in ascending slot order.
func (p *Postings) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := p.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Index maps tag words to the slots that carry them.
//
// W follows the same constraint as the tag of a tagged reference, so an
// index can be keyed directly by the words read back via Tag.
//
// Not safe for concurrent mutation; concurrent Lookup is fine.
type Index[W tagref.Word] struct {
	postings map[W]*Postings
}

// New creates an empty index.
func New[W tagref.Word]() *Index[W] {
	return &Index[W]{
		postings: make(map[W]*Postings),
	}
}

// Add records that slot carries tag.
func (ix *Index[W]) Add(tag W, slot uint32) {
	p, ok := ix.postings[tag]
	if !ok {
		p = NewPostings()
		ix.postings[tag] = p
	}
	p.Add(slot)
}

// Discard removes the slot from the tag's postings. Removing the last slot
// drops the tag from the index entirely.
func (ix *Index[W]) Discard(tag W, slot uint32) {
	p, ok := ix.postings[tag]
	if !ok {
		return
	}
	p.Remove(slot)
	if p.IsEmpty() {
		delete(ix.postings, tag)
	}
}

// Lookup returns the slots carrying tag. The result is a copy; mutating it
// does not affect the index.
func (ix *Index[W]) Lookup(tag W) *Postings {
	if p, ok := ix.postings[tag]; ok {
		return p.Clone()
	}
	return NewPostings()
}

// AnyOf returns the union of the postings of all given tags.
func (ix *Index[W]) AnyOf(tags ...W) *Postings {
	out := NewPostings()
	for _, tag := range tags {
		if p, ok := ix.postings[tag]; ok {
			out.Or(p)
		}
	}
	return out
}

// Cardinality returns the number of slots carrying tag.
func (ix *Index[W]) Cardinality(tag W) uint64 {
	if p, ok := ix.postings[tag]; ok {
		return p.Cardinality()
	}
	return 0
}

// Len returns the number of distinct tags in the index.
func (ix *Index[W]) Len() int {
	return len(ix.postings)
}

// Tags returns an iterator over the distinct tag words, in map order.
func (ix *Index[W]) Tags() iter.Seq[W] {
	return func(yield func(W) bool) {
		for tag := range ix.postings {
			if !yield(tag) {
				return
			}
		}
	}
}
