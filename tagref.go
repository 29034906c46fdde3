package tagref

// Word is the set of types that can ride along as a tag payload.
//
// A tag has to fit in the one machine word that sits next to the target's
// address, so Word admits fixed-width integers, uintptr, floats, and any
// named type whose underlying type is one of them (rune is ~int32, byte is
// ~uint8).
type Word interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Ref is a shared tagged reference to a value of type T.
//
// It is the address of the target plus the tag, nothing else. Copying a Ref
// copies both words; all copies observe the same target. Ref has no mutating
// methods — writing the tag or the target requires a MutRef.
//
// The zero Ref has a nil target and behaves like a nil pointer: Tag and
// Plain work, Deref panics.
type Ref[T any, W Word] struct {
	target *T
	tag    W
}

// Tag attaches a tag to a shared reference.
//
// The returned Ref refers to the same target as the input pointer and
// reports the given tag on first read. Construction is total: every
// representable tag value is accepted verbatim.
func Tag[T any, W Word](target *T, tag W) Ref[T, W] {
	return Ref[T, W]{target: target, tag: tag}
}

// Tag returns the tag payload, bit-for-bit as it was last written.
func (r Ref[T, W]) Tag() W {
	return r.tag
}

// Deref returns a copy of the target value.
func (r Ref[T, W]) Deref() T {
	return *r.target
}

// Plain strips the tag and returns the plain reference to the target.
//
// The result has the same identity as the pointer the Ref was built from.
// It is a shared borrow: the caller must not write through it while other
// readers of the same target are live.
func (r Ref[T, W]) Plain() *T {
	return r.target
}

// MutRef is an exclusive tagged reference to a value of type T.
//
// It extends Ref's read surface with tag mutation (SetTag) and target
// mutation (Set, Mut). A MutRef should be handled through a single live
// *MutRef; its mutating methods take a pointer receiver so that writes are
// visible to that one accessor and copies are not silently diverged.
type MutRef[T any, W Word] struct {
	target *T
	tag    W
}

// TagMut attaches a tag to an exclusive reference.
//
// The returned MutRef refers to the same target as the input pointer. The
// caller hands over its exclusive access: the input pointer must not be used
// for writing while the MutRef is live.
func TagMut[T any, W Word](target *T, tag W) MutRef[T, W] {
	return MutRef[T, W]{target: target, tag: tag}
}

// Tag returns the tag payload, bit-for-bit as it was last written.
func (r *MutRef[T, W]) Tag() W {
	return r.tag
}

// SetTag overwrites the tag in place.
//
// Only the tag word changes; the target and its pointee are untouched.
func (r *MutRef[T, W]) SetTag(tag W) {
	r.tag = tag
}

// Deref returns a copy of the target value.
func (r *MutRef[T, W]) Deref() T {
	return *r.target
}

// Set writes a new value through the target.
//
// The tag is untouched.
func (r *MutRef[T, W]) Set(v T) {
	*r.target = v
}

// Mut returns the plain exclusive reference to the target.
//
// Writing through the result is the sanctioned way to mutate the pointee;
// the tag is never implicitly touched by that path. The result must not
// outlive the MutRef's own access to the target.
func (r *MutRef[T, W]) Mut() *T {
	return r.target
}

// Plain strips the tag and returns the plain reference to the target,
// exclusive like the MutRef itself.
func (r *MutRef[T, W]) Plain() *T {
	return r.target
}

// Shared weakens the MutRef into a shared Ref, preserving the tag.
//
// The downgrade is one-way: nothing turns a Ref back into a MutRef. While
// any copy of the returned Ref is live, the MutRef must not be used for
// writing.
func (r *MutRef[T, W]) Shared() Ref[T, W] {
	return Ref[T, W]{target: r.target, tag: r.tag}
}
