// Package tagref provides tagged references: two-word values that carry the
// address of some T together with one machine word of auxiliary payload.
//
// A tagged reference behaves like a borrow of its target. It does not own the
// value it points at, it never allocates, and every operation on it is total
// and O(1). The payload ("tag") lives in the reference itself, next to the
// address — mutating the tag never writes through the target, and mutating
// the target never disturbs the tag.
//
// # Quick Start
//
//	x := 5
//
//	// Attach a tag to an exclusive reference.
//	r := tagref.TagMut(&x, 9001)
//
//	fmt.Println(r.Tag()) // 9001
//
//	r.SetTag(1337)
//	fmt.Println(r.Tag()) // 1337
//
//	// Strip the tag and hand the plain pointer to code that
//	// only understands *int.
//	p := r.Plain()
//	fmt.Println(*p) // 5
//
// # Shared vs Exclusive
//
// The shared/exclusive split is expressed as two types rather than a runtime
// mode:
//
//   - Ref is the shared variant. It can be freely copied, all copies read the
//     same target, and it has no mutating methods at all.
//   - MutRef is the exclusive variant. It additionally supports SetTag, Set
//     and Mut, and should be handled through a single live *MutRef.
//
// A MutRef weakens to a Ref via Shared (tag preserved) or to a plain pointer
// via Plain (tag discarded). There is no path in the other direction.
// Misuse — writing a tag through the shared variant, say — fails to compile
// because the method does not exist, not because a runtime check fires.
//
// # Tag Types
//
// Any fixed-width plain-data type no wider than a machine word can ride along
// as the tag: integers, uintptr, floats, and named types over them (rune and
// byte included). The Word constraint spells out the full set. The tag is
// stored verbatim; reading it back yields the exact bit pattern that was
// written, NaN payloads and signed zeros included. For converting payloads to
// and from a canonical word-sized bit pattern, see the wordbits subpackage.
//
// The 64-bit members of Word occupy exactly one word on 64-bit targets. On a
// 32-bit target they still work but widen the reference to three words; use
// pointer-width tags (uint, uintptr) where the two-word size matters.
//
// # What This Is Not
//
// Go has no user-extensible reference types, so a Ref is not accepted where a
// *T is expected — that capability gap is inherent to the host language.
// Plain is the bridge: it is always available, never fails, and yields a
// pointer with the same identity as the one the reference was built from.
//
// # Concurrency
//
// A Ref and its target may be read from any number of goroutines
// concurrently, provided nothing writes the target, exactly as with a plain
// pointer. A MutRef admits one live accessor; the package adds no locks and
// no scheduling of its own.
package tagref
