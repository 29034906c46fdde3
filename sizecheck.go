package tagref

import "unsafe"

// A tagged reference with a pointer-width tag is exactly two machine words,
// on every target. Both directions of the inequality are pinned so a layout
// regression fails to compile.
const (
	wordSize   = unsafe.Sizeof(uintptr(0))
	refSize    = unsafe.Sizeof(Ref[byte, uintptr]{})
	mutRefSize = unsafe.Sizeof(MutRef[byte, uintptr]{})
)

var (
	_ [2*wordSize - refSize]struct{}
	_ [refSize - 2*wordSize]struct{}
	_ [2*wordSize - mutRefSize]struct{}
	_ [mutRefSize - 2*wordSize]struct{}
)
