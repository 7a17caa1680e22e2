package Treaps

import "fmt"

// BoundsError is the panic value of rank arguments beyond what the
// operation allows, such as an Iterator moved past the end position or
// KthKey at Size.
type BoundsError struct {
	Index, Size uint
}

func (e BoundsError) Error() string {
	return fmt.Sprintf("rank %d out of range for size %d", e.Index, e.Size)
}

// InvalidSliceError is the panic value of From and FromC when safe is set
// and two neighboring elements aren't in strictly ascending order.
type InvalidSliceError struct {
	Prev, Cur any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending: %v isn't before %v", e.Prev, e.Cur)
}
