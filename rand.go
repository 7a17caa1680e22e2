package Go_Treaps

import (
	_ "runtime"
	_ "unsafe"
)

//go:linkname CheapRand runtime.cheaprand
//go:nosplit
func CheapRand() uint32

// CheapRand64 widens CheapRand to 64 bits. It draws from the runtime's
// per-thread generator, so it needs no seeding or locking and is not
// reproducible between runs.
func CheapRand64() uint64 {
	return uint64(CheapRand())<<32 | uint64(CheapRand())
}
