package patchingo

import (
	"fmt"
	"runtime/debug"
	"unsafe"
)

// Scalar is the closed set of value shapes Read and Write move through raw
// memory.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~uintptr
}

func makeSlice(addr, size uintptr) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
}

// Read copies a T out of raw memory, flipping the covering pages to
// read/write/execute for the duration of the access. The address must be
// non-zero and aligned for T; both are checked before any protection change.
// A nil Protector takes the OS default.
func Read[T Scalar](p Protector, addr uintptr) (T, error) {
	var zero T
	if addr == 0 {
		return zero, ErrNullPointer
	}
	if addr%unsafe.Alignof(zero) != 0 {
		return zero, ErrInvalidAlignment
	}
	if p == nil {
		p = osProtector{}
	}
	size := unsafe.Sizeof(zero)
	old, err := p.Change(addr, size, ProtRWX)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrProtectionChange, err)
	}
	var v T
	ferr := guarded(func() { v = *(*T)(unsafe.Pointer(addr)) })
	if rerr := p.Restore(addr, size, old); rerr != nil {
		return zero, fmt.Errorf("%w: %v", ErrProtectionRestore, rerr)
	}
	if ferr != nil {
		return zero, ferr
	}
	return v, nil
}

// Write stores a T into raw memory under the same page-flip discipline as
// Read. If the protection change fails nothing is written; if the store
// lands but the restore fails, ErrProtectionRestore comes back and the value
// is in memory regardless.
func Write[T Scalar](p Protector, addr uintptr, v T) error {
	var zero T
	if addr == 0 {
		return ErrNullPointer
	}
	if addr%unsafe.Alignof(zero) != 0 {
		return ErrInvalidAlignment
	}
	if p == nil {
		p = osProtector{}
	}
	size := unsafe.Sizeof(zero)
	old, err := p.Change(addr, size, ProtRWX)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProtectionChange, err)
	}
	ferr := guarded(func() { *(*T)(unsafe.Pointer(addr)) = v })
	if rerr := p.Restore(addr, size, old); rerr != nil {
		return fmt.Errorf("%w: %v", ErrProtectionRestore, rerr)
	}
	return ferr
}

// readBytes snapshots n raw bytes starting at addr.
func readBytes(p Protector, addr uintptr, n int) ([]byte, error) {
	if addr == 0 {
		return nil, ErrNullPointer
	}
	if p == nil {
		p = osProtector{}
	}
	old, err := p.Change(addr, uintptr(n), ProtRWX)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProtectionChange, err)
	}
	buf := make([]byte, n)
	ferr := guarded(func() { copy(buf, makeSlice(addr, uintptr(n))) })
	if rerr := p.Restore(addr, uintptr(n), old); rerr != nil {
		return nil, fmt.Errorf("%w: %v", ErrProtectionRestore, rerr)
	}
	if ferr != nil {
		return nil, ferr
	}
	return buf, nil
}

// writeBytes lands data at addr as one contiguous protected write, so a
// multi-byte sequence never goes through per-byte protect cycles.
func writeBytes(p Protector, addr uintptr, data []byte) error {
	if addr == 0 {
		return ErrNullPointer
	}
	if p == nil {
		p = osProtector{}
	}
	size := uintptr(len(data))
	old, err := p.Change(addr, size, ProtRWX)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProtectionChange, err)
	}
	ferr := guarded(func() { copy(makeSlice(addr, size), data) })
	if rerr := p.Restore(addr, size, old); rerr != nil {
		return fmt.Errorf("%w: %v", ErrProtectionRestore, rerr)
	}
	return ferr
}

// guarded runs f with hardware memory faults turned into an error instead of
// a program abort. A fault here means the protection bits allowed the access
// but no backed mapping was behind the address; faults outside that class
// still crash the process.
func guarded(f func()) (err error) {
	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)
	defer func() {
		if recover() != nil {
			err = ErrFaultedAccess
		}
	}()
	f()
	return nil
}
