//go:build !windows

package patchingo

import (
	"golang.org/x/sys/unix"
)

// osProtector flips page access with mprotect. POSIX has no call that reports
// the flags a mapping currently carries, so Change reports the conventional
// read+exec of a mapped text page; Restore applies whatever it is given.
type osProtector struct{}

func (osProtector) Change(addr, size uintptr, prot Protection) (Protection, error) {
	if err := mprotectSpan(addr, size, unixProt(prot)); err != nil {
		return ProtNone, err
	}
	return ProtRX, nil
}

func (osProtector) Restore(addr, size uintptr, prot Protection) error {
	return mprotectSpan(addr, size, unixProt(prot))
}

func mprotectSpan(addr, size uintptr, prot int) error {
	start, length := pageSpan(addr, size)
	for i := uintptr(0); i < length; i += pageSize {
		data := makeSlice(start+i, pageSize)
		if err := unix.Mprotect(data, prot); err != nil {
			return err
		}
	}
	return nil
}

func unixProt(p Protection) int {
	var prot int
	if p&ProtRead != 0 {
		prot |= unix.PROT_READ
	}
	if p&ProtWrite != 0 {
		prot |= unix.PROT_WRITE
	}
	if p&ProtExec != 0 {
		prot |= unix.PROT_EXEC
	}
	return prot
}

func init() {
	pageSize = uintptr(unix.Getpagesize())
}
