//go:build windows

package patchingo

import (
	"os"

	"golang.org/x/sys/windows"
)

// osProtector flips page access with VirtualProtect, which reports the old
// flags, so Change returns the real previous protection.
type osProtector struct{}

func (osProtector) Change(addr, size uintptr, prot Protection) (Protection, error) {
	var old uint32
	if err := windows.VirtualProtect(addr, size, winProt(prot), &old); err != nil {
		return ProtNone, err
	}
	return winToProt(old), nil
}

func (osProtector) Restore(addr, size uintptr, prot Protection) error {
	var old uint32
	return windows.VirtualProtect(addr, size, winProt(prot), &old)
}

func winProt(p Protection) uint32 {
	switch p & ProtRWX {
	case ProtRead:
		return windows.PAGE_READONLY
	case ProtRW, ProtWrite:
		return windows.PAGE_READWRITE
	case ProtExec:
		return windows.PAGE_EXECUTE
	case ProtRX:
		return windows.PAGE_EXECUTE_READ
	case ProtRWX, ProtWrite | ProtExec:
		return windows.PAGE_EXECUTE_READWRITE
	default:
		return windows.PAGE_NOACCESS
	}
}

func winToProt(w uint32) Protection {
	switch w & 0xff {
	case windows.PAGE_READONLY:
		return ProtRead
	case windows.PAGE_READWRITE, windows.PAGE_WRITECOPY:
		return ProtRW
	case windows.PAGE_EXECUTE:
		return ProtExec
	case windows.PAGE_EXECUTE_READ:
		return ProtRX
	case windows.PAGE_EXECUTE_READWRITE, windows.PAGE_EXECUTE_WRITECOPY:
		return ProtRWX
	default:
		return ProtNone
	}
}

func init() {
	pageSize = uintptr(os.Getpagesize())
}
