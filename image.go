package patchingo

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Executable image layout, bit-exact: a DOS header whose e_lfanew field
// points at the NT header, then the section table right after the optional
// header.
const (
	dosMagic       = 0x5A4D // "MZ"
	ntMagic        = 0x4550 // "PE\0\0"
	lfanewOffset   = 0x3C
	dosHeaderSize  = 0x40
	ntHeaderSize   = 24 // signature + file header
	sectionHdrSize = 40
)

var textSectionPrefix = []byte(".text")

// TextRegion is a point-in-time snapshot of an image's code section.
// Data[i] holds the byte at address Base+i. Code modified after the snapshot
// makes addresses derived from it stale; nothing here detects that.
type TextRegion struct {
	Data []byte
	Base uintptr
}

// ModuleLocator resolves a loaded module's base address. An empty name means
// the current process's own executable image.
type ModuleLocator interface {
	ModuleBase(name string) (uintptr, error)
}

// TextSection walks the in-memory image headers at base and snapshots the
// first section whose name starts with ".text". Malformed magics and a
// missing code section come back as typed errors, never a process abort.
func TextSection(base uintptr) (*TextRegion, error) {
	if base == 0 {
		return nil, ErrNullPointer
	}
	dos := makeSlice(base, dosHeaderSize)
	if binary.LittleEndian.Uint16(dos) != dosMagic {
		return nil, fmt.Errorf("%w: bad DOS magic", ErrInvalidImage)
	}
	ntOffset := uintptr(binary.LittleEndian.Uint32(dos[lfanewOffset:]))
	nt := makeSlice(base+ntOffset, ntHeaderSize)
	if binary.LittleEndian.Uint32(nt) != ntMagic {
		return nil, fmt.Errorf("%w: bad NT magic", ErrInvalidImage)
	}
	numSections := int(binary.LittleEndian.Uint16(nt[6:]))
	optionalSize := uintptr(binary.LittleEndian.Uint16(nt[20:]))
	table := base + ntOffset + ntHeaderSize + optionalSize
	for i := 0; i < numSections; i++ {
		hdr := makeSlice(table+uintptr(i*sectionHdrSize), sectionHdrSize)
		if !bytes.HasPrefix(hdr[:8], textSectionPrefix) {
			continue
		}
		va := uintptr(binary.LittleEndian.Uint32(hdr[12:]))
		size := int(binary.LittleEndian.Uint32(hdr[16:])) // SizeOfRawData
		data := make([]byte, size)
		copy(data, makeSlice(base+va, uintptr(size)))
		return &TextRegion{Data: data, Base: base + va}, nil
	}
	return nil, ErrNoTextSection
}
