// Package objsym extracts symbol tables from object files on disk, so
// callers can resolve function addresses without a byte signature.
package objsym

import (
	"fmt"
	"io"
	"os"
)

type rawFile interface {
	symbols() (map[string]uintptr, error)
}

var openers = []func(io.ReaderAt) (rawFile, error){
	openElf,
	openMacho,
	openPE,
}

// Read extracts the symbol table from the object file at path, trying each
// known format in turn. Values are image-relative for ELF and PE, absolute
// virtual addresses for Mach-O.
func Read(path string) (map[string]uintptr, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	for _, open := range openers {
		raw, err := open(r)
		if err != nil {
			continue
		}
		return raw.symbols()
	}
	return nil, fmt.Errorf("open %s: unrecognized object file", path)
}
