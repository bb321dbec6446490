package patchingo

import (
	"github.com/croian/patchingo/internal/objsym"
)

// ModuleSymbols reads the symbol table of the object file at path, mapping
// symbol names to their values. Combined with a module base this resolves
// function entry points without a byte signature.
func ModuleSymbols(path string) (map[string]uintptr, error) {
	return objsym.Read(path)
}
