//go:build windows

package patchingo

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// osModules resolves module bases through the Windows loader.
type osModules struct{}

func (osModules) ModuleBase(name string) (uintptr, error) {
	var pname *uint16
	if name != "" {
		p, err := windows.UTF16PtrFromString(name)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrModuleLookup, err)
		}
		pname = p
	}
	var h windows.Handle
	if err := windows.GetModuleHandleEx(0, pname, &h); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrModuleLookup, err)
	}
	return uintptr(h), nil
}

// ProcAddress resolves an exported procedure from a system DLL.
func ProcAddress(dll, proc string) (uintptr, error) {
	p := windows.NewLazySystemDLL(dll).NewProc(proc)
	if err := p.Find(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrModuleLookup, err)
	}
	return p.Addr(), nil
}
