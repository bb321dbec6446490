//go:build !windows

package patchingo

import "fmt"

// osModules stands in where no loader query is wired up. Scans on these
// platforms need a caller-provided ModuleLocator.
type osModules struct{}

func (osModules) ModuleBase(name string) (uintptr, error) {
	return 0, fmt.Errorf("%w: no module lookup on this platform", ErrModuleLookup)
}
