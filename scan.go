package patchingo

import "k8s.io/klog/v2"

// Scanner snapshots a module's code section and runs signature searches over
// it. Each snapshot is point-in-time; patches applied after a snapshot make
// its addresses stale.
type Scanner struct {
	loc ModuleLocator
}

// NewScanner wires a scanner to a module lookup service; nil takes the OS
// loader.
func NewScanner(loc ModuleLocator) *Scanner {
	if loc == nil {
		loc = osModules{}
	}
	return &Scanner{loc: loc}
}

// Snapshot captures the named module's code section. An empty name means
// the current process's own image.
func (s *Scanner) Snapshot(module string) (*TextRegion, error) {
	base, err := s.loc.ModuleBase(module)
	if err != nil {
		return nil, err
	}
	region, err := TextSection(base)
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("text snapshot: base %#x, %d bytes", region.Base, len(region.Data))
	return region, nil
}

// ScanFirst returns the address of the lowest match of pattern in the
// region. It does not rule out further matches.
func (r *TextRegion) ScanFirst(pattern string) (uintptr, error) {
	sig, err := ConvertPattern(pattern)
	if err != nil {
		return 0, err
	}
	off, err := searchFirst(r.Data, sig)
	if err != nil {
		return 0, err
	}
	return r.Base + uintptr(off), nil
}

// ScanAll returns the address of every match of pattern in ascending order,
// or ErrPatternNotFound when there is none.
func (r *TextRegion) ScanAll(pattern string) ([]uintptr, error) {
	sig, err := ConvertPattern(pattern)
	if err != nil {
		return nil, err
	}
	offs, err := searchAll(r.Data, sig)
	if err != nil {
		return nil, err
	}
	addrs := make([]uintptr, len(offs))
	for i, off := range offs {
		addrs[i] = r.Base + uintptr(off)
	}
	return addrs, nil
}

// ScanFirst scans the current process's own code section for pattern.
func ScanFirst(pattern string) (uintptr, error) {
	region, err := NewScanner(nil).Snapshot("")
	if err != nil {
		return 0, err
	}
	return region.ScanFirst(pattern)
}

// ScanAll scans the current process's own code section for every match of
// pattern.
func ScanAll(pattern string) ([]uintptr, error) {
	region, err := NewScanner(nil).Snapshot("")
	if err != nil {
		return nil, err
	}
	return region.ScanAll(pattern)
}
