package patchingo

// ResolveVTable reads the vtable pointer stored at addr under protection.
func ResolveVTable(p Protector, addr uintptr) (uintptr, error) {
	return Read[uintptr](p, addr)
}

// ResolveVTableDP follows a double pointer: addr holds a pointer to the
// vtable pointer.
func ResolveVTableDP(p Protector, addr uintptr) (uintptr, error) {
	inner, err := Read[uintptr](p, addr)
	if err != nil {
		return 0, err
	}
	if inner == 0 {
		return 0, ErrNullPointer
	}
	return Read[uintptr](p, inner)
}
