package patchingo

// Protection is an OS-independent page access mask.
type Protection int

const (
	ProtNone  Protection = 0
	ProtRead  Protection = 1
	ProtWrite Protection = 2
	ProtExec  Protection = 4

	ProtRW  = ProtRead | ProtWrite
	ProtRX  = ProtRead | ProtExec
	ProtRWX = ProtRead | ProtWrite | ProtExec
)

// Protector changes and restores page access flags. Change opens up the pages
// covering [addr, addr+size) and returns the flags they had before; the
// caller hands those back to Restore when done. The pair is not atomic with
// respect to other threads touching the same pages.
type Protector interface {
	Change(addr, size uintptr, prot Protection) (Protection, error)
	Restore(addr, size uintptr, prot Protection) error
}

var pageSize uintptr

// pageSpan widens [addr, addr+size) to whole pages.
func pageSpan(addr, size uintptr) (uintptr, uintptr) {
	start := pageSize * (addr / pageSize)
	length := pageSize * ((addr + size + pageSize - 1 - start) / pageSize)
	return start, length
}
