package patchingo

// Instruction captures the original bytes of one decoded instruction before
// a patch overwrote them. The capture belongs to the caller; nothing
// restores it implicitly.
type Instruction struct {
	Addr uintptr
	Orig []byte
}

// Size returns the instruction's byte length.
func (in *Instruction) Size() int { return len(in.Orig) }

// Restore writes the captured bytes back over the patched location as one
// contiguous protected write. A nil Protector takes the OS default.
func (in *Instruction) Restore(p Protector) error {
	return writeBytes(p, in.Addr, in.Orig)
}

// RestoreAll undoes a batch of captures in order, stopping at the first
// failure.
func RestoreAll(p Protector, captures []Instruction) error {
	for i := range captures {
		if err := captures[i].Restore(p); err != nil {
			return err
		}
	}
	return nil
}
