package patchingo

import (
	"fmt"

	"k8s.io/klog/v2"
)

// Patcher rewrites instructions in place, capturing the originals so every
// patch can be undone. It does no locking; concurrent patching of
// overlapping ranges is a caller problem.
type Patcher struct {
	prot Protector
	dis  Disassembler
}

// NewPatcher wires a patcher to the given protection and disassembly
// services. Either may be nil to take the OS / x86asm defaults.
func NewPatcher(prot Protector, dis Disassembler) *Patcher {
	if prot == nil {
		prot = osProtector{}
	}
	if dis == nil {
		dis = x86Decoder{}
	}
	return &Patcher{prot: prot, dis: dis}
}

// GetInstruction decodes the single instruction beginning at addr, looking
// ahead at most decodeWindow bytes.
func (p *Patcher) GetInstruction(addr uintptr) (*Instruction, error) {
	if addr == 0 {
		return nil, ErrNullPointer
	}
	window, err := readBytes(p.prot, addr, decodeWindow)
	if err != nil {
		return nil, err
	}
	n, err := p.dis.DecodeOne(window)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	orig := make([]byte, n)
	copy(orig, window[:n])
	return &Instruction{Addr: addr, Orig: orig}, nil
}

// NopInstructions overwrites count consecutive instructions starting at addr
// with single-byte NOPs. All originals are captured before anything is
// touched; the fill then covers the exact byte span of the decoded
// instructions in one contiguous protected write, not per-instruction
// pieces. A failed fill is not rolled back.
func (p *Patcher) NopInstructions(addr uintptr, count int) ([]Instruction, error) {
	if count < 1 {
		panic("patchingo: NopInstructions needs at least one instruction")
	}
	captures := make([]Instruction, 0, count)
	cur := addr
	span := 0
	for i := 0; i < count; i++ {
		in, err := p.GetInstruction(cur)
		if err != nil {
			return nil, err
		}
		captures = append(captures, *in)
		cur += uintptr(in.Size())
		span += in.Size()
	}
	fill := make([]byte, span)
	for i := range fill {
		fill[i] = nopOpcode
	}
	klog.V(2).Infof("nop patch at %#x: %d instructions, %d bytes", addr, count, span)
	if err := writeBytes(p.prot, addr, fill); err != nil {
		return nil, err
	}
	return captures, nil
}

// ReplaceReturnValue rewrites the function entry at addr to return
// immediately. With a nil value only the one-byte short return lands;
// otherwise the constant-return sequence for the value's kind replaces the
// entry, staged and written as one contiguous protected write. The first
// original instruction comes back for restoration.
func (p *Patcher) ReplaceReturnValue(addr uintptr, v *Value) (*Instruction, error) {
	orig, err := p.GetInstruction(addr)
	if err != nil {
		return nil, err
	}
	seq := []byte{retOpcode}
	if v != nil {
		seq, err = encodeReturn(*v)
		if err != nil {
			return nil, err
		}
	}
	klog.V(2).Infof("return patch at %#x: %d bytes", addr, len(seq))
	if err := writeBytes(p.prot, addr, seq); err != nil {
		return nil, err
	}
	return orig, nil
}
