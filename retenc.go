package patchingo

import (
	"encoding/binary"
	"fmt"
)

const (
	nopOpcode = 0x90
	retOpcode = 0xC3
)

// encodeReturn emits the minimal sequence that loads v into the return
// register and returns. Integers land in the accumulator sized to the
// value's width; floats land in XMM0 by moving the bit pattern through the
// accumulator. Pure function, no side effects.
func encodeReturn(v Value) ([]byte, error) {
	switch v.kind {
	case KindInt32, KindUint32, KindUint8:
		return append(movEAX(uint32(v.bits)), retOpcode), nil
	case KindUint16:
		// mov ax, imm16
		seq := []byte{0x66, 0xB8, 0, 0}
		binary.LittleEndian.PutUint16(seq[2:], uint16(v.bits))
		return append(seq, retOpcode), nil
	case KindInt64, KindUint64:
		return append(movRAX(v.bits), retOpcode), nil
	case KindFloat32:
		// movd xmm0, eax
		seq := append(movEAX(uint32(v.bits)), 0x66, 0x0F, 0x6E, 0xC0)
		return append(seq, retOpcode), nil
	case KindFloat64:
		// movq xmm0, rax
		seq := append(movRAX(v.bits), 0x66, 0x48, 0x0F, 0x6E, 0xC0)
		return append(seq, retOpcode), nil
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedKind, v.kind)
	}
}

// movEAX encodes mov eax, imm32.
func movEAX(v uint32) []byte {
	seq := []byte{0xB8, 0, 0, 0, 0}
	binary.LittleEndian.PutUint32(seq[1:], v)
	return seq
}

// movRAX encodes mov rax, imm64.
func movRAX(v uint64) []byte {
	seq := []byte{0x48, 0xB8, 0, 0, 0, 0, 0, 0, 0, 0}
	binary.LittleEndian.PutUint64(seq[2:], v)
	return seq
}
