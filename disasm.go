package patchingo

import "golang.org/x/arch/x86/x86asm"

// decodeWindow bounds the lookahead handed to the disassembler. 16 bytes
// covers the longest legal x86 instruction.
const decodeWindow = 16

// Disassembler decodes exactly one instruction from the start of window and
// reports its length in bytes.
type Disassembler interface {
	DecodeOne(window []byte) (int, error)
}

// x86Decoder decodes 64-bit mode x86 through golang.org/x/arch.
type x86Decoder struct{}

func (x86Decoder) DecodeOne(window []byte) (int, error) {
	inst, err := x86asm.Decode(window, 64)
	if err != nil {
		return 0, err
	}
	return inst.Len, nil
}
