package patchingo

import (
	"bytes"
	"errors"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedDecoder hands out scripted instruction lengths.
type fixedDecoder struct {
	sizes []int
	calls int
}

func (d *fixedDecoder) DecodeOne(window []byte) (int, error) {
	if d.calls >= len(d.sizes) {
		return 0, errors.New("decode refused")
	}
	n := d.sizes[d.calls]
	d.calls++
	return n, nil
}

// codeBuffer returns a patchable byte buffer padded well past the decode
// window, plus the address of its first byte.
func codeBuffer(prefix []byte) ([]byte, uintptr) {
	buf := make([]byte, len(prefix)+2*decodeWindow)
	copy(buf, prefix)
	for i := len(prefix); i < len(buf); i++ {
		buf[i] = 0xCC
	}
	return buf, uintptr(unsafe.Pointer(&buf[0]))
}

func TestGetInstruction(t *testing.T) {
	// push rbp; mov rbp, rsp
	buf, addr := codeBuffer([]byte{0x55, 0x48, 0x89, 0xE5})
	p := NewPatcher(&fakeProtector{}, nil)

	in, err := p.GetInstruction(addr)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x55}, in.Orig)
	assert.Equal(t, addr, in.Addr)

	in, err = p.GetInstruction(addr + 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x48, 0x89, 0xE5}, in.Orig)
	assert.Equal(t, 3, in.Size())
	runtime.KeepAlive(buf)
}

func TestGetInstructionNullAddress(t *testing.T) {
	p := NewPatcher(&fakeProtector{}, &fixedDecoder{sizes: []int{1}})
	_, err := p.GetInstruction(0)
	assert.ErrorIs(t, err, ErrNullPointer)
}

func TestGetInstructionDecodeFailure(t *testing.T) {
	buf, addr := codeBuffer([]byte{0x90})
	p := NewPatcher(&fakeProtector{}, &fixedDecoder{})
	_, err := p.GetInstruction(addr)
	assert.ErrorIs(t, err, ErrDecodeFailed)
	runtime.KeepAlive(buf)
}

func TestNopInstructions(t *testing.T) {
	orig := []byte{0x55, 0x48, 0x89, 0xE5, 0x8B, 0x45, 0xFC}
	buf, addr := codeBuffer(orig)
	fp := &fakeProtector{}
	p := NewPatcher(fp, &fixedDecoder{sizes: []int{1, 3, 3}})

	captures, err := p.NopInstructions(addr, 3)
	require.NoError(t, err)
	require.Len(t, captures, 3)

	// The fill covers exactly the summed instruction span.
	assert.Equal(t, []byte{0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90}, buf[:7])
	assert.Equal(t, byte(0xCC), buf[7])

	assert.Equal(t, []byte{0x55}, captures[0].Orig)
	assert.Equal(t, []byte{0x48, 0x89, 0xE5}, captures[1].Orig)
	assert.Equal(t, []byte{0x8B, 0x45, 0xFC}, captures[2].Orig)
	assert.Equal(t, addr, captures[0].Addr)
	assert.Equal(t, addr+1, captures[1].Addr)
	assert.Equal(t, addr+4, captures[2].Addr)

	require.NoError(t, RestoreAll(fp, captures))
	assert.True(t, bytes.Equal(orig, buf[:len(orig)]))
}

func TestNopInstructionsSingleContiguousFill(t *testing.T) {
	buf, addr := codeBuffer([]byte{0x55, 0x90})
	fp := &fakeProtector{}
	p := NewPatcher(fp, &fixedDecoder{sizes: []int{1, 1}})

	_, err := p.NopInstructions(addr, 2)
	require.NoError(t, err)
	// Two capture reads plus exactly one write span.
	assert.Equal(t, 3, fp.changes)
	assert.Equal(t, 3, fp.restores)
	runtime.KeepAlive(buf)
}

func TestNopInstructionsCountPrecondition(t *testing.T) {
	p := NewPatcher(&fakeProtector{}, &fixedDecoder{sizes: []int{1}})
	assert.Panics(t, func() { p.NopInstructions(0x1000, 0) })
	assert.Panics(t, func() { p.NopInstructions(0x1000, -1) })
}

func TestNopInstructionsDecodeFailure(t *testing.T) {
	buf, addr := codeBuffer([]byte{0x55, 0x90})
	p := NewPatcher(&fakeProtector{}, &fixedDecoder{sizes: []int{1}})

	_, err := p.NopInstructions(addr, 2)
	assert.ErrorIs(t, err, ErrDecodeFailed)
	// Captures happen before any mutation, so a decode failure leaves the
	// buffer untouched.
	assert.Equal(t, byte(0x55), buf[0])
}

func TestReplaceReturnValueNone(t *testing.T) {
	orig := []byte{0x48, 0x89, 0xE5}
	buf, addr := codeBuffer(orig)
	fp := &fakeProtector{}
	p := NewPatcher(fp, nil)

	in, err := p.ReplaceReturnValue(addr, nil)
	require.NoError(t, err)
	// Exactly one byte written: the short return opcode.
	assert.Equal(t, byte(0xC3), buf[0])
	assert.Equal(t, []byte{0x89, 0xE5}, buf[1:3])
	assert.Equal(t, orig, in.Orig)

	require.NoError(t, in.Restore(fp))
	assert.Equal(t, orig, buf[:3])
}

func TestReplaceReturnValueInt32(t *testing.T) {
	buf, addr := codeBuffer([]byte{0x55, 0x48, 0x89, 0xE5, 0x90, 0x90})
	p := NewPatcher(&fakeProtector{}, nil)

	v := Int32Value(1337)
	in, err := p.ReplaceReturnValue(addr, &v)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xB8, 0x39, 0x05, 0x00, 0x00, 0xC3}, buf[:6])
	assert.Equal(t, []byte{0x55}, in.Orig)
}

func TestReplaceReturnValueFloat32(t *testing.T) {
	buf, addr := codeBuffer([]byte{0x55, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90})
	p := NewPatcher(&fakeProtector{}, nil)

	v := Float32Value(1.0)
	_, err := p.ReplaceReturnValue(addr, &v)
	require.NoError(t, err)
	want := []byte{
		0xB8, 0x00, 0x00, 0x80, 0x3F, // mov eax, 0x3F800000
		0x66, 0x0F, 0x6E, 0xC0, // movd xmm0, eax
		0xC3,
	}
	assert.Equal(t, want, buf[:len(want)])
}

func TestReplaceReturnValueUnsupportedKind(t *testing.T) {
	buf, addr := codeBuffer([]byte{0x55})
	p := NewPatcher(&fakeProtector{}, nil)

	_, err := p.ReplaceReturnValue(addr, &Value{})
	assert.ErrorIs(t, err, ErrUnsupportedKind)
	// Nothing may land when the kind has no template.
	assert.Equal(t, byte(0x55), buf[0])
}

func TestReplaceReturnValueSequenceEndsInReturn(t *testing.T) {
	values := []Value{
		Int32Value(-1), Int64Value(1 << 40), Uint8Value(0xFF), Uint16Value(0xBEEF),
		Uint32Value(1), Uint64Value(^uint64(0)), Float32Value(3.14), Float64Value(2.718),
	}
	for _, v := range values {
		v := v
		buf, addr := codeBuffer([]byte{0x55, 0x48, 0x89, 0xE5})
		p := NewPatcher(&fakeProtector{}, nil)
		_, err := p.ReplaceReturnValue(addr, &v)
		require.NoError(t, err)
		seq, err := encodeReturn(v)
		require.NoError(t, err)
		assert.Equal(t, byte(0xC3), seq[len(seq)-1])
		assert.Equal(t, seq, buf[:len(seq)])
	}
}
