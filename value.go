package patchingo

import "math"

// Kind tags the closed set of constant shapes a return patch can encode.
type Kind int

const (
	KindInvalid Kind = iota
	KindFloat32
	KindFloat64
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
)

// Value carries a constant as a (kind, bit pattern) pair. The constructors
// fix the kind at the call boundary; there is no runtime type discovery.
type Value struct {
	kind Kind
	bits uint64
}

func Float32Value(v float32) Value { return Value{KindFloat32, uint64(math.Float32bits(v))} }
func Float64Value(v float64) Value { return Value{KindFloat64, math.Float64bits(v)} }
func Int32Value(v int32) Value     { return Value{KindInt32, uint64(uint32(v))} }
func Int64Value(v int64) Value     { return Value{KindInt64, uint64(v)} }
func Uint8Value(v uint8) Value     { return Value{KindUint8, uint64(v)} }
func Uint16Value(v uint16) Value   { return Value{KindUint16, uint64(v)} }
func Uint32Value(v uint32) Value   { return Value{KindUint32, uint64(v)} }
func Uint64Value(v uint64) Value   { return Value{KindUint64, v} }

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }

// Bits returns the value's raw bit pattern, zero-extended to 64 bits.
func (v Value) Bits() uint64 { return v.bits }
