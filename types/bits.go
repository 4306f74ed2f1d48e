package types

import "github.com/holiman/uint256"

// This file contains the two numeric primitives shared by every part of the
// evaluator: truncation to a layout's declared width and sign extension from
// a layout's declared width.  Both are pure functions of a value and a layout
// and never mutate their arguments.

// Truncate masks a value down to the declared bit width of the given layout.
// Every raw bit pattern produced by the evaluator is truncated before it is
// stored: no value ever escapes wider than its layout.
func Truncate(v *uint256.Int, typ Type) *uint256.Int {
	return TruncateBits(v, typ.Size())
}

// TruncateBits masks a value down to the low size*8 bits.
func TruncateBits(v *uint256.Int, size int) *uint256.Int {
	mask := new(uint256.Int).Lsh(uint256.NewInt(1), uint(size*8))
	mask.SubUint64(mask, 1)
	return mask.And(mask, v)
}

// SignExtend reproduces the mathematical value of a truncated bit pattern as a
// full-width (256-bit two's-complement) signed integer using the given
// layout's width.  It must only be applied to values whose layout marks them
// signed; the extended value exists only for the duration of a computation
// and is always truncated back to layout width before being stored.
func SignExtend(v *uint256.Int, typ Type) *uint256.Int {
	return new(uint256.Int).ExtendSign(v, uint256.NewInt(uint64(typ.Size()-1)))
}
