package comptime

import (
	"cruxc/mir"
	"cruxc/report"
	"cruxc/types"

	"github.com/holiman/uint256"
)

// The integer evaluator computes on a 128-bit accumulator regardless of the
// operands' declared widths.  Go has no native 128-bit integer and no checked
// arithmetic at that width, so this file emulates both on a 256-bit value:
// with 128-bit operands, no add, subtract, or multiply can overflow 256 bits,
// which makes the exact result available for wrapping and overflow detection.

// negOne256 is the 256-bit two's-complement representation of -1.
var negOne256 = new(uint256.Int).SetAllOne()

// truncate128 masks a value down to the accumulator width.
func truncate128(v *uint256.Int) *uint256.Int {
	return types.TruncateBits(v, 16)
}

// fitsSigned returns whether a full-width two's-complement value is
// representable as a signed integer of the given byte size, ie. whether it
// lies in [-2^(size*8-1), 2^(size*8-1)).
func fitsSigned(v *uint256.Int, size int) bool {
	return types.SignExtend(types.TruncateBits(v, size), types.IntType{Bytes: size, Signed: true}).Eq(v)
}

// minSignedRaw returns the raw (unsigned-packed) bit pattern of the minimum
// signed value of the given byte size: a lone set sign bit.
func minSignedRaw(size int) *uint256.Int {
	return new(uint256.Int).Lsh(uint256.NewInt(1), uint(size*8-1))
}

// overflowingU128 applies an arithmetic operator to two unsigned 128-bit
// values, wrapping the result to 128 bits.  It returns the wrapped result and
// whether wrapping changed the value.  Zero divisors must already have been
// rejected by the caller.
func overflowingU128(op mir.BinOp, l, r *uint256.Int) (*uint256.Int, bool) {
	exact := new(uint256.Int)

	switch op {
	case mir.OpAdd:
		exact.Add(l, r)
	case mir.OpSub:
		exact.Sub(l, r)
	case mir.OpMul:
		exact.Mul(l, r)
	case mir.OpDiv:
		return exact.Div(l, r), false
	case mir.OpRem:
		return exact.Mod(l, r), false
	default:
		report.ReportICE("non-arithmetic operator `%s` in checked unsigned arithmetic", op.Repr())
	}

	// Subtraction below zero wraps modulo 2^256; like every other wrapped
	// result, it shows up as a value that truncation changes.
	wrapped := truncate128(exact)
	return wrapped, !wrapped.Eq(exact)
}

// overflowingS128 applies an arithmetic operator to two full-width
// two's-complement values, wrapping the result to signed 128 bits.  It returns
// the wrapped result sign-extended back to full width and whether wrapping
// changed the value.  Zero divisors and the minimum-value/-1 division case
// must already have been rejected by the caller.
func overflowingS128(op mir.BinOp, l, r *uint256.Int) (*uint256.Int, bool) {
	exact := new(uint256.Int)

	switch op {
	case mir.OpAdd:
		exact.Add(l, r)
	case mir.OpSub:
		exact.Sub(l, r)
	case mir.OpMul:
		exact.Mul(l, r)
	case mir.OpDiv:
		exact.SDiv(l, r)
	case mir.OpRem:
		exact.SMod(l, r)
	default:
		report.ReportICE("non-arithmetic operator `%s` in checked signed arithmetic", op.Repr())
	}

	if fitsSigned(exact, 16) {
		return exact, false
	}

	return types.SignExtend(truncate128(exact), types.I128), true
}
