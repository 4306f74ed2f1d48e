package comptime

import (
	"math"

	"cruxc/mir"
	"cruxc/report"
	"cruxc/types"

	"github.com/holiman/uint256"
)

// floatBinaryOp applies a binary operator to two floating-point values passed
// in as raw bits of the given format width.  Comparison follows IEEE-754
// semantics (NaN is unequal to everything, including itself, and unordered
// with everything) and arithmetic rounds, saturates to infinity, and
// propagates NaN per IEEE-754.  Floats never report overflow.
func floatBinaryOp(op mir.BinOp, ft types.FloatType, l, r *uint256.Int) (mir.Scalar, bool, error) {
	switch ft.Bytes {
	case 4:
		a := math.Float32frombits(uint32(l.Uint64()))
		b := math.Float32frombits(uint32(r.Uint64()))

		switch op {
		case mir.OpEq:
			return mir.Bool(a == b), false, nil
		case mir.OpNe:
			return mir.Bool(a != b), false, nil
		case mir.OpLt:
			return mir.Bool(a < b), false, nil
		case mir.OpLe:
			return mir.Bool(a <= b), false, nil
		case mir.OpGt:
			return mir.Bool(a > b), false, nil
		case mir.OpGe:
			return mir.Bool(a >= b), false, nil
		case mir.OpAdd:
			return bitify32(a + b), false, nil
		case mir.OpSub:
			return bitify32(a - b), false, nil
		case mir.OpMul:
			return bitify32(a * b), false, nil
		case mir.OpDiv:
			return bitify32(a / b), false, nil
		case mir.OpRem:
			// The remainder of two 32-bit values is exact, so computing it in
			// the 64-bit format loses nothing.
			return bitify32(float32(math.Mod(float64(a), float64(b)))), false, nil
		}
	case 8:
		a := math.Float64frombits(l.Uint64())
		b := math.Float64frombits(r.Uint64())

		switch op {
		case mir.OpEq:
			return mir.Bool(a == b), false, nil
		case mir.OpNe:
			return mir.Bool(a != b), false, nil
		case mir.OpLt:
			return mir.Bool(a < b), false, nil
		case mir.OpLe:
			return mir.Bool(a <= b), false, nil
		case mir.OpGt:
			return mir.Bool(a > b), false, nil
		case mir.OpGe:
			return mir.Bool(a >= b), false, nil
		case mir.OpAdd:
			return bitify64(a + b), false, nil
		case mir.OpSub:
			return bitify64(a - b), false, nil
		case mir.OpMul:
			return bitify64(a * b), false, nil
		case mir.OpDiv:
			return bitify64(a / b), false, nil
		case mir.OpRem:
			return bitify64(math.Mod(a, b)), false, nil
		}
	default:
		report.ReportICE("float of unsupported width: %d bytes", ft.Bytes)
	}

	report.ReportICE("invalid float op: `%s`", op.Repr())
	return nil, false, nil
}

// floatNeg negates a floating-point value passed in as raw bits of the given
// format width.
func floatNeg(ft types.FloatType, bits *uint256.Int) mir.Scalar {
	switch ft.Bytes {
	case 4:
		return bitify32(-math.Float32frombits(uint32(bits.Uint64())))
	case 8:
		return bitify64(-math.Float64frombits(bits.Uint64()))
	default:
		report.ReportICE("float of unsupported width: %d bytes", ft.Bytes)
		return nil
	}
}

// bitify32 re-encodes a 32-bit float result as a raw bit pattern scalar.
func bitify32(f float32) mir.Scalar {
	return mir.NewBitsUint64(uint64(math.Float32bits(f)), 4)
}

// bitify64 re-encodes a 64-bit float result as a raw bit pattern scalar.
func bitify64(f float64) mir.Scalar {
	return mir.NewBitsUint64(math.Float64bits(f), 8)
}
