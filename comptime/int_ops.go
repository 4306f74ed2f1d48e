package comptime

import (
	"cruxc/mir"
	"cruxc/report"
	"cruxc/types"

	"github.com/holiman/uint256"
)

// intBinaryOp applies a binary operator to two integer operands passed in as
// raw bit patterns of their declared widths.  Shift operators are handled
// first since their right operand's type is independent of the left's; every
// other operator requires both operands to share an identical type.
func (ctx *EvalContext) intBinaryOp(op mir.BinOp, l *uint256.Int, lt types.Type, r *uint256.Int, rt types.Type) (mir.Scalar, bool, error) {
	if op.IsShift() {
		return intShiftOp(op, l, lt, r)
	}

	// For the remaining operators, the types must be the same on both sides.
	if !types.Equal(lt, rt) {
		return nil, false, report.RaiseUnimplemented(
			"unimplemented asymmetric binary op %s: %s (%s), %s (%s)",
			op.Repr(), l.Dec(), lt.Repr(), r.Dec(), rt.Repr(),
		)
	}

	// Operators that need special treatment for signed integers.
	if types.IsSigned(lt) {
		switch op {
		case mir.OpLt, mir.OpLe, mir.OpGt, mir.OpGe:
			sl := types.SignExtend(l, lt)
			sr := types.SignExtend(r, rt)

			var res bool
			switch op {
			case mir.OpLt:
				res = sl.Slt(sr)
			case mir.OpLe:
				res = !sr.Slt(sl)
			case mir.OpGt:
				res = sl.Sgt(sr)
			case mir.OpGe:
				res = !sr.Sgt(sl)
			}

			return mir.Bool(res), false, nil

		case mir.OpAdd, mir.OpSub, mir.OpMul, mir.OpDiv, mir.OpRem:
			// Zero divisors are rejected before anything else.
			if r.IsZero() {
				if op == mir.OpDiv {
					return nil, false, report.RaiseDivisionByZero()
				} else if op == mir.OpRem {
					return nil, false, report.RaiseRemainderByZero()
				}
			}

			sl := types.SignExtend(l, lt)
			sr := types.SignExtend(r, rt)

			// Dividing the minimum value by -1 would produce the
			// unrepresentable -minimum: report the minimum itself with the
			// overflow flag set instead, matching two's-complement wraparound.
			if (op == mir.OpDiv || op == mir.OpRem) && sr.Eq(negOne256) && l.Eq(minSignedRaw(lt.Size())) {
				return mir.NewBits(l, lt.Size()), true, nil
			}

			report.Tracef("signed %s: %s, %s", op.Repr(), l.Dec(), r.Dec())

			// The checked 128-bit operation's overflow flag is authoritative
			// at the full accumulator width; narrower widths recheck the
			// wrapped result against their own representable range.
			result, oflo := overflowingS128(op, sl, sr)
			if !oflo && lt.Size() != 16 {
				oflo = !fitsSigned(result, lt.Size())
			}

			return mir.NewBits(types.Truncate(result, lt), lt.Size()), oflo, nil
		}
	}

	// Only raw unsigned bit patterns left.  Equality and the bitwise
	// operators land here for signed types as well: they do not distinguish
	// sign.
	size := lt.Size()

	switch op {
	case mir.OpEq:
		return mir.Bool(l.Eq(r)), false, nil
	case mir.OpNe:
		return mir.Bool(!l.Eq(r)), false, nil
	case mir.OpLt:
		return mir.Bool(l.Lt(r)), false, nil
	case mir.OpLe:
		return mir.Bool(!r.Lt(l)), false, nil
	case mir.OpGt:
		return mir.Bool(l.Gt(r)), false, nil
	case mir.OpGe:
		return mir.Bool(!r.Gt(l)), false, nil

	case mir.OpBitOr:
		return mir.NewBits(new(uint256.Int).Or(l, r), size), false, nil
	case mir.OpBitAnd:
		return mir.NewBits(new(uint256.Int).And(l, r), size), false, nil
	case mir.OpBitXor:
		return mir.NewBits(new(uint256.Int).Xor(l, r), size), false, nil

	case mir.OpAdd, mir.OpSub, mir.OpMul, mir.OpDiv, mir.OpRem:
		if r.IsZero() {
			if op == mir.OpDiv {
				return nil, false, report.RaiseDivisionByZero()
			} else if op == mir.OpRem {
				return nil, false, report.RaiseRemainderByZero()
			}
		}

		result, oflo := overflowingU128(op, l, r)
		truncated := types.Truncate(result, lt)
		return mir.NewBits(truncated, size), oflo || !truncated.Eq(result), nil

	default:
		return nil, false, report.RaiseUnimplemented(
			"unimplemented binary op %s: %s, %s (both %s)",
			op.Repr(), l.Dec(), r.Dec(), rt.Repr(),
		)
	}
}

// intShiftOp evaluates a shift.  The shift amount is taken from the low 32
// bits of the right operand; overflow is flagged if the full right operand did
// not fit in 32 bits or if the amount meets or exceeds the left operand's bit
// width, and in either case the effective amount is reduced modulo that width.
func intShiftOp(op mir.BinOp, l *uint256.Int, lt types.Type, r *uint256.Int) (mir.Scalar, bool, error) {
	bits := uint32(lt.Size() * 8)

	amount := uint32(r.Uint64())
	oflo := r.BitLen() > 32 || amount >= bits
	if oflo {
		amount %= bits
	}

	// Signed left operands shift arithmetically: sign-extend first so the
	// right shift drags copies of the sign bit in.
	result := new(uint256.Int)
	if types.IsSigned(lt) {
		sl := types.SignExtend(l, lt)
		if op == mir.OpShl {
			result.Lsh(sl, uint(amount))
		} else {
			result.SRsh(sl, uint(amount))
		}
	} else {
		if op == mir.OpShl {
			result.Lsh(l, uint(amount))
		} else {
			result.Rsh(l, uint(amount))
		}
	}

	return mir.NewBits(types.Truncate(result, lt), lt.Size()), oflo, nil
}
