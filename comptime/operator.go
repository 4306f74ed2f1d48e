package comptime

import (
	"cruxc/mir"
	"cruxc/report"
	"cruxc/types"

	"github.com/holiman/uint256"
)

// BinOpWithOverflow applies the binary operator to the two operands and writes
// a pair of the result and a boolean signifying the potential overflow to the
// destination.  The value is written first, the overflow flag second.
func (ctx *EvalContext) BinOpWithOverflow(op mir.BinOp, left, right Operand, dest Place) error {
	val, overflowed, err := ctx.BinaryOp(op, left, right)
	if err != nil {
		return err
	}

	return dest.WritePair(val, mir.Bool(overflowed))
}

// BinOpIgnoreOverflow applies the binary operator to the two operands and
// writes only the resulting value to the destination, discarding the overflow
// flag.
func (ctx *EvalContext) BinOpIgnoreOverflow(op mir.BinOp, left, right Operand, dest Place) error {
	val, _, err := ctx.BinaryOp(op, left, right)
	if err != nil {
		return err
	}

	return dest.WriteScalar(val)
}

// -----------------------------------------------------------------------------

// BinaryOp applies a binary operator to the two operands.  It returns the
// resulting scalar and whether the operation overflowed.
func (ctx *EvalContext) BinaryOp(op mir.BinOp, left, right Operand) (mir.Scalar, bool, error) {
	report.Tracef(
		"running binary op %s: %s (%s), %s (%s)",
		op.Repr(), left.Value.Repr(), left.Type.Repr(), right.Value.Repr(), right.Type.Repr(),
	)

	switch left.Type.(type) {
	case types.CharType:
		assertSameType(op, left.Type, right.Type)
		return charBinaryOp(op, toChar(left.Value), toChar(right.Value))
	case types.BoolType:
		assertSameType(op, left.Type, right.Type)
		return boolBinaryOp(op, toBool(left.Value), toBool(right.Value))
	case types.FloatType:
		assertSameType(op, left.Type, right.Type)

		l, err := toBits(left.Value, left.Type)
		if err != nil {
			return nil, false, err
		}

		r, err := toBits(right.Value, right.Type)
		if err != nil {
			return nil, false, err
		}

		return floatBinaryOp(op, left.Type.(types.FloatType), l, r)
	default:
		// The operands must be integer or pointer-like.  Note that function
		// pointers can still be compared for equality.
		if !types.IsIntegral(left.Type) && !types.IsPointerLike(left.Type) {
			report.ReportICE("binary op `%s` on unsupported type `%s`", op.Repr(), left.Type.Repr())
		}

		if !types.IsIntegral(right.Type) && !types.IsPointerLike(right.Type) {
			report.ReportICE("binary op `%s` on unsupported type `%s`", op.Repr(), right.Type.Repr())
		}

		// Offer operations that may involve pointer values to the machine.
		val, overflowed, handled, err := ctx.machine.TryPtrOp(op, left, right)
		if err != nil {
			return nil, false, err
		} else if handled {
			return val, overflowed, nil
		}

		// Everything else only works with proper bits.
		l, err := toBits(left.Value, left.Type)
		if err != nil {
			return nil, false, err
		}

		r, err := toBits(right.Value, right.Type)
		if err != nil {
			return nil, false, err
		}

		return ctx.intBinaryOp(op, l, left.Type, r, right.Type)
	}
}

// UnaryOp applies a unary operator to the operand, returning the resulting
// scalar.
func (ctx *EvalContext) UnaryOp(op mir.UnOp, operand Operand) (mir.Scalar, error) {
	report.Tracef(
		"running unary op %s: %s (%s)",
		op.Repr(), operand.Value.Repr(), operand.Type.Repr(),
	)

	switch typ := operand.Type.(type) {
	case types.BoolType:
		if op != mir.OpNot {
			report.ReportICE("invalid bool op `%s`", op.Repr())
		}

		return mir.Bool(!toBool(operand.Value)), nil
	case types.FloatType:
		if op != mir.OpNeg {
			report.ReportICE("invalid float op `%s`", op.Repr())
		}

		bits, err := toBits(operand.Value, typ)
		if err != nil {
			return nil, err
		}

		return floatNeg(typ, bits), nil
	default:
		if !types.IsIntegral(operand.Type) {
			report.ReportICE("unary op `%s` on unsupported type `%s`", op.Repr(), operand.Type.Repr())
		}

		bits, err := toBits(operand.Value, operand.Type)
		if err != nil {
			return nil, err
		}

		res := new(uint256.Int)
		switch op {
		case mir.OpNot:
			res.Not(bits)
		case mir.OpNeg:
			if !types.IsSigned(operand.Type) {
				report.ReportICE("negation of unsigned type `%s`", operand.Type.Repr())
			}

			res.Neg(bits)
		}

		// The result needs truncating.
		return mir.NewBits(types.Truncate(res, operand.Type), operand.Type.Size()), nil
	}
}

// -----------------------------------------------------------------------------

// assertSameType asserts that two operand types are identical.  The dispatcher
// only routes an operation by its left operand's category, so a mismatch here
// is a bug in the caller, not a recoverable condition.
func assertSameType(op mir.BinOp, lt, rt types.Type) {
	if !types.Equal(lt, rt) {
		report.ReportICE(
			"mismatched operand types `%s` and `%s` for binary op `%s`",
			lt.Repr(), rt.Repr(), op.Repr(),
		)
	}
}

// toBool decodes a scalar as a boolean value.
func toBool(s mir.Scalar) bool {
	if b, ok := s.(mir.Bool); ok {
		return bool(b)
	}

	report.ReportICE("scalar %s cannot be read as a bool", s.Repr())
	return false
}

// toChar decodes a scalar as a character value.
func toChar(s mir.Scalar) rune {
	if c, ok := s.(mir.Char); ok {
		return rune(c)
	}

	report.ReportICE("scalar %s cannot be read as a char", s.Repr())
	return 0
}

// toBits decodes a scalar as a raw bit pattern at the width declared by the
// given layout.  Pointer scalars have no raw bits the evaluator can see, so
// reading one is a recoverable unimplemented-operation failure: the machine
// already declined to handle it.
func toBits(s mir.Scalar, typ types.Type) (*uint256.Int, error) {
	switch v := s.(type) {
	case mir.Bits:
		if v.Size != typ.Size() {
			report.ReportICE(
				"scalar size mismatch: %d byte value of %d byte type `%s`",
				v.Size, typ.Size(), typ.Repr(),
			)
		}

		return v.Val, nil
	case mir.Ptr:
		return nil, report.RaiseUnimplemented("cannot read pointer %s as raw bits", v.Repr())
	default:
		report.ReportICE("scalar %s cannot be read as raw bits", s.Repr())
		return nil, nil
	}
}
