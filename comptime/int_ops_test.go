package comptime

import (
	"strings"
	"testing"

	"cruxc/mir"
	"cruxc/report"
	"cruxc/types"

	"github.com/holiman/uint256"
)

// intOperand builds an integer operand from a decimal literal, truncating it
// to the layout's width.
func intOperand(t *testing.T, lit string, typ types.IntType) Operand {
	t.Helper()

	negative := strings.HasPrefix(lit, "-")
	v, err := uint256.FromDecimal(strings.TrimPrefix(lit, "-"))
	if err != nil {
		t.Fatalf("bad literal %s: %s", lit, err)
	}

	if negative {
		v.Neg(v)
	}

	return Operand{Value: mir.NewBits(types.Truncate(v, typ), typ.Bytes), Type: typ}
}

// decodeSigned renders a raw bit pattern scalar as a decimal string under the
// given layout's signed interpretation.
func decodeSigned(t *testing.T, s mir.Scalar, typ types.IntType) string {
	t.Helper()

	b, ok := s.(mir.Bits)
	if !ok {
		t.Fatalf("expected bits scalar, got %s", s.Repr())
	}

	if typ.Signed {
		sx := types.SignExtend(b.Val, typ)
		if sx.Sign() < 0 {
			return "-" + new(uint256.Int).Neg(sx).Dec()
		}
	}

	return b.Val.Dec()
}

func evalInt(t *testing.T, op mir.BinOp, lit, rit string, typ types.IntType) (mir.Scalar, bool, error) {
	t.Helper()
	return NewEvalContext(nil).BinaryOp(op, intOperand(t, lit, typ), intOperand(t, rit, typ))
}

func TestIntArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       mir.BinOp
		typ      types.IntType
		l, r     string
		want     string
		overflow bool
	}{
		{"u8 add wrap", mir.OpAdd, types.U8, "250", "10", "4", true},
		{"u8 add exact", mir.OpAdd, types.U8, "250", "5", "255", false},
		{"i8 sub min wrap", mir.OpSub, types.I8, "-128", "1", "127", true},
		{"i8 add max", mir.OpAdd, types.I8, "100", "27", "127", false},
		{"i8 add wrap", mir.OpAdd, types.I8, "100", "28", "-128", true},
		{"i16 mul exact", mir.OpMul, types.I16, "-181", "181", "-32761", false},
		{"i16 mul wrap", mir.OpMul, types.I16, "256", "128", "-32768", true},
		{"u64 add wrap", mir.OpAdd, types.U64, "18446744073709551615", "2", "1", true},
		{"u64 sub wrap", mir.OpSub, types.U64, "0", "1", "18446744073709551615", true},
		{"i64 mul wrap to zero", mir.OpMul, types.I64, "4611686018427387904", "4", "0", true},
		{"u128 add wrap", mir.OpAdd, types.U128, "340282366920938463463374607431768211455", "1", "0", true},
		{"i128 sub min wrap", mir.OpSub, types.I128, "-170141183460469231731687303715884105728", "1", "170141183460469231731687303715884105727", true},
		{"i128 mul wrap to zero", mir.OpMul, types.I128, "18446744073709551616", "18446744073709551616", "0", true},
		{"i128 add exact", mir.OpAdd, types.I128, "-170141183460469231731687303715884105728", "1", "-170141183460469231731687303715884105727", false},
		{"i32 div", mir.OpDiv, types.I32, "-7", "2", "-3", false},
		{"i32 rem", mir.OpRem, types.I32, "-7", "2", "-1", false},
		{"u32 div", mir.OpDiv, types.U32, "7", "2", "3", false},
		{"u32 rem", mir.OpRem, types.U32, "7", "2", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, overflowed, err := evalInt(t, tt.op, tt.l, tt.r, tt.typ)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			if got := decodeSigned(t, val, tt.typ); got != tt.want {
				t.Errorf("value: expected %s, got %s", tt.want, got)
			}

			if overflowed != tt.overflow {
				t.Errorf("overflow: expected %v, got %v", tt.overflow, overflowed)
			}
		})
	}
}

func TestIntZeroDivisor(t *testing.T) {
	for _, typ := range []types.IntType{types.I8, types.U8, types.I32, types.U32, types.I128, types.U128} {
		for _, tt := range []struct {
			op   mir.BinOp
			kind report.EvalErrorKind
		}{
			{mir.OpDiv, report.DivisionByZero},
			{mir.OpRem, report.RemainderByZero},
		} {
			_, _, err := evalInt(t, tt.op, "1", "0", typ)

			ee, ok := err.(*report.EvalError)
			if !ok {
				t.Fatalf("%s %s by zero: expected eval error, got %v", typ.Repr(), tt.op.Repr(), err)
			}

			if ee.Kind != tt.kind {
				t.Errorf("%s %s by zero: wrong error kind: %d", typ.Repr(), tt.op.Repr(), ee.Kind)
			}
		}
	}
}

func TestIntMinDividedByNegOne(t *testing.T) {
	tests := []struct {
		typ types.IntType
		min string
	}{
		{types.I8, "-128"},
		{types.I32, "-2147483648"},
		{types.I64, "-9223372036854775808"},
		{types.I128, "-170141183460469231731687303715884105728"},
	}

	for _, tt := range tests {
		for _, op := range []mir.BinOp{mir.OpDiv, mir.OpRem} {
			val, overflowed, err := evalInt(t, op, tt.min, "-1", tt.typ)
			if err != nil {
				t.Fatalf("%s %s: unexpected error: %s", tt.typ.Repr(), op.Repr(), err)
			}

			// The result wraps back to the minimum value itself.
			if got := decodeSigned(t, val, tt.typ); got != tt.min {
				t.Errorf("%s %s: expected %s, got %s", tt.typ.Repr(), op.Repr(), tt.min, got)
			}

			if !overflowed {
				t.Errorf("%s %s: expected overflow", tt.typ.Repr(), op.Repr())
			}
		}
	}
}

func TestIntComparisons(t *testing.T) {
	tests := []struct {
		name string
		op   mir.BinOp
		typ  types.IntType
		l, r string
		want bool
	}{
		{"i8 signed lt", mir.OpLt, types.I8, "-1", "1", true},
		{"i8 signed gt", mir.OpGt, types.I8, "-1", "1", false},
		{"i8 signed le equal", mir.OpLe, types.I8, "-5", "-5", true},
		{"i8 signed ge", mir.OpGe, types.I8, "-5", "-6", true},
		{"i64 signed lt min", mir.OpLt, types.I64, "-9223372036854775808", "0", true},
		{"u8 unsigned gt", mir.OpGt, types.U8, "255", "1", true},
		{"u8 unsigned lt", mir.OpLt, types.U8, "255", "1", false},
		{"u128 unsigned le", mir.OpLe, types.U128, "340282366920938463463374607431768211455", "340282366920938463463374607431768211455", true},
		{"i8 eq raw", mir.OpEq, types.I8, "-1", "-1", true},
		{"i8 ne", mir.OpNe, types.I8, "-1", "1", true},
		{"u32 eq", mir.OpEq, types.U32, "7", "7", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, overflowed, err := evalInt(t, tt.op, tt.l, tt.r, tt.typ)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			if b, ok := val.(mir.Bool); !ok || bool(b) != tt.want {
				t.Errorf("expected %v, got %s", tt.want, val.Repr())
			}

			if overflowed {
				t.Error("comparisons never overflow")
			}
		})
	}
}

func TestIntBitwise(t *testing.T) {
	tests := []struct {
		name string
		op   mir.BinOp
		typ  types.IntType
		l, r string
		want string
	}{
		{"u8 and", mir.OpBitAnd, types.U8, "12", "10", "8"},
		{"u8 or", mir.OpBitOr, types.U8, "12", "10", "14"},
		{"u8 xor", mir.OpBitXor, types.U8, "12", "10", "6"},
		{"i8 and masks sign bits", mir.OpBitAnd, types.I8, "-1", "15", "15"},
		{"u64 xor self", mir.OpBitXor, types.U64, "18446744073709551615", "18446744073709551615", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, overflowed, err := evalInt(t, tt.op, tt.l, tt.r, tt.typ)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			b := val.(mir.Bits)
			if b.Val.Dec() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, b.Val.Dec())
			}

			if overflowed {
				t.Error("bitwise operations never overflow")
			}
		})
	}
}

func TestIntShifts(t *testing.T) {
	tests := []struct {
		name     string
		op       mir.BinOp
		typ      types.IntType
		l        string
		rhsTyp   types.IntType
		r        string
		want     string
		overflow bool
	}{
		{"u32 shl in range", mir.OpShl, types.U32, "1", types.U32, "8", "256", false},
		{"u32 shl amount 40 reduces mod 32", mir.OpShl, types.U32, "1", types.U32, "40", "256", true},
		{"u8 shr logical", mir.OpShr, types.U8, "128", types.U8, "1", "64", false},
		{"i8 shr arithmetic", mir.OpShr, types.I8, "-128", types.I8, "1", "-64", false},
		{"i8 shr amount reduces mod 8", mir.OpShr, types.I8, "-1", types.U32, "100", "-1", true},
		{"u8 shl discards high bits silently", mir.OpShl, types.U8, "255", types.U8, "4", "240", false},
		{"u64 shift amount exceeding 32 bits", mir.OpShl, types.U64, "7", types.U64, "4294967296", "7", true},
		{"u8 rhs wider type", mir.OpShl, types.U8, "1", types.U64, "3", "8", false},
		{"i128 shl across word boundary", mir.OpShl, types.I128, "1", types.U32, "100", "1267650600228229401496703205376", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, overflowed, err := NewEvalContext(nil).BinaryOp(
				tt.op,
				intOperand(t, tt.l, tt.typ),
				intOperand(t, tt.r, tt.rhsTyp),
			)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			if got := decodeSigned(t, val, tt.typ); got != tt.want {
				t.Errorf("value: expected %s, got %s", tt.want, got)
			}

			if overflowed != tt.overflow {
				t.Errorf("overflow: expected %v, got %v", tt.overflow, overflowed)
			}
		})
	}
}

func TestIntAsymmetricTypesRejected(t *testing.T) {
	_, _, err := NewEvalContext(nil).BinaryOp(
		mir.OpAdd,
		intOperand(t, "1", types.U8),
		intOperand(t, "1", types.U16),
	)

	ee, ok := err.(*report.EvalError)
	if !ok {
		t.Fatalf("expected eval error, got %v", err)
	}

	if ee.Kind != report.Unimplemented {
		t.Errorf("wrong error kind: %d", ee.Kind)
	}

	// Signedness is part of type identity too.
	_, _, err = NewEvalContext(nil).BinaryOp(
		mir.OpAdd,
		intOperand(t, "1", types.I32),
		intOperand(t, "1", types.U32),
	)
	if ee, ok := err.(*report.EvalError); !ok || ee.Kind != report.Unimplemented {
		t.Errorf("expected unimplemented error, got %v", err)
	}
}
