package comptime

import (
	"math"
	"testing"

	"cruxc/mir"
	"cruxc/types"
)

func floatOperand32(f float32) Operand {
	return Operand{Value: mir.NewBitsUint64(uint64(math.Float32bits(f)), 4), Type: types.F32}
}

func floatOperand64(f float64) Operand {
	return Operand{Value: mir.NewBitsUint64(math.Float64bits(f), 8), Type: types.F64}
}

func decodeFloat64(t *testing.T, s mir.Scalar) float64 {
	t.Helper()

	b, ok := s.(mir.Bits)
	if !ok || b.Size != 8 {
		t.Fatalf("expected 8 byte bits scalar, got %s", s.Repr())
	}

	return math.Float64frombits(b.Val.Uint64())
}

func decodeFloat32(t *testing.T, s mir.Scalar) float32 {
	t.Helper()

	b, ok := s.(mir.Bits)
	if !ok || b.Size != 4 {
		t.Fatalf("expected 4 byte bits scalar, got %s", s.Repr())
	}

	return math.Float32frombits(uint32(b.Val.Uint64()))
}

func TestFloatNaNComparisons(t *testing.T) {
	ctx := NewEvalContext(nil)
	nan := floatOperand64(math.NaN())

	// NaN is unequal to itself and unordered with everything.
	for _, tt := range []struct {
		op   mir.BinOp
		want bool
	}{
		{mir.OpEq, false},
		{mir.OpNe, true},
		{mir.OpLt, false},
		{mir.OpLe, false},
		{mir.OpGt, false},
		{mir.OpGe, false},
	} {
		val, overflowed, err := ctx.BinaryOp(tt.op, nan, nan)
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", tt.op.Repr(), err)
		}

		if b, ok := val.(mir.Bool); !ok || bool(b) != tt.want {
			t.Errorf("NaN %s NaN: expected %v, got %s", tt.op.Repr(), tt.want, val.Repr())
		}

		if overflowed {
			t.Error("float comparisons never overflow")
		}

		val, _, err = ctx.BinaryOp(tt.op, nan, floatOperand64(1.0))
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", tt.op.Repr(), err)
		}

		if b, ok := val.(mir.Bool); !ok || bool(b) != tt.want {
			t.Errorf("NaN %s 1.0: expected %v, got %s", tt.op.Repr(), tt.want, val.Repr())
		}
	}
}

func TestFloatSignedZeroEquality(t *testing.T) {
	val, _, err := NewEvalContext(nil).BinaryOp(
		mir.OpEq,
		floatOperand64(math.Copysign(0, -1)),
		floatOperand64(0),
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if b, ok := val.(mir.Bool); !ok || !bool(b) {
		t.Error("-0.0 must equal +0.0")
	}
}

func TestFloat64Arithmetic(t *testing.T) {
	ctx := NewEvalContext(nil)

	tests := []struct {
		name string
		op   mir.BinOp
		l, r float64
		want float64
	}{
		{"add rounds", mir.OpAdd, 0.1, 0.2, 0.30000000000000004},
		{"sub", mir.OpSub, 1.5, 0.25, 1.25},
		{"mul", mir.OpMul, 1.5, 2.0, 3.0},
		{"div", mir.OpDiv, 7.0, 2.0, 3.5},
		{"rem", mir.OpRem, 5.5, 2.5, 0.5},
		{"div by zero saturates", mir.OpDiv, 1.0, 0.0, math.Inf(1)},
		{"neg div by zero saturates", mir.OpDiv, -1.0, 0.0, math.Inf(-1)},
		{"overflow saturates", mir.OpMul, math.MaxFloat64, 2.0, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, overflowed, err := ctx.BinaryOp(tt.op, floatOperand64(tt.l), floatOperand64(tt.r))
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			if got := decodeFloat64(t, val); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}

			// Floats saturate to infinity rather than overflow.
			if overflowed {
				t.Error("float arithmetic never reports overflow")
			}
		})
	}
}

func TestFloat32Rounding(t *testing.T) {
	// 0.1f + 0.2f rounds to the 32-bit format, which differs from both the
	// 64-bit sum and from 0.3f.
	val, _, err := NewEvalContext(nil).BinaryOp(mir.OpAdd, floatOperand32(0.1), floatOperand32(0.2))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got := val.(mir.Bits)
	if got.Val.Uint64() != 0x3E99999A {
		t.Errorf("expected bits 0x3E99999A, got 0x%X", got.Val.Uint64())
	}

	if got.Size != 4 {
		t.Errorf("32-bit result must re-encode at 4 bytes, got %d", got.Size)
	}
}

func TestFloat32NaNPropagation(t *testing.T) {
	val, _, err := NewEvalContext(nil).BinaryOp(
		mir.OpAdd,
		floatOperand32(float32(math.NaN())),
		floatOperand32(1),
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if got := decodeFloat32(t, val); !math.IsNaN(float64(got)) {
		t.Errorf("expected NaN, got %v", got)
	}
}
