package codegen

import (
	"math"

	"cruxc/mir"
	"cruxc/report"
	"cruxc/types"

	"github.com/holiman/uint256"
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
)

// ConvType converts a Crux scalar type layout to its LLVM type.
func ConvType(typ types.Type) lltypes.Type {
	switch v := typ.(type) {
	case types.IntType:
		return lltypes.NewInt(uint64(v.Bytes * 8))
	case types.FloatType:
		if v.Bytes == 4 {
			return lltypes.Float
		}

		return lltypes.Double
	case types.BoolType:
		return lltypes.I1
	case types.CharType:
		return lltypes.I32
	case *types.PointerType:
		return lltypes.NewPointer(ConvType(v.ElemType))
	}

	report.ReportICE("no LLVM conversion for type `%s`", typ.Repr())
	return nil
}

// ConstScalar converts an evaluated scalar and its layout to an LLVM constant
// so that folded results can be compiled directly into the output program.
func ConstScalar(s mir.Scalar, typ types.Type) constant.Constant {
	switch v := s.(type) {
	case mir.Bool:
		return constant.NewBool(bool(v))
	case mir.Char:
		return constant.NewInt(lltypes.I32, int64(v))
	case mir.Bits:
		return constBits(v, typ)
	}

	report.ReportICE("no LLVM conversion for scalar %s", s.Repr())
	return nil
}

// constBits converts a raw bit pattern scalar to an LLVM integer or float
// constant depending on its layout.
func constBits(b mir.Bits, typ types.Type) constant.Constant {
	switch v := typ.(type) {
	case types.IntType:
		llTyp := lltypes.NewInt(uint64(v.Bytes * 8))

		c, err := constant.NewIntFromString(llTyp, decRepr(b.Val, v))
		if err != nil {
			report.ReportICE("failed to convert bits %s to LLVM constant: %s", b.Repr(), err)
		}

		return c
	case types.FloatType:
		if v.Bytes == 4 {
			return constant.NewFloat(lltypes.Float, float64(math.Float32frombits(uint32(b.Val.Uint64()))))
		}

		return constant.NewFloat(lltypes.Double, math.Float64frombits(b.Val.Uint64()))
	}

	report.ReportICE("raw bits %s of non-numeric type `%s`", b.Repr(), typ.Repr())
	return nil
}

// decRepr returns the decimal representation of a raw bit pattern under its
// layout's signed interpretation.
func decRepr(v *uint256.Int, it types.IntType) string {
	if it.Signed {
		sx := types.SignExtend(v, it)
		if sx.Sign() < 0 {
			return "-" + new(uint256.Int).Neg(sx).Dec()
		}
	}

	return v.Dec()
}
