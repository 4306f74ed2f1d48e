package cmd

import (
	"math"
	"strconv"
	"strings"

	"cruxc/codegen"
	"cruxc/comptime"
	"cruxc/mir"
	"cruxc/report"
	"cruxc/target"
	"cruxc/types"
	"cruxc/util"

	"github.com/ComedicChimera/olive"
	"github.com/holiman/uint256"
)

// namedTypes is a table of all valid operand type names and their layouts.
// The target-dependent `isize` and `usize` names are resolved separately.
var namedTypes = map[string]types.Type{
	"i8":   types.I8,
	"i16":  types.I16,
	"i32":  types.I32,
	"i64":  types.I64,
	"i128": types.I128,
	"u8":   types.U8,
	"u16":  types.U16,
	"u32":  types.U32,
	"u64":  types.U64,
	"u128": types.U128,
	"f32":  types.F32,
	"f64":  types.F64,
	"bool": types.Bool,
	"char": types.Char,
}

// execEvalCommand executes the `eval` subcommand and handles all errors.
func execEvalCommand(result *olive.ArgParseResult, loglevel string) {
	// initialize the reporter
	report.InitReporter(loglevels[loglevel])

	// resolve the target description
	tgt := target.DefaultTarget()
	if path, ok := result.Arguments["target"]; ok {
		var err error
		if tgt, err = target.LoadTarget(path.(string)); err != nil {
			report.ReportFatal(err.Error())
		}
	}

	// resolve the operand type and operands
	opName, _ := result.PrimaryArg()
	typ := parseTypeName(result.Arguments["type"].(string), tgt)
	lhs := parseScalar(result.Arguments["lhs"].(string), typ)

	ctx := comptime.NewEvalContext(nil)

	// a missing right operand selects unary evaluation
	rawRhs, isBinary := result.Arguments["rhs"]
	if !isBinary {
		op, ok := mir.UnOpTable[opName]
		if !ok {
			report.ReportFatal("unknown unary operator `%s`", opName)
		}

		val, err := ctx.UnaryOp(op, comptime.Operand{Value: lhs, Type: typ})
		if err != nil {
			report.ReportError(err)
			return
		}

		displayResult(val, typ, false)
		return
	}

	op, ok := mir.BinOpTable[opName]
	if !ok {
		report.ReportFatal("unknown binary operator `%s`", opName)
	}

	// shift operators may take a right operand of an independent type
	rhsTyp := typ
	if op.IsShift() {
		if stName, ok := result.Arguments["shift-type"]; ok {
			rhsTyp = parseTypeName(stName.(string), tgt)
		}
	}

	rhs := parseScalar(rawRhs.(string), rhsTyp)

	// evaluate through the overflow-tracking writer so the destination pair is
	// exactly what the interpreter would persist
	dest := &comptime.MemPlace{}
	err := ctx.BinOpWithOverflow(
		op,
		comptime.Operand{Value: lhs, Type: typ},
		comptime.Operand{Value: rhs, Type: rhsTyp},
		dest,
	)
	if err != nil {
		report.ReportError(err)
		return
	}

	displayResult(dest.Scalars[0], typ, bool(dest.Scalars[1].(mir.Bool)))
}

// displayResult displays an evaluated scalar, its overflow flag, and its LLVM
// constant rendering.
func displayResult(val mir.Scalar, operandTyp types.Type, overflowed bool) {
	resTyp := resultType(val, operandTyp)

	report.DisplayInfoMessage("Result", val.Repr())
	report.DisplayInfoMessage("Overflowed", strconv.FormatBool(overflowed))
	report.DisplayInfoMessage("LLVM", codegen.ConstScalar(val, resTyp).Ident())
}

// resultType determines the layout of an evaluation result: comparisons
// produce booleans, everything else preserves the left operand's layout.
func resultType(val mir.Scalar, operandTyp types.Type) types.Type {
	switch val.(type) {
	case mir.Bool:
		return types.Bool
	case mir.Char:
		return types.Char
	default:
		return operandTyp
	}
}

// parseTypeName resolves an operand type name to its layout.
func parseTypeName(name string, tgt *target.Target) types.Type {
	switch name {
	case "isize":
		return tgt.Isize()
	case "usize":
		return tgt.Usize()
	}

	typ, ok := namedTypes[name]
	if !ok {
		report.ReportFatal(
			"unknown type `%s`; valid types are: %s, isize, usize",
			name,
			strings.Join(util.SortedKeys(namedTypes), ", "),
		)
	}

	return typ
}

// parseScalar parses an operand literal at the given layout.  Only plain
// literals are accepted: expression parsing belongs to the front end.
func parseScalar(lit string, typ types.Type) mir.Scalar {
	switch v := typ.(type) {
	case types.BoolType:
		b, err := strconv.ParseBool(lit)
		if err != nil {
			report.ReportFatal("invalid bool literal `%s`", lit)
		}

		return mir.Bool(b)
	case types.CharType:
		runes := []rune(lit)
		if len(runes) != 1 {
			report.ReportFatal("char literal `%s` must be a single character", lit)
		}

		return mir.Char(runes[0])
	case types.FloatType:
		f, err := strconv.ParseFloat(lit, v.Bytes*8)
		if err != nil {
			report.ReportFatal("invalid float literal `%s`", lit)
		}

		return floatScalar(f, v)
	case types.IntType:
		return intScalar(lit, v)
	}

	report.ReportFatal("cannot write a literal of type `%s`", typ.Repr())
	return nil
}

// intScalar parses an integer literal into a raw bit pattern scalar,
// truncating it to the layout's width.
func intScalar(lit string, it types.IntType) mir.Scalar {
	negative := strings.HasPrefix(lit, "-")
	v, err := uint256.FromDecimal(strings.TrimPrefix(lit, "-"))
	if err != nil {
		report.ReportFatal("invalid integer literal `%s`", lit)
	}

	if negative {
		v.Neg(v)
	}

	return mir.NewBits(types.Truncate(v, it), it.Bytes)
}

// floatScalar encodes a parsed float literal as a raw bit pattern scalar of
// the layout's format width.
func floatScalar(f float64, ft types.FloatType) mir.Scalar {
	if ft.Bytes == 4 {
		return mir.NewBitsUint64(uint64(math.Float32bits(float32(f))), 4)
	}

	return mir.NewBitsUint64(math.Float64bits(f), 8)
}
