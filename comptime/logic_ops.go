package comptime

import (
	"cruxc/mir"
	"cruxc/report"
)

// charBinaryOp applies a binary operator to two character values.  Characters
// only support comparison; overflow is impossible.
func charBinaryOp(op mir.BinOp, l, r rune) (mir.Scalar, bool, error) {
	var res bool
	switch op {
	case mir.OpEq:
		res = l == r
	case mir.OpNe:
		res = l != r
	case mir.OpLt:
		res = l < r
	case mir.OpLe:
		res = l <= r
	case mir.OpGt:
		res = l > r
	case mir.OpGe:
		res = l >= r
	default:
		report.ReportICE("invalid operation on char: `%s`", op.Repr())
	}

	return mir.Bool(res), false, nil
}

// boolBinaryOp applies a binary operator to two boolean values.  Booleans
// support comparison and the bitwise operators; overflow is impossible.
func boolBinaryOp(op mir.BinOp, l, r bool) (mir.Scalar, bool, error) {
	var res bool
	switch op {
	case mir.OpEq:
		res = l == r
	case mir.OpNe:
		res = l != r
	case mir.OpLt:
		res = !l && r
	case mir.OpLe:
		res = !l || r
	case mir.OpGt:
		res = l && !r
	case mir.OpGe:
		res = l || !r
	case mir.OpBitAnd:
		res = l && r
	case mir.OpBitOr:
		res = l || r
	case mir.OpBitXor:
		res = l != r
	default:
		report.ReportICE("invalid operation on bool: `%s`", op.Repr())
	}

	return mir.Bool(res), false, nil
}
