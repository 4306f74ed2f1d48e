package mir

// BinOp is the integer code used to designate a binary operator in Crux MIR.
type BinOp int

// Enumeration of binary operator codes.
const (
	OpEq = BinOp(iota)
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem

	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
)

// binOpDisplayTable converts a binary operator code into a displayable string.
var binOpDisplayTable = []string{
	"eq",  // OpEq
	"ne",  // OpNe
	"lt",  // OpLt
	"le",  // OpLe
	"gt",  // OpGt
	"ge",  // OpGe
	"add", // OpAdd
	"sub", // OpSub
	"mul", // OpMul
	"div", // OpDiv
	"rem", // OpRem
	"and", // OpBitAnd
	"or",  // OpBitOr
	"xor", // OpBitXor
	"shl", // OpShl
	"shr", // OpShr
}

// BinOpTable is a table of all valid binary operator names and their mappings
// to operator codes.
var BinOpTable = map[string]BinOp{
	"eq":  OpEq,
	"ne":  OpNe,
	"lt":  OpLt,
	"le":  OpLe,
	"gt":  OpGt,
	"ge":  OpGe,
	"add": OpAdd,
	"sub": OpSub,
	"mul": OpMul,
	"div": OpDiv,
	"rem": OpRem,
	"and": OpBitAnd,
	"or":  OpBitOr,
	"xor": OpBitXor,
	"shl": OpShl,
	"shr": OpShr,
}

func (op BinOp) Repr() string {
	return binOpDisplayTable[op]
}

// IsShift returns whether the operator is a shift operator.  Shift operators
// are the only binary operators whose right operand may have a type different
// from the left operand's.
func (op BinOp) IsShift() bool {
	return op == OpShl || op == OpShr
}

// -----------------------------------------------------------------------------

// UnOp is the integer code used to designate a unary operator in Crux MIR.
type UnOp int

// Enumeration of unary operator codes.
const (
	OpNot = UnOp(iota)
	OpNeg
)

// unOpDisplayTable converts a unary operator code into a displayable string.
var unOpDisplayTable = []string{
	"not", // OpNot
	"neg", // OpNeg
}

// UnOpTable is a table of all valid unary operator names and their mappings to
// operator codes.
var UnOpTable = map[string]UnOp{
	"not": OpNot,
	"neg": OpNeg,
}

func (op UnOp) Repr() string {
	return unOpDisplayTable[op]
}
