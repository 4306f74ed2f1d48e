package types

import (
	"fmt"
	"strings"

	"cruxc/util"
)

// Type represents the layout of a Crux scalar type as seen by the compile-time
// evaluator: its size in bytes, its signedness, and its identity.  Layouts are
// resolved by the front end and passed in alongside every operand; the
// evaluator never computes layout information itself.
type Type interface {
	// Returns whether this type is identical to the other type.  Most binary
	// operators require both operands to share an identical type; shift
	// operators are the one exception.
	equals(other Type) bool

	// Returns the size of this type in bytes.
	Size() int

	// Returns the representative string for this type.
	Repr() string
}

// Equal returns whether two types are identical.
func Equal(a, b Type) bool {
	return a.equals(b)
}

// -----------------------------------------------------------------------------

// IntType represents a sized integer type.  Sizes of 1, 2, 4, 8, and 16 bytes
// are supported: the evaluator's accumulator is 128 bits wide.
type IntType struct {
	// The size of the type in bytes.
	Bytes int

	// Whether the type is signed.
	Signed bool
}

func (it IntType) equals(other Type) bool {
	if oit, ok := other.(IntType); ok {
		return it == oit
	}

	return false
}

func (it IntType) Size() int {
	return it.Bytes
}

func (it IntType) Repr() string {
	if it.Signed {
		return fmt.Sprintf("i%d", it.Bytes*8)
	}

	return fmt.Sprintf("u%d", it.Bytes*8)
}

// FloatType represents an IEEE-754 floating-point type.  Only the 32-bit and
// 64-bit formats exist.
type FloatType struct {
	// The size of the type in bytes: 4 or 8.
	Bytes int
}

func (ft FloatType) equals(other Type) bool {
	if oft, ok := other.(FloatType); ok {
		return ft == oft
	}

	return false
}

func (ft FloatType) Size() int {
	return ft.Bytes
}

func (ft FloatType) Repr() string {
	return fmt.Sprintf("f%d", ft.Bytes*8)
}

// BoolType represents the boolean type.
type BoolType struct{}

func (bt BoolType) equals(other Type) bool {
	_, ok := other.(BoolType)
	return ok
}

func (bt BoolType) Size() int {
	return 1
}

func (bt BoolType) Repr() string {
	return "bool"
}

// CharType represents the character type: a 4-byte Unicode code point.
type CharType struct{}

func (ct CharType) equals(other Type) bool {
	_, ok := other.(CharType)
	return ok
}

func (ct CharType) Size() int {
	return 4
}

func (ct CharType) Repr() string {
	return "char"
}

// PointerType represents a raw pointer type.  The pointer width is supplied by
// the target description, not assumed by the evaluator.
type PointerType struct {
	// The type pointed to.
	ElemType Type

	// The size of a pointer in bytes on the target.
	Bytes int
}

func (pt *PointerType) equals(other Type) bool {
	if opt, ok := other.(*PointerType); ok {
		return pt.Bytes == opt.Bytes && Equal(pt.ElemType, opt.ElemType)
	}

	return false
}

func (pt *PointerType) Size() int {
	return pt.Bytes
}

func (pt *PointerType) Repr() string {
	return "*" + pt.ElemType.Repr()
}

// FuncType represents a function type.  Function values are represented as
// function pointers and so share the target's pointer width.
type FuncType struct {
	// The parameter types of the function.
	ParamTypes []Type

	// The return type of the function.
	ReturnType Type

	// The size of a function pointer in bytes on the target.
	Bytes int
}

func (ft *FuncType) equals(other Type) bool {
	if oft, ok := other.(*FuncType); ok {
		if len(ft.ParamTypes) != len(oft.ParamTypes) {
			return false
		}

		for i, pt := range ft.ParamTypes {
			if !Equal(pt, oft.ParamTypes[i]) {
				return false
			}
		}

		return Equal(ft.ReturnType, oft.ReturnType) && ft.Bytes == oft.Bytes
	}

	return false
}

func (ft *FuncType) Size() int {
	return ft.Bytes
}

func (ft *FuncType) Repr() string {
	return fmt.Sprintf(
		"func(%s) %s",
		strings.Join(util.Map(ft.ParamTypes, func(typ Type) string { return typ.Repr() }), ", "),
		ft.ReturnType.Repr(),
	)
}

// -----------------------------------------------------------------------------

// IsIntegral returns whether a type is an integer type.
func IsIntegral(typ Type) bool {
	_, ok := typ.(IntType)
	return ok
}

// IsFloating returns whether a type is a floating-point type.
func IsFloating(typ Type) bool {
	_, ok := typ.(FloatType)
	return ok
}

// IsSigned returns whether a type is interpreted as signed.  Only signed
// integer types are: pointers and function pointers always behave as unsigned
// raw bit patterns.
func IsSigned(typ Type) bool {
	if it, ok := typ.(IntType); ok {
		return it.Signed
	}

	return false
}

// IsPointerLike returns whether a type is a raw pointer or function pointer
// type.  Operations on pointer-like operands are first offered to the host
// machine before falling back to raw integer semantics.
func IsPointerLike(typ Type) bool {
	switch typ.(type) {
	case *PointerType, *FuncType:
		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------

// Predeclared layouts for the primitive scalar types.
var (
	I8   = IntType{Bytes: 1, Signed: true}
	I16  = IntType{Bytes: 2, Signed: true}
	I32  = IntType{Bytes: 4, Signed: true}
	I64  = IntType{Bytes: 8, Signed: true}
	I128 = IntType{Bytes: 16, Signed: true}
	U8   = IntType{Bytes: 1, Signed: false}
	U16  = IntType{Bytes: 2, Signed: false}
	U32  = IntType{Bytes: 4, Signed: false}
	U64  = IntType{Bytes: 8, Signed: false}
	U128 = IntType{Bytes: 16, Signed: false}
	F32  = FloatType{Bytes: 4}
	F64  = FloatType{Bytes: 8}
	Bool = BoolType{}
	Char = CharType{}
)
