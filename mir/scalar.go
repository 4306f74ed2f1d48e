package mir

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Scalar is an interface representing a single immediate scalar value as
// operated on by the compile-time evaluator: a boolean, a character, a raw
// bit pattern of declared width, or a pointer into some allocation.  Scalars
// are immutable; evaluation never modifies its operands.
type Scalar interface {
	// Repr returns the string representation of the scalar.
	Repr() string

	scalar()
}

// -----------------------------------------------------------------------------

// Bool represents a boolean scalar value.
type Bool bool

func (b Bool) Repr() string {
	if b {
		return "true"
	}

	return "false"
}

func (b Bool) scalar() {}

// Char represents a character scalar value: a Unicode code point.
type Char rune

func (c Char) Repr() string {
	return fmt.Sprintf("'%c'", rune(c))
}

func (c Char) scalar() {}

// Bits represents a raw bit pattern scalar of declared byte size.  The stored
// value is held in a 256-bit accumulator but is always truncated to the
// declared size: the size is authoritative for truncation and for signed
// interpretation.
type Bits struct {
	// The raw bits of the value, unsigned-packed.
	Val *uint256.Int

	// The size of the value in bytes: 1, 2, 4, 8, or 16.
	Size int
}

func (b Bits) Repr() string {
	return fmt.Sprintf("(bits %s: %d bytes)", b.Val.Dec(), b.Size)
}

func (b Bits) scalar() {}

// Ptr represents a pointer scalar value: an allocation identifier plus a byte
// offset into that allocation.  The evaluator itself never interprets pointer
// values; all pointer semantics are supplied by the host machine.
type Ptr struct {
	// The identifier of the allocation pointed into.
	Alloc uint64

	// The byte offset within the allocation.
	Offset int64
}

func (p Ptr) Repr() string {
	return fmt.Sprintf("(ptr %d+%d)", p.Alloc, p.Offset)
}

func (p Ptr) scalar() {}

// -----------------------------------------------------------------------------

// NewBits creates a raw bit pattern scalar of the given byte size from an
// already-truncated accumulator value.
func NewBits(v *uint256.Int, size int) Bits {
	return Bits{Val: v, Size: size}
}

// NewBitsUint64 creates a raw bit pattern scalar of the given byte size from a
// host integer.  The value is truncated to the declared size.
func NewBitsUint64(v uint64, size int) Bits {
	if size < 8 {
		v &= 1<<(size*8) - 1
	}

	return Bits{Val: uint256.NewInt(v), Size: size}
}
