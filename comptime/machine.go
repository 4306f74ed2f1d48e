package comptime

import (
	"cruxc/mir"
	"cruxc/types"
)

// Operand is a scalar value paired with the layout of its type.  Layouts are
// resolved by the front end: the evaluator treats them as opaque descriptions
// of size, signedness, and identity.
type Operand struct {
	// The scalar value of the operand.
	Value mir.Scalar

	// The layout of the operand's type.
	Type types.Type
}

// Machine is the evaluator's view of the host compile-time machine.  It is the
// injection point for pointer semantics: the evaluator knows nothing about
// pointer representation, so any operation whose operands may be pointers or
// function pointers is first offered to the machine.  Different hosts (eg.
// constant folding vs. full const-expression execution) implement this
// differently.
type Machine interface {
	// TryPtrOp applies a binary operator to two possibly-pointer operands.  It
	// returns the resulting scalar, whether the operation overflowed, and
	// whether the machine handled the operation at all.  If handled is false,
	// the evaluator falls back to raw integer semantics.
	TryPtrOp(op mir.BinOp, left, right Operand) (val mir.Scalar, overflowed, handled bool, err error)
}

// NopMachine is a machine with no pointer semantics: every pointer operation
// is declined and falls through to raw integer evaluation.  It is the machine
// used by hosts that never materialize pointer values at compile time.
type NopMachine struct{}

func (NopMachine) TryPtrOp(op mir.BinOp, left, right Operand) (mir.Scalar, bool, bool, error) {
	return nil, false, false, nil
}

// -----------------------------------------------------------------------------

// Place represents a destination location owned by the host machine's memory
// into which the evaluator writes results.  The evaluator's only side effects
// flow through this interface.
type Place interface {
	// WriteScalar persists a single scalar to the place.
	WriteScalar(val mir.Scalar) error

	// WritePair persists an ordered pair of scalars to the place.
	WritePair(first, second mir.Scalar) error
}

// MemPlace is an in-memory place implementation.  It stores whatever was last
// written so that callers (and tests) can observe it.
type MemPlace struct {
	// The scalars last written to the place, in write order.
	Scalars []mir.Scalar
}

func (mp *MemPlace) WriteScalar(val mir.Scalar) error {
	mp.Scalars = []mir.Scalar{val}
	return nil
}

func (mp *MemPlace) WritePair(first, second mir.Scalar) error {
	mp.Scalars = []mir.Scalar{first, second}
	return nil
}

// -----------------------------------------------------------------------------

// EvalContext is the context for compile-time scalar operator evaluation.  It
// holds no mutable state of its own: every evaluation is a pure function of
// the operator and its operands, so one context may be shared freely between
// concurrent callers.
type EvalContext struct {
	// The host machine supplying pointer semantics.
	machine Machine
}

// NewEvalContext creates a new evaluation context backed by the given machine.
// Passing nil installs the no-op machine.
func NewEvalContext(machine Machine) *EvalContext {
	if machine == nil {
		machine = NopMachine{}
	}

	return &EvalContext{machine: machine}
}
