package opcode

import (
	"fmt"

	"ssaflow/internal/types"
)

// Constraints is the per-opcode arity/typing table spec §6 calls "opcode
// constraints": given an opcode and a controlling type variable, it reports
// fixed_value_arguments(), fixed_results(), and result_type(i, ctrl_typevar).
// It is total on valid indices, as spec §6 requires.
type Constraints struct {
	op Opcode
}

// ConstraintsFor looks up the constraints for o. Total over every Opcode
// defined in this package.
func ConstraintsFor(o Opcode) Constraints {
	return Constraints{op: o}
}

// FixedValueArguments is the number of value operands fixed by the opcode,
// before any variable/overflow tail stored in the value-list pool.
func (c Constraints) FixedValueArguments() int {
	switch c.op {
	case Iconst, Trap, Return:
		return 0
	case Copy, Spill, Fill:
		return 1
	case Iadd, Isub, Imul, IaddCout, Icmp:
		return 2
	case Call:
		return 0
	case CallIndirect:
		// First argument is the callee address; the rest are call arguments.
		return 1
	default:
		panic(fmt.Sprintf("opcode %s: no arity constraint registered", c.op))
	}
}

// FixedResults is the number of result values produced directly by the
// opcode, i.e. not counting variable results drawn from a call signature.
func (c Constraints) FixedResults() int {
	switch c.op {
	case Trap, Return, Call, CallIndirect:
		return 0
	case IaddCout:
		return 2
	default:
		return 1
	}
}

// ResultType returns the type of the i'th fixed result, given the
// instruction's controlling type variable. Panics if i is out of range for
// FixedResults(); callers (internal/dfg) only ever call this for
// i < FixedResults().
func (c Constraints) ResultType(i int, ctrlTypevar types.Type) types.Type {
	switch c.op {
	case Iconst, Iadd, Isub, Imul, Copy, Spill, Fill:
		if i == 0 {
			return ctrlTypevar
		}
	case Icmp:
		if i == 0 {
			return types.B1
		}
	case IaddCout:
		switch i {
		case 0:
			return ctrlTypevar
		case 1:
			return types.B1
		}
	}
	panic(fmt.Sprintf("opcode %s: no result type for fixed result %d", c.op, i))
}
