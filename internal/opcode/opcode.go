// Package opcode is the external collaborator spec.md §6 calls "opcode
// constraints": a pure function from an opcode (and a controlling type
// variable) to its arity and result types. The data flow graph consults
// this table; it never mutates it.
package opcode

import "fmt"

// Opcode identifies an instruction's operation. The set here is the subset
// of Cretonne's opcode list that spec.md names explicitly, plus the call
// family needed to exercise variadic call results (spec §4.4 step 2).
type Opcode uint8

const (
	// Iconst loads a constant integer. Nullary, one polymorphic result.
	Iconst Opcode = iota
	// Trap aborts execution. Nullary, no results.
	Trap
	// Iadd is a plain two-operand integer add. One polymorphic result.
	Iadd
	// Isub is a plain two-operand integer subtract. One polymorphic result.
	Isub
	// Imul is a plain two-operand integer multiply. One polymorphic result.
	Imul
	// IaddCout is add-with-carry-out: two results, the sum and a B1 carry flag.
	IaddCout
	// Icmp is an integer comparison, producing a B1 result.
	Icmp
	// Copy is a unary pass-through; resolve_copies (spec §4.2) sees through it.
	Copy
	// Spill is a unary pass-through that additionally marks its result as
	// spilled to the stack; resolve_copies sees through it.
	Spill
	// Fill is a unary pass-through that reloads a spilled value;
	// resolve_copies sees through it.
	Fill
	// Call is a direct call through a FuncRef. Its result count is variadic,
	// taken from the callee's signature (spec §4.4 step 2).
	Call
	// CallIndirect is an indirect call through a SigRef. Same variadic
	// result handling as Call.
	CallIndirect
	// Return is a function return. No results.
	Return
)

var names = map[Opcode]string{
	Iconst:       "iconst",
	Trap:         "trap",
	Iadd:         "iadd",
	Isub:         "isub",
	Imul:         "imul",
	IaddCout:     "iadd_cout",
	Icmp:         "icmp",
	Copy:         "copy",
	Spill:        "spill",
	Fill:         "fill",
	Call:         "call",
	CallIndirect: "call_indirect",
	Return:       "return",
}

// String renders the opcode's mnemonic, as used in textual IR and in
// Display (spec §4.9).
func (o Opcode) String() string {
	if name, ok := names[o]; ok {
		return name
	}
	return fmt.Sprintf("opcode(%d)", uint8(o))
}

// Lookup resolves a mnemonic back to an Opcode, used by the textual
// instruction assembler (internal/asmgrammar).
func Lookup(mnemonic string) (Opcode, bool) {
	for op, name := range names {
		if name == mnemonic {
			return op, true
		}
	}
	return 0, false
}

// IsCall reports whether o is one of the call family opcodes.
func (o Opcode) IsCall() bool {
	return o == Call || o == CallIndirect
}

// IsCopyLike reports whether o is one of Copy/Spill/Fill: the unary
// pass-through instructions resolve_copies (spec §4.2) steps through.
func (o Opcode) IsCopyLike() bool {
	return o == Copy || o == Spill || o == Fill
}
