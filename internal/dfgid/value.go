package dfgid

import "fmt"

// tableTag marks a Value as a Table reference rather than a Direct one.
// Reserving the top bit leaves 31 bits for the instruction index or table
// index, which comfortably exceeds any function this package will ever see
// (spec §4.1, §9 "Packed tagged handle").
const tableTag = uint32(1) << 31

const indexMask = tableTag - 1

// Value is the packed tagged SSA value reference spec.md §3/§4.1
// describes: one bit distinguishes Direct(Inst) — the first result of that
// instruction — from Table(index) — an index into the DFG's extended-value
// table. It fits in a machine word and compares with ==, exactly as spec
// requires.
type Value struct{ bits uint32 }

// NewDirectValue builds a Value denoting the first result of inst.
func NewDirectValue(inst Inst) Value {
	if inst.index > indexMask {
		panic(fmt.Sprintf("value: instruction index %d does not fit in a packed Value", inst.index))
	}
	return Value{bits: inst.index}
}

// NewTableValue builds a Value indexing into the extended-value table.
func NewTableValue(index uint32) Value {
	if index > indexMask {
		panic(fmt.Sprintf("value: table index %d does not fit in a packed Value", index))
	}
	return Value{bits: tableTag | index}
}

// IsTable reports whether v is a Table(index) reference rather than Direct.
func (v Value) IsTable() bool {
	return v.bits&tableTag != 0
}

// UnpackDirect returns the instruction a Direct value names. Panics if v is
// a Table reference; callers must check IsTable first, or use Expand.
func (v Value) UnpackDirect() Inst {
	if v.IsTable() {
		panic(fmt.Sprintf("value: %s is not a Direct value", v))
	}
	return Inst{index: v.bits & indexMask}
}

// UnpackTable returns the extended-value table index a Table value names.
// Panics if v is a Direct reference.
func (v Value) UnpackTable() uint32 {
	if !v.IsTable() {
		panic(fmt.Sprintf("value: %s is not a Table value", v))
	}
	return v.bits & indexMask
}

// Expand decodes v in one call: exactly one of (inst, isTable=false) or
// (tableIndex, isTable=true) is meaningful.
func (v Value) Expand() (inst Inst, tableIndex uint32, isTable bool) {
	if v.IsTable() {
		return Inst{}, v.bits & indexMask, true
	}
	return Inst{index: v.bits & indexMask}, 0, false
}

func (v Value) String() string {
	if v.IsTable() {
		return fmt.Sprintf("vx%d", v.bits&indexMask)
	}
	return fmt.Sprintf("v%d", v.bits&indexMask)
}
