// Package dfgid defines the small integer handles spec.md §3 calls
// "identifiers": Inst, Ebb, SigRef, FuncRef, and the packed Value
// reference. They live in their own package, beneath internal/dfg and
// internal/layout both, because both need to name them without either
// depending on the other — the DFG's Cursor contract (spec §4.7, §6) is
// the only thing that couples the two, and it is expressed as an
// interface inside internal/dfg.
//
// Every handle here is a plain value type: cheap to copy, comparable with
// ==, and meaningless except relative to the DataFlowGraph that produced
// it (spec §5 "Ownership").
package dfgid

import "fmt"

// Inst identifies an instruction.
type Inst struct{ index uint32 }

// InstFromIndex constructs an Inst from its dense index. Used only by
// internal/dfg when pushing into its instruction EntityMap.
func InstFromIndex(index uint32) Inst { return Inst{index: index} }

// Index returns the dense index backing this handle.
func (i Inst) Index() uint32 { return i.index }

func (i Inst) String() string { return fmt.Sprintf("inst%d", i.index) }

// Ebb identifies an extended basic block.
type Ebb struct{ index uint32 }

// EbbFromIndex constructs an Ebb from its dense index.
func EbbFromIndex(index uint32) Ebb { return Ebb{index: index} }

// Index returns the dense index backing this handle.
func (e Ebb) Index() uint32 { return e.index }

func (e Ebb) String() string { return fmt.Sprintf("ebb%d", e.index) }

// SigRef identifies a function signature stored in the DFG's signature table.
type SigRef struct{ index uint32 }

// SigRefFromIndex constructs a SigRef from its dense index.
func SigRefFromIndex(index uint32) SigRef { return SigRef{index: index} }

// Index returns the dense index backing this handle.
func (s SigRef) Index() uint32 { return s.index }

func (s SigRef) String() string { return fmt.Sprintf("sig%d", s.index) }

// FuncRef identifies an external function reference stored in the DFG's
// ext-func table.
type FuncRef struct{ index uint32 }

// FuncRefFromIndex constructs a FuncRef from its dense index.
func FuncRefFromIndex(index uint32) FuncRef { return FuncRef{index: index} }

// Index returns the dense index backing this handle.
func (f FuncRef) Index() uint32 { return f.index }

func (f FuncRef) String() string { return fmt.Sprintf("fn%d", f.index) }
