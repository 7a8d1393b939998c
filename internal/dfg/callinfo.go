package dfg

import "ssaflow/internal/dfgid"

// CallKind distinguishes the three shapes spec §3 names for an
// instruction's call classification: NotACall | Direct(FuncRef,args) |
// Indirect(SigRef,args).
type CallKind uint8

const (
	NotACall CallKind = iota
	DirectCall
	IndirectCall
)

// CallInfo is the result of InstructionData.analyzeCall: which call shape
// an instruction has, and the callee reference and arguments that go with
// it. Exactly one of FuncRef/SigRef is meaningful, selected by Kind.
type CallInfo struct {
	Kind    CallKind
	FuncRef dfgid.FuncRef
	SigRef  dfgid.SigRef
	Args    []dfgid.Value
}
