package dfg

import (
	"ssaflow/internal/dfgid"
	"ssaflow/internal/opcode"
	"ssaflow/internal/types"
)

// InstructionData is the "Instruction payload" spec §3 describes: an
// opcode, its operands (stored in the shared value-list pool rather than
// inline, since Go has no need for Cretonne's small-vector-in-struct
// space trick), a first-result type, and the fields needed to classify a
// call instruction (spec §3's "analyze_call").
type InstructionData struct {
	Opcode    opcode.Opcode
	firstType types.Type
	Args      ValueList

	// funcRef and sigRef are only meaningful when Opcode is Call or
	// CallIndirect respectively.
	funcRef dfgid.FuncRef
	sigRef  dfgid.SigRef
}

// NewInstructionData builds the payload for a non-call instruction with
// the given fixed+variable arguments already pushed into pool. The payload
// does not record a controlling type variable; the first-result type is set
// later by MakeInstResults.
func NewInstructionData(op opcode.Opcode, args []dfgid.Value, pool *ValueListPool) InstructionData {
	data := InstructionData{Opcode: op}
	for _, a := range args {
		data.Args.Push(a, pool)
	}
	return data
}

// NewDirectCallData builds the payload for a Call instruction through fn,
// with call arguments args.
func NewDirectCallData(fn dfgid.FuncRef, args []dfgid.Value, pool *ValueListPool) InstructionData {
	data := InstructionData{Opcode: opcode.Call, funcRef: fn}
	for _, a := range args {
		data.Args.Push(a, pool)
	}
	return data
}

// NewIndirectCallData builds the payload for a CallIndirect instruction
// through the callee address callee, against signature sig, with call
// arguments args.
func NewIndirectCallData(sig dfgid.SigRef, callee dfgid.Value, args []dfgid.Value, pool *ValueListPool) InstructionData {
	data := InstructionData{Opcode: opcode.CallIndirect, sigRef: sig}
	data.Args.Push(callee, pool)
	for _, a := range args {
		data.Args.Push(a, pool)
	}
	return data
}

// FirstType returns the instruction's first-result type (spec §3
// invariant 2). Void if the instruction currently has no results.
func (d InstructionData) FirstType() types.Type { return d.firstType }

// analyzeCall classifies the instruction per spec §3's call-classification
// field, consulting pool only to read back the argument slice.
func (d InstructionData) analyzeCall(pool *ValueListPool) CallInfo {
	switch d.Opcode {
	case opcode.Call:
		return CallInfo{Kind: DirectCall, FuncRef: d.funcRef, Args: d.Args.AsSlice(pool)}
	case opcode.CallIndirect:
		return CallInfo{Kind: IndirectCall, SigRef: d.sigRef, Args: d.Args.AsSlice(pool)}
	default:
		return CallInfo{Kind: NotACall}
	}
}
