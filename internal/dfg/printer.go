package dfg

import (
	"fmt"
	"strings"

	"ssaflow/internal/dfgid"
)

// DisplayInst renders inst in the textual form spec §4.9 describes:
// "v0, v1 = opcode.type operands", omitting the result list entirely when
// the instruction has none. The ".type" suffix is the instruction's
// first-result type and is omitted when that is void; the controlling type
// variable is not stored, so an opcode whose result type differs from it
// (icmp prints ".b1") shows its result type. Grounded on dfg.rs's DisplayInst and the
// teacher's internal/ir printer, adapted from a recursive AST walk to a
// flat instruction-at-a-time renderer since this package has no AST, only
// InstructionData.
func (dfg *DataFlowGraph) DisplayInst(inst dfgid.Inst) string {
	var b strings.Builder

	results := dfg.InstResults(inst)
	if len(results) > 0 {
		names := make([]string, len(results))
		for i, r := range results {
			names[i] = r.String()
		}
		b.WriteString(strings.Join(names, ", "))
		b.WriteString(" = ")
	}

	data := dfg.insts.get(inst.Index())
	b.WriteString(data.Opcode.String())
	if !data.FirstType().IsVoid() {
		b.WriteString(".")
		b.WriteString(data.FirstType().String())
	}

	args := dfg.InstArgs(inst)
	if len(args) > 0 {
		argNames := make([]string, len(args))
		for i, a := range args {
			argNames[i] = a.String()
		}
		b.WriteString(" ")
		b.WriteString(strings.Join(argNames, ", "))
	}

	if sig, ok := dfg.CallSignature(inst); ok {
		fmt.Fprintf(&b, "  ; %s", sig)
	}

	return b.String()
}

// DisplayEbbHeader renders ebb's argument list as it would appear
// introducing a block in textual IR: "ebb0(vx0: i32, vx1: i32):".
func (dfg *DataFlowGraph) DisplayEbbHeader(ebb dfgid.Ebb) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", ebb)

	args := dfg.EbbArgs(ebb)
	if len(args) > 0 {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = fmt.Sprintf("%s: %s", a, dfg.ValueType(a))
		}
		b.WriteString("(")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}
	b.WriteString(":")
	return b.String()
}
