// Package dfg is the Data Flow Graph: the core described by spec.md in
// full. It stores every instruction and every extended basic block (EBB)
// of a function, tracks the SSA values that flow between them, and
// exposes the algebraic operations a mid-end optimizer needs.
package dfg

import (
	"fmt"

	"ssaflow/internal/dfgid"
	"ssaflow/internal/opcode"
	"ssaflow/internal/types"
)

// DataFlowGraph defines all instructions and EBBs in a function, and the
// data-flow dependencies between them. Program order is not part of this
// structure (spec §1); that is the job of the external Layout.
type DataFlowGraph struct {
	insts          entityMap[InstructionData]
	results        entityMap[ValueList]
	ebbs           entityMap[ebbData]
	extendedValues entityMap[extValueData]

	// ValueLists is the arena every ValueList in this graph — instruction
	// arguments, result lists, EBB argument lists — shares.
	ValueLists *ValueListPool

	signatures entityMap[Signature]
	extFuncs   entityMap[ExtFuncData]
}

// New creates an empty DataFlowGraph.
func New() *DataFlowGraph {
	return &DataFlowGraph{ValueLists: NewValueListPool()}
}

// NumInsts returns the total number of instructions created in this
// function, whether currently placed in a layout or not.
func (dfg *DataFlowGraph) NumInsts() int { return dfg.insts.len() }

// InstIsValid reports whether inst names an instruction created so far.
func (dfg *DataFlowGraph) InstIsValid(inst dfgid.Inst) bool {
	return dfg.insts.isValid(inst.Index())
}

// NumEbbs returns the total number of EBBs created in this function.
func (dfg *DataFlowGraph) NumEbbs() int { return dfg.ebbs.len() }

// EbbIsValid reports whether ebb names an EBB created so far.
func (dfg *DataFlowGraph) EbbIsValid(ebb dfgid.Ebb) bool {
	return dfg.ebbs.isValid(ebb.Index())
}

// ---------------------------------------------------------------------
// Values (spec §4.1–§4.3, §4.6)
// ---------------------------------------------------------------------

// makeValue allocates an extended-value table entry and returns the Value
// referencing it.
func (dfg *DataFlowGraph) makeValue(data extValueData) dfgid.Value {
	idx := dfg.extendedValues.push(data)
	return dfgid.NewTableValue(idx)
}

// ValueIsValid reports whether v refers to a live instruction or a live
// extended-value table entry.
func (dfg *DataFlowGraph) ValueIsValid(v dfgid.Value) bool {
	inst, idx, isTable := v.Expand()
	if isTable {
		return dfg.extendedValues.isValid(idx)
	}
	return dfg.insts.isValid(inst.Index())
}

// ValueType returns the type of v (spec §4.1).
func (dfg *DataFlowGraph) ValueType(v dfgid.Value) types.Type {
	inst, idx, isTable := v.Expand()
	if isTable {
		return dfg.extendedValues.get(idx).valueType()
	}
	return dfg.insts.get(inst.Index()).FirstType()
}

// ValueDefKind distinguishes the two shapes ValueDef can take.
type ValueDefKind uint8

const (
	// ResDef: value is the Index'th result of Inst.
	ResDef ValueDefKind = iota
	// ArgDef: value is the Index'th argument of Ebb.
	ArgDef
)

// ValueDef answers "where did a value come from?" (spec §4.3).
type ValueDef struct {
	Kind  ValueDefKind
	Inst  dfgid.Inst
	Ebb   dfgid.Ebb
	Index int
}

// ValueDef returns the defining instruction result or EBB argument for v,
// following an alias through its whole chain via ResolveAliases (spec §4.3).
func (dfg *DataFlowGraph) ValueDef(v dfgid.Value) ValueDef {
	inst, idx, isTable := v.Expand()
	if !isTable {
		return ValueDef{Kind: ResDef, Inst: inst, Index: 0}
	}
	switch d := dfg.extendedValues.get(idx).(type) {
	case instResultData:
		got, ok := dfg.results.get(d.inst.Index()).Get(int(d.resultIdx), dfg.ValueLists)
		if !ok || got != v {
			panic(fmt.Sprintf("dangling result value %s: %s", v, d.inst))
		}
		return ValueDef{Kind: ResDef, Inst: d.inst, Index: int(d.resultIdx)}
	case ebbArgData:
		got, ok := dfg.ebbs.get(d.ebb.Index()).args.Get(int(d.argIdx), dfg.ValueLists)
		if !ok || got != v {
			panic(fmt.Sprintf("dangling EBB argument value %s", v))
		}
		return ValueDef{Kind: ArgDef, Ebb: d.ebb, Index: int(d.argIdx)}
	case aliasData:
		// Recurse at most one level deep: resolve_aliases (called below)
		// already walks the whole alias chain and is acyclic by
		// construction, so this cannot loop.
		return dfg.ValueDef(dfg.ResolveAliases(d.original))
	default:
		panic(fmt.Sprintf("value %s: unrecognized extended-value variant", v))
	}
}

// ResolveAliases walks Alias.original links until reaching a non-alias
// value (spec §4.2). Direct values return immediately. Bounded by
// 1+|extended_values| steps; exceeding that is a fatal invariant
// violation.
func (dfg *DataFlowGraph) ResolveAliases(v dfgid.Value) dfgid.Value {
	cur := v
	limit := 1 + dfg.extendedValues.len()
	for i := 0; i < limit; i++ {
		_, idx, isTable := cur.Expand()
		if !isTable {
			return cur
		}
		alias, ok := dfg.extendedValues.get(idx).(aliasData)
		if !ok {
			return cur
		}
		cur = alias.original
	}
	panic(fmt.Sprintf("value alias loop detected for %s", v))
}

// ResolveCopies extends ResolveAliases by also stepping through unary
// Copy, Spill, and Fill instructions (spec §4.2). Bounded by the
// instruction count.
func (dfg *DataFlowGraph) ResolveCopies(v dfgid.Value) dfgid.Value {
	cur := v
	for i := 0; i <= dfg.insts.len(); i++ {
		cur = dfg.ResolveAliases(cur)
		inst, _, isTable := cur.Expand()
		if isTable {
			return cur
		}
		data := dfg.insts.get(inst.Index())
		if !data.Opcode.IsCopyLike() {
			return cur
		}
		arg, ok := data.Args.First(dfg.ValueLists)
		if !ok {
			return cur
		}
		cur = arg
	}
	panic(fmt.Sprintf("copy loop detected for %s", v))
}

// ChangeToAlias turns dest into an alias of src (spec §4.6). dest must be
// a Table-tagged value; it cannot be a direct first-result slot. The
// previous contents of dest's slot are discarded — the caller is
// responsible for having already detached dest from any result/argument
// list it still occupied (spec §9 Open Question 2: this is not
// machine-checked).
func (dfg *DataFlowGraph) ChangeToAlias(dest, src dfgid.Value) {
	original := dfg.ResolveAliases(src)
	if dest == original {
		panic(fmt.Sprintf("aliasing %s to %s would create a loop", dest, src))
	}
	ty := dfg.ValueType(original)
	if destTy := dfg.ValueType(dest); destTy != ty {
		panic(fmt.Sprintf("aliasing %s to %s would change its type %s to %s", dest, src, destTy, ty))
	}
	_, idx, isTable := dest.Expand()
	if !isTable {
		panic(fmt.Sprintf("cannot change direct value %s into an alias", dest))
	}
	dfg.extendedValues.set(idx, aliasData{ty: ty, original: original})
}

// MakeValueAlias allocates a new table slot forwarding to src. Per spec
// §9 Open Question 1, this is documented "parser/builder only": general
// rewrites should use ChangeToAlias on an existing, already-detached slot
// instead of minting a fresh alias value.
func (dfg *DataFlowGraph) MakeValueAlias(src dfgid.Value) dfgid.Value {
	ty := dfg.ValueType(src)
	return dfg.makeValue(aliasData{ty: ty, original: src})
}

// ---------------------------------------------------------------------
// Instructions (spec §4.4, §4.7)
// ---------------------------------------------------------------------

// MakeInst appends data to the instruction map and resizes the
// per-instruction result-list map to match (spec §3 invariant 6). The new
// instruction has no results attached yet, even if its opcode produces
// some; call MakeInstResults to materialize them.
func (dfg *DataFlowGraph) MakeInst(data InstructionData) dfgid.Inst {
	n := dfg.insts.len() + 1
	dfg.results.resize(n)
	index := dfg.insts.push(data)
	return dfgid.InstFromIndex(index)
}

// NextInst returns the Inst that will be assigned to the next instruction
// created by MakeInst. Only really useful to a parser predicting forward
// references (SPEC_FULL §4).
func (dfg *DataFlowGraph) NextInst() dfgid.Inst {
	return dfgid.InstFromIndex(uint32(dfg.insts.len()))
}

// InstructionData returns the payload of inst.
func (dfg *DataFlowGraph) InstructionData(inst dfgid.Inst) InstructionData {
	return dfg.insts.get(inst.Index())
}

// SetInstructionData overwrites the payload of inst, e.g. to change its
// opcode and operands in place (used by RedefineFirstValue to turn orig
// into a Copy, spec §4.7 step 4).
func (dfg *DataFlowGraph) SetInstructionData(inst dfgid.Inst, data InstructionData) {
	dfg.insts.set(inst.Index(), data)
}

// InstArgs returns all value arguments of inst.
func (dfg *DataFlowGraph) InstArgs(inst dfgid.Inst) []dfgid.Value {
	return dfg.insts.get(inst.Index()).Args.AsSlice(dfg.ValueLists)
}

// InstArgsMut returns a mutable view of inst's value arguments.
func (dfg *DataFlowGraph) InstArgsMut(inst dfgid.Inst) []dfgid.Value {
	return dfg.insts.get(inst.Index()).Args.AsMutSlice(dfg.ValueLists)
}

// InstFixedArgs returns the fixed (non-overflow) value arguments of inst.
func (dfg *DataFlowGraph) InstFixedArgs(inst dfgid.Inst) []dfgid.Value {
	n := opcode.ConstraintsFor(dfg.insts.get(inst.Index()).Opcode).FixedValueArguments()
	return dfg.InstArgs(inst)[:n]
}

// InstVariableArgs returns the variable (overflow) value arguments of inst.
func (dfg *DataFlowGraph) InstVariableArgs(inst dfgid.Inst) []dfgid.Value {
	n := opcode.ConstraintsFor(dfg.insts.get(inst.Index()).Opcode).FixedValueArguments()
	return dfg.InstArgs(inst)[n:]
}

// MakeInstResults materializes result values for inst and returns how many
// it produced (spec §4.4). Fixed results come from opcode constraints;
// for call instructions, additional variable results come from the call
// signature's return types.
func (dfg *DataFlowGraph) MakeInstResults(inst dfgid.Inst, ctrlTypevar types.Type) int {
	constraints := opcode.ConstraintsFor(dfg.insts.get(inst.Index()).Opcode)
	fixedResults := constraints.FixedResults()
	totalResults := fixedResults

	results := dfg.results.get(inst.Index())
	results.Clear(dfg.ValueLists)

	var head dfgid.Value
	hasHead := false
	var firstType types.Type
	hasFirstType := false
	revNum := 1

	if sig, ok := dfg.CallSignature(inst); ok {
		varResults := len(dfg.signatures.get(sig.Index()).ReturnTypes)
		totalResults += varResults

		for resIdx := varResults - 1; resIdx >= 0; resIdx-- {
			if hasFirstType {
				newValue := dfg.makeValue(instResultData{
					ty:        firstType,
					resultIdx: uint16(totalResults - revNum),
					inst:      inst,
					next:      head,
					hasNext:   hasHead,
				})
				head = newValue
				hasHead = true
				results.Push(newValue, dfg.ValueLists)
				revNum++
			}
			firstType = dfg.signatures.get(sig.Index()).ReturnTypes[resIdx].ValueType
			hasFirstType = true
		}
	}

	for resIdx := fixedResults - 1; resIdx >= 0; resIdx-- {
		if hasFirstType {
			newValue := dfg.makeValue(instResultData{
				ty:        firstType,
				resultIdx: uint16(totalResults - revNum),
				inst:      inst,
				next:      head,
				hasNext:   hasHead,
			})
			head = newValue
			hasHead = true
			revNum++
			results.Push(newValue, dfg.ValueLists)
		}
		firstType = constraints.ResultType(resIdx, ctrlTypevar)
		hasFirstType = true
	}

	instData := dfg.insts.get(inst.Index())
	if hasFirstType {
		instData.firstType = firstType
	} else {
		instData.firstType = types.Void
	}
	dfg.insts.set(inst.Index(), instData)

	if hasFirstType {
		results.Push(dfgid.NewDirectValue(inst), dfg.ValueLists)
	}
	results.Reverse(dfg.ValueLists)
	dfg.results.set(inst.Index(), results)

	return totalResults
}

// ComputeResultType returns the type of inst's k'th result without
// materializing it (spec §4.4). Returns (_, false) if k is beyond the
// total result count.
func (dfg *DataFlowGraph) ComputeResultType(inst dfgid.Inst, k int, ctrlTypevar types.Type) (types.Type, bool) {
	constraints := opcode.ConstraintsFor(dfg.insts.get(inst.Index()).Opcode)
	fixedResults := constraints.FixedResults()

	if k < fixedResults {
		return constraints.ResultType(k, ctrlTypevar), true
	}

	sig, ok := dfg.CallSignature(inst)
	if !ok {
		return types.Void, false
	}
	returnTypes := dfg.signatures.get(sig.Index()).ReturnTypes
	i := k - fixedResults
	if i < 0 || i >= len(returnTypes) {
		return types.Void, false
	}
	return returnTypes[i].ValueType, true
}

// FirstResult returns the first result of inst. Panics if inst has no
// results.
func (dfg *DataFlowGraph) FirstResult(inst dfgid.Inst) dfgid.Value {
	v, ok := dfg.results.get(inst.Index()).First(dfg.ValueLists)
	if !ok {
		panic(fmt.Sprintf("instruction %s has no results", inst))
	}
	return v
}

// HasResults reports whether inst currently has any result values attached.
func (dfg *DataFlowGraph) HasResults(inst dfgid.Inst) bool {
	return !dfg.results.get(inst.Index()).IsEmpty()
}

// InstResults returns every result of inst, in order.
func (dfg *DataFlowGraph) InstResults(inst dfgid.Inst) []dfgid.Value {
	return dfg.results.get(inst.Index()).AsSlice(dfg.ValueLists)
}

// CallSignature returns the call signature of a direct or indirect call
// instruction. ok is false if inst is not a call.
func (dfg *DataFlowGraph) CallSignature(inst dfgid.Inst) (sig dfgid.SigRef, ok bool) {
	switch info := dfg.insts.get(inst.Index()).analyzeCall(dfg.ValueLists); info.Kind {
	case NotACall:
		return dfgid.SigRef{}, false
	case DirectCall:
		return dfg.extFuncs.get(info.FuncRef.Index()).Signature, true
	case IndirectCall:
		return info.SigRef, true
	default:
		panic("unreachable call kind")
	}
}

// MakeSignature registers sig and returns a handle to it.
func (dfg *DataFlowGraph) MakeSignature(sig Signature) dfgid.SigRef {
	return dfgid.SigRefFromIndex(dfg.signatures.push(sig))
}

// Signature returns the signature named by ref.
func (dfg *DataFlowGraph) Signature(ref dfgid.SigRef) Signature {
	return dfg.signatures.get(ref.Index())
}

// MakeExtFunc registers an external function reference and returns a
// handle to it.
func (dfg *DataFlowGraph) MakeExtFunc(data ExtFuncData) dfgid.FuncRef {
	return dfgid.FuncRefFromIndex(dfg.extFuncs.push(data))
}

// ExtFunc returns the external function reference named by ref.
func (dfg *DataFlowGraph) ExtFunc(ref dfgid.FuncRef) ExtFuncData {
	return dfg.extFuncs.get(ref.Index())
}

// ---------------------------------------------------------------------
// Result detach/attach (spec §4.5)
// ---------------------------------------------------------------------

// DetachSecondaryResults removes every result past index 0 from inst and
// returns the head of the former chain, if any (spec §4.5). The first
// result remains attached iff its type is non-void.
func (dfg *DataFlowGraph) DetachSecondaryResults(inst dfgid.Inst) (dfgid.Value, bool) {
	if !dfg.HasResults(inst) {
		return dfgid.Value{}, false
	}

	results := dfg.results.get(inst.Index())
	second, hasSecond := results.Get(1, dfg.ValueLists)
	results.Clear(dfg.ValueLists)
	if !dfg.insts.get(inst.Index()).FirstType().IsVoid() {
		results.Push(dfgid.NewDirectValue(inst), dfg.ValueLists)
	}
	dfg.results.set(inst.Index(), results)
	return second, hasSecond
}

// NextSecondaryResult returns the next link from value's slot. Panics if
// value is not a secondary result.
func (dfg *DataFlowGraph) NextSecondaryResult(value dfgid.Value) (dfgid.Value, bool) {
	_, idx, isTable := value.Expand()
	if isTable {
		if d, ok := dfg.extendedValues.get(idx).(instResultData); ok {
			return d.next, d.hasNext
		}
	}
	panic(fmt.Sprintf("%s is not a secondary result value", value))
}

// AttachSecondaryResult attaches newRes as a secondary result immediately
// after lastRes, which must currently be the last result of its
// instruction (spec §4.5).
func (dfg *DataFlowGraph) AttachSecondaryResult(lastRes, newRes dfgid.Value) {
	inst, idx, isTable := lastRes.Expand()
	if isTable {
		d, ok := dfg.extendedValues.get(idx).(instResultData)
		if !ok {
			panic(fmt.Sprintf("%s is not an instruction result", lastRes))
		}
		if d.hasNext {
			panic(fmt.Sprintf("%s is not the last result", lastRes))
		}
		d.next = newRes
		d.hasNext = true
		dfg.extendedValues.set(idx, d)
		inst = d.inst
	} else if dfg.HasResults(inst) && len(dfg.InstResults(inst)) != 1 {
		panic(fmt.Sprintf("%s is not the last result", lastRes))
	}

	results := dfg.results.get(inst.Index())
	resNum := results.Push(newRes, dfg.ValueLists)
	if resNum > 0xFFFF {
		panic(fmt.Sprintf("instruction %s: too many result values", inst))
	}
	dfg.results.set(inst.Index(), results)

	_, newIdx, newIsTable := newRes.Expand()
	if !newIsTable {
		panic(fmt.Sprintf("%s must be a result", newRes))
	}
	existing, ok := dfg.extendedValues.get(newIdx).(instResultData)
	if !ok {
		panic(fmt.Sprintf("%s must be a result", newRes))
	}
	existing.resultIdx = uint16(resNum)
	existing.inst = inst
	existing.hasNext = false
	dfg.extendedValues.set(newIdx, existing)
}

// AppendSecondaryResult allocates a new result value of type ty and
// attaches it after lastRes, which must be the last result of its
// instruction.
func (dfg *DataFlowGraph) AppendSecondaryResult(lastRes dfgid.Value, ty types.Type) dfgid.Value {
	res := dfg.makeValue(instResultData{ty: ty})
	dfg.AttachSecondaryResult(lastRes, res)
	return res
}

// ---------------------------------------------------------------------
// Redefining the first result (spec §4.7)
// ---------------------------------------------------------------------

// Cursor is the external collaborator spec §4.7/§6 calls "Layout
// cursor": the minimal contract RedefineFirstValue needs from a program
// order. internal/layout.Cursor implements this.
type Cursor interface {
	CurrentInst() (dfgid.Inst, bool)
	InsertInst(newInst dfgid.Inst)
}

// RedefineFirstValue moves the instruction at pos's current position to a
// fresh Inst, so the original Inst's identity can be redefined without
// breaking the direct-value encoding of its first result (spec §4.7).
//
// Before:  inst1: v1, vx2 = foo   <-- pos
// After:   inst7: v7, vx2 = foo
//          inst1: v1 = copy v7    <-- pos
//
// Returns the new Inst where the original instruction's payload now
// lives.
func (dfg *DataFlowGraph) RedefineFirstValue(pos Cursor) dfgid.Inst {
	orig, ok := pos.CurrentInst()
	if !ok {
		panic("redefine_first_value: cursor must point at an instruction")
	}
	data := dfg.insts.get(orig.Index())
	firstType := data.FirstType()

	results := dfg.results.get(orig.Index())
	dfg.results.set(orig.Index(), ValueList{})

	newInst := dfg.MakeInst(data)

	slice := results.AsMutSlice(dfg.ValueLists)
	if len(slice) > 0 {
		slice[0] = dfgid.NewDirectValue(newInst)
	}
	dfg.results.set(newInst.Index(), results)

	// Re-point every moved secondary result at its new owning instruction.
	for i := 1; i < len(slice); i++ {
		_, idx, isTable := slice[i].Expand()
		if !isTable {
			continue
		}
		d, ok := dfg.extendedValues.get(idx).(instResultData)
		if !ok {
			continue
		}
		d.inst = newInst
		dfg.extendedValues.set(idx, d)
	}

	pos.InsertInst(newInst)

	// orig keeps its identity, so its direct-encoded first result (v1 in
	// the diagram above) is still exactly Direct(orig): only its payload
	// changes, to a Copy of the new instruction's first result.
	newValue := dfg.FirstResult(newInst)
	copyData := NewInstructionData(opcode.Copy, []dfgid.Value{newValue}, dfg.ValueLists)
	copyData.firstType = firstType
	dfg.SetInstructionData(orig, copyData)

	var origResults ValueList
	if !firstType.IsVoid() {
		origResults.Push(dfgid.NewDirectValue(orig), dfg.ValueLists)
	}
	dfg.results.set(orig.Index(), origResults)

	return newInst
}

// ---------------------------------------------------------------------
// EBB arguments (spec §4.8)
// ---------------------------------------------------------------------

// MakeEbb creates a new, argument-less EBB.
func (dfg *DataFlowGraph) MakeEbb() dfgid.Ebb {
	return dfgid.EbbFromIndex(dfg.ebbs.push(ebbData{}))
}

// NumEbbArgs returns the number of arguments on ebb.
func (dfg *DataFlowGraph) NumEbbArgs(ebb dfgid.Ebb) int {
	return dfg.ebbs.get(ebb.Index()).args.Len()
}

// AppendEbbArg allocates and attaches a new argument of type ty to ebb,
// returning its value.
func (dfg *DataFlowGraph) AppendEbbArg(ebb dfgid.Ebb, ty types.Type) dfgid.Value {
	val := dfg.makeValue(ebbArgData{ty: ty, ebb: ebb})
	dfg.AttachEbbArg(ebb, val)
	return val
}

// EbbArgs returns the arguments to ebb, in order.
func (dfg *DataFlowGraph) EbbArgs(ebb dfgid.Ebb) []dfgid.Value {
	return dfg.ebbs.get(ebb.Index()).args.AsSlice(dfg.ValueLists)
}

// ReplaceEbbArg replaces oldArg — which must currently be an attached EBB
// argument — with a fresh value of type newType at the same position.
// oldArg is left detached; its stored type is unchanged. Returns the new
// value (spec §4.8).
func (dfg *DataFlowGraph) ReplaceEbbArg(oldArg dfgid.Value, newType types.Type) dfgid.Value {
	_, idx, isTable := oldArg.Expand()
	if !isTable {
		panic(fmt.Sprintf("%s must be an EBB argument", oldArg))
	}
	oldData, ok := dfg.extendedValues.get(idx).(ebbArgData)
	if !ok {
		panic(fmt.Sprintf("%s must be an EBB argument", oldArg))
	}

	newArg := dfg.makeValue(ebbArgData{ty: newType, argIdx: oldData.argIdx, ebb: oldData.ebb})

	ebb := dfg.ebbs.get(oldData.ebb.Index())
	slice := ebb.args.AsMutSlice(dfg.ValueLists)
	slice[oldData.argIdx] = newArg
	return newArg
}

// DetachEbbArgs removes and returns every argument of ebb as an
// independent ValueList. The detached values remain live but are no
// longer present in any argument list.
func (dfg *DataFlowGraph) DetachEbbArgs(ebb dfgid.Ebb) ValueList {
	e := dfg.ebbs.get(ebb.Index())
	taken := e.args.Take()
	dfg.ebbs.set(ebb.Index(), e)
	return taken
}

// AttachEbbArg reattaches a previously detached argument value to ebb, at
// the end of its current argument list. arg must already carry ebb in its
// stored slot (i.e. it must be one of the values DetachEbbArgs returned).
func (dfg *DataFlowGraph) AttachEbbArg(ebb dfgid.Ebb, arg dfgid.Value) {
	e := dfg.ebbs.get(ebb.Index())
	argNum := e.args.Push(arg, dfg.ValueLists)
	if argNum > 0xFFFF {
		panic(fmt.Sprintf("EBB %s: too many arguments", ebb))
	}
	dfg.ebbs.set(ebb.Index(), e)

	_, idx, isTable := arg.Expand()
	if !isTable {
		panic(fmt.Sprintf("%s must be an EBB argument value", arg))
	}
	d, ok := dfg.extendedValues.get(idx).(ebbArgData)
	if !ok {
		panic(fmt.Sprintf("%s must be an EBB argument value", arg))
	}
	if d.ebb != ebb {
		panic(fmt.Sprintf("%s should already belong to EBB %s", arg, ebb))
	}
	d.argIdx = uint16(argNum)
	dfg.extendedValues.set(idx, d)
}
