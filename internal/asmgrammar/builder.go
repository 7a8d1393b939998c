package asmgrammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"ssaflow/internal/dfg"
	"ssaflow/internal/dfgid"
	"ssaflow/internal/errors"
	"ssaflow/internal/layout"
	"ssaflow/internal/opcode"
	"ssaflow/internal/types"
)

// BuildError is the build-time failure type Build returns: a structured
// diagnostic renderable by FormatParseError, alongside the plain error
// for callers that just want errors.Is/As behavior.
type BuildError struct {
	Diagnostic errors.CompilerError
	Err        error
}

func (e *BuildError) Error() string { return e.Err.Error() }
func (e *BuildError) Unwrap() error { return e.Err }

func errAt(ce errors.CompilerError) *BuildError {
	return &BuildError{Diagnostic: ce, Err: fmt.Errorf("%s", ce.Message)}
}

func posOf(pos lexer.Position) errors.Position {
	return errors.Position{Line: pos.Line, Column: pos.Column}
}

// Function is one assembled function: its data flow graph, the program
// order its instructions were placed in, and the EBB the parser
// encountered first (the entry block).
type Function struct {
	Name   string
	DFG    *dfg.DataFlowGraph
	Layout *layout.Layout
	Entry  dfgid.Ebb
}

// Build parses filename/source and assembles every function it declares.
// Each Function gets its own DataFlowGraph and Layout, matching spec §1's
// "one DFG per function" scoping.
func Build(filename, source string) ([]*Function, *BuildError) {
	program, diag, err := ParseString(filename, source)
	if err != nil {
		if diag != nil {
			return nil, &BuildError{Diagnostic: *diag, Err: err}
		}
		return nil, &BuildError{Err: err}
	}

	var fns []*Function
	for _, fnAst := range program.Functions {
		fn, buildErr := buildFunction(fnAst)
		if buildErr != nil {
			return nil, buildErr
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

type symbolTable struct {
	values map[string]dfgid.Value
	ebbs   map[string]dfgid.Ebb
}

func newSymbolTable() *symbolTable {
	return &symbolTable{values: make(map[string]dfgid.Value), ebbs: make(map[string]dfgid.Ebb)}
}

func buildFunction(fnAst *FunctionDef) (*Function, *BuildError) {
	graph := dfg.New()
	lay := layout.New()
	syms := newSymbolTable()

	// First pass: create every EBB and its arguments up front, so an
	// instruction in one EBB may reference another EBB's argument value
	// (the DFG has no block scoping, spec §1) and so references within a
	// function resolve uniformly regardless of textual order.
	for _, ebbAst := range fnAst.Ebbs {
		if _, dup := syms.ebbs[ebbAst.Name]; dup {
			return nil, errAt(errors.DuplicateEbb(ebbAst.Name, posOf(ebbAst.Pos)))
		}
		ebb := graph.MakeEbb()
		syms.ebbs[ebbAst.Name] = ebb
		lay.AppendEbb(ebb)

		for _, arg := range ebbAst.Args {
			ty, ok := types.Lookup(arg.Type.Name)
			if !ok {
				return nil, errAt(errors.UnknownType(arg.Type.Name, posOf(arg.Type.Pos)))
			}
			val := graph.AppendEbbArg(ebb, ty)
			syms.values[arg.Name] = val
		}
	}

	var entry dfgid.Ebb
	hasEntry := false

	for _, ebbAst := range fnAst.Ebbs {
		ebb := syms.ebbs[ebbAst.Name]
		if !hasEntry {
			entry = ebb
			hasEntry = true
		}

		for _, instAst := range ebbAst.Insts {
			if buildErr := buildInst(graph, lay, syms, ebb, instAst); buildErr != nil {
				return nil, buildErr
			}
		}
	}

	// The lexer folds the leading '%' into the identifier; Function.Name is
	// the bare name, and printers add the '%' back.
	name := strings.TrimPrefix(fnAst.Name, "%")
	return &Function{Name: name, DFG: graph, Layout: lay, Entry: entry}, nil
}

func buildInst(graph *dfg.DataFlowGraph, lay *layout.Layout, syms *symbolTable, ebb dfgid.Ebb, instAst *InstLine) *BuildError {
	op, ok := opcode.Lookup(instAst.Opcode)
	if !ok {
		return errAt(errors.UnknownOpcode(instAst.Opcode, posOf(instAst.Pos), knownMnemonics()))
	}

	args := make([]dfgid.Value, 0, len(instAst.Args))
	for _, name := range instAst.Args {
		val, ok := syms.values[name]
		if !ok {
			return errAt(errors.UndefinedValue(name, posOf(instAst.Pos)))
		}
		args = append(args, val)
	}

	fixedArgs := opcode.ConstraintsFor(op).FixedValueArguments()
	if !op.IsCall() && op != opcode.Return && len(args) != fixedArgs {
		return errAt(errors.ArityMismatch(instAst.Opcode, fixedArgs, len(args), posOf(instAst.Pos)))
	}

	var ctrlType types.Type
	if instAst.Type != nil {
		ty, ok := types.Lookup(instAst.Type.Name)
		if !ok {
			return errAt(errors.UnknownType(instAst.Type.Name, posOf(instAst.Type.Pos)))
		}
		ctrlType = ty
	}

	data := dfg.NewInstructionData(op, args, graph.ValueLists)
	inst := graph.MakeInst(data)
	graph.MakeInstResults(inst, ctrlType)
	lay.AppendInst(ebb, inst)

	results := graph.InstResults(inst)
	if len(results) != len(instAst.Results) {
		return errAt(errors.CompilerError{
			Level:   errors.Error,
			Code:    errors.ErrorArityMismatch,
			Message: fmt.Sprintf("'%s' produces %d result(s), but %d name(s) were given", instAst.Opcode, len(results), len(instAst.Results)),
			Position: posOf(instAst.Pos),
		})
	}
	for i, name := range instAst.Results {
		syms.values[name] = results[i]
	}
	return nil
}

func knownMnemonics() []string {
	ops := []opcode.Opcode{
		opcode.Iconst, opcode.Trap, opcode.Iadd, opcode.Isub, opcode.Imul,
		opcode.IaddCout, opcode.Icmp, opcode.Copy, opcode.Spill, opcode.Fill,
		opcode.Call, opcode.CallIndirect, opcode.Return,
	}
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return names
}
