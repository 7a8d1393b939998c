package dfg

import (
	"ssaflow/internal/dfgid"
	"ssaflow/internal/types"
)

// extValueData is the tagged variant spec §3 calls an "Extended-value
// entry": every Table-tagged Value indexes one of these. The three
// concrete types below are its three variants; a type switch plays the
// role Rust's enum match would, following the same pattern the teacher
// uses for its Instruction/Effect interfaces
// (kanso-lang-kanso/internal/ir/types.go).
type extValueData interface {
	valueType() types.Type
	isExtValueData()
}

// instResultData is a secondary instruction result (spec §3 "InstResult").
type instResultData struct {
	ty         types.Type
	resultIdx  uint16
	inst       dfgid.Inst
	next       dfgid.Value
	hasNext    bool
}

func (d instResultData) valueType() types.Type { return d.ty }
func (instResultData) isExtValueData()         {}

// ebbArgData is an EBB argument (spec §3 "EbbArg").
type ebbArgData struct {
	ty     types.Type
	argIdx uint16
	ebb    dfgid.Ebb
}

func (d ebbArgData) valueType() types.Type { return d.ty }
func (ebbArgData) isExtValueData()         {}

// aliasData is a forwarding placeholder (spec §3 "Alias").
type aliasData struct {
	ty       types.Type
	original dfgid.Value
}

func (d aliasData) valueType() types.Type { return d.ty }
func (aliasData) isExtValueData()         {}
