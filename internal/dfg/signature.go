package dfg

import (
	"ssaflow/internal/dfgid"
	"ssaflow/internal/types"
)

// AbiParam describes a single parameter or return value of a Signature.
type AbiParam struct {
	ValueType types.Type
}

// Signature is the external collaborator spec §6 names: "exposes
// return_types, each with a value_type". It supplies the variable-length
// result types a call instruction materializes (spec §4.4 step 2).
type Signature struct {
	ReturnTypes []AbiParam
}

// ExtFuncData is an external function reference: a name plus the
// signature direct calls to it must honor.
type ExtFuncData struct {
	Name      string
	Signature dfgid.SigRef
}
