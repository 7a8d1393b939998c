package asmgrammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssaflow/internal/errors"
	"ssaflow/internal/types"
)

const sampleFunction = `
function %main(x: i32, y: i32) -> i32 {
ebb0(x: i32, y: i32):
    v2 = iadd.i32 x, y
    v3 = icmp.i32 v2, x
    return
}
`

func TestBuildAssemblesFunction(t *testing.T) {
	fns, buildErr := Build("sample.asm", sampleFunction)
	require.Nil(t, buildErr)
	require.Len(t, fns, 1)

	fn := fns[0]
	assert.Equal(t, "main", fn.Name)

	ebbs := fn.Layout.Ebbs()
	require.Len(t, ebbs, 1)
	assert.Equal(t, fn.Entry, ebbs[0])

	insts := fn.Layout.InstsOf(ebbs[0])
	require.Len(t, insts, 3)

	iaddResults := fn.DFG.InstResults(insts[0])
	require.Len(t, iaddResults, 1)
	assert.Equal(t, types.I32, fn.DFG.ValueType(iaddResults[0]))

	icmpResults := fn.DFG.InstResults(insts[1])
	require.Len(t, icmpResults, 1)
	assert.Equal(t, types.B1, fn.DFG.ValueType(icmpResults[0]))

	assert.False(t, fn.DFG.HasResults(insts[2]))
}

func TestBuildMultipleFunctions(t *testing.T) {
	source := `
function %one() {
ebb0:
    trap
}
function %two() {
ebb0:
    trap
}
`
	fns, buildErr := Build("sample.asm", source)
	require.Nil(t, buildErr)
	require.Len(t, fns, 2)
	assert.Equal(t, "one", fns[0].Name)
	assert.Equal(t, "two", fns[1].Name)
}

func TestBuildUnknownOpcode(t *testing.T) {
	source := `
function %main() {
ebb0:
    frobnicate
}
`
	_, buildErr := Build("sample.asm", source)
	require.NotNil(t, buildErr)
	assert.Equal(t, errors.ErrorUnknownOpcode, buildErr.Diagnostic.Code)
}

func TestBuildArityMismatch(t *testing.T) {
	source := `
function %main() {
ebb0(x: i32):
    v1 = iadd.i32 x
}
`
	_, buildErr := Build("sample.asm", source)
	require.NotNil(t, buildErr)
	assert.Equal(t, errors.ErrorArityMismatch, buildErr.Diagnostic.Code)
}

func TestBuildUndefinedValue(t *testing.T) {
	source := `
function %main() {
ebb0:
    v1 = iadd.i32 missing1, missing2
}
`
	_, buildErr := Build("sample.asm", source)
	require.NotNil(t, buildErr)
	assert.Equal(t, errors.ErrorUndefinedValue, buildErr.Diagnostic.Code)
}

func TestBuildDuplicateEbb(t *testing.T) {
	source := `
function %main() {
ebb0:
    trap
ebb0:
    trap
}
`
	_, buildErr := Build("sample.asm", source)
	require.NotNil(t, buildErr)
	assert.Equal(t, errors.ErrorDuplicateEbb, buildErr.Diagnostic.Code)
}

func TestBuildUnknownType(t *testing.T) {
	source := `
function %main() {
ebb0(x: wat):
    trap
}
`
	_, buildErr := Build("sample.asm", source)
	require.NotNil(t, buildErr)
	assert.Equal(t, errors.ErrorUnknownType, buildErr.Diagnostic.Code)
}

func TestBuildResultCountMismatch(t *testing.T) {
	source := `
function %main() {
ebb0(x: i32, y: i32):
    v1, v2 = iadd.i32 x, y
}
`
	_, buildErr := Build("sample.asm", source)
	require.NotNil(t, buildErr)
	assert.Equal(t, errors.ErrorArityMismatch, buildErr.Diagnostic.Code)
}

func TestParseStringSyntaxError(t *testing.T) {
	_, diag, err := ParseString("sample.asm", "function %main( {")
	require.Error(t, err)
	require.NotNil(t, diag)
	assert.Equal(t, "E1000", diag.Code)
}

func TestFormatParseErrorIncludesMessage(t *testing.T) {
	_, diag, err := ParseString("sample.asm", "not a function at all")
	require.Error(t, err)
	require.NotNil(t, diag)
	formatted := FormatParseError("sample.asm", "not a function at all", diag)
	assert.Contains(t, formatted, diag.Message)
}
