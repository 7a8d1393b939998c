package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunPrintsAssembledFunction(t *testing.T) {
	input := `function %main() {
ebb0:
    v0 = iconst.i32
    trap
}

`
	var out bytes.Buffer
	Run(strings.NewReader(input), &out)

	got := out.String()
	assert.Contains(t, got, "function %main {")
	assert.Contains(t, got, "ebb0:")
	assert.Contains(t, got, "iconst.i32")
	assert.Contains(t, got, "trap")
}

func TestRunReportsBuildErrors(t *testing.T) {
	input := `function %main() {
ebb0:
    bogus
}

`
	var out bytes.Buffer
	Run(strings.NewReader(input), &out)

	assert.Contains(t, out.String(), "unknown opcode")
}

func TestRunIgnoresBlankBlocks(t *testing.T) {
	var out bytes.Buffer
	Run(strings.NewReader("\n\n\n"), &out)
	assert.Empty(t, out.String())
}

func TestRunHandlesMultipleBlocks(t *testing.T) {
	input := `function %one() {
ebb0:
    trap
}

function %two() {
ebb0:
    trap
}

`
	var out bytes.Buffer
	Run(strings.NewReader(input), &out)

	got := out.String()
	assert.Contains(t, got, "function %one {")
	assert.Contains(t, got, "function %two {")
}
