package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorReporter(t *testing.T) {
	source := `function %main() {
ebb0:
    v0 = iconst.i32
    v1 = iadd v0, unknownVal
}`

	reporter := NewErrorReporter("test.asm", source)

	err := UndefinedValue("unknownVal", Position{Line: 4, Column: 17})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUndefinedValue+"]")
	assert.Contains(t, formatted, "not defined")
	assert.Contains(t, formatted, "unknownVal")
	assert.Contains(t, formatted, "test.asm:4:17")
}

func TestUnknownOpcodeError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := UnknownOpcode("iadc", pos, []string{"iadd", "isub", "icmp"})
	assert.Equal(t, ErrorUnknownOpcode, err.Code)
	assert.Contains(t, err.Message, "iadc")
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "did you mean 'iadd'")

	err = UnknownOpcode("zzzzzzzzz", pos, []string{"iadd", "isub", "icmp"})
	assert.Len(t, err.Suggestions, 0)
	assert.Len(t, err.Notes, 1)
}

func TestArityMismatchError(t *testing.T) {
	pos := Position{Line: 2, Column: 1}

	err := ArityMismatch("iadd", 2, 1, pos)
	assert.Equal(t, ErrorArityMismatch, err.Code)
	assert.Contains(t, err.Message, "expects 2 fixed argument(s), got 1")
}

func TestUndefinedEbbError(t *testing.T) {
	pos := Position{Line: 5, Column: 10}

	err := UndefinedEbb("ebb3", pos)
	assert.Equal(t, ErrorUndefinedEbb, err.Code)
	assert.Contains(t, err.Message, "ebb3")
}

func TestDuplicateEbbError(t *testing.T) {
	pos := Position{Line: 5, Column: 1}

	err := DuplicateEbb("ebb0", pos)
	assert.Equal(t, ErrorDuplicateEbb, err.Code)
	assert.Len(t, err.Suggestions, 1)
}

func TestTypeMismatchError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := TypeMismatch("i32", "i64", pos)
	assert.Equal(t, ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "expected i32, found i64")
}

func TestUnknownTypeError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := UnknownType("u32", pos)
	assert.Equal(t, ErrorUnknownType, err.Code)
	assert.Contains(t, err.Message, "u32")
	assert.Len(t, err.Notes, 1)
}

func TestWarningFormatting(t *testing.T) {
	source := `ebb0(v0: i32):`
	reporter := NewErrorReporter("test.asm", source)

	err := NewAssembleWarning(WarningUnusedEbbArg, "EBB argument 'v0' is never used", Position{Line: 1, Column: 6}).Build()
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "warning["+WarningUnusedEbbArg+"]")
	assert.Contains(t, formatted, "never used")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := `let variable = value;`
	reporter := NewErrorReporter("test.asm", source)

	marker := reporter.createMarker(5, 8, Error) // "variable" is 8 chars at column 5

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces) // column 5 means 4 spaces before
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("hello", "hello"))
	assert.Equal(t, 1, levenshteinDistance("hello", "hallo"))
	assert.Equal(t, 1, levenshteinDistance("hello", "helo"))
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarNameFinding(t *testing.T) {
	candidates := []string{"iadd", "isub", "imul", "icmp", "iaddcout"}

	similar := findSimilarNames("iad", candidates)
	assert.NotContains(t, similar, "icmp")

	similar = findSimilarNames("verydifferentopcode", candidates)
	assert.Empty(t, similar)
}

func TestErrorLevels(t *testing.T) {
	source := `test`
	reporter := NewErrorReporter("test.asm", source)
	pos := Position{Line: 1, Column: 1}

	errorErr := CompilerError{Level: Error, Message: "test error", Position: pos}
	warningErr := CompilerError{Level: Warning, Message: "test warning", Position: pos}

	errorFormatted := reporter.FormatError(errorErr)
	warningFormatted := reporter.FormatError(warningErr)

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}
