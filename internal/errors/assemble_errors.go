package errors

import (
	"fmt"
	"strings"
)

// AssembleErrorBuilder provides a fluent interface for building a
// CompilerError with suggestions, notes, and help text attached.
type AssembleErrorBuilder struct {
	err CompilerError
}

// NewAssembleError creates a new error builder at the given position.
func NewAssembleError(code, message string, pos Position) *AssembleErrorBuilder {
	return &AssembleErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewAssembleWarning creates a new warning builder at the given position.
func NewAssembleWarning(code, message string, pos Position) *AssembleErrorBuilder {
	return &AssembleErrorBuilder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span.
func (b *AssembleErrorBuilder) WithLength(length int) *AssembleErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error.
func (b *AssembleErrorBuilder) WithSuggestion(message string) *AssembleErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error.
func (b *AssembleErrorBuilder) WithNote(note string) *AssembleErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error.
func (b *AssembleErrorBuilder) WithHelp(help string) *AssembleErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error.
func (b *AssembleErrorBuilder) Build() CompilerError {
	return b.err
}

// UnknownOpcode creates an error for a mnemonic that doesn't name a known
// opcode, suggesting near matches by edit distance.
func UnknownOpcode(mnemonic string, pos Position, known []string) CompilerError {
	builder := NewAssembleError(ErrorUnknownOpcode, fmt.Sprintf("unknown opcode '%s'", mnemonic), pos).
		WithLength(len(mnemonic))

	similar := findSimilarNames(mnemonic, known)
	switch {
	case len(similar) == 1:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	case len(similar) > 1:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	default:
		builder = builder.WithNote("opcodes are listed in internal/opcode")
	}

	return builder.Build()
}

// ArityMismatch creates an error for an instruction with the wrong number
// of fixed value arguments.
func ArityMismatch(mnemonic string, expected, actual int, pos Position) CompilerError {
	return NewAssembleError(ErrorArityMismatch,
		fmt.Sprintf("'%s' expects %d fixed argument(s), got %d", mnemonic, expected, actual), pos).
		WithHelp("check internal/opcode.ConstraintsFor for the opcode's arity").
		Build()
}

// UndefinedValue creates an error for a value referenced before its
// defining instruction or EBB argument appears.
func UndefinedValue(name string, pos Position) CompilerError {
	return NewAssembleError(ErrorUndefinedValue, fmt.Sprintf("value '%s' is not defined", name), pos).
		WithLength(len(name)).
		WithSuggestion("values must be defined by an earlier instruction result or EBB argument").
		Build()
}

// UndefinedEbb creates an error for a branch or jump target that was
// never declared.
func UndefinedEbb(name string, pos Position) CompilerError {
	return NewAssembleError(ErrorUndefinedEbb, fmt.Sprintf("EBB '%s' is not declared", name), pos).
		WithLength(len(name)).
		Build()
}

// DuplicateEbb creates an error for an EBB label declared more than once.
func DuplicateEbb(name string, pos Position) CompilerError {
	return NewAssembleError(ErrorDuplicateEbb, fmt.Sprintf("EBB '%s' is already declared", name), pos).
		WithLength(len(name)).
		WithSuggestion("rename one of the duplicate EBB labels").
		Build()
}

// TypeMismatch creates an error for an operand whose type disagrees with
// what the opcode expects.
func TypeMismatch(expected, actual string, pos Position) CompilerError {
	return NewAssembleError(ErrorTypeMismatch, fmt.Sprintf("type mismatch: expected %s, found %s", expected, actual), pos).
		Build()
}

// UnknownType creates an error for a type annotation that names no
// recognized scalar type.
func UnknownType(name string, pos Position) CompilerError {
	return NewAssembleError(ErrorUnknownType, fmt.Sprintf("unknown type '%s'", name), pos).
		WithLength(len(name)).
		WithNote("recognized types: b1, i8, i16, i32, i64, f32, f64").
		Build()
}

// findSimilarNames returns the candidates within edit distance 2 of target.
func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

// levenshteinDistance is a plain edit-distance implementation used to
// suggest near-miss opcode mnemonics.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(a)][len(b)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
