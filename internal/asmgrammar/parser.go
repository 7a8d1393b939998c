package asmgrammar

import (
	"github.com/alecthomas/participle/v2"

	"ssaflow/internal/errors"
)

// ParseString parses source (attributed to filename in error messages)
// into a Program. On a syntax error it returns a *errors.CompilerError
// carrying the caret position, alongside the raw participle error.
// Grounded on the teacher's grammar.ParseFile, which builds a fresh
// *participle.Parser per call the same way.
func ParseString(filename, source string) (*Program, *errors.CompilerError, error) {
	parser, err := participle.Build[Program](
		participle.Lexer(AsmLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	)
	if err != nil {
		return nil, nil, err
	}

	program, err := parser.ParseString(filename, source)
	if err != nil {
		pe, ok := err.(participle.Error)
		if !ok {
			return nil, nil, err
		}
		pos := pe.Position()
		ce := errors.NewAssembleError("E1000", pe.Message(), errors.Position{Line: pos.Line, Column: pos.Column}).Build()
		return nil, &ce, err
	}
	return program, nil, nil
}

// FormatParseError renders a diagnostic the way cmd/dfgtool prints it:
// a caret under the offending column, reusing the teacher's
// reportParseError shape (main.go) but routed through internal/errors so
// the message and color handling is shared with every other diagnostic.
func FormatParseError(filename, source string, ce *errors.CompilerError) string {
	reporter := errors.NewErrorReporter(filename, source)
	return reporter.FormatError(*ce)
}
