// Package asmgrammar is a small textual assembly language for describing
// functions directly in terms of internal/dfg's operations: EBBs, their
// arguments, and the instructions that define and consume values. It
// exists so the data flow graph can be exercised and inspected from text
// files instead of only through Go call sequences (cmd/dfgtool, tests).
//
// Grounded on the teacher's grammar package: a lexer.MustStateful lexer
// feeding a struct-tag-driven participle grammar, which ParseString
// (internal/asmgrammar/parser.go) builds afresh on each call.
package asmgrammar

import "github.com/alecthomas/participle/v2/lexer"

// AsmLexer tokenizes DFG assembly text. Identifiers may start with '%' so
// function names (spec.md's examples write "%main") lex the same as
// ordinary value and EBB names.
var AsmLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Arrow", `->`, nil},
		{"Ident", `[%a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Punctuation", `[(){}:,.=]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
