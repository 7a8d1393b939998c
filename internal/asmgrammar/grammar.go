package asmgrammar

import "github.com/alecthomas/participle/v2/lexer"

// Program is the root of a parsed assembly file: a sequence of function
// definitions.
type Program struct {
	Functions []*FunctionDef `@@*`
}

// FunctionDef declares a function's parameters, optional return type, and
// the EBBs making up its body. Parameters and the return type are parsed
// but Build does not use them: each instruction's controlling type comes
// only from its own ".type" annotation.
type FunctionDef struct {
	Pos    lexer.Position
	Name   string       `"function" @Ident "("`
	Params []*Param     `[ @@ { "," @@ } ] ")"`
	Return *TypeName    `[ "->" @@ ]`
	Ebbs   []*EbbDef    `"{" @@* "}"`
}

// Param is a name:type pair, used both for function parameter lists and
// EBB argument lists.
type Param struct {
	Pos  lexer.Position
	Name string    `@Ident ":"`
	Type *TypeName `@@`
}

// TypeName is a scalar type name as internal/types.Lookup recognizes it.
type TypeName struct {
	Pos  lexer.Position
	Name string `@Ident`
}

// EbbDef is one EBB: a label, an optional argument list, and the straight
// line of instructions it contains.
type EbbDef struct {
	Pos   lexer.Position
	Name  string       `@Ident`
	Args  []*Param     `[ "(" [ @@ { "," @@ } ] ")" ]`
	Colon string       `":"`
	Insts []*InstLine  `@@*`
}

// InstLine is one instruction: zero or more result bindings, a mnemonic,
// an optional controlling type annotation, and zero or more operands.
type InstLine struct {
	Pos     lexer.Position
	Results []string  `[ @Ident { "," @Ident } "=" ]`
	Opcode  string     `@Ident`
	Type    *TypeName  `[ "." @@ ]`
	Args    []string   `[ @Ident { "," @Ident } ]`
}
