// Package token defines the lexical vocabulary of the Plug schema language:
// the closed set of token kinds, the Token record produced by the lexer, and
// positional metadata (FileInfo, SourcePos) for mapping tokens back to
// file/line/column locations.
package token

import "fmt"

// Kind identifies which lexical class a Token belongs to.
type Kind int

const (
	Error Kind = iota // A byte the lexer could not classify.
	EOF               // End-of-stream sentinel; always the last token.

	// Reserved words.
	Plugin
	Use
	Prop
	Enum
	Type
	Model

	// Primitive type names.
	StringType
	NumberType
	BooleanType
	TextType
	DateType

	// Literals.
	StringLiteral
	NumberLiteral
	BooleanLiteral

	// Structural symbols.
	OpenBrace   // {
	CloseBrace  // }
	OpenParen   // (
	CloseParen  // )
	OpenSquare  // [
	CloseSquare // ]
	AtSymbol    // @
	Optional    // ?

	Identifier

	// Layout.
	Whitespace
	LineBreak
	Comment
)

// IsLayout returns whether this kind carries no grammatical content of its
// own: whitespace, line breaks, and comments.
func (k Kind) IsLayout() bool {
	return k == Whitespace || k == LineBreak || k == Comment
}

// IsSkippable returns whether a grammar-driven consumer would normally skip
// tokens of this kind: layout tokens and error tokens.
func (k Kind) IsSkippable() bool {
	return k.IsLayout() || k == Error
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Error:
		return "Error"
	case EOF:
		return "EOF"
	case Plugin:
		return "Plugin"
	case Use:
		return "Use"
	case Prop:
		return "Prop"
	case Enum:
		return "Enum"
	case Type:
		return "Type"
	case Model:
		return "Model"
	case StringType:
		return "StringType"
	case NumberType:
		return "NumberType"
	case BooleanType:
		return "BooleanType"
	case TextType:
		return "TextType"
	case DateType:
		return "DateType"
	case StringLiteral:
		return "StringLiteral"
	case NumberLiteral:
		return "NumberLiteral"
	case BooleanLiteral:
		return "BooleanLiteral"
	case OpenBrace:
		return "OpenBrace"
	case CloseBrace:
		return "CloseBrace"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case OpenSquare:
		return "OpenSquare"
	case CloseSquare:
		return "CloseSquare"
	case AtSymbol:
		return "AtSymbol"
	case Optional:
		return "Optional"
	case Identifier:
		return "Identifier"
	case Whitespace:
		return "Whitespace"
	case LineBreak:
		return "LineBreak"
	case Comment:
		return "Comment"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}

// keywords maps every reserved word, primitive type name, and boolean
// literal spelling to its kind. Keywords only match as whole words; the
// lexer's identifier rule handles names that merely begin with one.
var keywords = map[string]Kind{
	"plugin": Plugin,
	"use":    Use,
	"prop":   Prop,
	"enum":   Enum,
	"type":   Type,
	"model":  Model,

	"String":  StringType,
	"Number":  NumberType,
	"Boolean": BooleanType,
	"Text":    TextType,
	"Date":    DateType,

	"true":  BooleanLiteral,
	"false": BooleanLiteral,
}

// LookupKeyword returns the kind reserved for word, and whether word is
// reserved at all. Lookup is case-sensitive: "Model" is an identifier,
// "model" is a keyword.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

// Token is a classified, positioned slice of source text. Start and End are
// byte offsets into the original buffer, forming the half-open span
// [Start, End), and Text is exactly the bytes of that span. End > Start for
// every kind except EOF, which is a zero-width sentinel.
//
// Tokens are immutable values with no backreference to the lexer that
// produced them; a token stream is owned outright by its caller.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

// IsEOF returns whether this is the end-of-stream sentinel.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

// String implements [fmt.Stringer]. The rendering is for debugging and test
// failure output only.
func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("EOF@%d", t.Start)
	}
	return fmt.Sprintf("%s(%q)@[%d,%d)", t.Kind, t.Text, t.Start, t.End)
}
