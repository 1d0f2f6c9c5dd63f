package lexer

import (
	"strings"

	"github.com/pluglang/plugcompile/token"
)

// commentMarker starts a single-line comment. The comment runs to the end of
// the line, exclusive of the line terminator.
const commentMarker = "//"

// matcher attempts to match one lexical rule against the start of rest,
// which is never empty. It returns the token kind and the length of the
// match in bytes; a length of zero means the rule did not match.
type matcher func(rest string) (token.Kind, int)

// rules is evaluated in order at every cursor position; the first rule to
// match a non-empty prefix wins. The order is load-bearing: line breaks
// before generic whitespace, string literals before keywords (so quoted
// keywords stay literals), keywords before identifiers.
var rules = []matcher{
	matchLineBreak,
	matchWhitespace,
	matchStringLiteral,
	matchKeyword,
	matchIdentifier,
	matchNumberLiteral,
	matchSymbol,
	matchComment,
}

// match runs the rule table against rest and returns the winning rule's
// result, or a zero length if no rule matched.
func match(rest string) (token.Kind, int) {
	for _, m := range rules {
		if kind, n := m(rest); n > 0 {
			return kind, n
		}
	}
	return token.Error, 0
}

// matchLineBreak matches a single \n or \r byte. A \r\n pair deliberately
// lexes as two LineBreak tokens; consumers that care about logical lines can
// coalesce the pair themselves.
func matchLineBreak(rest string) (token.Kind, int) {
	if rest[0] == '\n' || rest[0] == '\r' {
		return token.LineBreak, 1
	}
	return 0, 0
}

// matchWhitespace matches a maximal run of spaces and tabs.
func matchWhitespace(rest string) (token.Kind, int) {
	n := 0
	for n < len(rest) && (rest[n] == ' ' || rest[n] == '\t') {
		n++
	}
	return token.Whitespace, n
}

// matchStringLiteral matches a double quote, one or more non-quote bytes,
// and a closing double quote. The grammar supports neither empty strings nor
// escaped quotes; a quote that cannot head a complete literal matches
// nothing here and ultimately degrades to an Error token.
func matchStringLiteral(rest string) (token.Kind, int) {
	if rest[0] != '"' {
		return 0, 0
	}
	end := strings.IndexByte(rest[1:], '"')
	if end < 1 {
		// Unterminated (-1) or empty (0); both fall through.
		return 0, 0
	}
	return token.StringLiteral, end + 2
}

// matchKeyword matches a reserved word, primitive type name, or boolean
// literal as a whole word. The whole-word requirement falls out of taking
// the maximal identifier run first: "pluginX" produces the run "pluginX",
// which is not reserved, so this rule declines and the identifier rule wins.
func matchKeyword(rest string) (token.Kind, int) {
	n := identLen(rest)
	if n == 0 {
		return 0, 0
	}
	kind, ok := token.LookupKeyword(rest[:n])
	if !ok {
		return 0, 0
	}
	return kind, n
}

// matchIdentifier matches [A-Za-z_][A-Za-z0-9_]*, greedily.
func matchIdentifier(rest string) (token.Kind, int) {
	return token.Identifier, identLen(rest)
}

// matchNumberLiteral matches an optional leading minus followed by one or
// more digits. A lone minus is not a number; there is no fraction or
// exponent support.
func matchNumberLiteral(rest string) (token.Kind, int) {
	n := 0
	if rest[0] == '-' {
		n = 1
	}
	digits := 0
	for n+digits < len(rest) && isDigit(rest[n+digits]) {
		digits++
	}
	if digits == 0 {
		return 0, 0
	}
	return token.NumberLiteral, n + digits
}

var symbols = map[byte]token.Kind{
	'{': token.OpenBrace,
	'}': token.CloseBrace,
	'(': token.OpenParen,
	')': token.CloseParen,
	'[': token.OpenSquare,
	']': token.CloseSquare,
	'@': token.AtSymbol,
	'?': token.Optional,
}

// matchSymbol matches a single structural symbol byte.
func matchSymbol(rest string) (token.Kind, int) {
	if kind, ok := symbols[rest[0]]; ok {
		return kind, 1
	}
	return 0, 0
}

// matchComment matches the comment marker through the end of the line,
// exclusive of the line terminator, which lexes separately as a LineBreak.
func matchComment(rest string) (token.Kind, int) {
	if !strings.HasPrefix(rest, commentMarker) {
		return 0, 0
	}
	n := strings.IndexAny(rest, "\r\n")
	if n == -1 {
		n = len(rest)
	}
	return token.Comment, n
}

// identLen returns the length of the identifier run at the start of s, or
// zero if s does not start with an identifier byte.
func identLen(s string) int {
	if !isIdentStart(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && isIdentByte(s[n]) {
		n++
	}
	return n
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
