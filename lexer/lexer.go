// Package lexer converts Plug source text into a flat, ordered stream of
// classified tokens with exact byte-offset spans.
//
// The scan is total: every byte of the input belongs to exactly one token,
// unclassifiable bytes degrade to one-byte Error tokens, and the stream
// always ends with a single zero-width EOF sentinel. Concatenating the text
// of every token reproduces the input exactly, so the caller can reconstruct
// the source from the stream at any time.
package lexer

import (
	"github.com/pluglang/plugcompile/reporter"
	"github.com/pluglang/plugcompile/token"
)

// Tokenize scans source and returns its complete token stream. It is a pure
// function of source: no diagnostics are emitted, no state is shared, and
// independent calls may run concurrently. The empty string yields a stream
// containing only the EOF sentinel.
func Tokenize(source string) []token.Token {
	return New("", source, nil).Tokenize()
}

// Lexer scans a single in-memory buffer. Beyond the token stream a Lexer
// also accumulates a line-offset table for position resolution and, when a
// handler is supplied, reports one diagnostic per Error token.
//
// A Lexer is single-use: Tokenize consumes it.
type Lexer struct {
	source  string
	cursor  int
	info    *token.FileInfo
	handler *reporter.Handler
}

// New creates a lexer for the given buffer. filename is used only for
// positions in diagnostics and may be empty. handler may be nil, in which
// case unrecognized bytes still become Error tokens but produce no
// diagnostics.
func New(filename, source string, handler *reporter.Handler) *Lexer {
	return &Lexer{
		source:  source,
		info:    token.NewFileInfo(filename, source),
		handler: handler,
	}
}

// FileInfo returns the positional metadata accumulated by Tokenize. It is
// complete only once Tokenize has returned.
func (l *Lexer) FileInfo() *token.FileInfo {
	return l.info
}

// Tokenize scans the buffer and returns the token stream. The lexer never
// aborts: diagnostics delivered to the handler do not stop the scan, so the
// returned stream is complete and span-contiguous for any input.
func (l *Lexer) Tokenize() []token.Token {
	toks := make([]token.Token, 0, len(l.source)/4+1)

	for l.cursor < len(l.source) {
		start := l.cursor
		kind, length := match(l.source[start:])
		if length == 0 {
			// No rule matched. Consume exactly one byte as an Error token so
			// the scan always makes progress and no input is dropped.
			kind, length = token.Error, 1
			if l.handler != nil {
				pos := l.info.SourcePos(start)
				_ = l.handler.HandleErrorf(pos, "%w: %#x", reporter.ErrUnrecognizedByte, l.source[start])
			}
		}

		l.cursor = start + length
		toks = append(toks, token.Token{
			Kind:  kind,
			Text:  l.source[start:l.cursor],
			Start: start,
			End:   l.cursor,
		})

		// Track line starts as we go. String literals may embed raw
		// newlines, so every emitted token is checked, not just LineBreak.
		for i := start; i < l.cursor; i++ {
			if l.source[i] == '\n' {
				l.info.AddLine(i + 1)
			}
		}
	}

	return append(toks, token.Token{
		Kind:  token.EOF,
		Start: len(l.source),
		End:   len(l.source),
	})
}
