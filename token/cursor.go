package token

// Cursor is a forward iterator over a token stream. Unlike a plain range
// loop, it supports peeking, and by default it skips tokens a grammar does
// not care about (whitespace, line breaks, comments, and error tokens).
//
// Once the EOF sentinel is reached, Next and Peek return it on every
// subsequent call, so consumers never need a separate exhaustion check.
type Cursor struct {
	toks []Token
	idx  int
}

// NewCursor returns a new cursor positioned before the first token of toks.
func NewCursor(toks []Token) *Cursor {
	return &Cursor{toks: toks}
}

// Next returns the next non-skippable token and advances past it.
func (c *Cursor) Next() Token {
	for {
		tok := c.NextAny()
		if !tok.Kind.IsSkippable() {
			return tok
		}
	}
}

// Peek returns the next non-skippable token without consuming it.
func (c *Cursor) Peek() Token {
	idx := c.idx
	tok := c.Next()
	c.idx = idx
	return tok
}

// NextAny returns the next token, skippable or not, and advances past it.
func (c *Cursor) NextAny() Token {
	if c.idx >= len(c.toks) {
		return c.eof()
	}
	tok := c.toks[c.idx]
	if !tok.IsEOF() {
		c.idx++
	}
	return tok
}

// Done returns whether only the EOF sentinel remains.
func (c *Cursor) Done() bool {
	return c.Peek().IsEOF()
}

// eof synthesizes a sentinel for streams that lack one, so that a Cursor is
// well behaved even over a hand-built token slice.
func (c *Cursor) eof() Token {
	var end int
	if n := len(c.toks); n > 0 {
		end = c.toks[n-1].End
	}
	return Token{Kind: EOF, Start: end, End: end}
}
