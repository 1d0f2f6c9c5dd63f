package token

import (
	"fmt"
	"sort"
)

// FileInfo records positional metadata about a source file, chiefly the byte
// offset at which each line begins. A lexer accumulates line offsets as it
// scans so that token spans can later be resolved to line/column positions
// without re-walking the file.
type FileInfo struct {
	// The name of the source file.
	name string
	// The raw contents of the source file.
	data string
	// The offsets at which each line begins. The value at index 0 is the
	// offset of the first line, which is always zero. The value at index 1
	// is the offset at which the second line begins. Etc.
	lines []int
}

// NewFileInfo creates a new instance for the given file.
func NewFileInfo(filename, contents string) *FileInfo {
	return &FileInfo{
		name:  filename,
		data:  contents,
		lines: []int{0},
	}
}

// Name returns the name of the source file.
func (f *FileInfo) Name() string {
	return f.name
}

// Text returns the raw contents of the source file.
func (f *FileInfo) Text() string {
	return f.data
}

// AddLine adds the offset at which the "next" line in the file begins, i.e.
// the offset just past a newline byte. Offsets must be added in strictly
// increasing order and must not exceed the file size.
func (f *FileInfo) AddLine(offset int) {
	if offset < 0 {
		panic(fmt.Sprintf("invalid offset: %d must not be negative", offset))
	}
	if offset > len(f.data) {
		panic(fmt.Sprintf("invalid offset: %d is greater than file size %d", offset, len(f.data)))
	}

	if len(f.lines) > 0 {
		lastOffset := f.lines[len(f.lines)-1]
		if offset <= lastOffset {
			panic(fmt.Sprintf("invalid offset: %d is not greater than previously observed line offset %d", offset, lastOffset))
		}
	}

	f.lines = append(f.lines, offset)
}

// NumLines returns the number of lines observed so far. A file always has at
// least one line.
func (f *FileInfo) NumLines() int {
	return len(f.lines)
}

// LineOffset returns the byte offset at which the given 1-indexed line
// begins. Panics if line is out of range.
func (f *FileInfo) LineOffset(line int) int {
	if line < 1 || line > len(f.lines) {
		panic(fmt.Sprintf("invalid line number: %d (file has %d lines)", line, len(f.lines)))
	}
	return f.lines[line-1]
}

// Line returns the text of the given 1-indexed line, excluding any trailing
// line terminator bytes. Panics if line is out of range.
func (f *FileInfo) Line(line int) string {
	start := f.LineOffset(line)
	end := len(f.data)
	if line < len(f.lines) {
		end = f.lines[line]
	}
	text := f.data[start:end]
	for len(text) > 0 && (text[len(text)-1] == '\n' || text[len(text)-1] == '\r') {
		text = text[:len(text)-1]
	}
	return text
}

// SourcePos resolves a byte offset to a line/column position. Lines are
// 1-indexed. Columns are 1-indexed and computed with tab stops of eight.
func (f *FileInfo) SourcePos(offset int) SourcePos {
	lineNumber := sort.Search(len(f.lines), func(n int) bool {
		return f.lines[n] > offset
	})

	// Columns cannot be computed from offsets alone because of tabs, so we
	// walk the line up to the offset.
	col := 0
	for i := f.lines[lineNumber-1]; i < offset && i < len(f.data); i++ {
		if f.data[i] == '\t' {
			nextTabStop := 8 - (col % 8)
			col += nextTabStop
		} else {
			col++
		}
	}

	return SourcePos{
		Filename: f.name,
		Offset:   offset,
		Line:     lineNumber,
		Col:      col + 1,
	}
}

// TokenPos resolves a token's starting offset to a source position.
func (f *FileInfo) TokenPos(t Token) SourcePos {
	return f.SourcePos(t.Start)
}

// SourcePos identifies a location in a Plug source file.
type SourcePos struct {
	Filename  string
	Line, Col int
	Offset    int
}

func (pos SourcePos) String() string {
	if pos.Line <= 0 || pos.Col <= 0 {
		return pos.Filename
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Col)
}
