package reporter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/pluglang/plugcompile/token"
)

// Render writes a human-readable rendering of a positioned diagnostic: the
// position and message, the offending source line, and a caret beneath the
// offending column.
//
//	schema.plug:2:10: unrecognized byte: 0x23
//	  2 | prop tags # String
//	    |           ^
//
// info must be the FileInfo of the file the diagnostic refers to. If the
// position cannot be resolved against info, only the message line is
// written. Caret alignment uses display widths, so lines containing wide
// runes render correctly in a terminal.
func Render(w io.Writer, err ErrorWithPos, info *token.FileInfo) error {
	if _, werr := fmt.Fprintln(w, err.Error()); werr != nil {
		return werr
	}

	pos := err.Position()
	if info == nil || pos.Line < 1 || pos.Line > info.NumLines() {
		return nil
	}

	line := info.Line(pos.Line)
	col := pos.Offset - info.LineOffset(pos.Line)
	if col < 0 || col > len(line) {
		return nil
	}

	// Tabs are collapsed to single spaces in both the shown line and the
	// caret prefix so the two stay aligned.
	shown := strings.ReplaceAll(line, "\t", " ")
	prefix := strings.ReplaceAll(line[:col], "\t", " ")

	num := strconv.Itoa(pos.Line)
	gutter := strings.Repeat(" ", len(num))
	caret := strings.Repeat(" ", uniseg.StringWidth(prefix))

	if _, werr := fmt.Fprintf(w, "  %s | %s\n", num, shown); werr != nil {
		return werr
	}
	_, werr := fmt.Fprintf(w, "  %s | %s^\n", gutter, caret)
	return werr
}
