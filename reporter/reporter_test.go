package reporter

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluglang/plugcompile/token"
)

func pos(line, col, offset int) token.SourcePos {
	return token.SourcePos{Filename: "test.plug", Line: line, Col: col, Offset: offset}
}

func unrecognized(p token.SourcePos, b byte) ErrorWithPos {
	return Errorf(p, "%w: %#x", ErrUnrecognizedByte, b)
}

func TestErrorWithPos(t *testing.T) {
	err := unrecognized(pos(2, 5, 14), '#')
	assert.Equal(t, "test.plug:2:5: unrecognized byte: 0x23", err.Error())
	assert.Equal(t, 14, err.Position().Offset)
	assert.True(t, errors.Is(err, ErrUnrecognizedByte))
}

func TestHandlerCollectsAll(t *testing.T) {
	var seen []string
	h := NewHandler(NewReporter(func(err ErrorWithPos) error {
		seen = append(seen, err.Error())
		return nil
	}))

	require.NoError(t, h.HandleError(unrecognized(pos(1, 1, 0), '#')))
	require.NoError(t, h.HandleError(unrecognized(pos(1, 2, 1), '$')))

	assert.Len(t, seen, 2)
	assert.Equal(t, 2, h.ErrorCount())
	assert.NoError(t, h.ReporterError())
	assert.ErrorIs(t, h.Error(), ErrInvalidSource)
}

func TestHandlerLatchesOnAbort(t *testing.T) {
	abort := errors.New("too many problems")
	calls := 0
	h := NewHandler(NewReporter(func(err ErrorWithPos) error {
		calls++
		return abort
	}))

	assert.ErrorIs(t, h.HandleError(unrecognized(pos(1, 1, 0), '#')), abort)
	// Subsequent diagnostics are dropped, not re-reported.
	assert.ErrorIs(t, h.HandleError(unrecognized(pos(1, 2, 1), '$')), abort)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, h.ErrorCount())
	assert.ErrorIs(t, h.Error(), abort)
}

func TestHandlerNilReporter(t *testing.T) {
	h := NewHandler(nil)
	err := unrecognized(pos(1, 1, 0), '#')
	assert.Equal(t, error(err), h.HandleError(err))
	assert.ErrorIs(t, h.Error(), ErrUnrecognizedByte)
}

func TestHandlerNoErrors(t *testing.T) {
	h := NewHandler(nil)
	assert.NoError(t, h.Error())
	assert.Equal(t, 0, h.ErrorCount())
}

func TestRender(t *testing.T) {
	source := "model A {\nname $tring\n}"
	info := token.NewFileInfo("test.plug", source)
	info.AddLine(10)
	info.AddLine(22)

	err := unrecognized(info.SourcePos(15), source[15])

	var buf strings.Builder
	require.NoError(t, Render(&buf, err, info))

	want := "" +
		"test.plug:2:6: unrecognized byte: 0x24\n" +
		"  2 | name $tring\n" +
		"    |      ^\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTabAlignment(t *testing.T) {
	source := "\tx £ y"
	info := token.NewFileInfo("test.plug", source)

	// The pound sign is not scannable; point at its first byte.
	err := unrecognized(info.SourcePos(3), source[3])

	var buf strings.Builder
	require.NoError(t, Render(&buf, err, info))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 4)
	// The caret line must point at the pound sign in the shown line, where
	// the tab has been collapsed to one space.
	shown := lines[1]
	caret := lines[2]
	assert.Equal(t, "  1 |  x £ y", shown)
	assert.Equal(t, "    |    ^", caret)
}

func TestRenderWithoutInfo(t *testing.T) {
	err := Errorf(pos(3, 1, 20), "unrecognized byte: %#x", byte('#'))
	var buf strings.Builder
	require.NoError(t, Render(&buf, err, nil))
	assert.Equal(t, "test.plug:3:1: unrecognized byte: 0x23\n", buf.String())
}

func TestRenderOutOfRangeLine(t *testing.T) {
	info := token.NewFileInfo("test.plug", "x")
	err := Errorf(pos(9, 1, 0), "boom: %v", fmt.Errorf("x"))
	var buf strings.Builder
	require.NoError(t, Render(&buf, err, info))
	assert.Equal(t, err.Error()+"\n", buf.String())
}
