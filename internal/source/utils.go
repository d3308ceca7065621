package source

import (
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const tabStop = 8

// normalizeCRLF rewrites every "\r\n" to "\n", leaving a lone "\r" alone.
// It returns the possibly-unchanged slice and whether anything changed.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}
	out := make([]byte, 0, len(content))
	changed := false
	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol resolves a byte offset to a 1-based line/column pair. The
// column counts display cells: a tab advances to the next multiple of 8,
// and wide runes (per go-runewidth) advance by their display width
// rather than by one column per byte.
func toLineCol(content []byte, lineIdx []uint32, off uint32) LineCol {
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: columnOf(content, 0, off)}
	}

	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := lo

	if line < 0 {
		return LineCol{Line: 1, Col: columnOf(content, 0, off)}
	}

	var lineStart uint32
	if line == 0 {
		lineStart = 0
	} else {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line + 1), Col: columnOf(content, lineStart, off)}
}

// columnOf walks one line's bytes from lineStart to off, expanding tabs
// to the next multiple of tabStop and wide runes to their display width.
func columnOf(content []byte, lineStart, off uint32) uint32 {
	col := uint32(1)
	i := lineStart
	for i < off && int(i) < len(content) {
		r, size := utf8.DecodeRune(content[i:])
		if r == '\t' {
			col = ((col-1)/tabStop+1)*tabStop + 1
		} else if w := runewidth.RuneWidth(r); w > 0 {
			col += uint32(w)
		} else {
			col++
		}
		i += uint32(size)
	}
	return col
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
