package bfcode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnmatchedOpen  = errors.New("no matching bracket was found for '['")
	ErrUnmatchedClose = errors.New("no matching bracket was found for ']'")
)

// ParseError locates a bracket error by byte offset in the original text.
type ParseError struct {
	Err    error
	Source *Source
	Offset int
}

func (p *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at position %d", p.Err.Error(), p.Offset)
	if p.Source == nil {
		return sb.String()
	}

	line, column := p.Source.Position(p.Offset)
	if p.Source.Name != "" {
		fmt.Fprintf(&sb, " (%s:%d:%d)", p.Source.Name, line, column)
	}
	sb.WriteString("\n")

	idx := line - 1
	if idx < 0 || idx >= len(p.Source.Lines) {
		return sb.String()
	}
	content := p.Source.Lines[idx]
	sb.WriteString(content)
	sb.WriteString("\n")
	for i, r := range []rune(content) {
		if i >= column-1 {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
	}
	sb.WriteString("^")

	return sb.String()
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
