package bfcode

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Position converts a byte offset into a 1-based line and rune column.
func (s *Source) Position(offset int) (line, column int) {
	line, column = 1, 1
	for i, r := range s.Content {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return
}
