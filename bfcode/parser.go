package bfcode

// Parser turns source text into a Program.
// Characters other than the eight commands are comments.
type Parser struct {
	// OnLoop, if set, receives the byte offsets of each matched bracket pair.
	OnLoop func(open, close int)
}

func Parse(text string) (Program, error) {
	return new(Parser).Parse(NewSource("", text))
}

func (p *Parser) Parse(src *Source) (Program, error) {
	return p.parse(src, 0, len(src.Content))
}

// parse handles src.Content[start:end]; offsets stay absolute so errors
// inside loop bodies point into the whole text.
func (p *Parser) parse(src *Source, start, end int) (Program, error) {
	text := src.Content
	commands := make(Program, 0)

	for i := start; i < end; i++ {
		switch text[i] {

		case '>', '<':
			delta := 1
			if text[i] == '<' {
				delta = -1
			}
			if last := len(commands) - 1; last >= 0 {
				if m, ok := commands[last].(Move); ok {
					commands[last] = m + Move(delta)
					continue
				}
			}
			commands = append(commands, Move(delta))

		case '+', '-':
			var delta Add = 1
			if text[i] == '-' {
				delta = 255
			}
			if last := len(commands) - 1; last >= 0 {
				if a, ok := commands[last].(Add); ok {
					commands[last] = a + delta
					continue
				}
			}
			commands = append(commands, delta)

		case '.':
			commands = append(commands, Print{})

		case ',':
			commands = append(commands, Read{})

		case '[':
			closing, ok := matchingClose(text, i, end)
			if !ok {
				return nil, &ParseError{
					Err:    ErrUnmatchedOpen,
					Source: src,
					Offset: i,
				}
			}
			if p.OnLoop != nil {
				p.OnLoop(i, closing)
			}
			body, err := p.parse(src, i+1, closing)
			if err != nil {
				return nil, err
			}
			commands = append(commands, Loop{
				Body: body,
			})
			i = closing

		case ']':
			return nil, &ParseError{
				Err:    ErrUnmatchedClose,
				Source: src,
				Offset: i,
			}

		}
	}

	return commands, nil
}

func matchingClose(text string, open, end int) (int, bool) {
	depth := 0
	for i := open; i < end; i++ {
		switch text[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
