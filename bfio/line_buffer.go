package bfio

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

const InputPrompt = "\nType in your input:\n"

// LineBuffer reads input a line at a time, fetching the next line whenever
// the previous one is used up. The newline is delivered too.
type LineBuffer struct {
	next   func() (string, error)
	buffer []rune
}

var _ Input = new(LineBuffer)

// NewLineBuffer reads lines from r, writing InputPrompt to prompt (if not
// nil) before each one.
func NewLineBuffer(r io.Reader, prompt io.Writer) *LineBuffer {
	reader := bufio.NewReader(r)
	return NewLineBufferFunc(func() (string, error) {
		if prompt != nil {
			io.WriteString(prompt, InputPrompt)
		}
		return reader.ReadString('\n')
	})
}

// NewLineBufferFunc takes lines from next. A final line without newline is
// still delivered when next returns it along with io.EOF.
func NewLineBufferFunc(next func() (string, error)) *LineBuffer {
	return &LineBuffer{
		next: next,
	}
}

func (l *LineBuffer) ReadChar() (rune, bool) {
	if len(l.buffer) == 0 {
		line, err := l.next()
		if line == "" || err != nil && !errors.Is(err, io.EOF) {
			return 0, false
		}
		l.buffer = []rune(line)
	}
	r := l.buffer[0]
	l.buffer = l.buffer[1:]
	return r, true
}

// WriterOutput writes each character UTF-8 encoded.
type WriterOutput struct {
	w   io.Writer
	buf []byte
}

var _ Output = new(WriterOutput)

func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{
		w: w,
	}
}

func (o *WriterOutput) WriteChar(r rune) error {
	o.buf = utf8.AppendRune(o.buf[:0], r)
	_, err := o.w.Write(o.buf)
	return err
}
