package sessions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/bfi/bands"
	"github.com/reusee/bfi/bfcode"
	"github.com/reusee/bfi/bfio"
	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/logs"
)

const (
	Welcome      = "Welcome to the bfi interpreter. Type 'exit' to exit the interpreter"
	ExitCommand  = "exit"
	OutputMarker = "[out]: "
)

// Session runs one program per line against a band that persists across
// lines. Parse errors and band faults are reported and the session goes on.
type Session struct {
	Band   bands.Band
	Input  bfio.Input
	Stdout io.Writer
	Stderr io.Writer

	parser  *bfcode.Parser
	logger  logs.Logger
	newSpan logs.NewSpan
}

type NewSession func(input bfio.Input, stdout, stderr io.Writer) *Session

func (Module) NewSession(
	logger logs.Logger,
	newSpan logs.NewSpan,
	parser *bfcode.Parser,
	kind bands.Kind,
) NewSession {
	return func(input bfio.Input, stdout, stderr io.Writer) *Session {
		return &Session{
			Band:    bands.New(kind),
			Input:   input,
			Stdout:  stdout,
			Stderr:  stderr,
			parser:  parser,
			logger:  logger,
			newSpan: newSpan,
		}
	}
}

// Line handles one line of input and reports whether the session is over.
func (s *Session) Line(ctx context.Context, line string) (done bool) {
	if strings.HasPrefix(line, ExitCommand) {
		fmt.Fprintln(s.Stdout, "Exiting...")
		return true
	}

	ctx, _ = s.newSpan(ctx, "")
	program, err := s.parser.Parse(bfcode.NewSource("", line))
	if err != nil {
		s.logger.DebugContext(ctx, "parse", "error", err)
		fmt.Fprintln(s.Stderr, err)
		return false
	}

	io.WriteString(s.Stdout, OutputMarker)
	err = bfvm.Exec(program, s.Band, s.Input, bfio.NewWriterOutput(s.Stdout))
	fmt.Fprintln(s.Stdout)
	if err != nil {
		s.logger.WarnContext(ctx, "execute", "error", err, "head", s.Band.Head())
		fmt.Fprintln(s.Stderr, err)
	}
	return false
}

// Run reads lines until exit or io.EOF. Other read errors end the session
// and are returned.
func (s *Session) Run(ctx context.Context, readLine func() (string, error)) error {
	fmt.Fprintln(s.Stdout, Welcome)
	for {
		line, err := readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if s.Line(ctx, line) {
			return nil
		}
	}
}
