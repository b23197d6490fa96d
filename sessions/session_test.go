package sessions

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reusee/bfi/bands"
	"github.com/reusee/bfi/bfio"
	"github.com/reusee/bfi/modes"
	"github.com/reusee/dscope"
)

func lines(ls ...string) func() (string, error) {
	return func() (string, error) {
		if len(ls) == 0 {
			return "", io.EOF
		}
		l := ls[0]
		ls = ls[1:]
		return l, nil
	}
}

func runSession(t *testing.T, input bfio.Input, ls ...string) (stdout, stderr string, session *Session) {
	t.Helper()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		newSession NewSession,
	) {
		session = newSession(input, out, errOut)
		if err := session.Run(t.Context(), lines(ls...)); err != nil {
			t.Fatal(err)
		}
	})
	return out.String(), errOut.String(), session
}

func TestSessionProtocol(t *testing.T) {
	stdout, stderr, _ := runSession(t, nil,
		"+++.",
		"<<+++].",
		"exit now",
		"+++.",
	)
	expected := Welcome + "\n" +
		OutputMarker + "\x03\n" +
		"Exiting...\n"
	if stdout != expected {
		t.Fatalf("got %q", stdout)
	}
	if !strings.Contains(stderr, "no matching bracket was found for ']' at position 5") {
		t.Fatalf("got %q", stderr)
	}
}

func TestSessionPersistsBand(t *testing.T) {
	stdout, _, session := runSession(t, nil,
		"+++",
		">++ comment",
		"<.>.",
	)
	if !strings.HasSuffix(stdout, OutputMarker+"\x03\x02\n") {
		t.Fatalf("got %q", stdout)
	}
	if session.Band.Head() != bands.Origin+1 {
		t.Fatalf("got %v", session.Band.Head())
	}
}

func TestSessionRead(t *testing.T) {
	stdout, _, _ := runSession(t, bfio.NewQueue("A"), ",.", ",.")
	if !strings.Contains(stdout, OutputMarker+"A\n"+OutputMarker+"\x00\n") {
		t.Fatalf("got %q", stdout)
	}
}

func TestSessionRecoversFromFault(t *testing.T) {
	stdout, stderr, session := runSession(t, nil,
		strings.Repeat("<", bands.Origin+1),
		"+.",
	)
	if !strings.Contains(stderr, "head moved out of bounds") {
		t.Fatalf("got %q", stderr)
	}
	if !strings.HasSuffix(stdout, OutputMarker+"\x01\n") {
		t.Fatalf("got %q", stdout)
	}
	if session.Band.Head() != bands.Origin {
		t.Fatalf("got %v", session.Band.Head())
	}
}

func TestSessionReadError(t *testing.T) {
	errBroken := errors.New("broken")
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		newSession NewSession,
	) {
		session := newSession(nil, io.Discard, io.Discard)
		err := session.Run(context.Background(), func() (string, error) {
			return "", errBroken
		})
		if !errors.Is(err, errBroken) {
			t.Fatalf("got %v", err)
		}
	})
}
