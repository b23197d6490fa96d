package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bfi/bands"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/modes"
	"github.com/reusee/dscope"
)

func writeSource(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "test.bf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunSource(t *testing.T) {
	logBuf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return logBuf
		},
		func() bands.Kind {
			return bands.KindBounded
		},
	).Call(func(
		run RunSource,
	) {
		stdout := new(bytes.Buffer)
		stderr := new(bytes.Buffer)
		if err := run(t.Context(), writeSource(t, "++++++++[>++++++++<-]>+."), strings.NewReader(""), stdout, stderr); err != nil {
			t.Fatal(err)
		}
		if stdout.String() != "A" {
			t.Fatalf("got %q", stdout.String())
		}
		if stderr.Len() != 0 {
			t.Fatalf("got %q", stderr.String())
		}

		for content, expected := range map[string]string{
			"+[<+]": "out of bounds",
			"]":     "no matching bracket",
		} {
			stderr.Reset()
			err := run(t.Context(), writeSource(t, content), strings.NewReader(""), new(bytes.Buffer), stderr)
			if err == nil {
				t.Fatalf("%s: should fail", content)
			}
			if n := strings.Count(stderr.String(), expected); n != 1 {
				t.Fatalf("%s: printed %d times: %q", content, n, stderr.String())
			}
		}
		if logBuf.Len() != 0 {
			t.Fatalf("errors should not be logged at default level: %q", logBuf.String())
		}
	})
}

func TestRunSourceWarnsTapeFile(t *testing.T) {
	*tapeFile = "band.gob"
	t.Cleanup(func() {
		*tapeFile = ""
	})
	logBuf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return logBuf
		},
	).Call(func(
		run RunSource,
	) {
		if err := run(t.Context(), writeSource(t, "+"), strings.NewReader(""), new(bytes.Buffer), new(bytes.Buffer)); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(logBuf.String(), "only used by interactive sessions") {
			t.Fatalf("got %q", logBuf.String())
		}
	})
}
