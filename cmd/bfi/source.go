package main

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/bfi/bfio"
	"github.com/reusee/bfi/debugs"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/sessions"
)

// RunSource runs a source file with program input read from stdin.
// A failure is printed to stderr once and returned.
type RunSource func(ctx context.Context, path string, stdin io.Reader, stdout, stderr io.Writer) error

func (Module) RunSource(
	logger logs.Logger,
	runFile sessions.RunFile,
	tap debugs.Tap,
) RunSource {
	return func(ctx context.Context, path string, stdin io.Reader, stdout, stderr io.Writer) error {
		if *tapeFile != "" {
			logger.WarnContext(ctx, "tape file is only used by interactive sessions", "path", *tapeFile)
		}

		result, err := runFile(
			ctx,
			path,
			bfio.NewLineBuffer(stdin, stdout),
			bfio.NewWriterOutput(stdout),
		)
		if err != nil {
			logger.DebugContext(ctx, "run", "path", path, "error", err)
			fmt.Fprintln(stderr, err)
		}
		if *debugFlag && result.Band != nil {
			tap(ctx, path, debugs.BandGlobals(result.Band, result.Program))
		}
		return err
	}
}
