package sessions

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bfi/bands"
	"github.com/reusee/bfi/bfcode"
	"github.com/reusee/bfi/bfio"
	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/logs"
)

type Result struct {
	Program bfcode.Program
	Band    bands.Band
}

// RunFile parses the program at path and runs it on a fresh band.
// Result.Band is set whenever execution started, even if it faulted.
type RunFile func(ctx context.Context, path string, input bfio.Input, output bfio.Output) (Result, error)

func (Module) RunFile(
	logger logs.Logger,
	newSpan logs.NewSpan,
	parser *bfcode.Parser,
	kind bands.Kind,
) RunFile {
	return func(ctx context.Context, path string, input bfio.Input, output bfio.Output) (result Result, err error) {
		ctx, _ = newSpan(ctx, "")

		content, err := os.ReadFile(path)
		if err != nil {
			return result, err
		}
		result.Program, err = parser.Parse(bfcode.NewSource(path, string(content)))
		if err != nil {
			return result, err
		}

		logger.DebugContext(ctx, "run file",
			"path", path,
			"kind", kind,
			"commands", len(result.Program),
		)
		result.Band, err = bfvm.ExecFresh(result.Program, kind, input, output)
		if err != nil {
			return result, fmt.Errorf("run %s: %w", path, err)
		}
		return result, nil
	}
}
