package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/reusee/bfi/bands"
	"github.com/reusee/bfi/bfconfigs"
	"github.com/reusee/bfi/bfio"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/sessions"
)

const inputPrompt = "input> "

type RunInteractive func(ctx context.Context) error

func (Module) RunInteractive(
	logger logs.Logger,
	newSession sessions.NewSession,
	prompt bfconfigs.Prompt,
	historyFile bfconfigs.HistoryFile,
	kind bands.Kind,
) RunInteractive {
	return func(ctx context.Context) error {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: string(historyFile),
		})
		if err != nil {
			return wrap(err)
		}
		defer rl.Close()

		// program input shares the terminal with the session
		input := bfio.NewLineBufferFunc(func() (string, error) {
			rl.SetPrompt(inputPrompt)
			defer rl.SetPrompt(string(prompt))
			line, err := rl.Readline()
			if err != nil {
				return "", err
			}
			return line + "\n", nil
		})

		session := newSession(input, rl.Stdout(), rl.Stderr())
		if *tapeFile != "" {
			band, err := restoreBand(ctx, logger, *tapeFile, kind)
			if err != nil {
				return wrap(err)
			}
			if band != nil {
				session.Band = band
			}
		}

		err = session.Run(ctx, func() (string, error) {
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) {
				return "", io.EOF
			}
			return line, err
		})
		if err != nil {
			return wrap(err)
		}

		if *tapeFile != "" {
			if err := saveBand(*tapeFile, session.Band); err != nil {
				return wrap(err)
			}
			logger.Info("band saved", "path", *tapeFile)
		}
		return nil
	}
}

// restoreBand loads the band saved at path. The saved band keeps its own
// kind; a mismatch with the configured kind is logged.
func restoreBand(ctx context.Context, logger logs.Logger, path string, kind bands.Kind) (bands.Band, error) {
	band, err := loadBand(path)
	if err != nil || band == nil {
		return nil, err
	}
	restored, ok := bands.KindOf(band)
	if !ok || restored != kind {
		logger.WarnContext(ctx, "restored band kind differs from configured kind",
			"path", path,
			"restored", restored,
			"configured", kind,
		)
	} else {
		logger.InfoContext(ctx, "band restored", "path", path, "head", band.Head())
	}
	return band, nil
}

// loadBand returns nil without error when path does not exist yet.
func loadBand(path string) (bands.Band, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bands.Restore(f)
}

func saveBand(path string, band bands.Band) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := bands.Snapshot(f, band); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
