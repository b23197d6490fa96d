package bfconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/modes"
	"github.com/reusee/bfi/vars"
)

type Prompt string

var promptFlag = cmds.Var[string]("-prompt", "interactive prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		configs.First[string](loader, "prompt"),
		"> ",
	))
}

type HistoryFile string

var historyFileFlag = cmds.Var[string]("-history-file", "interactive history file")

func (Module) HistoryFile(
	loader configs.Loader,
	mode modes.Mode,
) HistoryFile {
	if path := vars.FirstNonZero(
		*historyFileFlag,
		configs.First[string](loader, "history_file"),
	); path != "" {
		return HistoryFile(path)
	}
	if mode.Hermetic() {
		return ""
	}
	if home, err := os.UserHomeDir(); err == nil {
		return HistoryFile(filepath.Join(home, ".bfi_history"))
	}
	return ""
}
