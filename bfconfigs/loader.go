package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/modes"
)

//go:embed schema.cue
var Schema string

var configFilenames = []string{
	"bfi.cue",
	".bfi.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	if mode.Hermetic() {
		return configs.NewLoader(nil, Schema)
	}

	var dirs []string
	// working directory first, so local files take precedence
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, filename := range configFilenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return checkLoader(logger, configs.NewLoader(paths, Schema))
}

// checkLoader loads the files up front and reports which ones are in use.
func checkLoader(logger logs.Logger, loader configs.Loader) configs.Loader {
	paths, err := loader.Paths()
	if err != nil {
		logger.Warn("config not loaded", "error", err)
		return loader
	}
	if len(paths) > 0 {
		logger.Info("config loaded", "paths", paths)
	}
	return loader
}
