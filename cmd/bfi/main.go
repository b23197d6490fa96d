package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/modes"
	"github.com/reusee/bfi/vars"
	"github.com/reusee/dscope"
)

var (
	interactive = cmds.Switch("-i", "start an interactive session", "-interactive")
	fileFlag    = cmds.Var[string]("-file", "source file to run")
	tapeFile    = cmds.Var[string]("-tape-file", "load the session band from this file and save it back on exit")
	debugFlag   = cmds.Switch("-debug", "open a starlark prompt on the band after a file run")
)

func main() {
	var rest []string
	cmds.GlobalExecutor.Rest = &rest
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	ctx := context.Background()

	if *interactive {
		scope.Call(func(
			run RunInteractive,
		) {
			ce(run(ctx))
		})
		return
	}

	var path string
	if len(rest) > 0 {
		path = rest[0]
	}
	path = vars.FirstNonZero(*fileFlag, path)
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: bfi [flags] <source file>, or bfi -i")
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	scope.Call(func(
		run RunSource,
	) {
		if err := run(ctx, path, os.Stdin, os.Stdout, os.Stderr); err != nil {
			os.Exit(1)
		}
	})
}
