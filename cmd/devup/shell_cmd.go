package main

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/term"
)

type ShellCmd struct {
	Arg []string `arg:"" optional:"" passthrough:"" help:"command to run in the cli container. Defaults to a login shell, if unset."`
}

func (c *ShellCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cols, lines := 0, 0
	if term.IsTerminal(int(os.Stdin.Fd())) {
		var err error
		cols, lines, err = term.GetSize(int(os.Stdin.Fd()))
		if err != nil {
			slog.WarnContext(ctx, "ShellCmd.Run: term.GetSize", "error", err)
			cols, lines = 0, 0
		}
	}

	slog.InfoContext(ctx, "ShellCmd.Run", "cols", cols, "lines", lines, "args", c.Arg)
	return cctx.Launcher.Shell(ctx, cols, lines, c.Arg...)
}
