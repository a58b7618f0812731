package main

import (
	"context"
	"log/slog"
)

type StartCmd struct{}

func (c *StartCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "StartCmd.Run", "project", cctx.Config.ProjectName, "composeFile", cctx.Config.ComposeFile)
	return cctx.Launcher.Start(ctx)
}
