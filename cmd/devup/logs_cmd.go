package main

import (
	"context"
)

type LogsCmd struct {
	Service string `arg:"" optional:"" predictor:"service" help:"service to stream logs from (defaults to the cli service)"`
}

func (c *LogsCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	return cctx.Launcher.Logs(ctx, c.Service)
}
