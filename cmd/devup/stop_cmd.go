package main

import (
	"context"
)

type StopCmd struct{}

func (c *StopCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	return cctx.Launcher.Stop(ctx)
}
