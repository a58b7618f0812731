package main

import (
	"context"
)

type PullCmd struct{}

func (c *PullCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	return cctx.Launcher.Pull(ctx)
}
