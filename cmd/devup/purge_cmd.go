package main

import (
	"context"
)

type PurgeCmd struct{}

func (c *PurgeCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	return cctx.Launcher.Purge(ctx)
}
