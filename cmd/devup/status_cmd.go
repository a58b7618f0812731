package main

import (
	"context"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	return cctx.Launcher.Status(ctx)
}
