package main

import (
	"context"
)

type DownCmd struct{}

func (c *DownCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	return cctx.Launcher.Down(ctx)
}
