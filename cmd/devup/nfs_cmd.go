package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

type NfsCmd struct {
	Yes bool `short:"y" help:"skip the confirmation prompt"`
}

func (c *NfsCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	confirm := func(prompt string) bool {
		if c.Yes {
			return true
		}
		fmt.Print(prompt)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}

	return cctx.Launcher.SetupNFS(ctx, confirm)
}

type RnfsCmd struct{}

func (c *RnfsCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	return cctx.Launcher.RemoveNFS(ctx)
}
