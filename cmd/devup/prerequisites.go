package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/devup-cli/devup"
	"github.com/devup-cli/devup/dockercli"
)

type diagnosticCheck struct {
	Name string
	Run  func(context.Context) error
}

var diagnosticChecks = []diagnosticCheck{
	{
		Name: "Running on a supported platform",
		Run: func(ctx context.Context) error {
			_, err := devup.DetectPlatform(runtime.GOOS)
			return err
		},
	},
	{
		Name: "Not running as root",
		Run: func(ctx context.Context) error {
			if os.Geteuid() == 0 {
				return fmt.Errorf("refusing to run as root: invoke this tool as your regular user")
			}
			return nil
		},
	},
	{
		Name: "Not running inside a container",
		Run: func(ctx context.Context) error {
			if _, err := os.Stat("/.dockerenv"); err == nil {
				return fmt.Errorf("this tool manages containers from the host and cannot run inside one")
			}
			return nil
		},
	},
	{
		Name: "Docker CLI reachable",
		Run: func(ctx context.Context) error {
			version, err := dockercli.Docker.ClientVersion(ctx)
			if err != nil {
				return fmt.Errorf("could not locate a working docker CLI: %w", err)
			}
			slog.InfoContext(ctx, "verifyPrerequisites", "dockerVersion", version)
			return nil
		},
	},
}

// verifyPrerequisites runs the environment precondition checks, failing
// fast on the first violation.
func verifyPrerequisites(ctx context.Context) error {
	for _, check := range diagnosticChecks {
		if err := check.Run(ctx); err != nil {
			slog.ErrorContext(ctx, "diagnosticCheck failed", "name", check.Name, "error", err)
			return err
		}
		slog.InfoContext(ctx, "diagnosticCheck passed", "name", check.Name)
	}
	return nil
}
