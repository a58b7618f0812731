package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"
	kongcompletion "github.com/jotaen/kong-completion"
	"github.com/posener/complete"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/devup-cli/devup"
	"github.com/devup-cli/devup/dockercli"
)

// Context carries the resolved configuration and launcher into each
// subcommand's Run method.
type Context struct {
	Config   *devup.Config
	Launcher *devup.Launcher
}

type CLI struct {
	LogFile  string `default:"/tmp/devup/log" placeholder:"<log-file-path>" help:"location of log file"`
	LogLevel string `default:"info" placeholder:"<debug|info|warn|error>" help:"the logging level (debug, info, warn, error)"`

	Start      StartCmd                 `cmd:"" help:"start the project containers and print the access URL"`
	Stop       StopCmd                  `cmd:"" help:"stop the project containers (data is retained)"`
	Shell      ShellCmd                 `cmd:"" help:"attach an interactive session to the cli container (starting the project if needed)"`
	Down       DownCmd                  `cmd:"" help:"remove containers and volumes (destructive: project data is discarded)"`
	Purge      PurgeCmd                 `cmd:"" help:"down, then remove the project image"`
	Status     StatusCmd                `cmd:"" help:"list project container states"`
	Logs       LogsCmd                  `cmd:"" help:"stream logs from one service, following"`
	Pull       PullCmd                  `cmd:"" help:"refresh all project images and rebuild against the latest bases"`
	Nfs        NfsCmd                   `cmd:"" help:"configure NFS file sharing on the macOS host (one-time setup)"`
	Rnfs       RnfsCmd                  `cmd:"" help:"remove the NFS configuration added by nfs"`
	Version    VersionCmd               `cmd:"" help:"print version information about this command"`
	Completion kongcompletion.Completion `cmd:"" help:"print shell completion script"`
}

func (c *CLI) initSlog() {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo // Default to info if invalid
	}

	logger := slog.New(slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	slog.Info("slog initialized")
}

const description = `Launch and manage the project's local containerized development environment.

Wraps the docker compose CLI: start, stop and shell into the project
containers, and perform one-time NFS file-sharing setup on macOS.`

func main() {
	var cli CLI

	parser := kong.Must(&cli,
		kong.Name("devup"),
		kong.Description(description),
		kong.Configuration(kongyaml.Loader, "/etc/devup.yml", "~/.config/devup/config.yml"))
	kongcompletion.Register(parser,
		kongcompletion.WithPredictor("service", complete.PredictSet(devup.CLIService, "web", "db")))

	args, warning := resolveArgs(os.Args[1:])
	kctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)
	cli.initSlog()

	ctx := context.Background()
	messenger := devup.NewTerminalMessenger(os.Stderr)
	if warning != "" {
		messenger.Warning(ctx, warning)
	}

	if err := verifyPrerequisites(ctx); err != nil {
		messenger.Error(ctx, fmt.Sprintf("Prerequisites check failed: %v", err))
		os.Exit(1)
	}

	platform, err := devup.DetectPlatform(runtime.GOOS)
	if err != nil {
		messenger.Error(ctx, err.Error())
		os.Exit(1)
	}

	composeVersion, err := dockercli.NewComposeSvc(os.Environ(), os.Stdout, os.Stderr).Version(ctx)
	if err != nil {
		messenger.Warning(ctx, fmt.Sprintf("Could not detect compose version: %v", err))
	}

	cfg, err := devup.NewConfig(devup.NewDefaultFileOps(), platform, composeVersion, os.Getuid(), os.Getgid())
	if err != nil {
		messenger.Error(ctx, err.Error())
		os.Exit(1)
	}

	launcher := devup.NewLauncher(cfg, os.Environ(), os.Stdin, os.Stdout, os.Stderr)
	err = kctx.Run(&Context{
		Config:   cfg,
		Launcher: launcher,
	})
	exitWith(kctx, err)
}

// exitWith maps a command error to the process exit code: declined
// confirmations exit cleanly, external tool failures propagate their exit
// status, platform gates exit 1.
func exitWith(kctx *kong.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, devup.ErrUserDeclined) {
		os.Exit(0)
	}
	if errors.Is(err, devup.ErrPlatformMismatch) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitErr.ExitCode())
	}
	kctx.FatalIfErrorf(err)
}
