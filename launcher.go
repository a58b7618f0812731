package devup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/riywo/loginshell"

	"github.com/devup-cli/devup/dockercli"
	"github.com/devup-cli/devup/nfs"
	"github.com/devup-cli/devup/options"
	"github.com/devup-cli/devup/types"
)

// ComposeOps is the compose CLI surface the launcher depends on.
// *dockercli.ComposeSvc is the production implementation.
type ComposeOps interface {
	Up(ctx context.Context, opts options.ComposeUp) error
	Stop(ctx context.Context, opts options.ComposeStop) error
	Down(ctx context.Context, opts options.ComposeDown) error
	Ps(ctx context.Context, opts options.ComposePs) error
	PsJSON(ctx context.Context) ([]types.ComposeContainer, error)
	Logs(ctx context.Context, opts options.ComposeLogs, services ...string) (io.ReadCloser, func() error, error)
	Pull(ctx context.Context, opts options.ComposePull) error
	Build(ctx context.Context, opts options.ComposeBuild) error
	ExecStream(ctx context.Context, opts options.ComposeExec, service, command string, stdin io.Reader, stdout, stderr io.Writer, cmdArgs ...string) (func() error, error)
}

// DockerOps is the docker engine surface the launcher depends on.
type DockerOps interface {
	RemoveImage(ctx context.Context, opts options.RemoveImage, image string) (string, error)
	PruneVolumes(ctx context.Context, opts options.PruneVolumes) (string, error)
	PullImage(ctx context.Context, image string) (string, error)
	Ready(ctx context.Context) bool
}

// DesktopOps controls the Docker Desktop application during NFS setup.
type DesktopOps interface {
	Quit(ctx context.Context) error
	Launch(ctx context.Context) error
}

// NFSDaemonOps controls the host nfsd daemon.
type NFSDaemonOps interface {
	Restart(ctx context.Context) error
}

// Launcher maps each command to the external tool invocations that
// implement it. It is stateless across invocations; every run resolves a
// fresh Config and executes one action.
type Launcher struct {
	cfg     *Config
	compose ComposeOps
	// baseEnv is the environment compose invocations inherit; Pull extends
	// it with the project settings entries.
	baseEnv    []string
	newCompose func(env []string) ComposeOps
	docker     DockerOps
	desktop   DesktopOps
	nfsDaemon NFSDaemonOps
	hostFiles nfs.HostFiles
	files     FileOps
	messenger UserMessenger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// loginShell resolves the default in-container command for shell.
	loginShell func() (string, error)
}

// NewLauncher wires a Launcher to the real docker, compose and host tools.
func NewLauncher(cfg *Config, env []string, stdin io.Reader, stdout, stderr io.Writer) *Launcher {
	composeEnv := cfg.Environ(env)
	return &Launcher{
		cfg:     cfg,
		compose: dockercli.NewComposeSvc(composeEnv, stdout, stderr),
		baseEnv: composeEnv,
		newCompose: func(env []string) ComposeOps {
			return dockercli.NewComposeSvc(env, stdout, stderr)
		},
		docker: &dockercli.Docker,
		desktop:    &nfs.Desktop,
		nfsDaemon:  &nfs.Daemon,
		hostFiles:  nfs.NewHostFiles(),
		files:      NewDefaultFileOps(),
		messenger:  NewTerminalMessenger(stdout),
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		loginShell: loginshell.Shell,
	}
}

// Start brings the project containers up in detached mode and prints where
// to reach the environment.
func (l *Launcher) Start(ctx context.Context) error {
	if err := l.compose.Up(ctx, options.ComposeUp{Detach: true, RemoveOrphans: true}); err != nil {
		return err
	}
	l.messenger.Notice(ctx, fmt.Sprintf("Project %s is up.", l.cfg.ProjectName))
	l.messenger.Notice(ctx, fmt.Sprintf("Open %s once the containers finish booting.", l.cfg.AccessURL()))
	l.messenger.Notice(ctx, `Run "devup shell" to work inside the cli container.`)
	return nil
}

// ensureStarted starts the project unless a container is already running.
func (l *Launcher) ensureStarted(ctx context.Context) error {
	containers, err := l.compose.PsJSON(ctx)
	if err != nil {
		return err
	}
	for _, ctr := range containers {
		if ctr.Running() {
			return nil
		}
	}
	slog.InfoContext(ctx, "Launcher.ensureStarted: no running containers, starting project")
	return l.Start(ctx)
}

// Shell attaches an interactive session to the cli service, starting the
// project first if needed. cmdArgs is the in-container command; when empty
// it defaults to the invoking user's login shell. Terminal dimensions are
// forwarded so full-screen programs render correctly.
func (l *Launcher) Shell(ctx context.Context, cols, lines int, cmdArgs ...string) error {
	if err := l.ensureStarted(ctx); err != nil {
		return err
	}

	if len(cmdArgs) == 0 {
		shell, err := l.loginShell()
		if err != nil {
			slog.WarnContext(ctx, "Launcher.Shell: login shell lookup failed, falling back to /bin/bash", "error", err)
			shell = "/bin/bash"
		}
		cmdArgs = []string{shell, "-l"}
	}

	opts := options.ComposeExec{}
	if cols > 0 && lines > 0 {
		opts.Env = map[string]string{
			"COLUMNS": fmt.Sprintf("%d", cols),
			"LINES":   fmt.Sprintf("%d", lines),
		}
	}

	wait, err := l.compose.ExecStream(ctx, opts, CLIService, cmdArgs[0], l.stdin, l.stdout, l.stderr, cmdArgs[1:]...)
	if err != nil {
		return err
	}
	return wait()
}

// Stop halts the containers; data volumes are retained.
func (l *Launcher) Stop(ctx context.Context) error {
	if err := l.compose.Stop(ctx, options.ComposeStop{}); err != nil {
		return err
	}
	l.messenger.Notice(ctx, fmt.Sprintf("Project %s stopped. Data is retained; use start to resume.", l.cfg.ProjectName))
	return nil
}

// Down removes containers and volumes. Destructive: project data is discarded.
func (l *Launcher) Down(ctx context.Context) error {
	if err := l.compose.Down(ctx, options.ComposeDown{Volumes: true, RemoveOrphans: true}); err != nil {
		return err
	}
	l.messenger.Warning(ctx, fmt.Sprintf("Project %s removed, including its volumes.", l.cfg.ProjectName))
	return nil
}

// Purge performs Down and then removes the project image. The down always
// happens first; a failed image removal leaves the down in effect.
func (l *Launcher) Purge(ctx context.Context) error {
	if err := l.Down(ctx); err != nil {
		return err
	}
	out, err := l.docker.RemoveImage(ctx, options.RemoveImage{Force: true}, l.cfg.ProjectImage())
	if err != nil {
		l.messenger.Error(ctx, fmt.Sprintf("Could not remove image %s: %v", l.cfg.ProjectImage(), err))
		return err
	}
	slog.InfoContext(ctx, "Launcher.Purge", "image", l.cfg.ProjectImage(), "out", out)
	l.messenger.Notice(ctx, fmt.Sprintf("Removed image %s.", l.cfg.ProjectImage()))
	return nil
}

// Status lists the project's container states.
func (l *Launcher) Status(ctx context.Context) error {
	return l.compose.Ps(ctx, options.ComposePs{All: true})
}

// Logs streams and follows logs from one service, defaulting to the cli
// service.
func (l *Launcher) Logs(ctx context.Context, service string) error {
	if service == "" {
		service = CLIService
	}
	out, wait, err := l.compose.Logs(ctx, options.ComposeLogs{Follow: true}, service)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(l.stdout, out); err != nil {
		slog.ErrorContext(ctx, "Launcher.Logs copy", "error", err)
	}
	return wait()
}

// Pull refreshes all project images, then rebuilds against the latest base
// images. The optional project settings file can add extra images and
// environment entries for the pull and build invocations; its absence or
// failure to parse never aborts the pull.
func (l *Launcher) Pull(ctx context.Context) error {
	settings, err := LoadProjectSettings(l.files, l.cfg.ProjectRoot)
	if err != nil {
		l.messenger.Warning(ctx, fmt.Sprintf("Ignoring project settings: %v", err))
	}

	compose := l.compose
	if len(settings.Env) > 0 {
		compose = l.newCompose(l.settingsEnviron(settings))
	}

	for _, image := range settings.Images {
		if out, err := l.docker.PullImage(ctx, image); err != nil {
			l.messenger.Warning(ctx, fmt.Sprintf("Could not pull %s: %v", image, err))
			slog.WarnContext(ctx, "Launcher.Pull extra image", "image", image, "out", out, "error", err)
		}
	}

	if err := compose.Pull(ctx, options.ComposePull{IgnorePullFailures: true}); err != nil {
		l.messenger.Warning(ctx, fmt.Sprintf("Some images could not be pulled: %v", err))
	}
	return compose.Build(ctx, options.ComposeBuild{Pull: true})
}

// settingsEnviron extends the compose environment with the project
// settings entries, in stable key order.
func (l *Launcher) settingsEnviron(settings ProjectSettings) []string {
	env := slices.Clone(l.baseEnv)
	keys := make([]string, 0, len(settings.Env))
	for k := range settings.Env {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		env = append(env, k+"="+settings.Env[k])
	}
	return env
}
