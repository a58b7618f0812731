// package dockercli shells out to the docker CLI for compose project lifecycle operations.
package dockercli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/devup-cli/devup/options"
	"github.com/devup-cli/devup/types"
)

// ComposeSvc is a service interface to the `docker compose` CLI. Project
// selection (compose file, project name) travels in the environment it is
// constructed with, the same way the compose CLI itself consumes it.
type ComposeSvc struct {
	env    []string
	stdout io.Writer
	stderr io.Writer
}

func NewComposeSvc(env []string, stdout, stderr io.Writer) *ComposeSvc {
	return &ComposeSvc{env: env, stdout: stdout, stderr: stderr}
}

func (s *ComposeSvc) command(ctx context.Context, verb string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "docker", append([]string{"compose", verb}, args...)...)
	cmd.Env = s.env
	return cmd
}

// run executes a compose verb with output attached to the service writers.
func (s *ComposeSvc) run(ctx context.Context, verb string, args ...string) error {
	cmd := s.command(ctx, verb, args...)
	slog.InfoContext(ctx, "ComposeSvc.run", "cmd", strings.Join(cmd.Args, " "))
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker compose %s: %w", verb, err)
	}
	return nil
}

// Up starts the project containers.
func (s *ComposeSvc) Up(ctx context.Context, opts options.ComposeUp) error {
	return s.run(ctx, "up", options.ToArgs(opts)...)
}

// Stop halts the project containers, retaining their data.
func (s *ComposeSvc) Stop(ctx context.Context, opts options.ComposeStop) error {
	return s.run(ctx, "stop", options.ToArgs(opts)...)
}

// Down removes the project containers, networks and, if requested, volumes.
func (s *ComposeSvc) Down(ctx context.Context, opts options.ComposeDown) error {
	return s.run(ctx, "down", options.ToArgs(opts)...)
}

// Ps prints container states to the service writers.
func (s *ComposeSvc) Ps(ctx context.Context, opts options.ComposePs) error {
	return s.run(ctx, "ps", options.ToArgs(opts)...)
}

// PsJSON returns the project's containers, running or not.
func (s *ComposeSvc) PsJSON(ctx context.Context) ([]types.ComposeContainer, error) {
	cmd := s.command(ctx, "ps", "--all", "--format", "json")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("docker compose ps: %w", err)
	}
	return parseComposePs(output)
}

// parseComposePs handles both the JSON-array and the newline-delimited
// object formats that different compose versions emit.
func parseComposePs(output []byte) ([]types.ComposeContainer, error) {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var ret []types.ComposeContainer
		if err := json.Unmarshal([]byte(trimmed), &ret); err != nil {
			return nil, err
		}
		return ret, nil
	}
	var ret []types.ComposeContainer
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var ctr types.ComposeContainer
		if err := json.Unmarshal([]byte(line), &ctr); err != nil {
			return nil, err
		}
		ret = append(ret, ctr)
	}
	return ret, nil
}

// Logs returns an io.ReadCloser for streaming log output and a wait func that blocks on the command's completion, or an error.
func (s *ComposeSvc) Logs(ctx context.Context, opts options.ComposeLogs, services ...string) (io.ReadCloser, func() error, error) {
	args := append(options.ToArgs(opts), services...)
	cmd := s.command(ctx, "logs", args...)
	slog.InfoContext(ctx, "ComposeSvc.Logs", "cmd", strings.Join(cmd.Args, " "))
	cmd.Stderr = s.stderr

	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, err
	}

	return out, cmd.Wait, nil
}

// Pull fetches the images referenced by the compose file.
func (s *ComposeSvc) Pull(ctx context.Context, opts options.ComposePull) error {
	return s.run(ctx, "pull", options.ToArgs(opts)...)
}

// Build builds the project's images.
func (s *ComposeSvc) Build(ctx context.Context, opts options.ComposeBuild) error {
	return s.run(ctx, "build", options.ToArgs(opts)...)
}

// Version returns the short compose version string, e.g. "2.24.5" or "1.20.0".
func (s *ComposeSvc) Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "docker", "compose", "version", "--short")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("docker compose version: %w", err)
	}
	return strings.TrimPrefix(strings.TrimSpace(string(output)), "v"), nil
}

// ExecStream executes a command in a running service container, connecting the
// given stdio. When stdin is not a terminal a pseudo-terminal is allocated so
// the in-container process still behaves interactively.
func (s *ComposeSvc) ExecStream(ctx context.Context, opts options.ComposeExec, service, command string, stdin io.Reader, stdout, stderr io.Writer, cmdArgs ...string) (func() error, error) {
	args := append(options.ToArgs(opts), append([]string{service, command}, cmdArgs...)...)
	cmd := s.command(ctx, "exec", args...)
	slog.InfoContext(ctx, "ComposeSvc.ExecStream", "cmd", strings.Join(cmd.Args, " "))

	var ptmx *os.File
	stdinFile, isFile := stdin.(*os.File)
	if isFile && term.IsTerminal(int(stdinFile.Fd())) {
		slog.InfoContext(ctx, "ComposeSvc.ExecStream: normal terminal passthrough")

		cmd.Stdin = stdin
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		if err := cmd.Start(); err != nil {
			return nil, err
		}
	} else {
		slog.InfoContext(ctx, "ComposeSvc.ExecStream: using pseudo-terminal")

		p, err := streamThroughPty(cmd, stdin, stdout, stderr)
		if err != nil {
			return nil, err
		}
		ptmx = p
	}

	return func() error {
		err := cmd.Wait()
		if ptmx != nil {
			ptmx.Close()
		}
		if err != nil {
			slog.ErrorContext(ctx, "ComposeSvc.ExecStream wait", "error", err)
		}
		return err
	}, nil
}

// streamThroughPty starts cmd under a pseudo-terminal and pumps the given
// stdio through it. The caller closes the returned pty once the command
// has been waited on.
func streamThroughPty(cmd *exec.Cmd, stdin io.Reader, stdout, stderr io.Writer) (*os.File, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, err
	}

	// Copy data between stdin/stdout and the pty
	go io.Copy(ptmx, stdin)
	go io.Copy(stdout, ptmx)
	// Writing stderr and stdout to the same place is probably a bad idea,
	// but we don't have anywhere else to send it at the moment.
	go io.Copy(stderr, ptmx)

	return ptmx, nil
}
