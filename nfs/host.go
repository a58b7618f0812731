package nfs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

type DaemonSvc struct{}

// Daemon is a service interface to the host nfsd daemon.
var Daemon DaemonSvc

// Restart restarts nfsd, picking up configuration edits.
func (d *DaemonSvc) Restart(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "sudo", "nfsd", "restart")
	slog.InfoContext(ctx, "DaemonSvc.Restart", "cmd", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("nfsd restart: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Check asks nfsd to validate the exports file.
func (d *DaemonSvc) Check(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "sudo", "nfsd", "checkexports")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("nfsd checkexports: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

type DesktopSvc struct{}

// Desktop is a service interface to the Docker Desktop application.
var Desktop DesktopSvc

// Quit asks Docker Desktop to exit cleanly.
func (d *DesktopSvc) Quit(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "osascript", "-e", `quit app "Docker"`)
	slog.InfoContext(ctx, "DesktopSvc.Quit", "cmd", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("quit Docker Desktop: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Launch starts Docker Desktop. It returns before the daemon is ready.
func (d *DesktopSvc) Launch(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "open", "-a", "Docker")
	slog.InfoContext(ctx, "DesktopSvc.Launch", "cmd", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("launch Docker Desktop: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// HostFiles reads and writes the root-owned configuration files NFS setup
// touches. Writes go through sudo tee since the invoking user must not be root.
type HostFiles interface {
	Read(path string) (string, error)
	Write(ctx context.Context, path, content string) error
}

type sudoHostFiles struct{}

func NewHostFiles() HostFiles {
	return &sudoHostFiles{}
}

func (f *sudoHostFiles) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func (f *sudoHostFiles) Write(ctx context.Context, path, content string) error {
	cmd := exec.CommandContext(ctx, "sudo", "tee", path)
	slog.InfoContext(ctx, "HostFiles.Write", "cmd", strings.Join(cmd.Args, " "))
	cmd.Stdin = bytes.NewBufferString(content)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("write %s: %w: %s", path, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// EnsureLineInFile idempotently appends line to the file at path.
// It reports whether the file changed.
func EnsureLineInFile(ctx context.Context, files HostFiles, path, line string) (bool, error) {
	content, err := files.Read(path)
	if err != nil {
		return false, err
	}
	updated, changed := EnsureLine(content, line)
	if !changed {
		return false, nil
	}
	return true, files.Write(ctx, path, updated)
}

// RemoveLineFromFile strips line from the file at path.
// It reports whether the file changed.
func RemoveLineFromFile(ctx context.Context, files HostFiles, path, line string) (bool, error) {
	content, err := files.Read(path)
	if err != nil {
		return false, err
	}
	updated, changed := RemoveLine(content, line)
	if !changed {
		return false, nil
	}
	return true, files.Write(ctx, path, updated)
}
