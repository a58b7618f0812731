package devup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/devup-cli/devup/nfs"
	"github.com/devup-cli/devup/options"
)

var (
	// ErrUserDeclined means the operator answered no at a confirmation
	// prompt. Nothing was changed.
	ErrUserDeclined = errors.New("declined by user")

	// ErrPlatformMismatch means the action is gated to a platform other
	// than the one detected.
	ErrPlatformMismatch = errors.New("action not supported on this platform")
)

const (
	readyPollInterval = 2 * time.Second
	readyTimeout      = 3 * time.Minute
)

// SetupNFS performs the one-time macOS host configuration for NFS file
// sharing: stop the containers, prune volumes, quit Docker Desktop, edit
// the exports and nfsd configuration, restart nfsd, relaunch Docker
// Desktop and wait for the daemon with a bounded poll. Each step is gated
// on the success of the prior one.
func (l *Launcher) SetupNFS(ctx context.Context, confirm func(prompt string) bool) error {
	if l.cfg.Platform != PlatformMac {
		return fmt.Errorf("%w: NFS setup requires macOS, detected %s", ErrPlatformMismatch, l.cfg.Platform)
	}

	if !confirm("NFS setup stops all project containers, prunes unused volumes and restarts Docker Desktop. Continue? [y/N] ") {
		l.messenger.Notice(ctx, "NFS setup cancelled. Nothing was changed.")
		return ErrUserDeclined
	}

	l.messenger.Notice(ctx, "Stopping project containers...")
	if err := l.compose.Stop(ctx, options.ComposeStop{}); err != nil {
		return err
	}

	l.messenger.Notice(ctx, "Pruning unused volumes...")
	if out, err := l.docker.PruneVolumes(ctx, options.PruneVolumes{Force: true}); err != nil {
		slog.ErrorContext(ctx, "Launcher.SetupNFS prune", "out", out, "error", err)
		return err
	}

	l.messenger.Notice(ctx, "Quitting Docker Desktop...")
	if err := l.desktop.Quit(ctx); err != nil {
		return err
	}

	exportLine := nfs.ExportLine(l.cfg.UID, l.cfg.GID)
	changed, err := nfs.EnsureLineInFile(ctx, l.hostFiles, nfs.ExportsPath, exportLine)
	if err != nil {
		return err
	}
	if changed {
		l.messenger.Notice(ctx, fmt.Sprintf("Added export to %s.", nfs.ExportsPath))
	} else {
		l.messenger.Notice(ctx, fmt.Sprintf("%s already configured.", nfs.ExportsPath))
	}

	changed, err = nfs.EnsureLineInFile(ctx, l.hostFiles, nfs.ConfPath, nfs.ConfLine)
	if err != nil {
		return err
	}
	if changed {
		l.messenger.Notice(ctx, fmt.Sprintf("Updated %s.", nfs.ConfPath))
	}

	l.messenger.Notice(ctx, "Restarting nfsd...")
	if err := l.nfsDaemon.Restart(ctx); err != nil {
		return err
	}

	l.messenger.Notice(ctx, "Relaunching Docker Desktop...")
	if err := l.desktop.Launch(ctx); err != nil {
		return err
	}

	l.messenger.Notice(ctx, "Waiting for the docker daemon...")
	if err := l.awaitDockerReady(ctx); err != nil {
		return err
	}

	l.messenger.Notice(ctx, "NFS setup complete.")
	return nil
}

// RemoveNFS reverses the exports edit made by SetupNFS and restarts nfsd.
func (l *Launcher) RemoveNFS(ctx context.Context) error {
	if l.cfg.Platform != PlatformMac {
		return fmt.Errorf("%w: NFS removal requires macOS, detected %s", ErrPlatformMismatch, l.cfg.Platform)
	}

	exportLine := nfs.ExportLine(l.cfg.UID, l.cfg.GID)
	changed, err := nfs.RemoveLineFromFile(ctx, l.hostFiles, nfs.ExportsPath, exportLine)
	if err != nil {
		return err
	}
	if !changed {
		l.messenger.Notice(ctx, fmt.Sprintf("No export found in %s, nothing to remove.", nfs.ExportsPath))
		return nil
	}

	if err := l.nfsDaemon.Restart(ctx); err != nil {
		return err
	}
	l.messenger.Notice(ctx, "NFS export removed.")
	return nil
}

// awaitDockerReady polls the daemon with a fixed interval until it answers
// or the bounded timeout elapses. The surrounding context can cancel the
// wait early.
func (l *Launcher) awaitDockerReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	ticker := time.NewTicker(readyPollInterval)
	defer ticker.Stop()

	for {
		if l.docker.Ready(ctx) {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("docker daemon not ready after %s: %w", readyTimeout, ctx.Err())
		case <-ticker.C:
		}
	}
}
