package dockercli

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/devup-cli/devup/options"
)

type DockerSvc struct{}

// Docker is a service interface to docker engine commands outside compose scope.
var Docker DockerSvc

// ClientVersion returns the docker client version string, or an error.
func (d *DockerSvc) ClientVersion(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "docker", "version", "--format", "{{.Client.Version}}")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("docker version: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// RemoveImage removes an image from the local image store.
func (d *DockerSvc) RemoveImage(ctx context.Context, opts options.RemoveImage, image string) (string, error) {
	args := append([]string{"image", "rm"}, append(options.ToArgs(opts), image)...)
	cmd := exec.CommandContext(ctx, "docker", args...)
	slog.InfoContext(ctx, "DockerSvc.RemoveImage", "cmd", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("docker image rm: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// PruneVolumes removes unused local volumes.
func (d *DockerSvc) PruneVolumes(ctx context.Context, opts options.PruneVolumes) (string, error) {
	args := append([]string{"volume", "prune"}, options.ToArgs(opts)...)
	cmd := exec.CommandContext(ctx, "docker", args...)
	slog.InfoContext(ctx, "DockerSvc.PruneVolumes", "cmd", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("docker volume prune: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// PullImage fetches one image from its registry.
func (d *DockerSvc) PullImage(ctx context.Context, image string) (string, error) {
	cmd := exec.CommandContext(ctx, "docker", "pull", image)
	slog.InfoContext(ctx, "DockerSvc.PullImage", "cmd", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("docker pull %s: %w", image, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Ready reports whether the docker daemon is reachable.
func (d *DockerSvc) Ready(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "docker", "system", "info")
	return cmd.Run() == nil
}
