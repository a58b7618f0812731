package devup

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Platform is the host operating system the launcher runs on.
type Platform string

const (
	PlatformMac   Platform = "mac"
	PlatformLinux Platform = "linux"
)

// DetectPlatform maps a GOOS value to a supported platform.
func DetectPlatform(goos string) (Platform, error) {
	switch goos {
	case "darwin":
		return PlatformMac, nil
	case "linux":
		return PlatformLinux, nil
	}
	return "", fmt.Errorf("unsupported platform %q: this tool runs on macOS and linux only", goos)
}

const (
	// LocalComposeFile overrides the platform default when present in the
	// project root.
	LocalComposeFile = "docker-compose.local.yml"

	macComposeFile   = "docker-compose.mac.yml"
	linuxComposeFile = "docker-compose.linux.yml"

	// CLIService is the service container shell/exec and logs attach to.
	CLIService = "cli"
)

// Compose releases before this version reject project names containing
// separator characters, so names get normalized for them.
var separatorCompatVersion = semver.MustParse("1.21.0")

// Config carries everything an action handler needs, resolved once at
// startup. Nothing here is mutated after construction.
type Config struct {
	// ProjectRoot is the working directory the tool was invoked from.
	ProjectRoot string
	// ProjectName is the compose project name derived from ProjectRoot.
	ProjectName string
	// Platform is the detected host platform.
	Platform Platform
	// ComposeFile is the absolute path of the selected compose file.
	ComposeFile string
	// ComposeVersion is the detected compose CLI version string.
	ComposeVersion string
	// UID and GID identify the invoking user, passed into containers so
	// files written there keep host ownership.
	UID int
	GID int
}

// NewConfig resolves the launcher configuration from the working directory,
// the detected platform and compose version, and the invoking user.
func NewConfig(files FileOps, platform Platform, composeVersion string, uid, gid int) (*Config, error) {
	root, err := files.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	return &Config{
		ProjectRoot:    root,
		ProjectName:    NormalizeProjectName(filepath.Base(root), composeVersion),
		Platform:       platform,
		ComposeFile:    filepath.Join(root, ResolveComposeFile(files, root, platform)),
		ComposeVersion: composeVersion,
		UID:            uid,
		GID:            gid,
	}, nil
}

// NormalizeProjectName derives a compose project name from a directory
// name. Separator characters are stripped only when the detected compose
// version predates support for them; an unparseable version is treated as
// modern and left intact.
func NormalizeProjectName(name, composeVersion string) string {
	name = strings.ToLower(name)
	v, err := semver.NewVersion(composeVersion)
	if err != nil || !v.LessThan(separatorCompatVersion) {
		return name
	}
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || r == '.' {
			return -1
		}
		return r
	}, name)
}

// ResolveComposeFile picks the compose file name: an explicit local
// override beats the platform default.
func ResolveComposeFile(files FileOps, root string, platform Platform) string {
	if _, err := files.Stat(filepath.Join(root, LocalComposeFile)); err == nil {
		return LocalComposeFile
	}
	if platform == PlatformMac {
		return macComposeFile
	}
	return linuxComposeFile
}

// ProjectImage is the project-specific image removed by purge.
func (c *Config) ProjectImage() string {
	return fmt.Sprintf("%s-%s", c.ProjectName, CLIService)
}

// AccessURL is where the running environment serves the project.
func (c *Config) AccessURL() string {
	return fmt.Sprintf("http://%s.docker.localhost/", c.ProjectName)
}

// Environ extends base with the variables the compose CLI consumes.
func (c *Config) Environ(base []string) []string {
	return append(base,
		"COMPOSE_PROJECT_NAME="+c.ProjectName,
		"COMPOSE_FILE="+c.ComposeFile,
		fmt.Sprintf("HOST_UID=%d", c.UID),
		fmt.Sprintf("HOST_GID=%d", c.GID),
	)
}
