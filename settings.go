package devup

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the optional per-project customization file consulted
// before pull.
const SettingsFile = ".devup.yml"

// ProjectSettings are the project-specific customizations a repo can ship.
type ProjectSettings struct {
	// Env is merged into the environment handed to the compose CLI for
	// the pull and build invocations.
	Env map[string]string `yaml:"env"`
	// Images are extra images pulled best-effort before the project build.
	Images []string `yaml:"images"`
}

// LoadProjectSettings reads the project settings file. A missing file is
// not an error and yields zero settings; a malformed file is an error the
// caller decides whether to tolerate.
func LoadProjectSettings(files FileOps, root string) (ProjectSettings, error) {
	var settings ProjectSettings
	data, err := files.ReadFile(filepath.Join(root, SettingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("read %s: %w", SettingsFile, err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse %s: %w", SettingsFile, err)
	}
	return settings, nil
}
