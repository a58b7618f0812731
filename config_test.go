package devup

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func TestDetectPlatform(t *testing.T) {
	tests := map[string]struct {
		goos    string
		want    Platform
		wantErr bool
	}{
		"darwin":  {goos: "darwin", want: PlatformMac},
		"linux":   {goos: "linux", want: PlatformLinux},
		"windows": {goos: "windows", wantErr: true},
		"empty":   {goos: "", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := DetectPlatform(tc.goos)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("DetectPlatform(%q) expected an error", tc.goos)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectPlatform(%q): %v", tc.goos, err)
			}
			if got != tc.want {
				t.Errorf("DetectPlatform(%q) = %q, expected %q", tc.goos, got, tc.want)
			}
		})
	}
}

func TestNormalizeProjectName(t *testing.T) {
	tests := map[string]struct {
		dir     string
		version string
		want    string
	}{
		"old compose strips separators": {
			dir: "my-project_site", version: "1.20.0", want: "myprojectsite",
		},
		"threshold version keeps separators": {
			dir: "my-project_site", version: "1.21.0", want: "my-project_site",
		},
		"modern compose keeps separators": {
			dir: "my-project", version: "2.24.5", want: "my-project",
		},
		"unparseable version treated as modern": {
			dir: "my-project", version: "dev-build", want: "my-project",
		},
		"lowercased either way": {
			dir: "MySite", version: "2.24.5", want: "mysite",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := NormalizeProjectName(tc.dir, tc.version)
			if got != tc.want {
				t.Errorf("NormalizeProjectName(%q, %q) = %q, expected %q", tc.dir, tc.version, got, tc.want)
			}
		})
	}
}

type fakeFileInfo struct{ name string }

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return 0644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() any           { return nil }

type mockFileOps struct {
	statFunc     func(path string) (os.FileInfo, error)
	readFileFunc func(path string) ([]byte, error)
	getwdFunc    func() (string, error)
}

func (m *mockFileOps) Stat(path string) (os.FileInfo, error) {
	if m.statFunc != nil {
		return m.statFunc(path)
	}
	return nil, os.ErrNotExist
}

func (m *mockFileOps) ReadFile(path string) ([]byte, error) {
	if m.readFileFunc != nil {
		return m.readFileFunc(path)
	}
	return nil, os.ErrNotExist
}

func (m *mockFileOps) Getwd() (string, error) {
	if m.getwdFunc != nil {
		return m.getwdFunc()
	}
	return "/home/dev/my-project", nil
}

func TestResolveComposeFile(t *testing.T) {
	tests := map[string]struct {
		platform Platform
		hasLocal bool
		want     string
	}{
		"local override wins on mac":   {platform: PlatformMac, hasLocal: true, want: LocalComposeFile},
		"local override wins on linux": {platform: PlatformLinux, hasLocal: true, want: LocalComposeFile},
		"mac default":                  {platform: PlatformMac, want: "docker-compose.mac.yml"},
		"linux default":                {platform: PlatformLinux, want: "docker-compose.linux.yml"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			files := &mockFileOps{
				statFunc: func(path string) (os.FileInfo, error) {
					if tc.hasLocal && strings.HasSuffix(path, LocalComposeFile) {
						return fakeFileInfo{name: LocalComposeFile}, nil
					}
					return nil, os.ErrNotExist
				},
			}
			got := ResolveComposeFile(files, "/home/dev/my-project", tc.platform)
			if got != tc.want {
				t.Errorf("ResolveComposeFile = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	files := &mockFileOps{}
	cfg, err := NewConfig(files, PlatformLinux, "2.24.5", 1000, 1000)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.ProjectName != "my-project" {
		t.Errorf("ProjectName = %q", cfg.ProjectName)
	}
	if !strings.HasSuffix(cfg.ComposeFile, "docker-compose.linux.yml") {
		t.Errorf("ComposeFile = %q", cfg.ComposeFile)
	}
	if cfg.AccessURL() != "http://my-project.docker.localhost/" {
		t.Errorf("AccessURL = %q", cfg.AccessURL())
	}

	env := cfg.Environ(nil)
	want := map[string]bool{
		"COMPOSE_PROJECT_NAME=my-project": false,
		"HOST_UID=1000":                   false,
		"HOST_GID=1000":                   false,
	}
	for _, e := range env {
		if _, ok := want[e]; ok {
			want[e] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("Environ missing %q (got %v)", k, env)
		}
	}
}

func TestNewConfigGetwdError(t *testing.T) {
	files := &mockFileOps{getwdFunc: func() (string, error) {
		return "", errors.New("no working directory")
	}}
	if _, err := NewConfig(files, PlatformLinux, "2.24.5", 1000, 1000); err == nil {
		t.Fatal("expected error from Getwd to propagate")
	}
}
