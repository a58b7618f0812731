package version

import "testing"

func TestGetPrefersLdflags(t *testing.T) {
	origCommit, origTime := GitCommit, BuildTime
	defer func() { GitCommit, BuildTime = origCommit, origTime }()

	GitCommit = "abc123"
	BuildTime = "2026-01-01T00:00:00Z"

	got := Get()
	if got.GitCommit != "abc123" {
		t.Errorf("GitCommit = %q, expected the ldflags value", got.GitCommit)
	}
	if got.BuildTime != "2026-01-01T00:00:00Z" {
		t.Errorf("BuildTime = %q, expected the ldflags value", got.BuildTime)
	}
}
