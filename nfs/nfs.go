// package nfs manages the macOS host configuration required to share the
// filesystem with containers over NFS: the exports list, the nfsd
// configuration, and the Docker Desktop restart cycle around editing them.
package nfs

import (
	"fmt"
	"strings"
)

const (
	ExportsPath = "/etc/exports"
	ConfPath    = "/etc/nfs.conf"

	// ConfLine lets nfsd accept mounts from the unprivileged ports the
	// container runtime's NFS client uses.
	ConfLine = "nfs.server.mount.require_resv_port = 0"

	// exportRoot is the host directory tree exported to containers.
	exportRoot = "/System/Volumes/Data"
)

// ExportLine renders the /etc/exports entry mapping all access to the
// invoking user, so files created from containers keep host ownership.
func ExportLine(uid, gid int) string {
	return fmt.Sprintf("%s -alldirs -mapall=%d:%d localhost", exportRoot, uid, gid)
}

// EnsureLine appends line to content only if no line of content already
// equals it. It returns the updated content and whether it changed.
// Appending twice yields the line exactly once.
func EnsureLine(content, line string) (string, bool) {
	if containsLine(content, line) {
		return content, false
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + line + "\n", true
}

// RemoveLine strips every line of content equal to line. It returns the
// updated content and whether it changed.
func RemoveLine(content, line string) (string, bool) {
	if !containsLine(content, line) {
		return content, false
	}
	var kept []string
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimSpace(l) == strings.TrimSpace(line) {
			continue
		}
		kept = append(kept, l)
	}
	return strings.Join(kept, "\n"), true
}

func containsLine(content, line string) bool {
	want := strings.TrimSpace(line)
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimSpace(l) == want {
			return true
		}
	}
	return false
}
