package dockercli

import (
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"
)

// lockedBuffer collects writes from the pty copy goroutines, which run
// concurrently for stdout and stderr.
type lockedBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

func TestStreamThroughPtyCarriesBothStreams(t *testing.T) {
	cmd := exec.Command("sh", "-c", "echo visible-out; echo visible-err 1>&2")
	out := &lockedBuffer{}

	ptmx, err := streamThroughPty(cmd, strings.NewReader(""), out, out)
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	if err := cmd.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if err := ptmx.Close(); err != nil {
		t.Errorf("close pty: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		got := out.String()
		if strings.Contains(got, "visible-out") && strings.Contains(got, "visible-err") {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("output missing a stream: %q", got)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestParseComposePs(t *testing.T) {
	tests := map[string]struct {
		output   string
		names    []string
		running  int
		parseErr bool
	}{
		"empty": {
			output: "",
		},
		"json array": {
			output:  `[{"Name":"myproject-web-1","Service":"web","State":"running"},{"Name":"myproject-db-1","Service":"db","State":"exited"}]`,
			names:   []string{"myproject-web-1", "myproject-db-1"},
			running: 1,
		},
		"newline delimited objects": {
			output: `{"Name":"myproject-web-1","Service":"web","State":"running"}
{"Name":"myproject-cli-1","Service":"cli","State":"running"}`,
			names:   []string{"myproject-web-1", "myproject-cli-1"},
			running: 2,
		},
		"garbage": {
			output:   "not json",
			parseErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseComposePs([]byte(tc.output))
			if tc.parseErr {
				if err == nil {
					t.Fatal("expected a parse error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseComposePs: %v", err)
			}
			if len(got) != len(tc.names) {
				t.Fatalf("got %d containers, expected %d", len(got), len(tc.names))
			}
			running := 0
			for i, ctr := range got {
				if ctr.Name != tc.names[i] {
					t.Errorf("container %d name = %q, expected %q", i, ctr.Name, tc.names[i])
				}
				if ctr.Running() {
					running++
				}
			}
			if running != tc.running {
				t.Errorf("running = %d, expected %d", running, tc.running)
			}
		})
	}
}
