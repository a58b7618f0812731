package options

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

type ComposeUp struct {
	Detach        bool `flag:"--detach"`        // Detached mode: run containers in the background
	RemoveOrphans bool `flag:"--remove-orphans"` // Remove containers for services not defined in the compose file
	Build         bool `flag:"--build"`         // Build images before starting containers
}

type ComposeStop struct {
	Timeout int `flag:"--timeout"` // Shutdown timeout in seconds
}

type ComposeDown struct {
	Volumes       bool `flag:"--volumes"`        // Remove named volumes declared in the compose file
	RemoveOrphans bool `flag:"--remove-orphans"` // Remove containers for services not defined in the compose file
}

type ComposePs struct {
	All    bool   `flag:"--all"`    // Show all stopped containers
	Format string `flag:"--format"` // Format output (table, json)
}

type ComposeLogs struct {
	Follow bool   `flag:"--follow"` // Follow log output
	Tail   string `flag:"--tail"`   // Number of lines to show from the end of the logs
}

type ComposePull struct {
	IgnorePullFailures bool `flag:"--ignore-pull-failures"` // Pull what it can and ignore images with pull failures
	Quiet              bool `flag:"--quiet"`                // Pull without printing progress information
}

type ComposeBuild struct {
	Pull    bool `flag:"--pull"`     // Always attempt to pull a newer version of the base image
	NoCache bool `flag:"--no-cache"` // Do not use cache when building the image
}

type ComposeExec struct {
	Env     map[string]string `flag:"--env"`     // Set environment variables (format: key=value, one flag per entry)
	User    string            `flag:"--user"`    // Run the command as this user
	WorkDir string            `flag:"--workdir"` // Working directory inside the container
	NoTTY   bool              `flag:"-T"`        // Disable pseudo-TTY allocation
}

type RemoveImage struct {
	Force bool `flag:"--force"` // Force removal of the image
}

type PruneVolumes struct {
	Force bool `flag:"--force"` // Do not prompt for confirmation
	All   bool `flag:"--all"`   // Remove all unused volumes, not just anonymous ones
}

// ToArgs creates an array of strings that you can pass to exec.Command(...) as CLI args.
// Map-valued fields emit one flag per key=value entry, in sorted key order.
func ToArgs(s any) []string {
	var ret []string
	st := reflect.TypeOf(s)
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		flagTag, ok := field.Tag.Lookup("flag")
		if !ok {
			continue
		}
		flagParts := strings.Split(flagTag, ",")
		flagName := flagParts[0]
		keepZero := false
		if len(flagParts) > 1 {
			if strings.ToLower(flagParts[1]) == "keepzero" {
				keepZero = true
			}
		}
		sv := reflect.ValueOf(s)
		fv := sv.Field(i)
		v := reflect.ValueOf(fv.Interface())
		if !keepZero && v.IsZero() {
			continue
		}
		if ret == nil {
			ret = []string{}
		}
		fieldKind := field.Type.Kind()
		if fieldKind == reflect.Map {
			m := v.Interface().(map[string]string)
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				ret = append(ret, flagName, fmt.Sprintf("%v=%v", k, m[k]))
			}
			continue
		}
		flagValue := ""
		if fieldKind != reflect.Bool {
			flagValue = fmt.Sprintf("%v", fv.Interface())
		}
		ret = append(ret, flagName)
		if flagValue != "" {
			ret = append(ret, flagValue)
		}
	}
	return ret
}
