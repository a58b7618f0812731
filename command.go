// package devup launches and manages a local containerized developer
// environment by shelling out to the docker compose CLI.
package devup

import "strings"

// Command is one of the launcher's fixed actions.
type Command string

const (
	CommandDown    Command = "down"
	CommandExec    Command = "exec"
	CommandHelp    Command = "help"
	CommandLogs    Command = "logs"
	CommandNfs     Command = "nfs"
	CommandRnfs    Command = "rnfs"
	CommandPull    Command = "pull"
	CommandPurge   Command = "purge"
	CommandShell   Command = "shell"
	CommandStart   Command = "start"
	CommandStatus  Command = "status"
	CommandStop    Command = "stop"
	CommandVersion Command = "version"
)

// commandOrder is the documented resolution priority for abbreviated
// commands. The first name the token is a prefix of wins, so "s" resolves
// to shell, not start, status or stop.
var commandOrder = []Command{
	CommandDown,
	CommandExec,
	CommandHelp,
	CommandLogs,
	CommandNfs,
	CommandRnfs,
	CommandPull,
	CommandPurge,
	CommandShell,
	CommandStart,
	CommandStatus,
	CommandStop,
	CommandVersion,
}

// ResolveCommand maps a user-supplied token to a command by
// case-insensitive prefix match against commandOrder. It reports whether
// the token matched anything.
func ResolveCommand(token string) (Command, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return "", false
	}
	for _, c := range commandOrder {
		if strings.HasPrefix(string(c), token) {
			return c, true
		}
	}
	return "", false
}
