package main

import (
	"fmt"
	"strings"

	"github.com/devup-cli/devup"
)

// resolveArgs rewrites the raw CLI arguments before kong sees them: the
// first token is resolved through the abbreviated-command lookup, exec
// maps onto shell, help becomes --help, and a missing or unknown command
// falls back to shell with a warning.
func resolveArgs(args []string) ([]string, string) {
	if len(args) == 0 {
		return []string{"shell"}, "No command given, defaulting to shell."
	}
	if strings.HasPrefix(args[0], "-") || strings.EqualFold(args[0], "completion") {
		return args, ""
	}

	cmd, ok := devup.ResolveCommand(args[0])
	if !ok {
		return append([]string{"shell"}, args[1:]...), fmt.Sprintf("Unknown command %q, defaulting to shell.", args[0])
	}

	rest := args[1:]
	switch cmd {
	case devup.CommandHelp:
		return []string{"--help"}, ""
	case devup.CommandExec:
		// exec is an alias for shell; arguments after it are forwarded
		// verbatim to the in-container command.
		return append([]string{"shell"}, rest...), ""
	default:
		return append([]string{string(cmd)}, rest...), ""
	}
}
