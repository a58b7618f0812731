package devup

import "testing"

func TestResolveCommand(t *testing.T) {
	tests := map[string]struct {
		token string
		want  Command
		ok    bool
	}{
		"empty":                 {token: "", ok: false},
		"unknown":               {token: "frobnicate", ok: false},
		"full name down":        {token: "down", want: CommandDown, ok: true},
		"full name status":      {token: "status", want: CommandStatus, ok: true},
		"single letter d":       {token: "d", want: CommandDown, ok: true},
		"single letter e":       {token: "e", want: CommandExec, ok: true},
		"single letter h":       {token: "h", want: CommandHelp, ok: true},
		"single letter l":       {token: "l", want: CommandLogs, ok: true},
		"single letter n":       {token: "n", want: CommandNfs, ok: true},
		"single letter r":       {token: "r", want: CommandRnfs, ok: true},
		"p prefers pull":        {token: "p", want: CommandPull, ok: true},
		"pur resolves purge":    {token: "pur", want: CommandPurge, ok: true},
		"s prefers shell":       {token: "s", want: CommandShell, ok: true},
		"st prefers start":      {token: "st", want: CommandStart, ok: true},
		"sta prefers start":     {token: "sta", want: CommandStart, ok: true},
		"stat resolves status":  {token: "stat", want: CommandStatus, ok: true},
		"sto resolves stop":     {token: "sto", want: CommandStop, ok: true},
		"case insensitive":      {token: "SH", want: CommandShell, ok: true},
		"surrounding space":     {token: " logs ", want: CommandLogs, ok: true},
		"overlong token":        {token: "startled", ok: false},
		"each full name exact":  {token: "rnfs", want: CommandRnfs, ok: true},
		"version abbreviation":  {token: "v", want: CommandVersion, ok: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ResolveCommand(tc.token)
			if ok != tc.ok {
				t.Fatalf("ResolveCommand(%q) ok = %v, expected %v", tc.token, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("ResolveCommand(%q) = %q, expected %q", tc.token, got, tc.want)
			}
		})
	}
}

// Every full command name must resolve to itself regardless of the
// priority order, and every strict prefix must resolve to the first
// name in the documented order it prefixes.
func TestResolveCommandFullNames(t *testing.T) {
	for _, c := range commandOrder {
		got, ok := ResolveCommand(string(c))
		if !ok || got != c {
			t.Errorf("ResolveCommand(%q) = %q, %v; expected the full name to resolve to itself", c, got, ok)
		}
	}
}
