package main

import (
	"reflect"
	"testing"
)

func TestResolveArgs(t *testing.T) {
	tests := map[string]struct {
		args     []string
		want     []string
		wantWarn bool
	}{
		"no args defaults to shell": {
			args:     nil,
			want:     []string{"shell"},
			wantWarn: true,
		},
		"unknown command defaults to shell": {
			args:     []string{"bogus"},
			want:     []string{"shell"},
			wantWarn: true,
		},
		"unknown command forwards remaining args": {
			args:     []string{"bogus", "ls", "-la"},
			want:     []string{"shell", "ls", "-la"},
			wantWarn: true,
		},
		"completion passes through untouched": {
			args: []string{"completion", "bash"},
			want: []string{"completion", "bash"},
		},
		"flags pass through untouched": {
			args: []string{"--help"},
			want: []string{"--help"},
		},
		"help becomes help flag": {
			args: []string{"h"},
			want: []string{"--help"},
		},
		"exec aliases shell and forwards args": {
			args: []string{"exec", "composer", "install"},
			want: []string{"shell", "composer", "install"},
		},
		"e abbreviation forwards args too": {
			args: []string{"e", "ls", "-la"},
			want: []string{"shell", "ls", "-la"},
		},
		"abbreviation expands": {
			args: []string{"sta"},
			want: []string{"start"},
		},
		"logs keeps service argument": {
			args: []string{"l", "web"},
			want: []string{"logs", "web"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, warning := resolveArgs(tc.args)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("resolveArgs(%v) = %v, expected %v", tc.args, got, tc.want)
			}
			if (warning != "") != tc.wantWarn {
				t.Errorf("resolveArgs(%v) warning = %q, wantWarn = %v", tc.args, warning, tc.wantWarn)
			}
		})
	}
}
