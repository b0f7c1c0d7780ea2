package main

import (
	"testing"

	"github.com/golang-migrate/migrate/v4"
)

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "default one step", args: nil, want: 1},
		{name: "explicit", args: []string{" 3 "}, want: 3},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "not a number", args: []string{"two"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSteps(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("parseSteps() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if v, err := parseVersion("1783036800"); err != nil || v != 1783036800 {
		t.Fatalf("parseVersion() = %d, %v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected negative version error")
	}
	if v, err := parseTarget("42"); err != nil || v != 42 {
		t.Fatalf("parseTarget() = %d, %v", v, err)
	}
	if _, err := parseTarget("abc"); err == nil {
		t.Fatalf("expected invalid target error")
	}
}

func TestResolveMigrationsDir(t *testing.T) {
	dir := t.TempDir()

	got, err := resolveMigrationsDir(dir)
	if err != nil {
		t.Fatalf("resolve explicit dir: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
}

func TestIgnoreNoChange(t *testing.T) {
	if err := ignoreNoChange(migrate.ErrNoChange); err != nil {
		t.Fatalf("expected ErrNoChange to be ignored, got %v", err)
	}
	if err := ignoreNoChange(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"up", "down", "version", "force", "goto"} {
		if _, ok := commands[name]; !ok {
			t.Fatalf("command %q not registered", name)
		}
	}
}
