package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cliSeed = `
divisions:
  - {id: 1, name: Division 1, rank: 1}
seasons:
  - id: 10
    name: Winter 2025
    short_name: W25
    slug: winter-2025
    divisions: [1]
    start_date: 2025-09-01
    end_date: 2026-04-30
    registration_opens: 2025-07-01
    registration_closes: 2025-08-15
    is_visible: true
    is_current: true
  - id: 11
    name: Summer 2026
    short_name: S26
    slug: summer-2026
    divisions: [1]
    start_date: 2026-05-01
    end_date: 2026-08-31
    registration_opens: 2026-03-01
    registration_closes: 2026-04-15
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.yaml")
	if err := os.WriteFile(seedPath, []byte(cliSeed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	t.Setenv("APP_ENV", "dev")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SEED_FILE", seedPath)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_LOG_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--env-file", filepath.Join(dir, "none.env")}, args...))
	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func TestSeasonsList(t *testing.T) {
	out, err := runCLI(t, "seasons", "list")
	if err != nil {
		t.Fatalf("seasons list: %v\n%s", err, out)
	}
	for _, want := range []string{"winter-2025", "summer-2026", "CURRENT"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "seasons", "list", "--visible")
	if err != nil {
		t.Fatalf("seasons list --visible: %v", err)
	}
	if strings.Contains(out, "summer-2026") {
		t.Fatalf("hidden season listed:\n%s", out)
	}
}

func TestSeasonsSetCurrent(t *testing.T) {
	out, err := runCLI(t, "seasons", "set-current", "11")
	if err != nil {
		t.Fatalf("set-current: %v\n%s", err, out)
	}
	if !strings.Contains(out, "season 11 is now current") {
		t.Fatalf("unexpected output: %s", out)
	}

	if _, err := runCLI(t, "seasons", "set-current", "99"); err == nil {
		t.Fatalf("expected error for unknown season")
	}
	if _, err := runCLI(t, "seasons", "set-current", "abc"); err == nil {
		t.Fatalf("expected error for non numeric id")
	}
}

func TestFixturesCheck(t *testing.T) {
	out, err := runCLI(t, "fixtures", "check", "--season", "winter-2025")
	if err != nil {
		t.Fatalf("fixtures check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "all fixtures valid") {
		t.Fatalf("unexpected output: %s", out)
	}

	if _, err := runCLI(t, "fixtures", "check"); err == nil {
		t.Fatalf("expected error without --season")
	}
}

func TestApprovalsList_Empty(t *testing.T) {
	out, err := runCLI(t, "approvals", "list")
	if err != nil {
		t.Fatalf("approvals list: %v\n%s", err, out)
	}
	if !strings.Contains(out, "KIND") {
		t.Fatalf("expected header in output: %s", out)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "12", want: 12},
		{raw: " 7 ", want: 7},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "x", wantErr: true},
	}
	for _, tc := range tests {
		got, err := parseID(tc.raw)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Fatalf("parseID(%q) = %d, %v", tc.raw, got, err)
		}
	}
}

func TestResolveMigrationsDir(t *testing.T) {
	dir := t.TempDir()
	got, err := resolveMigrationsDir(dir)
	if err != nil {
		t.Fatalf("resolveMigrationsDir: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
}
