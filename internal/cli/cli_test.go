package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tasktree-cli/internal/config"

	"gopkg.in/yaml.v3"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// isolate points config resolution at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfig, "")
	t.Setenv(envDebugLog, "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("TASKTREE_MD_STYLE", "notty")
	return dir
}

func TestKeys_JSON(t *testing.T) {
	isolate(t)
	stdout, stderr, err := runCLI(t, []string{"keys", "--format", "json"})
	if err != nil {
		t.Fatalf("keys: %v\nstderr:\n%s", err, stderr)
	}
	var env struct {
		Data []keyRow `json:"data"`
	}
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, stdout)
	}
	got := map[string]string{}
	for _, r := range env.Data {
		got[r.Action] = r.Chord
	}
	want := map[string]string{
		"quit": "q", "add_task": "a", "delete_task": "x", "edit_task": "e",
		"toggle_expand": "enter", "select_next": "j", "select_previous": "k",
		"deselect": "d", "force_quit": "ctrl+c",
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s: got %q want %q (all: %v)", k, got[k], v, got)
		}
	}
}

func TestKeys_FollowConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("keys:\n  add_task: ctrl+N\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout, _, err := runCLI(t, []string{"--config", path, "keys", "--format", "yaml"})
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	var env struct {
		Data []keyRow `yaml:"data"`
	}
	if err := yaml.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, stdout)
	}
	for _, r := range env.Data {
		if r.Action == "add_task" && r.Chord != "ctrl+n" {
			t.Fatalf("expected normalized chord, got %q", r.Chord)
		}
	}
}

func TestKeys_Markdown(t *testing.T) {
	isolate(t)
	stdout, _, err := runCLI(t, []string{"keys", "--raw"})
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if !strings.Contains(string(stdout), "| `a` | add | add_task |") {
		t.Fatalf("expected markdown table, got:\n%s", stdout)
	}

	stdout, _, err = runCLI(t, []string{"keys"})
	if err != nil {
		t.Fatalf("keys rendered: %v", err)
	}
	if !strings.Contains(string(stdout), "add_task") {
		t.Fatalf("expected rendered table, got:\n%s", stdout)
	}
}

func TestKeys_UnknownFormat(t *testing.T) {
	isolate(t)
	_, _, err := runCLI(t, []string{"keys", "--format", "edn"})
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestConfigDefault_RoundTripsThroughLoader(t *testing.T) {
	dir := isolate(t)
	stdout, _, err := runCLI(t, []string{"config", "default"})
	if err != nil {
		t.Fatalf("config default: %v", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, stdout, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(default): %v\n%s", err, stdout)
	}
	if cfg.Keys != config.Default().Keys {
		t.Fatalf("round trip changed keys: %+v", cfg.Keys)
	}
}

func TestConfigPath(t *testing.T) {
	dir := isolate(t)
	stdout, _, err := runCLI(t, []string{"config", "path"})
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	want := filepath.Join(dir, "tasktree", "config.yaml")
	if got := strings.TrimSpace(string(stdout)); got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	t.Setenv(config.EnvConfig, "/env/config.yaml")
	stdout, _, _ = runCLI(t, []string{"config", "path"})
	if got := strings.TrimSpace(string(stdout)); got != "/env/config.yaml" {
		t.Fatalf("env: got %q", got)
	}
	stdout, _, _ = runCLI(t, []string{"--config", "/flag.yaml", "config", "path"})
	if got := strings.TrimSpace(string(stdout)); got != "/flag.yaml" {
		t.Fatalf("flag: got %q", got)
	}
}

func TestConfigCheck(t *testing.T) {
	dir := isolate(t)
	stdout, _, err := runCLI(t, []string{"config", "check"})
	if err != nil {
		t.Fatalf("check defaults: %v", err)
	}
	if !strings.Contains(string(stdout), `"exists":false`) {
		t.Fatalf("expected missing file reported, got %s", stdout)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("keys:\n  quit: a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err = runCLI(t, []string{"--config", bad, "config", "check"})
	if err == nil || !strings.Contains(err.Error(), "already bound") {
		t.Fatalf("expected duplicate chord error, got %v", err)
	}
}

func TestDocs(t *testing.T) {
	isolate(t)
	stdout, _, err := runCLI(t, []string{"docs"})
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(string(stdout), `"name":"config"`) {
		t.Fatalf("expected topic list, got %s", stdout)
	}

	stdout, _, err = runCLI(t, []string{"docs", "config", "--raw"})
	if err != nil {
		t.Fatalf("docs config: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Configuration file") {
		t.Fatalf("expected raw markdown, got %q", stdout)
	}

	_, _, err = runCLI(t, []string{"docs", "nope"})
	var nf notFoundError
	if !errors.As(err, &nf) || nf.kind != "docs topic" {
		t.Fatalf("expected docs topic not found, got %v", err)
	}
}

func TestRoot_MalformedConfigFailsBeforeTUI(t *testing.T) {
	dir := isolate(t)
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("nonsense: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := runCLI(t, []string{"--config", bad})
	if err == nil || !strings.Contains(err.Error(), "config: parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestRoot_RejectsArgs(t *testing.T) {
	isolate(t)
	if _, _, err := runCLI(t, []string{"bogus"}); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}
