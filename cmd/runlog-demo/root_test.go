package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDemo_WritesRunFile(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, err := execute(t, "--dir", dir, "--name", "Demo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	path := strings.TrimSpace(stdout)
	if filepath.Dir(path) != dir || !strings.HasPrefix(filepath.Base(path), "Run_") {
		t.Fatalf("Unexpected run file path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != stderr {
		t.Errorf("Console and file output differ:\n%s\n---\n%s", stderr, data)
	}
	for _, want := range []string{
		"[INFO - Demo:", "[WARNING - Worker:", "[SEVERE - Demo:", "[ERROR - Demo:",
		"] 3 requests failed\n", "] connection refused at:\n",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("Expected %q in output:\n%s", want, stderr)
		}
	}
}

func TestDemo_NoFileAndLevel(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, stderr, err := execute(t, "--no-file", "--level", "severe")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "" {
		t.Errorf("Expected no path on stdout, got %q", stdout)
	}
	if strings.Contains(stderr, "[INFO") || strings.Contains(stderr, "[WARNING") {
		t.Errorf("Expected records below SEVERE to be filtered:\n%s", stderr)
	}
	if !strings.Contains(stderr, "[SEVERE - Demo:") {
		t.Errorf("Expected SEVERE record:\n%s", stderr)
	}
	if _, err := os.Stat("log"); !os.IsNotExist(err) {
		t.Error("--no-file must not create the log directory")
	}
}

func TestDemo_JSONAndZap(t *testing.T) {
	stdout, stderr, err := execute(t, "--no-file", "--json", "--zap")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stderr, `"level":"INFO"`) {
		t.Errorf("Expected JSON console output:\n%s", stderr)
	}
	if !strings.Contains(stdout, "demo started") || !strings.Contains(stdout, "Worker") {
		t.Errorf("Expected zap output on stdout:\n%s", stdout)
	}
}

func TestDemo_BadLevel(t *testing.T) {
	if _, _, err := execute(t, "--no-file", "--level", "loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}
