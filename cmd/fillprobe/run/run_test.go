// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fillprobe/fillprobe/lib/config"
)

// The warning prompt never fires under "go test": stdin is not a
// terminal, so ShouldWarn is false and Execute runs straight through.

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()

	err := Command().Execute([]string{"--target", dir, "--count", "3", "--size", "1K", "--quiet"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("wrote %d files, want 3", len(entries))
	}
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() != 1024 {
			t.Errorf("%s is %d bytes, want 1024", entry.Name(), info.Size())
		}
	}
}

func TestRunRejectsMalformedSize(t *testing.T) {
	err := Command().Execute([]string{"--target", t.TempDir(), "--size", "abc", "--quiet"})
	if err == nil {
		t.Fatal("Execute accepted a malformed size")
	}
	if !strings.Contains(err.Error(), "abc") {
		t.Errorf("error %q does not name the bad size expression", err)
	}
}

func TestRunRejectsZeroSize(t *testing.T) {
	if err := Command().Execute([]string{"--target", t.TempDir(), "--size", "0", "--quiet"}); err == nil {
		t.Fatal("Execute accepted a zero chunk size")
	}
}

func TestRunRejectsMissingTarget(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	err := Command().Execute([]string{"--target", missing, "--quiet"})
	if err == nil {
		t.Fatal("Execute accepted a missing target directory")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error %q does not name the target", err)
	}
}

func TestRunRejectsStrayArguments(t *testing.T) {
	if err := Command().Execute([]string{"stray"}); err == nil {
		t.Fatal("Execute accepted a stray positional argument")
	}
}

func TestRunConfigFileDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "fillprobe.yaml")
	configBody := "target: " + dir + "\ncount: 5\nsize: 1K\nquiet: true\n"
	if err := os.WriteFile(configPath, []byte(configBody), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvVar, configPath)

	if err := Command().Execute(nil); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 {
		t.Errorf("config-driven run wrote %d files, want 5", len(entries))
	}
}

func TestRunFlagsBeatConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "fillprobe.yaml")
	configBody := "target: " + dir + "\ncount: 5\nsize: 1K\nquiet: true\n"
	if err := os.WriteFile(configPath, []byte(configBody), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvVar, configPath)

	if err := Command().Execute([]string{"--count", "2"}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("flag-overridden run wrote %d files, want 2", len(entries))
	}
}
