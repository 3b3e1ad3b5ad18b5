package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"guidora/config"
)

func TestSampleCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guidora.yaml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"sample-config", path})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "wrote sample config") {
		t.Errorf("unexpected output %q", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil || string(data) != config.Sample {
		t.Errorf("expected sample written, got %q %v", data, err)
	}

	out.Reset()
	rootCmd.SetArgs([]string{"sample-config", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute again: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil || cfg.Brand != config.Default().Brand {
		t.Errorf("expected defaults, got %+v %v", cfg, err)
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config")
	}
}
