package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestSampleMatchesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guidora.yaml")

	wrote, err := WriteSample(path, 0644)
	if err != nil || !wrote {
		t.Fatalf("write sample: %t %v", wrote, err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}

	dflt := Default()
	if cfg.LogFile != dflt.LogFile || cfg.Brand != dflt.Brand || cfg.Tagline != dflt.Tagline ||
		cfg.PhoneLength != dflt.PhoneLength || cfg.AltScreen != dflt.AltScreen {
		t.Errorf("sample differs from default: %+v vs %+v", cfg, dflt)
	}
	if !slices.Equal(cfg.Roles, dflt.Roles) {
		t.Errorf("expected roles %v, got %v", dflt.Roles, cfg.Roles)
	}
}

func TestWriteSampleKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guidora.yaml")
	if err := os.WriteFile(path, []byte("brand: Mine\n"), 0644); err != nil {
		t.Fatal(err)
	}

	wrote, err := WriteSample(path, 0644)
	if err != nil || wrote {
		t.Errorf("expected existing file to be kept, got %t %v", wrote, err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Brand != "Mine" {
		t.Errorf("expected brand Mine, got %q", cfg.Brand)
	}
	if cfg.Tagline != Default().Tagline || !cfg.AltScreen {
		t.Errorf("expected defaults for missing keys, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	cases := map[string]string{
		"garbled.yaml":  "roles: [unclosed\n",
		"negative.yaml": "phone_length: -1\n",
		"noroles.yaml":  "roles: []\n",
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := Default()
	cfg.Brand = "Other"
	cfg.AltScreen = false
	if err := cfg.Write(path, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Brand != "Other" || got.AltScreen {
		t.Errorf("unexpected config %+v", got)
	}
}

func TestOpenLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	file := OpenLog(path, 0644)
	if _, err := file.Write([]byte("line\n")); err != nil {
		t.Fatalf("write log: %v", err)
	}
	CloseLog(file)

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "line\n" {
		t.Errorf("unexpected log content %q %v", data, err)
	}
}
