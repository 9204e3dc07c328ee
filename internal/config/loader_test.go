package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML PuncherConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultPuncherConfig() {
		t.Errorf("embedded YAML diverges from hardcoded defaults:\n%+v\nvs\n%+v",
			fromYAML, DefaultPuncherConfig())
	}
}

func TestLoadPuncherCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte("world:\n  width: 5000\n  final_level: 3\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPuncher(path)
	if err != nil {
		t.Fatalf("LoadPuncher() failed: %v", err)
	}
	if cfg.World.Width != 5000 || cfg.World.FinalLevel != 3 {
		t.Errorf("custom values not applied: %+v", cfg.World)
	}
}

func TestLoadPuncherMissingCustomPath(t *testing.T) {
	if _, err := LoadPuncher("/nonexistent/puncher.yaml"); err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}

func TestLoadPuncherMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("world: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPuncher(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
