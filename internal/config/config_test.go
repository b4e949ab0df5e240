package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 768 {
		t.Errorf("expected height 768, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Cube.Crop.Strategy != "cover" {
		t.Errorf("expected crop strategy 'cover', got %s", cfg.Cube.Crop.Strategy)
	}
	if cfg.Cube.Crop.Size != 512 {
		t.Errorf("expected crop size 512, got %d", cfg.Cube.Crop.Size)
	}
	if cfg.Cube.Smoothing != 0.08 {
		t.Errorf("expected smoothing 0.08, got %f", cfg.Cube.Smoothing)
	}
	if cfg.Cube.MomentumDecay != 0.9 {
		t.Errorf("expected momentum decay 0.9, got %f", cfg.Cube.MomentumDecay)
	}

	if cfg.Showcase.Enabled {
		t.Error("expected showcase to be disabled by default")
	}
	if len(cfg.Showcase.Sequence) != 6 {
		t.Errorf("expected default sequence of 6 faces, got %d", len(cfg.Showcase.Sequence))
	}
	if cfg.Showcase.FaceDuration.Std() != 2*time.Second {
		t.Errorf("expected face duration 2s, got %v", cfg.Showcase.FaceDuration.Std())
	}
	if !cfg.Showcase.Loop {
		t.Error("expected loop to be true by default")
	}
	if cfg.Showcase.RotationSpeed != 0.02 {
		t.Errorf("expected rotation speed 0.02, got %f", cfg.Showcase.RotationSpeed)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "cubeview.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

cube:
  images:
    - photos/one.jpg
    - https://example.com/two.png
  crop:
    strategy: contain
    size: 256
  drag_sensitivity: 0.25
  momentum_decay: 0.85

showcase:
  enabled: true
  sequence: [0, 2, 4]
  face_duration: 1500ms
  loop: false
  rotation_speed: 0.05

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}

	if len(cfg.Cube.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(cfg.Cube.Images))
	}
	if cfg.Cube.Images[1] != "https://example.com/two.png" {
		t.Errorf("unexpected second image: %s", cfg.Cube.Images[1])
	}
	if cfg.Cube.Crop.Strategy != "contain" {
		t.Errorf("expected crop strategy 'contain', got %s", cfg.Cube.Crop.Strategy)
	}
	if cfg.Cube.DragSensitivity != 0.25 {
		t.Errorf("expected drag sensitivity 0.25, got %f", cfg.Cube.DragSensitivity)
	}
	// Unset fields keep their defaults
	if cfg.Cube.Smoothing != 0.08 {
		t.Errorf("expected default smoothing 0.08, got %f", cfg.Cube.Smoothing)
	}

	if !cfg.Showcase.Enabled {
		t.Error("expected showcase enabled")
	}
	if len(cfg.Showcase.Sequence) != 3 || cfg.Showcase.Sequence[1] != 2 {
		t.Errorf("unexpected sequence: %v", cfg.Showcase.Sequence)
	}
	if cfg.Showcase.FaceDuration.Std() != 1500*time.Millisecond {
		t.Errorf("expected face duration 1.5s, got %v", cfg.Showcase.FaceDuration.Std())
	}
	if cfg.Showcase.Loop {
		t.Error("expected loop false")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "cubeview.yaml")

	cfg := Default()
	cfg.Cube.Images = []string{"a.png", "b.png"}
	cfg.Showcase.Sequence = []int{5, 3, 1}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	reloaded := Default()
	if err := loadFromFile(reloaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if len(reloaded.Cube.Images) != 2 || reloaded.Cube.Images[0] != "a.png" {
		t.Errorf("images did not round-trip: %v", reloaded.Cube.Images)
	}
	if len(reloaded.Showcase.Sequence) != 3 || reloaded.Showcase.Sequence[0] != 5 {
		t.Errorf("sequence did not round-trip: %v", reloaded.Showcase.Sequence)
	}
}
