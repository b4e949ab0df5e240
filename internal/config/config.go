// Package config handles widget configuration loading and management.
package config

import "time"

// Config holds all cubeview settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Cube     CubeConfig     `yaml:"cube"`
	Showcase ShowcaseConfig `yaml:"showcase"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CropConfig describes how source images are cut into square face textures.
type CropConfig struct {
	Strategy string `yaml:"strategy"` // cover, contain or fill
	Size     int    `yaml:"size"`     // texture edge length in pixels
}

// CubeConfig holds the image list and rotation feel tunables.
type CubeConfig struct {
	Images []string   `yaml:"images"` // file paths or http(s) URLs
	Crop   CropConfig `yaml:"crop"`

	DragSensitivity float32 `yaml:"drag_sensitivity"` // degrees per pixel of drag
	Smoothing       float32 `yaml:"smoothing"`        // slerp fraction per tick
	MomentumScale   float32 `yaml:"momentum_scale"`   // fraction of release velocity kept
	MomentumDecay   float32 `yaml:"momentum_decay"`   // per-tick momentum multiplier
}

// ShowcaseConfig describes the scripted face presentation.
type ShowcaseConfig struct {
	Enabled       bool     `yaml:"enabled"`
	Sequence      []int    `yaml:"sequence"` // face ids 0..5, in presentation order
	FaceDuration  Duration `yaml:"face_duration"`
	AutoStart     bool     `yaml:"auto_start"`
	Loop          bool     `yaml:"loop"`
	RotationSpeed float32  `yaml:"rotation_speed"` // slerp fraction per tick
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
		},
		Cube: CubeConfig{
			Images: nil,
			Crop: CropConfig{
				Strategy: "cover",
				Size:     512,
			},
			DragSensitivity: 0.4,
			Smoothing:       0.08,
			MomentumScale:   0.12,
			MomentumDecay:   0.9,
		},
		Showcase: ShowcaseConfig{
			Enabled:       false,
			Sequence:      []int{0, 1, 2, 3, 4, 5},
			FaceDuration:  Duration(2 * time.Second),
			AutoStart:     false,
			Loop:          true,
			RotationSpeed: 0.02,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
