// Package widget assembles the image cube: window, renderer, input,
// asset loading and the cube core, driven by one main-thread loop.
package widget

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/internal/assets"
	"github.com/Faultbox/cubeview/internal/config"
	"github.com/Faultbox/cubeview/internal/cube"
	"github.com/Faultbox/cubeview/internal/engine/input"
	"github.com/Faultbox/cubeview/internal/engine/renderer"
	"github.com/Faultbox/cubeview/internal/engine/texture"
	"github.com/Faultbox/cubeview/internal/engine/window"
	"github.com/Faultbox/cubeview/internal/logger"
)

// Widget is one on-screen image cube with its own window.
type Widget struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	loader   *textureLoader
	core     *cube.Controller
	running  bool
}

// New creates the widget. The window and the GL context come up here;
// face images start loading in the background immediately.
func New(cfg *config.Config) (*Widget, error) {
	if len(cfg.Cube.Images) == 0 {
		return nil, fmt.Errorf("no images configured")
	}
	strategy, err := texture.ParseStrategy(cfg.Cube.Crop.Strategy)
	if err != nil {
		return nil, fmt.Errorf("invalid crop config: %w", err)
	}

	logger.Info("initializing widget",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("images", len(cfg.Cube.Images)),
	)

	w := &Widget{cfg: cfg}

	w.window, err = window.New(window.Config{
		Title:      "cubeview",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	w.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		w.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	w.input = input.New()
	w.loader = newTextureLoader(assets.NewManager(), strategy, cfg.Cube.Crop.Size, cfg.Cube.Images, logger.Log)

	orienter := cube.DefaultOrienterParams()
	orienter.DragSensitivity = cfg.Cube.DragSensitivity
	orienter.Smoothing = cfg.Cube.Smoothing
	orienter.MomentumScale = cfg.Cube.MomentumScale
	orienter.MomentumDecay = cfg.Cube.MomentumDecay

	w.core = cube.NewController(cube.Params{
		Orienter:   orienter,
		Showcase:   showcaseConfig(cfg.Showcase),
		Events:     showcaseEvents(),
		ViewDir:    renderer.CameraEye.Normalize(),
		ImageCount: len(cfg.Cube.Images),
	}, w.loader, logger.Log)

	logger.Info("widget initialized")
	return w, nil
}

// Run drives the main loop until the window closes or Escape is pressed.
// Space toggles the showcase, P pauses and resumes it.
func (w *Widget) Run() error {
	w.running = true

	if w.cfg.Showcase.Enabled && w.cfg.Showcase.AutoStart {
		if err := w.core.StartShowcase(time.Now()); err != nil {
			logger.Warn("showcase autostart failed", zap.Error(err))
		}
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting widget loop")

	for w.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if w.input.Update() {
			w.running = false
			break
		}
		for _, event := range w.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				w.renderer.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				w.handleKey(event.Key, now)
			}
		}

		dragX, dragY, dragging := w.input.Drag()
		w.core.Tick(cube.GestureSample{
			DragX:    dragX,
			DragY:    dragY,
			Dragging: dragging,
		}, now)

		// Finished background loads upload here, on the GL thread.
		w.loader.apply(w.renderer.SetFaceImage)

		w.renderer.Begin()
		w.renderer.DrawCube(w.core.Orientation())
		w.renderer.End()
		w.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			yaw, pitch, roll := w.core.Orientation().ToEuler()
			logger.Debug("frame stats",
				zap.Int("fps", frameCount),
				zap.Float64("dt_ms", dt*1000),
				zap.Float32("yaw", yaw),
				zap.Float32("pitch", pitch),
				zap.Float32("roll", roll),
				zap.Uint64("cycles", w.core.Cycles()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (w *Widget) handleKey(key sdl.Scancode, now time.Time) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		w.running = false
	case sdl.SCANCODE_SPACE:
		if w.cfg.Showcase.Enabled {
			w.core.ToggleShowcase(now)
		}
	case sdl.SCANCODE_P:
		if !w.cfg.Showcase.Enabled {
			return
		}
		if w.core.ShowcasePaused() {
			w.core.ResumeShowcase(now)
		} else if w.core.ShowcaseActive() {
			w.core.PauseShowcase()
		}
	}
}

// StartShowcase begins the scripted presentation.
func (w *Widget) StartShowcase() error {
	return w.core.StartShowcase(time.Now())
}

// StopShowcase returns control to drag and momentum.
func (w *Widget) StopShowcase() {
	w.core.StopShowcase()
}

// ToggleShowcase starts or stops the presentation.
func (w *Widget) ToggleShowcase() {
	w.core.ToggleShowcase(time.Now())
}

// PauseShowcase freezes the presentation.
func (w *Widget) PauseShowcase() {
	w.core.PauseShowcase()
}

// ResumeShowcase continues a paused presentation.
func (w *Widget) ResumeShowcase() {
	w.core.ResumeShowcase(time.Now())
}

// ShowcaseActive reports whether a showcase run is in progress.
func (w *Widget) ShowcaseActive() bool {
	return w.core.ShowcaseActive()
}

// ShowcasePaused reports whether the showcase is frozen.
func (w *Widget) ShowcasePaused() bool {
	return w.core.ShowcasePaused()
}

// Close releases the GL resources and the window, and invalidates any
// in-flight image loads.
func (w *Widget) Close() {
	logger.Info("closing widget")
	w.loader.close()
	if w.renderer != nil {
		w.renderer.Close()
	}
	if w.window != nil {
		w.window.Close()
	}
}

func showcaseConfig(cfg config.ShowcaseConfig) cube.ShowcaseConfig {
	seq := make([]cube.Face, len(cfg.Sequence))
	for i, f := range cfg.Sequence {
		seq[i] = cube.Face(f)
	}
	return cube.ShowcaseConfig{
		Sequence:      seq,
		FaceDuration:  cfg.FaceDuration.Std(),
		Loop:          cfg.Loop,
		RotationSpeed: cfg.RotationSpeed,
	}
}

func showcaseEvents() cube.Events {
	return cube.Events{
		Started:   func() { logger.Info("showcase started") },
		Stopped:   func() { logger.Info("showcase stopped") },
		Paused:    func() { logger.Info("showcase paused") },
		Resumed:   func() { logger.Info("showcase resumed") },
		Completed: func() { logger.Info("showcase completed") },
	}
}
