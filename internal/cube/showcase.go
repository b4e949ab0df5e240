package cube

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/pkg/math"
)

// ShowcaseConfig scripts the autonomous face presentation.
type ShowcaseConfig struct {
	Sequence      []Face        // faces to present, in order
	FaceDuration  time.Duration // how long each face holds the camera
	Loop          bool          // restart from the first face after the last
	RotationSpeed float32       // slerp fraction per tick toward the target face
}

// Events are optional lifecycle callbacks. Nil entries are skipped.
type Events struct {
	Started   func()
	Stopped   func()
	Paused    func()
	Resumed   func()
	Completed func() // non-looping runs only, fired exactly once
}

func emit(fn func()) {
	if fn != nil {
		fn()
	}
}

type showcasePhase int

const (
	phaseIdle showcasePhase = iota
	phaseActive
	phasePaused
)

// Showcase rotates the cube through a scripted face sequence with
// delta-time accumulation, pause/resume, and optional looping. While it
// runs it owns the orientation target; image assignment happens in one
// batch per lap through the batch hook.
type Showcase struct {
	log    *zap.Logger
	cfg    ShowcaseConfig
	events Events
	batch  func(now time.Time) // lap image batch, typically Cycler.AdvanceAll

	phase       showcasePhase
	index       int
	accumulated time.Duration
	lastFrame   time.Time
	lapBatched  bool // one-shot: a lap's batch applies at most once
}

// NewShowcase creates an idle sequencer. batch may be nil.
func NewShowcase(cfg ShowcaseConfig, events Events, batch func(time.Time), log *zap.Logger) *Showcase {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.RotationSpeed <= 0 {
		cfg.RotationSpeed = 0.02
	}
	return &Showcase{
		log:    log,
		cfg:    cfg,
		events: events,
		batch:  batch,
	}
}

// Start validates the sequence and begins a run. Invalid configuration is
// rejected whole: the machine stays Idle and nothing is mutated.
func (s *Showcase) Start(now time.Time) error {
	if err := s.validate(); err != nil {
		s.log.Error("showcase start rejected", zap.Error(err))
		return err
	}
	if s.phase != phaseIdle {
		s.log.Warn("showcase already running")
		return nil
	}

	s.phase = phaseActive
	s.index = 0
	s.accumulated = 0
	s.lastFrame = now
	s.lapBatched = false

	s.log.Info("showcase started",
		zap.Int("faces", len(s.cfg.Sequence)),
		zap.Duration("faceDuration", s.cfg.FaceDuration),
		zap.Bool("loop", s.cfg.Loop),
	)
	emit(s.events.Started)
	return nil
}

// Stop ends the run and returns orientation control to drag/momentum. Run
// state is cleared so a later restart cannot read a stale time baseline.
func (s *Showcase) Stop() {
	if s.phase == phaseIdle {
		return
	}
	s.reset()
	s.log.Info("showcase stopped")
	emit(s.events.Stopped)
}

// Pause freezes time accumulation. No-op with a warning unless Active.
func (s *Showcase) Pause() {
	if s.phase != phaseActive {
		s.log.Warn("showcase pause ignored: not active")
		return
	}
	s.phase = phasePaused
	s.log.Info("showcase paused", zap.Int("index", s.index))
	emit(s.events.Paused)
}

// Resume continues a paused run. The delta-time clock is re-anchored to
// now, so the wall-clock gap spent paused is never counted as elapsed
// showcase time. No-op with a warning unless Paused.
func (s *Showcase) Resume(now time.Time) {
	if s.phase != phasePaused {
		s.log.Warn("showcase resume ignored: not paused")
		return
	}
	s.phase = phaseActive
	s.lastFrame = now
	s.log.Info("showcase resumed", zap.Int("index", s.index))
	emit(s.events.Resumed)
}

// Toggle stops a running showcase or starts an idle one.
func (s *Showcase) Toggle(now time.Time) {
	if s.phase == phaseIdle {
		_ = s.Start(now)
		return
	}
	s.Stop()
}

// Active reports whether a run is in progress (paused counts).
func (s *Showcase) Active() bool {
	return s.phase != phaseIdle
}

// Paused reports whether the run is frozen.
func (s *Showcase) Paused() bool {
	return s.phase == phasePaused
}

// Index returns the current position in the sequence.
func (s *Showcase) Index() int {
	return s.index
}

// RotationSpeed returns the configured per-tick slerp fraction.
func (s *Showcase) RotationSpeed() float32 {
	return s.cfg.RotationSpeed
}

// Update advances the sequencer one tick and reports the orientation that
// aims the current face at the camera. driving is false while Idle. While
// paused the target holds but time does not accumulate.
func (s *Showcase) Update(now time.Time, viewDir math.Vec3) (target math.Quat, driving bool) {
	switch s.phase {
	case phaseIdle:
		return math.QuatIdentity(), false

	case phasePaused:
		return s.targetFor(viewDir), true
	}

	delta := now.Sub(s.lastFrame)
	s.lastFrame = now
	s.accumulated += delta

	if s.accumulated > s.cfg.FaceDuration {
		s.accumulated = 0
		s.index++
		if s.index >= len(s.cfg.Sequence) {
			s.index = 0
			if !s.cfg.Loop {
				s.reset()
				s.log.Info("showcase completed")
				emit(s.events.Completed)
				return math.QuatIdentity(), false
			}
			// New lap: its batch has not been applied yet
			s.lapBatched = false
		}
	}

	if !s.lapBatched {
		s.lapBatched = true
		if s.batch != nil {
			s.batch(now)
		}
	}

	return s.targetFor(viewDir), true
}

func (s *Showcase) targetFor(viewDir math.Vec3) math.Quat {
	face := s.cfg.Sequence[s.index]
	return math.QuatBetween(Normals[face], viewDir)
}

func (s *Showcase) reset() {
	s.phase = phaseIdle
	s.index = 0
	s.accumulated = 0
	s.lastFrame = time.Time{}
	s.lapBatched = false
}

func (s *Showcase) validate() error {
	if len(s.cfg.Sequence) == 0 {
		return fmt.Errorf("showcase sequence is empty")
	}
	for i, f := range s.cfg.Sequence {
		if !f.Valid() {
			return fmt.Errorf("showcase sequence entry %d: invalid face %d", i, f)
		}
	}
	if s.cfg.FaceDuration <= 0 {
		return fmt.Errorf("showcase face duration must be positive, got %v", s.cfg.FaceDuration)
	}
	return nil
}
