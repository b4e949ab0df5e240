package cube

import (
	"testing"
	"time"

	cmath "github.com/Faultbox/cubeview/pkg/math"
)

func TestStartRejectsInvalidSequences(t *testing.T) {
	base := time.Now()

	tests := []struct {
		name     string
		sequence []Face
	}{
		{"empty", nil},
		{"face id 6", []Face{0, 6}},
		{"negative face id", []Face{-1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShowcase(ShowcaseConfig{
				Sequence:     tt.sequence,
				FaceDuration: time.Second,
			}, Events{}, nil, nil)

			if err := s.Start(base); err == nil {
				t.Fatal("Start should reject the sequence")
			}
			if s.Active() {
				t.Error("machine should stay idle after rejected start")
			}
			if _, driving := s.Update(base.Add(16*time.Millisecond), cmath.Vec3{Z: 1}); driving {
				t.Error("rejected showcase must not drive orientation")
			}
		})
	}
}

func TestPauseResumeIgnoresWallClockGap(t *testing.T) {
	base := time.Now()
	view := cmath.Vec3{Z: 1}

	s := NewShowcase(ShowcaseConfig{
		Sequence:     []Face{FacePosX, FacePosY, FacePosZ},
		FaceDuration: time.Second,
		Loop:         true,
	}, Events{}, nil, nil)

	if err := s.Start(base); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Run 500ms into the first face
	now := base
	for i := 0; i < 31; i++ {
		now = now.Add(16 * time.Millisecond)
		s.Update(now, view)
	}
	if s.Index() != 0 {
		t.Fatalf("expected index 0 at 500ms, got %d", s.Index())
	}

	s.Pause()
	if !s.Paused() {
		t.Fatal("expected paused state")
	}

	// Paused ticks accumulate nothing, even across a huge gap
	now = now.Add(time.Hour)
	s.Update(now, view)
	s.Update(now.Add(16*time.Millisecond), view)

	s.Resume(now.Add(32 * time.Millisecond))

	// The first ticks after resume must not see the hour as elapsed time
	s.Update(now.Add(48*time.Millisecond), view)
	if s.Index() != 0 {
		t.Errorf("resume after gap caused a face advance: index %d", s.Index())
	}

	// The remaining ~500ms still has to pass before the advance
	after := now.Add(48 * time.Millisecond)
	for i := 0; i < 29; i++ {
		after = after.Add(16 * time.Millisecond)
		s.Update(after, view)
	}
	if s.Index() != 0 {
		t.Errorf("advance arrived early: index %d", s.Index())
	}
	for i := 0; i < 6; i++ {
		after = after.Add(16 * time.Millisecond)
		s.Update(after, view)
	}
	if s.Index() != 1 {
		t.Errorf("advance should land once the face duration elapses, index %d", s.Index())
	}
}

func TestPauseResumeStateGuards(t *testing.T) {
	base := time.Now()
	s := NewShowcase(ShowcaseConfig{
		Sequence:     []Face{FacePosZ},
		FaceDuration: time.Second,
	}, Events{}, nil, nil)

	// Not active: both are warned no-ops
	s.Pause()
	if s.Paused() {
		t.Error("pause while idle should be ignored")
	}
	s.Resume(base)
	if s.Active() {
		t.Error("resume while idle should be ignored")
	}

	if err := s.Start(base); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Resume(base) // active but not paused
	if s.Paused() {
		t.Error("resume while active should be ignored")
	}
}

func TestCompletionWithoutLoop(t *testing.T) {
	base := time.Now()
	view := cmath.Vec3{Z: 1}

	completed := 0
	stopped := 0
	s := NewShowcase(ShowcaseConfig{
		Sequence:     []Face{FacePosX, FacePosY, FacePosZ},
		FaceDuration: 100 * time.Millisecond,
		Loop:         false,
	}, Events{
		Completed: func() { completed++ },
		Stopped:   func() { stopped++ },
	}, nil, nil)

	if err := s.Start(base); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	now := base
	for i := 0; i < 40; i++ { // 640ms, past the 3rd face's duration
		now = now.Add(16 * time.Millisecond)
		s.Update(now, view)
	}

	if s.Active() {
		t.Error("non-looping showcase should end in idle")
	}
	if completed != 1 {
		t.Errorf("expected exactly one completion event, got %d", completed)
	}
	if stopped != 0 {
		t.Errorf("completion must not emit a stop event, got %d", stopped)
	}
}

func TestLoopNeverCompletes(t *testing.T) {
	base := time.Now()
	view := cmath.Vec3{Z: 1}

	completed := 0
	s := NewShowcase(ShowcaseConfig{
		Sequence:     []Face{FacePosX, FacePosY, FacePosZ},
		FaceDuration: 100 * time.Millisecond,
		Loop:         true,
	}, Events{Completed: func() { completed++ }}, nil, nil)

	if err := s.Start(base); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	now := base
	for i := 0; i < 100; i++ { // 1.6s, several laps
		now = now.Add(16 * time.Millisecond)
		s.Update(now, view)
	}

	if !s.Active() {
		t.Error("looping showcase should keep running")
	}
	if completed != 0 {
		t.Errorf("looping showcase emitted %d completion events", completed)
	}
}

func TestLapTimingDriftFree(t *testing.T) {
	// sequence=[0,2,4], faceDuration=1000ms, loop=true; after 3100ms of
	// 16ms ticks the run is one full lap in, back on index 0.
	base := time.Now()
	view := cmath.Vec3{Z: 1}

	s := NewShowcase(ShowcaseConfig{
		Sequence:     []Face{FacePosX, FacePosY, FacePosZ},
		FaceDuration: time.Second,
		Loop:         true,
	}, Events{}, nil, nil)

	if err := s.Start(base); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	now := base
	for elapsed := time.Duration(0); elapsed < 3100*time.Millisecond; elapsed += 16 * time.Millisecond {
		now = now.Add(16 * time.Millisecond)
		s.Update(now, view)
	}

	if s.Index() != 0 {
		t.Errorf("after 3100ms expected index 0 (one lap + ~100ms), got %d", s.Index())
	}
}

func TestLapBatchAppliesOnce(t *testing.T) {
	base := time.Now()
	view := cmath.Vec3{Z: 1}

	batches := 0
	s := NewShowcase(ShowcaseConfig{
		Sequence:     []Face{FacePosX, FacePosY},
		FaceDuration: 100 * time.Millisecond,
		Loop:         true,
	}, Events{}, func(time.Time) { batches++ }, nil)

	if err := s.Start(base); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	now := base
	for i := 0; i < 16; i++ { // 256ms: lap 0 plus the wrap into lap 1
		now = now.Add(16 * time.Millisecond)
		s.Update(now, view)
	}

	if batches != 2 {
		t.Errorf("expected one batch per lap (2 laps), got %d", batches)
	}
}

func TestUpdateAimsCurrentFaceAtCamera(t *testing.T) {
	base := time.Now()
	view := cmath.Vec3{Z: 1}

	s := NewShowcase(ShowcaseConfig{
		Sequence:     []Face{FaceNegY},
		FaceDuration: time.Minute,
		Loop:         true,
	}, Events{}, nil, nil)

	if err := s.Start(base); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	target, driving := s.Update(base.Add(16*time.Millisecond), view)
	if !driving {
		t.Fatal("active showcase should drive orientation")
	}

	rotated := target.RotateVec3(Normals[FaceNegY])
	if rotated.Sub(view).Length() > 0.001 {
		t.Errorf("target should aim -Y at the camera, rotated normal = %+v", rotated)
	}
}

func TestStopResetsRunState(t *testing.T) {
	base := time.Now()
	view := cmath.Vec3{Z: 1}

	s := NewShowcase(ShowcaseConfig{
		Sequence:     []Face{FacePosX, FacePosY},
		FaceDuration: 100 * time.Millisecond,
		Loop:         true,
	}, Events{}, nil, nil)

	if err := s.Start(base); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	now := base
	for i := 0; i < 10; i++ {
		now = now.Add(16 * time.Millisecond)
		s.Update(now, view)
	}
	s.Stop()
	if s.Active() {
		t.Fatal("expected idle after stop")
	}

	// Restart much later: the old baseline must not register as elapsed
	later := now.Add(time.Hour)
	if err := s.Start(later); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	s.Update(later.Add(16*time.Millisecond), view)
	if s.Index() != 0 {
		t.Errorf("stale baseline advanced the restarted run to index %d", s.Index())
	}
}
