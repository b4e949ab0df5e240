package cube

import (
	gomath "math"

	"github.com/Faultbox/cubeview/pkg/math"
)

// GestureSample is one tick's worth of pointer state: cumulative drag
// deltas in pixels since the drag started, and whether a drag is live.
type GestureSample struct {
	DragX    float32
	DragY    float32
	Dragging bool
}

// Drag rotation happens about fixed world axes so the cube always follows
// the pointer regardless of its current attitude: horizontal motion spins
// about world up, vertical motion about world right.
var (
	worldUp    = math.Vec3{Y: 1}
	worldRight = math.Vec3{X: 1}
)

// OrienterParams are the rotation feel tunables.
type OrienterParams struct {
	DragSensitivity float32 // degrees of rotation per pixel of drag
	Smoothing       float32 // slerp fraction toward the target per tick
	MomentumScale   float32 // fraction of release velocity carried as momentum
	MomentumDecay   float32 // per-tick momentum multiplier, < 1

	MinMovePx       float32 // below this per-tick drag delta the pointer is "held still"
	MinSpeedRad     float32 // minimum per-tick rotation to qualify for momentum
	MomentumStopRad float32 // momentum below this is treated as zero
}

// DefaultOrienterParams returns the stock rotation feel.
func DefaultOrienterParams() OrienterParams {
	return OrienterParams{
		DragSensitivity: 0.4,
		Smoothing:       0.08,
		MomentumScale:   0.12,
		MomentumDecay:   0.9,
		MinMovePx:       0.5,
		MinSpeedRad:     0.002,
		MomentumStopRad: 0.0005,
	}
}

// Orienter owns the cube's orientation and updates it each tick from one
// of three drivers: live drag, momentum decay, or a showcase override
// delivered through DriveTo.
type Orienter struct {
	params OrienterParams

	current math.Quat
	target  math.Quat

	momentum    math.Vec2 // residual per-tick rotation, radians per axis
	prevDrag    math.Vec2
	wasDragging bool
}

// NewOrienter creates an orienter at rest in the identity orientation.
func NewOrienter(params OrienterParams) *Orienter {
	return &Orienter{
		params:  params,
		current: math.QuatIdentity(),
		target:  math.QuatIdentity(),
	}
}

// Current returns the cube's displayed orientation.
func (o *Orienter) Current() math.Quat {
	return o.current
}

// Momentum returns the residual rotation rates, for diagnostics.
func (o *Orienter) Momentum() math.Vec2 {
	return o.momentum
}

// Update advances the orientation one tick from pointer state.
func (o *Orienter) Update(sample GestureSample) {
	drag := math.Vec2{X: sample.DragX, Y: sample.DragY}

	switch {
	case sample.Dragging:
		frame := drag.Sub(o.prevDrag)
		if !o.wasDragging {
			// First tick of a new drag: deltas restart from zero
			frame = drag
		}

		rot := frame.Scale(o.params.DragSensitivity * degToRad)
		o.target = worldRotation(rot).Mul(o.target).Normalize()

		// Momentum must come from genuine velocity: a flick that is then
		// held still before release carries none.
		if frame.Length() > o.params.MinMovePx && rot.Length() > o.params.MinSpeedRad {
			o.momentum = rot.Scale(o.params.MomentumScale)
		} else {
			o.momentum = math.Vec2{}
		}

	case o.wasDragging:
		// Release: hold exactly where the cube is now, no snap-back
		o.target = o.current

	case o.momentum.Length() > o.params.MomentumStopRad:
		o.current = worldRotation(o.momentum).Mul(o.current).Normalize()
		// Re-capture the target each tick so the cube holds its final
		// position once momentum dies
		o.target = o.current
		o.momentum = o.momentum.Scale(o.params.MomentumDecay)

	default:
		o.momentum = math.Vec2{}
	}

	o.prevDrag = drag
	o.wasDragging = sample.Dragging

	o.current = o.current.Slerp(o.target, o.params.Smoothing).Normalize()
}

// DriveTo slerps the orientation toward an externally chosen target and
// re-captures it, so leaving the external driver never causes a snap.
func (o *Orienter) DriveTo(target math.Quat, rate float32) {
	o.current = o.current.Slerp(target, rate).Normalize()
	o.target = o.current
	o.momentum = math.Vec2{}
}

// ObserveDrag records pointer state without applying it. Called while an
// external driver owns the orientation, so a drag spanning the handover
// does not replay its whole accumulated delta as one giant frame.
func (o *Orienter) ObserveDrag(sample GestureSample) {
	o.prevDrag = math.Vec2{X: sample.DragX, Y: sample.DragY}
	o.wasDragging = sample.Dragging
}

const degToRad = float32(gomath.Pi / 180)

// worldRotation composes the per-tick rotation for a screen-space delta,
// in radians: X about world up, Y about world right.
func worldRotation(rot math.Vec2) math.Quat {
	yaw := math.QuatFromAxisAngle(worldUp, rot.X)
	pitch := math.QuatFromAxisAngle(worldRight, rot.Y)
	return yaw.Mul(pitch)
}
