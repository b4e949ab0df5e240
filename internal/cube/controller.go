package cube

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/pkg/math"
)

// Params configures a Controller.
type Params struct {
	Orienter   OrienterParams
	Showcase   ShowcaseConfig
	Events     Events
	ViewDir    math.Vec3 // direction from the cube toward the camera
	ImageCount int
}

// Controller ties the per-tick pipeline together: one orientation driver
// per tick (showcase wins over drag and momentum), then visibility, then
// face cycling. All state is owned by one instance, so multiple cubes on
// one screen never interfere.
type Controller struct {
	orienter *Orienter
	cycler   *Cycler
	showcase *Showcase

	viewDir math.Vec3
	visible FaceSet
}

// NewController builds the core around a texture provider. log may be nil.
func NewController(params Params, provider TextureProvider, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	viewDir := params.ViewDir.Normalize()
	if viewDir == (math.Vec3{}) {
		viewDir = math.Vec3{Z: 1}
	}

	c := &Controller{
		orienter: NewOrienter(params.Orienter),
		cycler:   NewCycler(provider, params.ImageCount, log),
		viewDir:  viewDir,
	}
	c.showcase = NewShowcase(params.Showcase, params.Events, c.cycler.AdvanceAll, log)

	// Assign starting images and seed the previous visible set before the
	// first real tick, so initially camera-facing faces do not fire.
	c.cycler.Prime()
	c.visible = VisibleFaces(c.orienter.Current(), c.viewDir)
	c.cycler.Update(c.visible, time.Time{}, false)

	return c
}

// Tick runs one frame of the core pipeline. Ordering is fixed: orientation
// first, then visibility from the new orientation, then image cycling from
// the new visibility.
func (c *Controller) Tick(sample GestureSample, now time.Time) {
	target, driving := c.showcase.Update(now, c.viewDir)
	if driving {
		c.orienter.ObserveDrag(sample)
		c.orienter.DriveTo(target, c.showcase.RotationSpeed())
	} else {
		c.orienter.Update(sample)
	}

	c.visible = VisibleFaces(c.orienter.Current(), c.viewDir)

	// While the showcase is active and unpaused it pre-assigns images per
	// lap, so the natural rising-edge trigger stands down; the two writers
	// never touch the same face in one tick.
	suppress := c.showcase.Active() && !c.showcase.Paused()
	c.cycler.Update(c.visible, now, suppress)
}

// Orientation returns the cube's displayed orientation.
func (c *Controller) Orientation() math.Quat {
	return c.orienter.Current()
}

// Visible returns the faces currently turned toward the camera.
func (c *Controller) Visible() FaceSet {
	return c.visible
}

// ImageIndex returns the image currently assigned to a face.
func (c *Controller) ImageIndex(f Face) int {
	return c.cycler.ImageIndex(f)
}

// Cycles returns the total number of image advances.
func (c *Controller) Cycles() uint64 {
	return c.cycler.Cycles()
}

// StartShowcase begins the scripted presentation.
func (c *Controller) StartShowcase(now time.Time) error {
	return c.showcase.Start(now)
}

// StopShowcase returns control to drag and momentum.
func (c *Controller) StopShowcase() {
	c.showcase.Stop()
}

// ToggleShowcase starts or stops the presentation.
func (c *Controller) ToggleShowcase(now time.Time) {
	c.showcase.Toggle(now)
}

// PauseShowcase freezes the presentation.
func (c *Controller) PauseShowcase() {
	c.showcase.Pause()
}

// ResumeShowcase continues a paused presentation.
func (c *Controller) ResumeShowcase(now time.Time) {
	c.showcase.Resume(now)
}

// ShowcaseActive reports whether a showcase run is in progress.
func (c *Controller) ShowcaseActive() bool {
	return c.showcase.Active()
}

// ShowcasePaused reports whether the showcase is frozen.
func (c *Controller) ShowcasePaused() bool {
	return c.showcase.Paused()
}
