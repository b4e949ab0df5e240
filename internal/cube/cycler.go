package cube

import (
	"time"

	"go.uber.org/zap"
)

// TextureProvider supplies face images. RequestFaceImage is fire-and-forget:
// implementations must not block the tick, and a failed load leaves the
// face showing its previous texture.
type TextureProvider interface {
	RequestFaceImage(face Face, imageIndex int)
}

// ChangeCooldown is the minimum time between image advances on one face.
// It keeps quick back-and-forth rotation from machine-gunning one face
// through the image list.
const ChangeCooldown = 3 * time.Second

type faceState struct {
	imageIndex int
	lastChange time.Time
}

// Cycler advances each face's displayed image when the face rotates into
// view. The only natural trigger is a visibility rising edge; the showcase
// batches assignments instead via AdvanceAll.
type Cycler struct {
	log        *zap.Logger
	provider   TextureProvider
	imageCount int
	cooldown   time.Duration

	faces  [FaceCount]faceState
	prev   FaceSet
	seeded bool
	cycles uint64
}

// NewCycler creates a cycler for imageCount images. imageCount must be at
// least 1; the caller validates the image list before construction.
func NewCycler(provider TextureProvider, imageCount int, log *zap.Logger) *Cycler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cycler{
		log:        log,
		provider:   provider,
		imageCount: imageCount,
		cooldown:   ChangeCooldown,
	}
}

// Prime assigns each face its starting image and requests all six
// textures. Called once before the first tick.
func (c *Cycler) Prime() {
	for f := Face(0); f < FaceCount; f++ {
		c.faces[f].imageIndex = int(f) % c.imageCount
		c.provider.RequestFaceImage(f, c.faces[f].imageIndex)
	}
}

// Update reacts to this tick's visible set. The first call only seeds the
// previous set, so faces that start out camera-facing never fire. suppress
// disables the natural trigger while the showcase owns image assignment;
// visibility bookkeeping still runs so leaving showcase mode does not see
// stale edges.
func (c *Cycler) Update(visible FaceSet, now time.Time, suppress bool) {
	if !c.seeded {
		c.prev = visible
		c.seeded = true
		return
	}

	prev := c.prev
	c.prev = visible

	if suppress {
		return
	}

	for f := Face(0); f < FaceCount; f++ {
		if !visible.Contains(f) || prev.Contains(f) {
			continue
		}
		if now.Sub(c.faces[f].lastChange) < c.cooldown {
			continue
		}
		c.advance(f, now)
	}
}

// AdvanceAll advances every face's image and requests all six textures in
// one batch, ignoring the cooldown. The showcase calls this at the start
// of each lap so every image is already correct before its face rotates
// into view.
func (c *Cycler) AdvanceAll(now time.Time) {
	for f := Face(0); f < FaceCount; f++ {
		c.advance(f, now)
	}
}

func (c *Cycler) advance(f Face, now time.Time) {
	st := &c.faces[f]
	st.imageIndex = (st.imageIndex + 1) % c.imageCount
	st.lastChange = now
	c.cycles++
	c.log.Debug("face image advance",
		zap.Int("face", int(f)),
		zap.Int("imageIndex", st.imageIndex),
		zap.Uint64("cycles", c.cycles),
	)
	c.provider.RequestFaceImage(f, st.imageIndex)
}

// ImageIndex returns the image currently assigned to a face.
func (c *Cycler) ImageIndex(f Face) int {
	return c.faces[f].imageIndex
}

// Cycles returns the total number of image advances, for diagnostics.
func (c *Cycler) Cycles() uint64 {
	return c.cycles
}
