package widget

import (
	"image"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/internal/assets"
	"github.com/Faultbox/cubeview/internal/cube"
	"github.com/Faultbox/cubeview/internal/engine/texture"
)

// facePixels is a finished face image, ready for GL upload on the main
// thread.
type facePixels struct {
	face       cube.Face
	generation uint64
	img        *image.RGBA
}

// textureLoader fetches, decodes and crops face images off the main
// thread. Every request carries the generation current at issue time;
// completions from an older generation are dropped, so a closed widget
// never uploads stale pixels.
type textureLoader struct {
	log      *zap.Logger
	assets   *assets.Manager
	strategy texture.CropStrategy
	size     int
	images   []string

	generation atomic.Uint64
	done       chan facePixels
}

func newTextureLoader(mgr *assets.Manager, strategy texture.CropStrategy, size int, images []string, log *zap.Logger) *textureLoader {
	if log == nil {
		log = zap.NewNop()
	}
	return &textureLoader{
		log:      log,
		assets:   mgr,
		strategy: strategy,
		size:     size,
		images:   images,
		done:     make(chan facePixels, 24),
	}
}

// RequestFaceImage implements cube.TextureProvider. The load runs on its
// own goroutine; the face keeps showing its previous texture until the
// replacement is applied.
func (l *textureLoader) RequestFaceImage(face cube.Face, imageIndex int) {
	if imageIndex < 0 || imageIndex >= len(l.images) {
		l.log.Warn("image index out of range",
			zap.Int("face", int(face)),
			zap.Int("index", imageIndex),
		)
		return
	}
	ref := l.images[imageIndex]
	gen := l.generation.Load()

	go func() {
		data, err := l.assets.Load(ref)
		if err != nil {
			l.log.Warn("face image load failed",
				zap.Int("face", int(face)),
				zap.String("ref", ref),
				zap.Error(err),
			)
			return
		}
		img, err := texture.Decode(data)
		if err != nil {
			l.log.Warn("face image decode failed",
				zap.Int("face", int(face)),
				zap.String("ref", ref),
				zap.Error(err),
			)
			return
		}
		square := texture.Square(img, l.strategy, l.size)

		select {
		case l.done <- facePixels{face: face, generation: gen, img: square}:
		default:
			l.log.Warn("face image dropped, upload queue full", zap.Int("face", int(face)))
		}
	}()
}

// apply drains finished images and hands current-generation ones to set.
// Must be called from the thread that owns the GL context.
func (l *textureLoader) apply(set func(face int, img *image.RGBA)) {
	for {
		select {
		case p := <-l.done:
			if p.generation != l.generation.Load() {
				continue
			}
			set(int(p.face), p.img)
		default:
			return
		}
	}
}

// close invalidates every in-flight request.
func (l *textureLoader) close() {
	l.generation.Add(1)
}
