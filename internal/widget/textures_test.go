package widget

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/cubeview/internal/assets"
	"github.com/Faultbox/cubeview/internal/cube"
	"github.com/Faultbox/cubeview/internal/engine/texture"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "face.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

// drainUntil polls apply until at least want images arrive or the
// deadline passes.
func drainUntil(l *textureLoader, want int, deadline time.Duration) []int {
	var got []int
	end := time.Now().Add(deadline)
	for len(got) < want && time.Now().Before(end) {
		l.apply(func(face int, img *image.RGBA) {
			got = append(got, face)
		})
		time.Sleep(5 * time.Millisecond)
	}
	return got
}

func TestLoaderDeliversCroppedImage(t *testing.T) {
	path := writeTestPNG(t, 40, 20)
	l := newTextureLoader(assets.NewManager(), texture.CropCover, 16, []string{path}, nil)

	l.RequestFaceImage(cube.FacePosZ, 0)

	var delivered *image.RGBA
	end := time.Now().Add(2 * time.Second)
	for delivered == nil && time.Now().Before(end) {
		l.apply(func(face int, img *image.RGBA) {
			if face != int(cube.FacePosZ) {
				t.Errorf("face = %d, want %d", face, cube.FacePosZ)
			}
			delivered = img
		})
		time.Sleep(5 * time.Millisecond)
	}
	if delivered == nil {
		t.Fatal("image never delivered")
	}
	if got := delivered.Bounds().Dx(); got != 16 {
		t.Errorf("width = %d, want 16", got)
	}
}

func TestLoaderDropsStaleGenerations(t *testing.T) {
	path := writeTestPNG(t, 8, 8)
	l := newTextureLoader(assets.NewManager(), texture.CropCover, 8, []string{path}, nil)

	l.RequestFaceImage(cube.FacePosX, 0)
	l.close()

	if got := drainUntil(l, 1, 500*time.Millisecond); len(got) != 0 {
		t.Errorf("delivered %d stale images, want 0", len(got))
	}
}

func TestLoaderRejectsBadIndex(t *testing.T) {
	l := newTextureLoader(assets.NewManager(), texture.CropCover, 8, []string{"a.png"}, nil)

	l.RequestFaceImage(cube.FacePosX, 3)
	l.RequestFaceImage(cube.FacePosX, -1)

	if got := drainUntil(l, 1, 200*time.Millisecond); len(got) != 0 {
		t.Errorf("delivered %d images for bad indices, want 0", len(got))
	}
}

func TestLoaderSkipsUndecodableData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	l := newTextureLoader(assets.NewManager(), texture.CropCover, 8, []string{path}, nil)

	l.RequestFaceImage(cube.FaceNegY, 0)

	if got := drainUntil(l, 1, 500*time.Millisecond); len(got) != 0 {
		t.Errorf("delivered %d images from junk data, want 0", len(got))
	}
}
