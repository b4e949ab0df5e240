// Package renderer draws the textured image cube with OpenGL.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/internal/engine/shader"
	"github.com/Faultbox/cubeview/internal/engine/texture"
	"github.com/Faultbox/cubeview/internal/logger"
	"github.com/Faultbox/cubeview/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the cube mesh, the face textures and the camera. The
// camera is fixed on +Z looking at the origin; all apparent motion comes
// from the cube's orientation.
type Renderer struct {
	config Config

	program uint32
	locMVP  int32

	vao uint32
	vbo uint32
	ebo uint32

	// One texture slot per cube.Face; zero entries fall back to a flat
	// placeholder until the first image lands.
	faceTex  [6]uint32
	fallback uint32

	proj math.Mat4
	view math.Mat4
}

// CameraEye is where the fixed camera sits, looking at the origin. The
// matching view direction for visibility tests is +Z.
var CameraEye = math.Vec3{Z: 3.2}

// New creates a renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.08, 0.08, 0.12, 1.0)

	var err error
	r.program, err = shader.CompileProgram(cubeVertexShader, cubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.locMVP = shader.GetUniform(r.program, "uMVP")

	r.createCubeMesh()
	r.createFallbackTexture()

	r.view = math.LookAt(CameraEye, math.Vec3{}, math.Vec3{Y: 1})
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close releases all GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for i, tex := range r.faceTex {
		texture.Delete(tex)
		r.faceTex[i] = 0
	}
	texture.Delete(r.fallback)
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if height == 0 {
		height = 1
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.proj = math.Perspective(0.8, float32(width)/float32(height), 0.1, 100)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// SetFaceImage uploads pixels into a face's texture slot, creating the
// texture on first use.
func (r *Renderer) SetFaceImage(face int, img *image.RGBA) {
	if face < 0 || face >= len(r.faceTex) {
		logger.Warn("face image for invalid face", zap.Int("face", face))
		return
	}
	if r.faceTex[face] == 0 {
		r.faceTex[face] = texture.Upload(img)
		return
	}
	texture.Replace(r.faceTex[face], img)
}

// DrawCube draws the cube with the given orientation.
func (r *Renderer) DrawCube(orientation math.Quat) {
	model := orientation.ToMat4().Mul(math.Scale(1.4))
	mvp := r.proj.Mul(r.view).Mul(model)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMVP, 1, false, mvp.Ptr())
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)

	// One draw per face so each face binds its own texture. Face order in
	// the index buffer matches cube.Face identities.
	for face := 0; face < 6; face++ {
		tex := r.faceTex[face]
		if tex == 0 {
			tex = r.fallback
		}
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.DrawElementsWithOffset(gl.TRIANGLES, 6, gl.UNSIGNED_INT, uintptr(face*6*4))
	}
}

func (r *Renderer) createFallbackTexture() {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = 90, 90, 100, 255
	r.fallback = texture.Upload(img)
}

func (r *Renderer) createCubeMesh() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, unsafe.Pointer(&cubeVertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cubeIndices)*4, unsafe.Pointer(&cubeIndices[0]), gl.STATIC_DRAW)

	// position (3 floats) + uv (2 floats)
	stride := int32(5 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)
}

const cubeVertexShader = `
#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec2 aUV;

uniform mat4 uMVP;

out vec2 vUV;

void main() {
    vUV = aUV;
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

const cubeFragmentShader = `
#version 410 core
in vec2 vUV;

uniform sampler2D uTexture;

out vec4 fragColor;

void main() {
    fragColor = texture(uTexture, vUV);
}
`
