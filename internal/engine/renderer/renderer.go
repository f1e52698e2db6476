// Package renderer provides OpenGL rendering for the pipeline viewer.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/vertexpipe/internal/engine/mesh"
	"github.com/Faultbox/vertexpipe/internal/engine/shader"
	"github.com/Faultbox/vertexpipe/internal/engine/shaders"
	"github.com/Faultbox/vertexpipe/internal/logger"
	"github.com/Faultbox/vertexpipe/internal/scene"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the GL state, the pipeline shader program and the cube
// mesh.
type Renderer struct {
	config Config

	program        uint32
	locModel       int32
	locView        int32
	locProjection  int32
	locActiveSpace int32

	cube *mesh.Mesh
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	// This is the viewer's second fatal path: without function
	// pointers nothing below can run.
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
	gl.ClearColor(0.1, 0.1, 0.1, 1.0) // Dark gray background
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	// A broken shader is not fatal for a teaching tool: log the
	// diagnostics and keep rendering with whatever program linked.
	program, err := shader.CompileProgram(shaders.PipelineVertexShader, shaders.PipelineFragmentShader)
	if err != nil {
		logger.Error("shader program has errors, continuing", zap.Error(err))
	}
	r.program = program
	r.locModel = shader.GetUniform(program, "model")
	r.locView = shader.GetUniform(program, "view")
	r.locProjection = shader.GetUniform(program, "projection")
	r.locActiveSpace = shader.GetUniform(program, "activeSpace")

	r.cube = mesh.Upload(mesh.CubeVertices, mesh.CubeIndices)
	logger.Debug("cube mesh uploaded",
		zap.Int("vertices", len(mesh.CubeVertices)/3),
		zap.Int("indices", len(mesh.CubeIndices)),
	)

	return r, nil
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.cube != nil {
		r.cube.Delete()
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize updates the viewport to the new framebuffer size. The full
// window stays renderable with the origin at (0,0).
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the current framebuffer aspect ratio.
func (r *Renderer) Aspect() float32 {
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin clears the color and depth buffers for a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawCube uploads the frame's transforms plus the active space and
// draws the cube.
func (r *Renderer) DrawCube(model, view, projection mgl32.Mat4, space scene.Space) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locModel, 1, false, &model[0])
	gl.UniformMatrix4fv(r.locView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.locProjection, 1, false, &projection[0])
	gl.Uniform1i(r.locActiveSpace, int32(space))
	r.cube.Draw()
}

// ReadPixels returns the back buffer as tightly packed RGBA rows,
// bottom row first, plus the current framebuffer dimensions.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
