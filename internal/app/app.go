// Package app wires the window, renderer, input and scene state into
// the viewer's main loop.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/vertexpipe/internal/config"
	"github.com/Faultbox/vertexpipe/internal/engine/camera"
	"github.com/Faultbox/vertexpipe/internal/engine/debug"
	"github.com/Faultbox/vertexpipe/internal/engine/input"
	"github.com/Faultbox/vertexpipe/internal/engine/renderer"
	"github.com/Faultbox/vertexpipe/internal/engine/window"
	"github.com/Faultbox/vertexpipe/internal/logger"
	"github.com/Faultbox/vertexpipe/internal/scene"
)

// baseTitle is the window title prefix; the active space label is
// appended every frame.
const baseTitle = "Vertex Transformation Pipeline"

// App is the viewer application.
type App struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.Camera
	state    *scene.State
	capture  *debug.ScreenshotCapture
}

// New creates the application: window and GL context first, then the
// renderer, then input and scene state.
func New(cfg *config.Config) (*App, error) {
	slog.Info("initializing viewer",
		"width", cfg.Graphics.Width,
		"height", cfg.Graphics.Height,
		"start_space", cfg.Viewer.StartSpace,
	)

	a := &App{cfg: cfg}

	start, err := scene.ParseSpace(cfg.Viewer.StartSpace)
	if err != nil {
		slog.Warn("invalid start_space, using model space", "error", err)
		start = scene.ModelSpace
	}
	a.state = scene.NewState(start)

	a.window, err = window.New(window.Config{
		Title:      baseTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the drawable size, which can differ from the
	// requested window size on HiDPI displays.
	fbWidth, fbHeight := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:  fbWidth,
		Height: fbHeight,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.camera = camera.New()
	a.capture = debug.NewScreenshotCapture(cfg.Capture.ScreenshotDir, "vertexpipe")

	slog.Info("viewer initialized successfully")
	return a, nil
}

// Run executes the main loop until a close request.
func (a *App) Run() error {
	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	slog.Info("starting viewer loop")

	for !a.state.CloseRequested() {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			// Window close button
			a.state.RequestClose()
		}
		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				slog.Debug("window resized", "width", event.Width, "height", event.Height)
				// Resize against the drawable size, not the window
				// size, so HiDPI displays keep a full viewport.
				fbWidth, fbHeight := a.window.DrawableSize()
				a.renderer.Resize(fbWidth, fbHeight)
			case input.EventKeyDown:
				a.state.HandleKey(keyFor(event.Key), event.Repeat)
			}
		}
		if a.state.CloseRequested() {
			break
		}

		// 2. Recompute the frame's transforms
		elapsed := now.Sub(start).Seconds()
		model := scene.ModelMatrix(elapsed)
		view := a.camera.ViewMatrix()
		projection := a.camera.ProjectionMatrix(a.renderer.Aspect())

		// 3. Render
		a.renderer.Begin()
		a.renderer.DrawCube(model, view, projection, a.state.Active())

		if a.state.TakeCaptureRequest() {
			a.saveScreenshot()
		}

		// 4. Title tracks the active space every frame
		a.window.SetTitle(fmt.Sprintf("%s - %s", baseTitle, scene.TitleInfo(a.state.Active())))

		// 5. Present
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if a.cfg.Viewer.ShowFPS {
				slog.Info("fps", "count", frameCount)
			} else {
				slog.Debug("fps", "count", frameCount, "dt", fmt.Sprintf("%.2fms", dt*1000))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up application resources.
func (a *App) Close() {
	slog.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// saveScreenshot reads back the framebuffer and writes it as a PNG.
// Never fatal.
func (a *App) saveScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.capture.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// keyFor maps SDL scancodes to the viewer's keys. Everything else is
// a no-op.
func keyFor(code sdl.Scancode) scene.Key {
	switch code {
	case sdl.SCANCODE_1:
		return scene.KeyModel
	case sdl.SCANCODE_2:
		return scene.KeyWorld
	case sdl.SCANCODE_3:
		return scene.KeyView
	case sdl.SCANCODE_4:
		return scene.KeyClip
	case sdl.SCANCODE_ESCAPE:
		return scene.KeyQuit
	case sdl.SCANCODE_F12:
		return scene.KeyCapture
	}
	return scene.KeyNone
}
