// Package app implements the viewer's main loop.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/stillroom/deskscene/internal/config"
	"github.com/stillroom/deskscene/internal/engine/debug"
	"github.com/stillroom/deskscene/internal/engine/input"
	"github.com/stillroom/deskscene/internal/engine/shader"
	"github.com/stillroom/deskscene/internal/engine/window"
	"github.com/stillroom/deskscene/internal/logger"
	"github.com/stillroom/deskscene/internal/scene"
	"github.com/stillroom/deskscene/internal/scene/shaders"
	"github.com/stillroom/deskscene/internal/view"
)

// App owns the window, the scene, and the camera for one viewer run.
type App struct {
	config  *config.Config
	running bool

	window  *window.Window
	input   *input.Input
	program *shader.Program
	scene   *scene.Manager
	view    *view.Manager
	capture *debug.ScreenshotCapture
}

// New creates the window, GL context, shaders, and scene resources.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Desk Scene",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL function pointers need a live context
	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	gl.Enable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))

	a.program, err = shader.NewProgram(shaders.Vertex, shaders.Fragment)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to build scene shaders: %w", err)
	}
	a.program.Use()

	a.scene = scene.NewManager(a.program, cfg.Assets.TextureDir)
	a.scene.PrepareScene()

	a.view = view.NewManager(cfg.Graphics.Width, cfg.Graphics.Height)
	a.view.Camera.MovementSpeed = cfg.Camera.MoveSpeed
	a.view.Camera.MouseSensitivity = cfg.Camera.MouseSensitivity
	a.view.Camera.InvertY = cfg.Camera.InvertY

	a.input = input.New()
	a.capture = debug.NewScreenshotCapture(cfg.Assets.ScreenshotDir, "deskscene")

	a.window.CaptureMouse(true)

	return a, nil
}

// Run drives the frame loop until the user quits.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}

		for _, e := range a.input.Events() {
			switch e.Type {
			case input.EventWindowResize:
				gl.Viewport(0, 0, int32(e.Width), int32(e.Height))
			case input.EventKeyDown:
				if e.Key == sdl.SCANCODE_F12 {
					a.screenshot()
				}
			}
		}

		a.view.Update(a.input, dt)
		if a.view.QuitRequested() {
			a.running = false
			break
		}

		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Sugar.Debugf("fps: %d (%.2fms)", frameCount, float64(dt)*1000)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// render clears the frame and draws the scene with current camera state.
func (a *App) render() {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	a.program.Use()
	a.view.Apply(a.program)
	a.scene.RenderScene()
}

// screenshot grabs the back buffer and writes it as a PNG.
func (a *App) screenshot() {
	width, height := a.window.GetSize()
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := a.capture.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU and window resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.program != nil {
		a.program.Destroy()
	}
	if a.window != nil {
		a.window.Close()
	}
}
