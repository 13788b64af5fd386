// Package game runs the windowed desk scene viewer.
package game

import (
	"time"

	"deskscene/internal/config"
	"deskscene/internal/input"
	"deskscene/internal/logger"
	"deskscene/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// slowFrame is the frame time past which the top profiled tasks are logged.
const slowFrame = 50 * time.Millisecond

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	session      *Session

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp creates the session and installs the window callbacks.
func NewApp(window *glfw.Window, im *input.InputManager, cfg *config.Config) (*App, error) {
	session, err := NewSession(window, cfg)
	if err != nil {
		return nil, err
	}

	a := &App{
		window:       window,
		inputManager: im,
		session:      session,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
	SetupInputHandlers(a)
	return a, nil
}

// Run loops until the window is asked to close, then releases the session.
func (a *App) Run() {
	defer a.session.Cleanup()
	for !a.window.ShouldClose() {
		a.tick()
	}
	logger.Info("Viewer closed")
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if a.session.Update(dt, a.inputManager) {
		a.window.SetShouldClose(true)
	}
	a.session.Render(dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if d := time.Since(startTick); d > slowFrame {
		logger.Debug("Slow frame", zap.Duration("duration", d), zap.String("top", profiling.TopN(5)))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait(a.session.Paused)
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	a.session.RefreshRender()
}
