package game

import (
	"time"

	"deskscene/internal/camera"
	"deskscene/internal/config"
	"deskscene/internal/graphics"
	"deskscene/internal/graphics/renderables/lamps"
	"deskscene/internal/graphics/renderables/objects"
	"deskscene/internal/graphics/renderer"
	"deskscene/internal/input"
	"deskscene/internal/logger"
	"deskscene/internal/profiling"
	"deskscene/internal/scene"
	"deskscene/internal/snapshot"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Session is one running view of the desk scene.
type Session struct {
	Window   *glfw.Window
	State    *scene.State
	Renderer *renderer.Renderer

	capture *snapshot.Capture
	mouse   camera.MouseTracker

	Paused            bool
	screenshotPending bool
	Frames            int
	LastFPSCheckTime  time.Time
}

// NewSession uploads the scene and sizes the viewport to the window.
func NewSession(window *glfw.Window, cfg *config.Config) (*Session, error) {
	state := scene.NewState(cfg)

	r, err := renderer.NewRenderer(state,
		objects.NewObjects(state.Scene, cfg.Scene.TextureSize, cfg.Scene.MaxTextureSize),
		lamps.NewLamps(state.Scene),
	)
	if err != nil {
		return nil, err
	}

	fbW, fbH := window.GetFramebufferSize()
	r.UpdateViewport(fbW, fbH)

	logger.Info("Scene ready",
		zap.Int("objects", len(state.Scene.Objects)),
		zap.Int("lamps", len(state.Scene.Lamps)),
		zap.Stringer("projection", state.Projection.Mode))

	return &Session{
		Window:           window,
		State:            state,
		Renderer:         r,
		capture:          snapshot.NewCapture(cfg.Screenshots.Dir, "deskscene"),
		LastFPSCheckTime: time.Now(),
	}, nil
}

// Cleanup releases GPU resources.
func (s *Session) Cleanup() {
	if s.Renderer != nil {
		s.Renderer.Dispose()
		s.Renderer = nil
	}
}

// Update applies one frame of input. It reports whether the viewer should close.
func (s *Session) Update(dt float64, im *input.InputManager) bool {
	if im.JustPressed(input.ActionQuit) {
		return true
	}
	if im.JustPressed(input.ActionScreenshot) {
		s.screenshotPending = true
	}
	logMouseButtons(im)
	if s.Paused {
		return false
	}

	defer profiling.Track("session.Update")()
	if s.State.Update(controlsFrom(im), float32(dt)) {
		logger.Debug("Projection changed", zap.Stringer("mode", s.State.Projection.Mode))
	}
	return false
}

var mouseActions = [...]input.Action{input.ActionMouseLeft, input.ActionMouseRight, input.ActionMouseMiddle}

// logMouseButtons reports this frame's mouse button edges.
func logMouseButtons(im *input.InputManager) {
	for _, a := range mouseActions {
		if im.JustPressed(a) {
			logger.Info("Mouse button pressed", zap.Stringer("action", a))
		}
		if im.JustReleased(a) {
			logger.Info("Mouse button released", zap.Stringer("action", a))
		}
	}
}

// controlsFrom maps held actions to scene controls.
func controlsFrom(im *input.InputManager) scene.Controls {
	return scene.Controls{
		Forward:      im.IsActive(input.ActionMoveForward),
		Backward:     im.IsActive(input.ActionMoveBackward),
		Left:         im.IsActive(input.ActionMoveLeft),
		Right:        im.IsActive(input.ActionMoveRight),
		Up:           im.IsActive(input.ActionMoveUp),
		Down:         im.IsActive(input.ActionMoveDown),
		Perspective:  im.IsActive(input.ActionPerspective),
		Orthographic: im.IsActive(input.ActionOrthographic),
	}
}

// Render draws the frame and writes a pending screenshot before the buffers swap.
func (s *Session) Render(dt float64) time.Duration {
	start := time.Now()
	s.Renderer.Render(dt)
	if s.screenshotPending {
		s.screenshotPending = false
		s.saveScreenshot()
	}
	renderDur := time.Since(start)

	s.Frames++
	if time.Since(s.LastFPSCheckTime) >= time.Second {
		logger.Debug("FPS", zap.Int("fps", s.Frames), zap.Float32("speed", s.State.Camera.MovementSpeed))
		s.Frames = 0
		s.LastFPSCheckTime = time.Now()
	}

	return renderDur
}

func (s *Session) saveScreenshot() {
	defer profiling.Track("session.Screenshot")()
	w, h := s.Window.GetFramebufferSize()
	path, err := s.capture.FromPixels(graphics.ReadFramebuffer(w, h), w, h)
	if err != nil {
		logger.Error("Screenshot failed", zap.Error(err))
		return
	}
	logger.Info("Screenshot saved", zap.String("path", path))
}

// Look turns the camera from an absolute cursor position.
func (s *Session) Look(xpos, ypos float64) {
	dx, dy := s.mouse.Offset(xpos, ypos)
	s.State.Look(dx, dy)
}

// SetPaused releases or captures the cursor.
func (s *Session) SetPaused(paused bool) {
	if s.Paused == paused {
		return
	}
	s.Paused = paused
	if s.Paused {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		w, h := s.Window.GetSize()
		s.Window.SetCursorPos(float64(w)/2, float64(h)/2)
	} else {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		s.mouse.Reset()
	}
	logger.Debug("Pause state changed", zap.Bool("paused", paused))
}

// RefreshRender repaints during live resizes.
func (s *Session) RefreshRender() {
	s.Renderer.Render(0)
	s.Window.SwapBuffers()
}
