package game

import (
	"deskscene/internal/logger"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !app.session.Paused {
			app.session.Look(xpos, ypos)
		}
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)

		if action == glfw.Press && button == glfw.MouseButtonLeft && app.session.Paused {
			app.session.SetPaused(false)
		}
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		if app.session.Paused {
			return
		}
		app.session.State.Scroll(float32(yoff))
		logger.Debug("Movement speed changed", zap.Float32("speed", app.session.State.Camera.MovementSpeed))
	})

	im.SetKeyCallback(window)

	// Viewport and projection follow the framebuffer, which differs from the window size on HiDPI screens
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		app.session.Renderer.UpdateViewport(fbWidth, fbHeight)
	})

	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			app.session.SetPaused(true)
		}
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
