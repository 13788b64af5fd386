package scene

import (
	"deskscene/internal/camera"
	"deskscene/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Controls is the set of held inputs for one frame.
type Controls struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
	Perspective       bool
	Orthographic      bool
}

// FrameData is what a render pass needs from the camera.
type FrameData struct {
	View mgl32.Mat4
	Proj mgl32.Mat4
	Eye  mgl32.Vec3
}

// State owns the camera, projection and scene for one viewer or preview run.
type State struct {
	Camera     *camera.FlyCamera
	Projection *camera.Projection
	Scene      *Scene
}

// NewState builds the initial state from cfg.
func NewState(cfg *config.Config) *State {
	cam := camera.New(cfg.Camera.Position,
		camera.WithOrientation(cfg.Camera.Yaw, cfg.Camera.Pitch),
		camera.WithSpeed(cfg.Camera.MovementSpeed),
		camera.WithSensitivity(cfg.Camera.MouseSensitivity),
		camera.WithZoom(cfg.Camera.Zoom),
	)

	proj := camera.NewProjection(cfg.Window.Width, cfg.Window.Height)
	proj.NearPlane = cfg.Camera.Near
	proj.FarPlane = cfg.Camera.Far
	proj.OrthoHalfExtent = cfg.Camera.OrthoHalfExtent
	if cfg.Camera.Orthographic {
		proj.Mode = camera.Orthographic
	}

	return &State{
		Camera:     cam,
		Projection: proj,
		Scene:      New(cfg),
	}
}

// Frame returns the matrices for the current camera.
func (s *State) Frame() FrameData {
	return FrameData{
		View: s.Camera.ViewMatrix(),
		Proj: s.Projection.Matrix(s.Camera.Zoom),
		Eye:  s.Camera.Position,
	}
}

// Update applies one frame of held controls. It reports whether the projection mode changed.
// Orthographic wins when both projection keys are held.
func (s *State) Update(c Controls, dt float32) bool {
	moves := []struct {
		held bool
		dir  camera.Direction
	}{
		{c.Forward, camera.Forward},
		{c.Backward, camera.Backward},
		{c.Left, camera.Left},
		{c.Right, camera.Right},
		{c.Up, camera.Up},
		{c.Down, camera.Down},
	}
	for _, m := range moves {
		if m.held {
			s.Camera.ProcessKeyboard(m.dir, dt)
		}
	}

	before := s.Projection.Mode
	if c.Perspective {
		s.Projection.Mode = camera.Perspective
	}
	if c.Orthographic {
		s.Projection.Mode = camera.Orthographic
	}
	return s.Projection.Mode != before
}

// Look turns the camera by a cursor offset, keeping pitch clamped.
func (s *State) Look(xOffset, yOffset float32) {
	s.Camera.ProcessMouseMovement(xOffset, yOffset, true)
}

// Scroll changes the movement speed.
func (s *State) Scroll(yOffset float32) {
	s.Camera.ProcessMouseScroll(yOffset)
}

// Resize updates the projection aspect ratio.
func (s *State) Resize(width, height int) {
	s.Projection.SetViewport(width, height)
}
