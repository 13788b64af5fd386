package geometry

import "github.com/go-gl/mathgl/mgl32"

// Desk dimensions in world units
const (
	deskHalfWidth  = 1.525
	deskHalfDepth  = 1.0
	uprightWidth   = 0.125
	shelfThickness = 0.125

	FloorY         = -3.0
	FloorHalfSize  = 10.0
	legTopY        = -0.65
	frameTopY      = 1.775
	drawerHalfSize = 1.5
)

// shelf bottoms, bottom to top
var shelfYs = [3]float32{-0.65, 0.525, 1.65}

// DeskFrame returns the three shelves and the two side uprights.
func DeskFrame() Mesh {
	parts := make([]Mesh, 0, 5)
	for _, y := range shelfYs {
		parts = append(parts, Box(
			mgl32.Vec3{-deskHalfWidth, y, -deskHalfDepth},
			mgl32.Vec3{deskHalfWidth, y + shelfThickness, deskHalfDepth},
		))
	}
	outer := float32(deskHalfWidth + uprightWidth)
	parts = append(parts,
		Box(mgl32.Vec3{-outer, legTopY, -deskHalfDepth}, mgl32.Vec3{-deskHalfWidth, frameTopY, deskHalfDepth}),
		Box(mgl32.Vec3{deskHalfWidth, legTopY, -deskHalfDepth}, mgl32.Vec3{outer, frameTopY, deskHalfDepth}),
	)
	return Merge(parts...)
}

// Drawer returns the drawer block that sits on the bottom shelf.
func Drawer() Mesh {
	return Box(
		mgl32.Vec3{-drawerHalfSize, -0.5, -deskHalfDepth},
		mgl32.Vec3{drawerHalfSize, 0.5, deskHalfDepth},
	)
}

// Legs returns the two leg slabs from the floor up to the frame.
func Legs() Mesh {
	outer := float32(deskHalfWidth + uprightWidth)
	return Merge(
		Box(mgl32.Vec3{-outer, FloorY, -deskHalfDepth}, mgl32.Vec3{-deskHalfWidth, legTopY, deskHalfDepth}),
		Box(mgl32.Vec3{deskHalfWidth, FloorY, -deskHalfDepth}, mgl32.Vec3{outer, legTopY, deskHalfDepth}),
	)
}

// Floor returns the ground plane.
func Floor() Mesh {
	return Plane(FloorHalfSize, FloorY)
}

// LampPyramid returns the accent lamp marker mesh.
func LampPyramid() Mesh {
	return Pyramid(0.5, -0.5, 0.75)
}
