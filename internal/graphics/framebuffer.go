package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFramebuffer returns the RGBA pixels of the bound framebuffer.
// Rows are bottom to top, as GL stores them.
func ReadFramebuffer(width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
