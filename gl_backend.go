package scenestage

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLBackend implements GPU on an OpenGL 4.1 core context. The context
// must be current on the calling thread; all calls are synchronous.
type GLBackend struct{}

func (GLBackend) CreateTexture(img Image) (TextureHandle, error) {
	if len(img.Pix) < img.Width*img.Height*4 {
		return NoTexture, fmt.Errorf("texture pixel data truncated: %dx%d, %d bytes", img.Width, img.Height, len(img.Pix))
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Pix is normalized RGBA8; opaque sources still get an alpha-less
	// internal format.
	internal := int32(gl.RGBA8)
	if img.Channels == 3 {
		internal = gl.RGB8
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal,
		int32(img.Width), int32(img.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return TextureHandle(id), nil
}

func (GLBackend) BindTextureUnit(unit int, handle TextureHandle) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(handle))
}

func (GLBackend) DeleteTexture(handle TextureHandle) {
	id := uint32(handle)
	gl.DeleteTextures(1, &id)
}
