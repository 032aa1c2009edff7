package scenestage

// TextureHandle identifies a texture object on the GPU. Zero is the
// "no texture" sentinel.
type TextureHandle uint32

// NoTexture is returned by lookups that found nothing.
const NoTexture TextureHandle = 0

// GPU is the texture side of the graphics driver as this layer needs it.
// All calls are synchronous and single-threaded; the driver call completes
// before the next statement runs.
type GPU interface {
	// CreateTexture uploads img as a 2D texture with repeat wrapping on
	// both axes, linear min/mag filtering and a generated mipmap chain.
	CreateTexture(img Image) (TextureHandle, error)
	// BindTextureUnit binds handle to the numbered texture unit.
	BindTextureUnit(unit int, handle TextureHandle)
	// DeleteTexture frees the texture object.
	DeleteTexture(handle TextureHandle)
}
