package scenestage

import (
	"errors"
	"fmt"
)

// MaxTextureSlots is the number of texture units the shader contract
// assumes; the registry never grows past it.
const MaxTextureSlots = 16

// NoSlot is the FindSlot sentinel for a tag that was never loaded.
const NoSlot = -1

var (
	// ErrTextureCapacity is returned by Load once all slots are occupied.
	ErrTextureCapacity = errors.New("texture registry full")
	// ErrUnsupportedChannels is returned by Load for images that are
	// neither 3-channel (opaque) nor 4-channel (with transparency).
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	// ErrDuplicateTag is returned by Load when the tag is already taken.
	ErrDuplicateTag = errors.New("texture tag already registered")
)

type textureSlot struct {
	tag    string
	handle TextureHandle
}

// TextureRegistry owns the scene's GPU textures: a bounded, ordered table
// of (tag, handle) pairs. A slot's index in the table is also the texture
// unit it is bound to by BindAll. Populated once at scene load, read-only
// during rendering, released in bulk at teardown.
type TextureRegistry struct {
	gpu     GPU
	decoder ImageDecoder
	log     Logger
	slots   []textureSlot
}

// NewTextureRegistry builds an empty registry. A nil log is replaced with
// a no-op logger.
func NewTextureRegistry(gpu GPU, decoder ImageDecoder, log Logger) *TextureRegistry {
	if log == nil {
		log = NewNopLogger()
	}
	return &TextureRegistry{
		gpu:     gpu,
		decoder: decoder,
		log:     log,
		slots:   make([]textureSlot, 0, MaxTextureSlots),
	}
}

// Load decodes the image at path, uploads it to the GPU and registers the
// resulting texture under tag at the next free slot. Only 3- and 4-channel
// images are accepted. Failures leave the registry unchanged.
func (r *TextureRegistry) Load(path, tag string) error {
	if len(r.slots) >= MaxTextureSlots {
		return fmt.Errorf("load texture %q: %w", tag, ErrTextureCapacity)
	}
	if r.FindSlot(tag) != NoSlot {
		return fmt.Errorf("load texture %q: %w", tag, ErrDuplicateTag)
	}

	img, err := r.decoder.Decode(path)
	if err != nil {
		r.log.Errorf("could not load image %q: %v", path, err)
		return fmt.Errorf("load texture %q: %w", tag, err)
	}
	if img.Channels != 3 && img.Channels != 4 {
		r.log.Errorf("image %q has %d channels, want 3 or 4", path, img.Channels)
		return fmt.Errorf("load texture %q (%d channels): %w", tag, img.Channels, ErrUnsupportedChannels)
	}

	handle, err := r.gpu.CreateTexture(img)
	if err != nil {
		return fmt.Errorf("upload texture %q: %w", tag, err)
	}

	r.slots = append(r.slots, textureSlot{tag: tag, handle: handle})
	r.log.Infof("loaded image %q: %dx%d, %d channels, slot %d",
		path, img.Width, img.Height, img.Channels, len(r.slots)-1)
	return nil
}

// BindAll binds slot i's texture to texture unit i for every occupied
// slot. Call once after all loads and before the first draw that samples
// a texture.
func (r *TextureRegistry) BindAll() {
	for i, slot := range r.slots {
		r.gpu.BindTextureUnit(i, slot.handle)
	}
}

// FindSlot returns the slot (and texture unit) index of the first texture
// registered under tag, or NoSlot. A miss is not an error; callers render
// untextured.
func (r *TextureRegistry) FindSlot(tag string) int {
	for i, slot := range r.slots {
		if slot.tag == tag {
			return i
		}
	}
	return NoSlot
}

// FindHandle returns the GPU handle of the first texture registered under
// tag, or NoTexture.
func (r *TextureRegistry) FindHandle(tag string) TextureHandle {
	for _, slot := range r.slots {
		if slot.tag == tag {
			return slot.handle
		}
	}
	return NoTexture
}

// Count reports the number of occupied slots.
func (r *TextureRegistry) Count() int {
	return len(r.slots)
}

// ReleaseAll frees every GPU texture and empties the table. Scene
// teardown only.
func (r *TextureRegistry) ReleaseAll() {
	for _, slot := range r.slots {
		r.gpu.DeleteTexture(slot.handle)
	}
	r.slots = r.slots[:0]
}
