package scenestage

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaterialDescriptor is one tagged set of lighting response values.
type MaterialDescriptor struct {
	Tag           string
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
}

// MaterialRegistry is an append-only list of material descriptors,
// populated once at scene load and read-only afterwards. Duplicate tags
// are legal; lookup returns the first match, so later duplicates are
// permanently shadowed.
type MaterialRegistry struct {
	materials []MaterialDescriptor
}

// Register appends m. No uniqueness check.
func (r *MaterialRegistry) Register(m MaterialDescriptor) {
	r.materials = append(r.materials, m)
}

// Lookup scans in insertion order and returns the first descriptor whose
// tag matches. Use Count to tell an empty registry apart from a miss.
func (r *MaterialRegistry) Lookup(tag string) (MaterialDescriptor, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return MaterialDescriptor{}, false
}

// Count reports the number of registered descriptors, shadowed duplicates
// included.
func (r *MaterialRegistry) Count() int {
	return len(r.materials)
}
