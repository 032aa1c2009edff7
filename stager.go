package scenestage

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderStateStager stages per-draw uniform values into the shader's
// property bag right before each draw call.
//
// Staged state is sticky: a field not written by the current draw keeps
// whatever the previous draw left there, mirroring a fixed-function
// pipeline. Callers stage ApplyTransform for every object and then only
// the color/texture/material/UV values that differ from the previous
// object. Nothing here resets state between draws.
type ShaderStateStager struct {
	uniforms  Uniforms
	textures  *TextureRegistry
	materials *MaterialRegistry
}

func NewShaderStateStager(u Uniforms, textures *TextureRegistry, materials *MaterialRegistry) *ShaderStateStager {
	return &ShaderStateStager{
		uniforms:  u,
		textures:  textures,
		materials: materials,
	}
}

// ApplyTransform stages the model and normal matrices. Required before
// every draw.
func (s *ShaderStateStager) ApplyTransform(model mgl32.Mat4, normal mgl32.Mat3) {
	s.uniforms.SetMat4(uniformModel, model)
	s.uniforms.SetMat3(uniformNormal, normal)
}

// SetFlatColor stages an RGBA color for the next draw and turns textured
// sampling off; flat color and texturing are mutually exclusive per draw.
func (s *ShaderStateStager) SetFlatColor(r, g, b, a float32) {
	s.uniforms.SetBool(uniformUseTexture, false)
	s.uniforms.SetVec4(uniformObjectColor, mgl32.Vec4{r, g, b, a})
}

// SetTexture turns textured sampling on and stages the texture unit of
// the texture registered under tag. An unknown tag stages the NoSlot
// sentinel; the renderer then samples an unbound unit, so only set tags
// that were loaded.
func (s *ShaderStateStager) SetTexture(tag string) {
	s.uniforms.SetBool(uniformUseTexture, true)
	s.uniforms.SetInt(uniformTexture, int32(s.textures.FindSlot(tag)))
}

// SetMaterial stages the diffuse color, specular color and shininess of
// the material registered under tag. If the tag is unknown or no
// materials are defined, the previously staged values stay in effect.
func (s *ShaderStateStager) SetMaterial(tag string) {
	if s.materials.Count() == 0 {
		return
	}
	m, ok := s.materials.Lookup(tag)
	if !ok {
		return
	}
	s.uniforms.SetVec3(uniformMaterialDiffuse, m.DiffuseColor)
	s.uniforms.SetVec3(uniformMaterialSpecular, m.SpecularColor)
	s.uniforms.SetFloat(uniformMaterialShininess, m.Shininess)
}

// SetUVScale stages the texture coordinate scale.
func (s *ShaderStateStager) SetUVScale(u, v float32) {
	s.uniforms.SetVec2(uniformUVScale, mgl32.Vec2{u, v})
}
