package scenestage

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights is the point light array size declared by the shader.
const MaxPointLights = 4

// ErrLightCapacity is returned by AddPoint once all light slots are taken.
var ErrLightCapacity = errors.New("point light slots full")

// DirectionalLight is a single infinite-distance light.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// PointLight is a positional light with distance attenuation.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	// Attenuation terms: 1 / (Constant + Linear*d + Quadratic*d²).
	Constant  float32
	Linear    float32
	Quadratic float32
}

// SceneLights collects the scene's light sources during the load phase
// and stages them to the shader in one shot. Like the registries it is
// populated once; lighting does not change between frames.
type SceneLights struct {
	directional *DirectionalLight
	points      []PointLight
}

// SetDirectional sets the directional light, replacing any previous one.
func (l *SceneLights) SetDirectional(d DirectionalLight) {
	l.directional = &d
}

// AddPoint registers a point light in the next free slot.
func (l *SceneLights) AddPoint(p PointLight) error {
	if len(l.points) >= MaxPointLights {
		return fmt.Errorf("add point light: %w", ErrLightCapacity)
	}
	l.points = append(l.points, p)
	return nil
}

// Apply stages every registered light and the use-lighting flag. Unused
// light slots are staged inactive so the shader skips them. With no
// lights registered the scene renders unlit.
func (l *SceneLights) Apply(u Uniforms) {
	lit := l.directional != nil || len(l.points) > 0
	u.SetBool(uniformUseLighting, lit)
	if !lit {
		return
	}

	if d := l.directional; d != nil {
		u.SetVec3(uniformDirLightDirection, d.Direction.Normalize())
		u.SetVec3(uniformDirLightAmbient, d.Ambient)
		u.SetVec3(uniformDirLightDiffuse, d.Diffuse)
		u.SetVec3(uniformDirLightSpecular, d.Specular)
		u.SetBool(uniformDirLightActive, true)
	} else {
		u.SetBool(uniformDirLightActive, false)
	}

	for i := 0; i < MaxPointLights; i++ {
		if i >= len(l.points) {
			u.SetBool(pointLightUniform(i, "bActive"), false)
			continue
		}
		p := l.points[i]
		u.SetVec3(pointLightUniform(i, "position"), p.Position)
		u.SetVec3(pointLightUniform(i, "ambient"), p.Ambient)
		u.SetVec3(pointLightUniform(i, "diffuse"), p.Diffuse)
		u.SetVec3(pointLightUniform(i, "specular"), p.Specular)
		u.SetFloat(pointLightUniform(i, "constant"), p.Constant)
		u.SetFloat(pointLightUniform(i, "linear"), p.Linear)
		u.SetFloat(pointLightUniform(i, "quadratic"), p.Quadratic)
		u.SetBool(pointLightUniform(i, "bActive"), true)
	}
}
