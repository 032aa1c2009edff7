package scenestage

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingUniforms keeps the last value written per name, like a real
// uniform store does.
type recordingUniforms struct {
	mat4s  map[string]mgl32.Mat4
	mat3s  map[string]mgl32.Mat3
	vec2s  map[string]mgl32.Vec2
	vec3s  map[string]mgl32.Vec3
	vec4s  map[string]mgl32.Vec4
	floats map[string]float32
	ints   map[string]int32
	bools  map[string]bool
}

func newRecordingUniforms() *recordingUniforms {
	return &recordingUniforms{
		mat4s:  make(map[string]mgl32.Mat4),
		mat3s:  make(map[string]mgl32.Mat3),
		vec2s:  make(map[string]mgl32.Vec2),
		vec3s:  make(map[string]mgl32.Vec3),
		vec4s:  make(map[string]mgl32.Vec4),
		floats: make(map[string]float32),
		ints:   make(map[string]int32),
		bools:  make(map[string]bool),
	}
}

func (u *recordingUniforms) SetMat4(name string, m mgl32.Mat4)  { u.mat4s[name] = m }
func (u *recordingUniforms) SetMat3(name string, m mgl32.Mat3)  { u.mat3s[name] = m }
func (u *recordingUniforms) SetVec2(name string, v mgl32.Vec2)  { u.vec2s[name] = v }
func (u *recordingUniforms) SetVec3(name string, v mgl32.Vec3)  { u.vec3s[name] = v }
func (u *recordingUniforms) SetVec4(name string, v mgl32.Vec4)  { u.vec4s[name] = v }
func (u *recordingUniforms) SetFloat(name string, f float32)    { u.floats[name] = f }
func (u *recordingUniforms) SetInt(name string, i int32)        { u.ints[name] = i }
func (u *recordingUniforms) SetBool(name string, b bool)        { u.bools[name] = b }

func newTestStager(t *testing.T) (*ShaderStateStager, *recordingUniforms, *TextureRegistry, *MaterialRegistry) {
	t.Helper()
	uniforms := newRecordingUniforms()
	textures := newTestRegistry(newFakeGPU(), map[string]Image{
		"wood.png": testImage(3),
		"desk.png": testImage(4),
	})
	materials := &MaterialRegistry{}
	return NewShaderStateStager(uniforms, textures, materials), uniforms, textures, materials
}

func TestApplyTransformStagesMatrices(t *testing.T) {
	stager, uniforms, _, _ := newTestStager(t)

	model, normal := ComposeTransform(
		mgl32.Vec3{2, 1, 1}, 0, 45, 0, mgl32.Vec3{0, 3, 0})
	stager.ApplyTransform(model, normal)

	assert.Equal(t, model, uniforms.mat4s[uniformModel])
	assert.Equal(t, normal, uniforms.mat3s[uniformNormal])
}

func TestSetFlatColorDisablesTexturing(t *testing.T) {
	stager, uniforms, textures, _ := newTestStager(t)
	require.NoError(t, textures.Load("wood.png", "wood"))

	stager.SetTexture("wood")
	assert.True(t, uniforms.bools[uniformUseTexture])

	stager.SetFlatColor(0.2, 0.4, 0.6, 1)
	assert.False(t, uniforms.bools[uniformUseTexture])
	assert.Equal(t, mgl32.Vec4{0.2, 0.4, 0.6, 1}, uniforms.vec4s[uniformObjectColor])
}

func TestSetTextureStagesSlot(t *testing.T) {
	stager, uniforms, textures, _ := newTestStager(t)
	require.NoError(t, textures.Load("wood.png", "wood"))
	require.NoError(t, textures.Load("desk.png", "desk"))

	stager.SetTexture("desk")
	assert.True(t, uniforms.bools[uniformUseTexture])
	assert.Equal(t, int32(1), uniforms.ints[uniformTexture])

	// Unknown tags stage the sentinel; the caller promised not to do this.
	stager.SetTexture("ghost")
	assert.Equal(t, int32(NoSlot), uniforms.ints[uniformTexture])
}

func TestSetMaterialStagesValues(t *testing.T) {
	stager, uniforms, _, materials := newTestStager(t)
	materials.Register(MaterialDescriptor{
		Tag:           "marble",
		DiffuseColor:  mgl32.Vec3{0.8, 0.8, 0.8},
		SpecularColor: mgl32.Vec3{0.9, 0.9, 0.9},
		Shininess:     50,
	})

	stager.SetMaterial("marble")
	assert.Equal(t, mgl32.Vec3{0.8, 0.8, 0.8}, uniforms.vec3s[uniformMaterialDiffuse])
	assert.Equal(t, mgl32.Vec3{0.9, 0.9, 0.9}, uniforms.vec3s[uniformMaterialSpecular])
	assert.Equal(t, float32(50), uniforms.floats[uniformMaterialShininess])
}

func TestSetMaterialMissIsSticky(t *testing.T) {
	stager, uniforms, _, materials := newTestStager(t)

	// Empty registry: nothing staged at all.
	stager.SetMaterial("marble")
	assert.NotContains(t, uniforms.vec3s, uniformMaterialDiffuse)

	materials.Register(MaterialDescriptor{
		Tag:          "marble",
		DiffuseColor: mgl32.Vec3{0.8, 0.8, 0.8},
		Shininess:    50,
	})
	stager.SetMaterial("marble")

	// A later miss keeps the marble values in place.
	stager.SetMaterial("unobtanium")
	assert.Equal(t, mgl32.Vec3{0.8, 0.8, 0.8}, uniforms.vec3s[uniformMaterialDiffuse])
	assert.Equal(t, float32(50), uniforms.floats[uniformMaterialShininess])
}

func TestStagedStateSticksAcrossDraws(t *testing.T) {
	stager, uniforms, textures, _ := newTestStager(t)
	require.NoError(t, textures.Load("wood.png", "wood"))

	// First draw: textured with a UV scale.
	model, normal := ComposeTransform(
		mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{0, 0, 0})
	stager.ApplyTransform(model, normal)
	stager.SetTexture("wood")
	stager.SetUVScale(4, 4)

	// Second draw: only the transform changes.
	model2, normal2 := ComposeTransform(
		mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{2, 0, 0})
	stager.ApplyTransform(model2, normal2)

	assert.Equal(t, model2, uniforms.mat4s[uniformModel])
	assert.True(t, uniforms.bools[uniformUseTexture], "texture flag carries over")
	assert.Equal(t, int32(0), uniforms.ints[uniformTexture], "sampler carries over")
	assert.Equal(t, mgl32.Vec2{4, 4}, uniforms.vec2s[uniformUVScale], "UV scale carries over")
}

// Exercises the whole load-then-render protocol the way a scene does it:
// registries populated and bound once, then per-object staging.
func TestLoadThenRenderProtocol(t *testing.T) {
	uniforms := newRecordingUniforms()
	gpu := newFakeGPU()
	textures := NewTextureRegistry(gpu, fakeDecoder{images: map[string]Image{
		"desk.jpg": testImage(3),
		"wood.jpg": testImage(3),
	}}, nil)
	materials := &MaterialRegistry{}
	stager := NewShaderStateStager(uniforms, textures, materials)

	// Load phase.
	require.NoError(t, textures.Load("desk.jpg", "desk"))
	require.NoError(t, textures.Load("wood.jpg", "wood"))
	materials.Register(MaterialDescriptor{Tag: "wood", DiffuseColor: mgl32.Vec3{0.3, 0.2, 0.1}, Shininess: 0.3})
	textures.BindAll()

	var lights SceneLights
	lights.SetDirectional(DirectionalLight{
		Direction: mgl32.Vec3{0, -1, 0},
		Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
	})
	lights.Apply(uniforms)

	// Render phase: one textured object.
	model, normal := ComposeTransform(
		mgl32.Vec3{10, 1, 6}, 0, 0, 0, mgl32.Vec3{0, -0.5, 0})
	stager.ApplyTransform(model, normal)
	stager.SetTexture("wood")
	stager.SetMaterial("wood")
	stager.SetUVScale(2, 2)

	assert.True(t, uniforms.bools[uniformUseLighting])
	assert.Equal(t, model, uniforms.mat4s[uniformModel])
	assert.Equal(t, int32(1), uniforms.ints[uniformTexture])
	assert.Equal(t, mgl32.Vec3{0.3, 0.2, 0.1}, uniforms.vec3s[uniformMaterialDiffuse])
	assert.Equal(t, TextureHandle(2), gpu.bound[1])
}
