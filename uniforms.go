package scenestage

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is the shader-side property bag the staging layer writes into.
// The set of names it is handed (below) is a closed contract with the shader
// program; nothing here validates them at runtime.
type Uniforms interface {
	SetMat4(name string, m mgl32.Mat4)
	SetMat3(name string, m mgl32.Mat3)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
	SetBool(name string, b bool)
}

// Every uniform name the staging layer writes, in one place.
const (
	uniformModel       = "model"
	uniformNormal      = "normal"
	uniformObjectColor = "objectColor"
	uniformTexture     = "objectTexture"
	uniformUseTexture  = "bUseTexture"
	uniformUseLighting = "bUseLighting"
	uniformUVScale     = "UVscale"

	uniformMaterialDiffuse   = "material.diffuseColor"
	uniformMaterialSpecular  = "material.specularColor"
	uniformMaterialShininess = "material.shininess"

	uniformDirLightDirection = "directionalLight.direction"
	uniformDirLightAmbient   = "directionalLight.ambient"
	uniformDirLightDiffuse   = "directionalLight.diffuse"
	uniformDirLightSpecular  = "directionalLight.specular"
	uniformDirLightActive    = "directionalLight.bActive"
)

// pointLightUniform builds "pointLights[i].field". The shader declares a
// fixed array of MaxPointLights entries.
func pointLightUniform(index int, field string) string {
	return fmt.Sprintf("pointLights[%d].%s", index, field)
}
