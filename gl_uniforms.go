package scenestage

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GLUniforms implements Uniforms over the uniforms of one linked shader
// program. Locations are resolved lazily and cached; a name the program
// does not declare resolves to -1 and the write becomes a no-op, which is
// the closed-contract behavior this layer wants.
type GLUniforms struct {
	program   uint32
	locations map[string]int32
}

// NewGLUniforms wraps an already compiled and linked program object.
func NewGLUniforms(program uint32) *GLUniforms {
	return &GLUniforms{
		program:   program,
		locations: make(map[string]int32),
	}
}

func (u *GLUniforms) location(name string) int32 {
	if loc, ok := u.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(u.program, gl.Str(name+"\x00"))
	u.locations[name] = loc
	return loc
}

func (u *GLUniforms) SetMat4(name string, m mgl32.Mat4) {
	gl.UseProgram(u.program)
	gl.UniformMatrix4fv(u.location(name), 1, false, &m[0])
}

func (u *GLUniforms) SetMat3(name string, m mgl32.Mat3) {
	gl.UseProgram(u.program)
	gl.UniformMatrix3fv(u.location(name), 1, false, &m[0])
}

func (u *GLUniforms) SetVec2(name string, v mgl32.Vec2) {
	gl.UseProgram(u.program)
	gl.Uniform2fv(u.location(name), 1, &v[0])
}

func (u *GLUniforms) SetVec3(name string, v mgl32.Vec3) {
	gl.UseProgram(u.program)
	gl.Uniform3fv(u.location(name), 1, &v[0])
}

func (u *GLUniforms) SetVec4(name string, v mgl32.Vec4) {
	gl.UseProgram(u.program)
	gl.Uniform4fv(u.location(name), 1, &v[0])
}

func (u *GLUniforms) SetFloat(name string, f float32) {
	gl.UseProgram(u.program)
	gl.Uniform1f(u.location(name), f)
}

func (u *GLUniforms) SetInt(name string, i int32) {
	gl.UseProgram(u.program)
	gl.Uniform1i(u.location(name), i)
}

func (u *GLUniforms) SetBool(name string, b bool) {
	v := int32(0)
	if b {
		v = 1
	}
	gl.UseProgram(u.program)
	gl.Uniform1i(u.location(name), v)
}
