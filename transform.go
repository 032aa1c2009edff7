package scenestage

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComposeTransform builds the model matrix for one object from its scale,
// Euler rotation in degrees and world position, plus the matching normal
// matrix. The composition order is fixed: scale first, then intrinsic
// X-then-Y-then-Z rotation, translation last. Object placement depends on
// this exact order.
func ComposeTransform(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3) (model mgl32.Mat4, normal mgl32.Mat3) {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())

	model = t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
	// Keeps normals correct under non-uniform scale.
	normal = model.Mat3().Inv().Transpose()
	return model, normal
}
