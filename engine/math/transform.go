package math

/**
 * @brief Represents the placement of an object in the world. Objects in the
 * descriptor format only carry a translation; scale and rotation exist for
 * backends that want them.
 */
type Transform struct {
	Position Vec3
	Scale    Vec3

	isDirty bool
	local   Mat4
}

func NewTransform() *Transform {
	return &Transform{
		Scale:   NewVec3One(),
		isDirty: false,
		local:   NewMat4Identity(),
	}
}

func NewTransformFromPosition(position Vec3) *Transform {
	t := NewTransform()
	t.SetPosition(position)
	return t
}

func (t *Transform) SetPosition(position Vec3) {
	t.Position = position
	t.isDirty = true
}

func (t *Transform) SetScale(scale Vec3) {
	t.Scale = scale
	t.isDirty = true
}

// Local returns the local transformation matrix, recalculating it when the
// position or scale changed since the last call.
func (t *Transform) Local() Mat4 {
	if t.isDirty {
		t.local = NewMat4Translation(t.Position).Mul(NewMat4Scale(t.Scale))
		t.isDirty = false
	}
	return t.local
}
