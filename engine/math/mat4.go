package math

func NewMat4Identity() Mat4 {
	var m Mat4
	m.Data[0] = 1
	m.Data[5] = 1
	m.Data[10] = 1
	m.Data[15] = 1
	return m
}

func (mt Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += mt.Data[row*4+k] * other.Data[k*4+col]
			}
			out.Data[row*4+col] = sum
		}
	}
	return out
}

func NewMat4Translation(position Vec3) Mat4 {
	m := NewMat4Identity()
	m.Data[12] = position.X
	m.Data[13] = position.Y
	m.Data[14] = position.Z
	return m
}

func NewMat4Scale(scale Vec3) Mat4 {
	var m Mat4
	m.Data[0] = scale.X
	m.Data[5] = scale.Y
	m.Data[10] = scale.Z
	m.Data[15] = 1
	return m
}

func NewMat4Perspective(fovRadians, aspectRatio, nearClip, farClip float32) Mat4 {
	halfTanFov := ktan(fovRadians * 0.5)
	var m Mat4
	m.Data[0] = 1.0 / (aspectRatio * halfTanFov)
	m.Data[5] = 1.0 / halfTanFov
	m.Data[10] = -((farClip + nearClip) / (farClip - nearClip))
	m.Data[11] = -1.0
	m.Data[14] = -((2.0 * farClip * nearClip) / (farClip - nearClip))
	return m
}

func NewMat4LookAt(position, target, up Vec3) Mat4 {
	zAxis := target.Sub(position).Normalized()
	xAxis := zAxis.Cross(up).Normalized()
	yAxis := xAxis.Cross(zAxis)

	var m Mat4
	m.Data[0] = xAxis.X
	m.Data[1] = yAxis.X
	m.Data[2] = -zAxis.X
	m.Data[3] = 0

	m.Data[4] = xAxis.Y
	m.Data[5] = yAxis.Y
	m.Data[6] = -zAxis.Y
	m.Data[7] = 0

	m.Data[8] = xAxis.Z
	m.Data[9] = yAxis.Z
	m.Data[10] = -zAxis.Z
	m.Data[11] = 0

	m.Data[12] = -xAxis.Dot(position)
	m.Data[13] = -yAxis.Dot(position)
	m.Data[14] = zAxis.Dot(position)
	m.Data[15] = 1
	return m
}
