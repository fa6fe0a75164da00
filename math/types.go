package math

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Slice returns the vector in the component order the wire expects.
func (v Vec3) Slice() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion struct {
	X, Y, Z, W float64
}

// QuaternionIdentity returns the no-rotation quaternion.
func QuaternionIdentity() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1}
}

// Slice returns the quaternion as [x, y, z, w].
func (q Quaternion) Slice() []float64 {
	return []float64{q.X, q.Y, q.Z, q.W}
}

/**
 * @brief Represents the transform of a node in the viewer's scene tree:
 * a position paired with a rotational orientation.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. */
	Rotation Quaternion
}

// TransformIdentity returns a transform at the origin with no rotation.
func TransformIdentity() Transform {
	return Transform{Rotation: QuaternionIdentity()}
}
