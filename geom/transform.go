package geom

import "math"

// Transformation is a proper rigid transform (rotation + translation,
// determinant +1) represented as a 3x3 homogeneous matrix. The matrix never
// holds NaN components.
type Transformation struct {
	m [3][3]float64
}

var identityMatrix = [3][3]float64{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Empty returns the identity transformation.
func Empty() Transformation {
	return Transformation{m: identityMatrix}
}

// FromTranslation returns a pure translation by (tx, ty).
func FromTranslation(tx, ty float64) Transformation {
	return Transformation{m: translationMatrix(tx, ty)}
}

// FromRotation returns a pure rotation of angle radians around the origin.
func FromRotation(angle float64) Transformation {
	return Transformation{m: rotationMatrix(angle)}
}

// FromDTransformation composes the canonical decomposed form back into
// matrix form: rotation followed by translation.
func FromDTransformation(dt DTransformation) Transformation {
	return Transformation{m: rotateTranslateMatrix(dt.Angle, dt.TX, dt.TY)}
}

// Rotate returns t with an additional rotation applied on top (t' = R*t).
func (t Transformation) Rotate(angle float64) Transformation {
	return Transformation{m: matMul(rotationMatrix(angle), t.m)}
}

// Translate returns t with an additional translation applied on top.
func (t Transformation) Translate(tx, ty float64) Transformation {
	return Transformation{m: matMul(translationMatrix(tx, ty), t.m)}
}

// Compose returns the transformation equivalent to applying t followed by other.
func (t Transformation) Compose(other Transformation) Transformation {
	return Transformation{m: matMul(other.m, t.m)}
}

// Inverse returns the inverse transformation.
func (t Transformation) Inverse() Transformation {
	return Transformation{m: matInverse(t.m)}
}

// IsEmpty reports whether t is the identity transformation.
func (t Transformation) IsEmpty() bool {
	return t.m == identityMatrix
}

// Decompose reads the canonical (angle, tx, ty) form out of the matrix.
func (t Transformation) Decompose() DTransformation {
	m := t.m
	angle := math.Atan2(m[1][0], m[0][0])
	return DTransformation{Angle: angle, TX: m[0][2], TY: m[1][2]}
}

func rotationMatrix(angle float64) [3][3]float64 {
	s, c := math.Sincos(angle)
	return [3][3]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

func translationMatrix(tx, ty float64) [3][3]float64 {
	return [3][3]float64{
		{1, 0, tx},
		{0, 1, ty},
		{0, 0, 1},
	}
}

func rotateTranslateMatrix(angle, tx, ty float64) [3][3]float64 {
	s, c := math.Sincos(angle)
	return [3][3]float64{
		{c, -s, tx},
		{s, c, ty},
		{0, 0, 1},
	}
}

func matMul(l, r [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = l[i][0]*r[0][j] + l[i][1]*r[1][j] + l[i][2]*r[2][j]
		}
	}
	return out
}

func matInverse(m [3][3]float64) [3][3]float64 {
	det := m[0][0]*m[1][1]*m[2][2] + m[0][1]*m[1][2]*m[2][0] + m[0][2]*m[1][0]*m[2][1] -
		m[0][2]*m[1][1]*m[2][0] - m[0][1]*m[1][0]*m[2][2] - m[0][0]*m[1][2]*m[2][1]

	return [3][3]float64{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) / det,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) / det,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) / det,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) / det,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) / det,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) / det,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) / det,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) / det,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) / det,
		},
	}
}

// DTransformation is a proper rigid transformation decomposed into a
// rotation followed by a translation. It is the canonical form for equality
// and hashing: two transformations are considered equal iff their decomposed
// forms compare equal with ==, component by component.
type DTransformation struct {
	Angle  float64
	TX, TY float64
}

// NewDTransformation builds a DTransformation, rejecting NaN components.
func NewDTransformation(angle, tx, ty float64) DTransformation {
	if math.IsNaN(angle) || math.IsNaN(tx) || math.IsNaN(ty) {
		panic("geom: DTransformation component is NaN")
	}
	return DTransformation{Angle: angle, TX: tx, TY: ty}
}

// EmptyDTransformation is the decomposed identity transformation.
var EmptyDTransformation = DTransformation{}

// Compose returns the equivalent matrix-form Transformation.
func (dt DTransformation) Compose() Transformation {
	return FromDTransformation(dt)
}
