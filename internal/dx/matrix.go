package dx

// Matrix mirrors MATRIX: a row-major 4x4 matrix with row vectors on the left
// (Direct3D convention). Transpose converts to and from the column-major
// layout used by GL style code.
type Matrix struct {
	M [4][4]float32
}

func IdentityMatrix() Matrix {
	return Matrix{M: [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

func (m Matrix) Transpose() Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[j][i] = m.M[i][j]
		}
	}
	return r
}

// Mul returns m*o.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] =
				m.M[i][0]*o.M[0][j] +
					m.M[i][1]*o.M[1][j] +
					m.M[i][2]*o.M[2][j] +
					m.M[i][3]*o.M[3][j]
		}
	}
	return r
}

// TransformPoint applies m to p treating it as a row vector with w=1.
func (m Matrix) TransformPoint(p Vector) Vector {
	return Vector{
		X: p.X*m.M[0][0] + p.Y*m.M[1][0] + p.Z*m.M[2][0] + m.M[3][0],
		Y: p.X*m.M[0][1] + p.Y*m.M[1][1] + p.Z*m.M[2][1] + m.M[3][1],
		Z: p.X*m.M[0][2] + p.Y*m.M[1][2] + p.Z*m.M[2][2] + m.M[3][2],
	}
}

// MatrixD mirrors MATRIX_D.
type MatrixD struct {
	M [4][4]float64
}

func IdentityMatrixD() MatrixD {
	return MatrixD{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}
