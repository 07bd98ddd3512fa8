// Copyright 2024 The Corelib Authors
// This file is part of corelib.
//
// corelib is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// corelib is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with corelib. If not, see <http://www.gnu.org/licenses/>.

package geom

import (
	"fmt"
	"math"
)

// Matrix3 is a fixed 3x3 matrix, the collaborator-glue subset of the
// original's general NxN Matrix (original_source/include/core/Matrix.h)
// that the core actually needs: 2D affine transforms and their composition.
type Matrix3 struct {
	m [3][3]float64
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	var m Matrix3
	m.m[0][0], m.m[1][1], m.m[2][2] = 1, 1, 1
	return m
}

// Rotation3Z returns the matrix rotating by angle radians about the Z axis
// (original's generate3x3RotationZMatrix).
func Rotation3Z(angle float64) Matrix3 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity3()
	m.m[0][0], m.m[0][1] = c, -s
	m.m[1][0], m.m[1][1] = s, c
	return m
}

// Get returns the element at (row, col).
func (m Matrix3) Get(row, col int) float64 { return m.m[row][col] }

// Set sets the element at (row, col).
func (m *Matrix3) Set(row, col int, value float64) { m.m[row][col] = value }

// Multiply returns m * o.
func (m Matrix3) Multiply(o Matrix3) Matrix3 {
	var out Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m.m[r][k] * o.m[k][c]
			}
			out.m[r][c] = sum
		}
	}
	return out
}

// Transform applies the matrix to v as a homogeneous 2D point (z=1).
func (m Matrix3) Transform(v Vector2) Vector2 {
	return Vector2{
		X: m.m[0][0]*v.X + m.m[0][1]*v.Y + m.m[0][2],
		Y: m.m[1][0]*v.X + m.m[1][1]*v.Y + m.m[1][2],
	}
}

// Trace returns the sum of the diagonal elements (original's trace()).
func (m Matrix3) Trace() float64 { return m.m[0][0] + m.m[1][1] + m.m[2][2] }

// Equals implements object.Comparable, within a small epsilon.
func (m Matrix3) Equals(other any) bool {
	o, ok := other.(Matrix3)
	if !ok {
		return false
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(m.m[r][c]-o.m[r][c]) >= epsilon {
				return false
			}
		}
	}
	return true
}

// DisplayName implements object.Displayable.
func (m Matrix3) DisplayName() string {
	return fmt.Sprintf("[%.2f %.2f %.2f; %.2f %.2f %.2f; %.2f %.2f %.2f]",
		m.m[0][0], m.m[0][1], m.m[0][2],
		m.m[1][0], m.m[1][1], m.m[1][2],
		m.m[2][0], m.m[2][1], m.m[2][2])
}
