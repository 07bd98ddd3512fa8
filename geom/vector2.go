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

// Package geom is thin collaborator glue for the geometry/linear-algebra
// primitives spec.md §1 lists as out-of-scope except for their interfaces
// to the core (Comparable, Displayable): a 2D vector and a 3x3 affine
// matrix, grounded in _examples/original_source/Vertex2.h and Matrix.h.
package geom

import (
	"fmt"
	"math"
)

const epsilon = 1e-9

// Vector2 is a 2D vector (original_source/Vertex2.h).
type Vector2 struct {
	X, Y float64
}

// Abs returns the vector's length.
func (v Vector2) Abs() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns a unit-length copy, or v unchanged if its length is
// (nearly) zero.
func (v Vector2) Normalize() Vector2 {
	l := v.Abs()
	if l < epsilon {
		return v
	}
	return Vector2{v.X / l, v.Y / l}
}

// Add returns the component-wise sum.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by f.
func (v Vector2) Scale(f float64) Vector2 { return Vector2{v.X * f, v.Y * f} }

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 { return v.X*o.X + v.Y*o.Y }

// Equals implements object.Comparable, within a small epsilon to absorb
// floating point noise.
func (v Vector2) Equals(other any) bool {
	o, ok := other.(Vector2)
	if !ok {
		return false
	}
	return math.Abs(v.X-o.X) < epsilon && math.Abs(v.Y-o.Y) < epsilon
}

// DisplayName implements object.Displayable.
func (v Vector2) DisplayName() string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y)
}
