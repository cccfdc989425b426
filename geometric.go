/*
 * geometric.go, part of gobox.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package box

import (
	"fmt"
	"math"

	v3 "github.com/rmera/gobox/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	deg2Rad = math.Pi / 180
	rad2Deg = 180 / math.Pi
)

// VectAngle returns the angle between the vectors u and v, in degrees.
func VectAngle(u, v []float64) float64 {
	return v3.Angle(u, v) * rad2Deg
}

// Reciprocal returns the reciprocal vectors of the box (without the 2π factor)
// as the rows of a 3x3 matrix. The ith box-relative coordinate of a point r is
// (r - origin)·(ith reciprocal vector).
func (B *Box) Reciprocal() *v3.Matrix {
	r := B.ReciprocalArray()
	m := v3.Zeros(3)
	for i := range r {
		m.SetVec(i, r[i][:])
	}
	return m
}

// ReciprocalArray is like Reciprocal but returns an array.
func (B *Box) ReciprocalArray() [3][3]float64 {
	v := B.vects
	vol := B.Volume()
	var r [3][3]float64
	for i := 0; i < 3; i++ {
		c := v3.Cross(v[(i+1)%3][:], v[(i+2)%3][:])
		for j := range c {
			r[i][j] = c[j] / vol
		}
	}
	return r
}

// Widths returns the distances between opposite faces of the box, i.e.
// the inverse of the lengths of the reciprocal vectors.
func (B *Box) Widths() [3]float64 {
	r := B.ReciprocalArray()
	var w [3]float64
	for i := range r {
		w[i] = 1 / floats.Norm(r[i][:], 2)
	}
	return w
}

// ToRelative returns the box-relative (fractional) coordinates of the
// cartesian coordinates in pos.
func (B *Box) ToRelative(pos *v3.Matrix) *v3.Matrix {
	n := pos.NVecs()
	shifted := v3.Zeros(n)
	o := v3.Dense2Matrix(mat.NewDense(1, 3, B.Origin()))
	shifted.SubVec(pos, o)
	rel := v3.Zeros(n)
	rel.Mul(shifted, B.Reciprocal().T())
	return rel
}

// ToCartesian returns the cartesian coordinates of the box-relative
// coordinates in rel.
func (B *Box) ToCartesian(rel *v3.Matrix) *v3.Matrix {
	n := rel.NVecs()
	tmp := v3.Zeros(n)
	tmp.Mul(rel, B.Vects())
	o := v3.Dense2Matrix(mat.NewDense(1, 3, B.Origin()))
	ret := v3.Zeros(n)
	ret.AddVec(tmp, o)
	return ret
}

// Inside returns, for each point in pos, whether it is inside the box
// (faces included, within the tolerance of the box).
func (B *Box) Inside(pos *v3.Matrix) []bool {
	rel := B.ToRelative(pos)
	ret := make([]bool, rel.NVecs())
	for i := range ret {
		ret[i] = true
		for _, f := range rel.RawRowView(i) {
			if f < -B.tol || f > 1+B.tol {
				ret[i] = false
				break
			}
		}
	}
	return ret
}

// Wrap returns a copy of pos where every point is moved, by lattice
// translations along the periodic directions in pbc, into the box.
func (B *Box) Wrap(pos *v3.Matrix, pbc PBC) *v3.Matrix {
	rel := B.ToRelative(pos)
	for i := 0; i < rel.NVecs(); i++ {
		row := rel.RawRowView(i)
		for j := range row {
			if pbc[j] {
				row[j] -= math.Floor(row[j])
			}
		}
	}
	return B.ToCartesian(rel)
}

// AxesCheck checks that the 3 vectors in axes (one per row) are mutually
// orthogonal and right handed, within tol. It returns the axes normalized
// to unit length.
func AxesCheck(axes *v3.Matrix, tol float64) (*v3.Matrix, error) {
	if r, c := axes.Dims(); r != 3 || c != 3 {
		return nil, NewError(DimensionMismatch, fmt.Sprintf("axes must be a 3x3 matrix, got %dx%d", r, c), "AxesCheck")
	}
	u := v3.Clone(axes)
	for i := 0; i < 3; i++ {
		if u.VecNorm(i) <= math.Max(tol, 1e-12) {
			return nil, NewError(InvalidGeometry, fmt.Sprintf("axis %d has zero length", i), "AxesCheck")
		}
		v := u.VecView(i)
		v.Unit(v)
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if math.Abs(u.VecView(i).Dot(u.VecView(j))) > tol {
				return nil, NewError(InvalidGeometry, fmt.Sprintf("axes %d and %d are not orthogonal", i, j), "AxesCheck")
			}
		}
	}
	if v3.Det(u) <= 0 {
		return nil, NewError(InvalidGeometry, "axes are not right handed", "AxesCheck")
	}
	return u, nil
}
