/*
 * dvect.go, part of gobox.
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

//Package dvect computes the shortest (minimum image) vectors between
//points in a periodic box.
//
//Only the directions marked as periodic are wrapped. The search is exact
//for any box shape: for very skewed boxes, or when points are far apart
//along a non-periodic direction, more images than the nearest 27 are
//examined.
package dvect

import (
	"fmt"

	box "github.com/rmera/gobox"
	v3 "github.com/rmera/gobox/v3"
	"gonum.org/v1/gonum/floats"
)

// Shortest returns, for each pair of points in a and b, the shortest
// vector going from the point in a to (some periodic image of) the point in b.
// a and b must have the same number of points, or one of them must have only
// one point, which is then paired with each point of the other.
func Shortest(a, b *v3.Matrix, cell *box.Box, pbc box.PBC, opts ...*Options) (*v3.Matrix, error) {
	if cell == nil {
		return nil, box.NewError(box.InvalidGeometry, "nil box", "Shortest")
	}
	if err := cell.Check(); err != nil {
		return nil, box.ErrDecorate(err, "Shortest")
	}
	n, err := pairs(a, b)
	if err != nil {
		return nil, box.ErrDecorate(err, "Shortest")
	}
	o := options(opts)
	dst := v3.Zeros(n)
	im := NewImager(cell, pbc)
	if err = o.strat().Shortest(dst, a, b, im); err != nil {
		return nil, box.ErrDecorate(err, "Shortest")
	}
	return dst, nil
}

// pairs returns the number of pairs formed by a and b.
func pairs(a, b *v3.Matrix) (int, error) {
	if a == nil || b == nil || a.Dense == nil || b.Dense == nil {
		return 0, box.NewError(box.DimensionMismatch, "empty point set", "pairs")
	}
	na, nb := a.NVecs(), b.NVecs()
	switch {
	case na == 0 || nb == 0:
		return 0, box.NewError(box.DimensionMismatch, "empty point set", "pairs")
	case na == nb, nb == 1:
		return na, nil
	case na == 1:
		return nb, nil
	}
	return 0, box.NewError(box.DimensionMismatch, fmt.Sprintf("can't pair %d points with %d points", na, nb), "pairs")
}

// ShortestIndexes is like Shortest, but the points are given as indexes
// into pos.
func ShortestIndexes(pos *v3.Matrix, i, j []int, cell *box.Box, pbc box.PBC, opts ...*Options) (*v3.Matrix, error) {
	a, err := Points(pos, i)
	if err != nil {
		return nil, box.ErrDecorate(err, "ShortestIndexes")
	}
	b, err := Points(pos, j)
	if err != nil {
		return nil, box.ErrDecorate(err, "ShortestIndexes")
	}
	ret, err := Shortest(a, b, cell, pbc, opts...)
	if err != nil {
		return nil, box.ErrDecorate(err, "ShortestIndexes")
	}
	return ret, nil
}

// Points returns a new matrix with the points of pos given by the
// indexes in idx, in that order.
func Points(pos *v3.Matrix, idx []int) (*v3.Matrix, error) {
	if pos == nil || pos.Dense == nil {
		return nil, box.NewError(box.DimensionMismatch, "nil coordinates", "Points")
	}
	if len(idx) == 0 {
		return nil, box.NewError(box.DimensionMismatch, "no indexes given", "Points")
	}
	ret := v3.Zeros(len(idx))
	if err := ret.SomeVecsSafe(pos, idx); err != nil {
		if err.Error() == string(v3.ErrIndexOutOfRange) {
			return nil, box.NewError(box.IndexOutOfRange, fmt.Sprintf("an index in %v is out of range for %d points", idx, pos.NVecs()), "Points")
		}
		return nil, box.NewError(box.DimensionMismatch, err.Error(), "Points")
	}
	return ret, nil
}

// Dmag returns the lengths of the vectors Shortest would return.
func Dmag(a, b *v3.Matrix, cell *box.Box, pbc box.PBC, opts ...*Options) ([]float64, error) {
	d, err := Shortest(a, b, cell, pbc, opts...)
	if err != nil {
		return nil, box.ErrDecorate(err, "Dmag")
	}
	ret := make([]float64, d.NVecs())
	for i := range ret {
		ret[i] = floats.Norm(d.RawRowView(i), 2)
	}
	return ret, nil
}
