/*
 * systems.go, part of gobox.
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

package dvect

import (
	"fmt"

	box "github.com/rmera/gobox"
	v3 "github.com/rmera/gobox/v3"
)

// System is a set of points in a box, such as the atoms of a
// simulation snapshot.
type System interface {
	Len() int
	Coords() *v3.Matrix
	Box() *box.Box
	PBC() box.PBC
}

// IDer is implemented by systems whose points carry an identity that is kept
// between snapshots, even if the order of the points changes.
type IDer interface {
	ID(i int) int
}

// BoxReference tells Between which box to use for the minimum image.
type BoxReference int

const (
	RawDifference BoxReference = iota //no periodic images, just final - initial
	InitialBox
	FinalBox
)

func (r BoxReference) String() string {
	switch r {
	case RawDifference:
		return "raw"
	case InitialBox:
		return "initial"
	case FinalBox:
		return "final"
	}
	return fmt.Sprintf("BoxReference(%d)", int(r))
}

// Between returns the displacement of each point of initial, from its
// position in initial to its position in final. Points are matched by
// identity if both systems implement IDer, and by index otherwise.
// The ith returned vector corresponds to the ith point of initial.
// With InitialBox or FinalBox, the displacements are minimum image vectors
// in the box (and with the periodicity) of that system.
func Between(initial, final System, ref BoxReference, opts ...*Options) (*v3.Matrix, error) {
	if initial == nil || final == nil {
		return nil, box.NewError(box.DimensionMismatch, "nil system", "Between")
	}
	n := initial.Len()
	if n != final.Len() {
		return nil, box.NewError(box.DimensionMismatch, fmt.Sprintf("systems with %d and %d points", n, final.Len()), "Between")
	}
	if n == 0 {
		return nil, box.NewError(box.DimensionMismatch, "empty systems", "Between")
	}
	idx, err := match(initial, final)
	if err != nil {
		return nil, box.ErrDecorate(err, "Between")
	}
	fin, err := Points(final.Coords(), idx)
	if err != nil {
		return nil, box.ErrDecorate(err, "Between")
	}
	ini := initial.Coords()
	if ini == nil || ini.Dense == nil || ini.NVecs() != n {
		return nil, box.NewError(box.DimensionMismatch, "coordinates don't match the system size", "Between")
	}
	var sys System
	switch ref {
	case RawDifference:
		ret := v3.Zeros(n)
		ret.Sub(fin, ini)
		return ret, nil
	case InitialBox:
		sys = initial
	case FinalBox:
		sys = final
	default:
		return nil, box.NewError(box.AmbiguousParameters, fmt.Sprintf("unknown box reference %d", int(ref)), "Between")
	}
	ret, err := Shortest(ini, fin, sys.Box(), sys.PBC(), opts...)
	if err != nil {
		return nil, box.ErrDecorate(err, "Between")
	}
	return ret, nil
}

// match returns, for each point of initial, the index of the same point
// in final.
func match(initial, final System) ([]int, error) {
	n := initial.Len()
	ret := make([]int, n)
	ii, ok1 := initial.(IDer)
	fi, ok2 := final.(IDer)
	if !ok1 || !ok2 {
		for i := range ret {
			ret[i] = i
		}
		return ret, nil
	}
	where := make(map[int]int, n)
	for i := 0; i < n; i++ {
		where[fi.ID(i)] = i
	}
	for i := range ret {
		j, ok := where[ii.ID(i)]
		if !ok {
			return nil, box.NewError(box.IndexOutOfRange, fmt.Sprintf("point with ID %d not found in the final system", ii.ID(i)), "match")
		}
		ret[i] = j
	}
	return ret, nil
}

// Frame is a simple System. If it is given IDs, they are used to match
// its points with those of other systems.
type Frame struct {
	coords *v3.Matrix
	cell   *box.Box
	pbc    box.PBC
	ids    []int
}

// NewFrame returns a Frame with the given coordinates, box, periodicity
// and, optionally, IDs for each point. The data is not copied.
func NewFrame(coords *v3.Matrix, cell *box.Box, pbc box.PBC, ids ...[]int) (*Frame, error) {
	if coords == nil || coords.Dense == nil {
		return nil, box.NewError(box.DimensionMismatch, "nil coordinates", "NewFrame")
	}
	f := &Frame{coords: coords, cell: cell, pbc: pbc}
	if len(ids) > 0 && ids[0] != nil {
		if len(ids[0]) != coords.NVecs() {
			return nil, box.NewError(box.DimensionMismatch, fmt.Sprintf("%d IDs for %d points", len(ids[0]), coords.NVecs()), "NewFrame")
		}
		f.ids = ids[0]
	}
	return f, nil
}

func (F *Frame) Len() int           { return F.coords.NVecs() }
func (F *Frame) Coords() *v3.Matrix { return F.coords }
func (F *Frame) Box() *box.Box      { return F.cell }
func (F *Frame) PBC() box.PBC       { return F.pbc }

// ID returns the identity of the ith point, which is just i if the Frame
// has no IDs.
func (F *Frame) ID(i int) int {
	if F.ids == nil {
		return i
	}
	return F.ids[i]
}
