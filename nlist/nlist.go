/*
 * nlist.go, part of gobox.
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

//Package nlist builds neighbor lists: for each point, the points
//whose minimum image distance to it is smaller than a cutoff.
//
//A point is never its own neighbor, and each neighbor appears once
//in a list even if several of its periodic images are within the cutoff.
//Lists are sorted, and the result is the same for all the builders.
package nlist

import (
	"fmt"
	"math"
	"sort"

	box "github.com/rmera/gobox"
	v3 "github.com/rmera/gobox/v3"
	"gonum.org/v1/gonum/stat"
)

// NeighborList holds, for each point of a set, the indexes of its
// neighbors, in ascending order.
type NeighborList struct {
	cutoff float64
	lists  [][]int
}

// Build returns the neighbor list of the points in pos, in the box cell
// with periodicity pbc. Two points are neighbors if their minimum image
// distance is smaller than cutoff.
func Build(pos *v3.Matrix, cell *box.Box, pbc box.PBC, cutoff float64, opts ...*Options) (*NeighborList, error) {
	if pos == nil || pos.Dense == nil || pos.NVecs() == 0 {
		return nil, box.NewError(box.EmptyPointSet, "no points given", "Build")
	}
	if math.IsNaN(cutoff) || math.IsInf(cutoff, 0) || cutoff <= 0 {
		return nil, box.NewError(box.InvalidCutoff, fmt.Sprintf("cutoff must be positive and finite, got %v", cutoff), "Build")
	}
	if cell == nil {
		return nil, box.NewError(box.InvalidGeometry, "nil box", "Build")
	}
	if err := cell.Check(); err != nil {
		return nil, box.ErrDecorate(err, "Build")
	}
	o := options(opts)
	nl, err := o.Builder().Build(pos, cell, pbc, cutoff, o)
	if err != nil {
		return nil, box.ErrDecorate(err, "Build")
	}
	return nl, nil
}

// store is the per-point growable storage used while building a list.
// Each list is only touched by one goroutine.
type store struct {
	growth int
	lists  [][]int
}

func newStore(n int, o *Options) *store {
	s := &store{growth: o.Growth(), lists: make([][]int, n)}
	for i := range s.lists {
		s.lists[i] = make([]int, 0, o.InitialCapacity())
	}
	return s
}

// add appends j to the list of i, growing it by the growth increment
// when it is full.
func (s *store) add(i, j int) {
	l := s.lists[i]
	if len(l) == cap(l) {
		bigger := make([]int, len(l), cap(l)+s.growth)
		copy(bigger, l)
		l = bigger
	}
	s.lists[i] = append(l, j)
}

func (s *store) list(cutoff float64) *NeighborList {
	for _, l := range s.lists {
		sort.Ints(l)
	}
	return &NeighborList{cutoff: cutoff, lists: s.lists}
}

// Len returns the number of points in the list.
func (N *NeighborList) Len() int {
	return len(N.lists)
}

// Cutoff returns the cutoff used to build the list.
func (N *NeighborList) Cutoff() float64 {
	return N.cutoff
}

// Neighbors returns a copy of the neighbors of the point i, in ascending order.
// It panics if i is not a point of the list.
func (N *NeighborList) Neighbors(i int) []int {
	ret := make([]int, len(N.lists[i]))
	copy(ret, N.lists[i])
	return ret
}

// Coordination returns the number of neighbors of the point i.
// It panics if i is not a point of the list.
func (N *NeighborList) Coordination(i int) int {
	return len(N.lists[i])
}

// Coordinations returns the number of neighbors of each point.
func (N *NeighborList) Coordinations() []int {
	ret := make([]int, len(N.lists))
	for i, l := range N.lists {
		ret[i] = len(l)
	}
	return ret
}

// Contains returns true if j is a neighbor of i. Unlike Neighbors, it
// returns false if i is not a point of the list.
func (N *NeighborList) Contains(i, j int) bool {
	if i < 0 || i >= len(N.lists) {
		return false
	}
	l := N.lists[i]
	k := sort.SearchInts(l, j)
	return k < len(l) && l[k] == j
}

func (N *NeighborList) fcoords() []float64 {
	ret := make([]float64, len(N.lists))
	for i, l := range N.lists {
		ret[i] = float64(len(l))
	}
	return ret
}

// MeanCoordination returns the average number of neighbors per point.
func (N *NeighborList) MeanCoordination() float64 {
	return stat.Mean(N.fcoords(), nil)
}

// CoordinationHistogram returns a slice where the element k is the
// number of points with k neighbors, for k from 0 to the largest
// coordination in the list.
func (N *NeighborList) CoordinationHistogram() []float64 {
	c := N.fcoords()
	if len(c) == 0 {
		return nil
	}
	sort.Float64s(c)
	top := c[len(c)-1]
	dividers := make([]float64, int(top)+2)
	for i := range dividers {
		dividers[i] = float64(i) - 0.5
	}
	return stat.Histogram(nil, dividers, c, nil)
}
