/*
 * builders.go, part of gobox.
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

package nlist

import (
	"log"
	"math"

	box "github.com/rmera/gobox"
	"github.com/rmera/gobox/dvect"
	v3 "github.com/rmera/gobox/v3"
	"golang.org/x/sync/errgroup"
)

// Builder builds a neighbor list. The arguments have already been
// checked when Build calls it.
type Builder interface {
	Name() string
	Build(pos *v3.Matrix, cell *box.Box, pbc box.PBC, cutoff float64, o *Options) (*NeighborList, error)
}

// AllPairs tests every pair of points. It is simple and slow.
type AllPairs struct{}

func (AllPairs) Name() string { return "allpairs" }

func (AllPairs) Build(pos *v3.Matrix, cell *box.Box, pbc box.PBC, cutoff float64, o *Options) (*NeighborList, error) {
	im := dvect.NewImager(cell, pbc)
	n := pos.NVecs()
	s := newStore(n, o)
	c2 := cutoff * cutoff
	err := parallel(n, o.Cpus(), func(i int) {
		pi := pos.RawRowView(i)
		for j := 0; j < n; j++ {
			if j != i && im.Distance2(pi, pos.RawRowView(j)) < c2 {
				s.add(i, j)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return s.list(cutoff), nil
}

// CellList sorts the points into bins, in box-relative coordinates, and
// only tests the pairs in nearby bins. Bins are at least the cutoff
// (times the bin size multiplier) wide, measured perpendicular to the
// box faces, so it works for any box shape.
// If there would be only one bin, it uses AllPairs instead.
type CellList struct{}

func (CellList) Name() string { return "celllist" }

func (CellList) Build(pos *v3.Matrix, cell *box.Box, pbc box.PBC, cutoff float64, o *Options) (*NeighborList, error) {
	n := pos.NVecs()
	g := newGrid(cell.ToRelative(pos), cell.Widths(), pbc, cutoff, o.BinSizeMultiplier())
	if g.nbins() == 1 {
		if o.Verbose() {
			log.Printf("nlist: a single bin for %d points with cutoff %g, testing all pairs", n, cutoff)
		}
		return AllPairs{}.Build(pos, cell, pbc, cutoff, o)
	}
	if o.Verbose() {
		log.Printf("nlist: %d points in a %dx%dx%d grid, reaching %v bins", n, g.n[0], g.n[1], g.n[2], g.reach)
	}
	im := dvect.NewImager(cell, pbc)
	s := newStore(n, o)
	c2 := cutoff * cutoff
	err := parallel(n, o.Cpus(), func(i int) {
		pi := pos.RawRowView(i)
		g.around(i, func(j int) {
			if j != i && im.Distance2(pi, pos.RawRowView(j)) < c2 {
				s.add(i, j)
			}
		})
	})
	if err != nil {
		return nil, err
	}
	return s.list(cutoff), nil
}

//below this many points per goroutine, we don't bother splitting.
const minChunk = 32

// parallel calls f(i) for i in [0, n), splitting the range among
// at most cpus goroutines.
func parallel(n, cpus int, f func(i int)) error {
	if cpus < 1 {
		cpus = 1
	}
	chunk := n/cpus + 1
	if chunk < minChunk {
		chunk = minChunk
	}
	g := new(errgroup.Group)
	g.SetLimit(cpus)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				f(i)
			}
			return nil
		})
	}
	return g.Wait()
}

//bins are made this much (relatively) wider than asked, so rounding in the
//box-relative coordinates can't put a neighbor beyond the reach.
const binSlack = 1e-9

// grid is a set of bins in box-relative coordinates.
type grid struct {
	pbc   box.PBC
	n     [3]int     //bins per axis
	reach [3]int     //how many bins away a neighbor can be
	lo    [3]float64 //lower end of the binned interval, for non-periodic axes
	span  [3]float64 //length of the binned interval
	of    [][3]int   //bin of each point
	bins  map[[3]int][]int
}

// newGrid bins the points with box-relative coordinates rel. widths are the
// perpendicular widths of the box.
// Along periodic axes, the binned interval is [0,1), and points are wrapped
// into it. Along the other axes, it is the extent of the points.
func newGrid(rel *v3.Matrix, widths [3]float64, pbc box.PBC, cutoff, mult float64) *grid {
	np := rel.NVecs()
	g := &grid{pbc: pbc, of: make([][3]int, np), bins: make(map[[3]int][]int)}
	for ax := 0; ax < 3; ax++ {
		g.span[ax] = 1
		if !pbc[ax] {
			lo, hi := math.Inf(1), math.Inf(-1)
			for i := 0; i < np; i++ {
				f := rel.At(i, ax)
				lo = math.Min(lo, f)
				hi = math.Max(hi, f)
			}
			g.lo[ax] = lo
			g.span[ax] = hi - lo
		}
		//cartesian width of the interval, measured across the box faces.
		w := g.span[ax] * widths[ax]
		g.n[ax] = int(math.Floor(w / (cutoff * mult * (1 + binSlack))))
		if g.n[ax] < 1 || g.span[ax] == 0 {
			g.n[ax] = 1
		}
		//a neighbor's box-relative coordinate differs by at most cutoff/width.
		g.reach[ax] = 1
		if w > 0 {
			g.reach[ax] = int(math.Ceil(cutoff * float64(g.n[ax]) / w))
		}
	}
	for i := 0; i < np; i++ {
		var b [3]int
		for ax := 0; ax < 3; ax++ {
			b[ax] = g.bin(rel.At(i, ax), ax)
		}
		g.of[i] = b
		g.bins[b] = append(g.bins[b], i)
	}
	return g
}

func (g *grid) nbins() int {
	return g.n[0] * g.n[1] * g.n[2]
}

// bin returns the bin index of the box-relative coordinate f along ax.
func (g *grid) bin(f float64, ax int) int {
	if g.pbc[ax] {
		f -= math.Floor(f)
	} else {
		if g.span[ax] == 0 {
			return 0
		}
		f = (f - g.lo[ax]) / g.span[ax]
	}
	b := int(f * float64(g.n[ax]))
	if b >= g.n[ax] {
		b = g.n[ax] - 1
	}
	if b < 0 {
		b = 0
	}
	return b
}

// offsets returns the distinct bin indexes along ax within reach of b.
func (g *grid) offsets(b, ax int) []int {
	n, r := g.n[ax], g.reach[ax]
	if 2*r+1 >= n && (g.pbc[ax] || r >= n) {
		ret := make([]int, n)
		for i := range ret {
			ret[i] = i
		}
		return ret
	}
	ret := make([]int, 0, 2*r+1)
	for d := -r; d <= r; d++ {
		k := b + d
		if g.pbc[ax] {
			k = ((k % n) + n) % n
		} else if k < 0 || k >= n {
			continue
		}
		ret = append(ret, k)
	}
	return ret
}

// around calls f for every point in the bins within reach of the
// bin of the point i, the point i included. Each point is visited once.
func (g *grid) around(i int, f func(j int)) {
	b := g.of[i]
	ox, oy, oz := g.offsets(b[0], 0), g.offsets(b[1], 1), g.offsets(b[2], 2)
	for _, x := range ox {
		for _, y := range oy {
			for _, z := range oz {
				for _, j := range g.bins[[3]int{x, y, z}] {
					f(j)
				}
			}
		}
	}
}
