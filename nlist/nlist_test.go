/*
 * nlist_test.go, part of gobox.
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
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"sort"
	"strings"
	"testing"

	box "github.com/rmera/gobox"
	v3 "github.com/rmera/gobox/v3"
	"gonum.org/v1/gonum/floats"
)

// cubicLattice returns the n*n*n points of a simple cubic lattice
// with spacing 1. The point (x,y,z) has the index x*n*n+y*n+z.
func cubicLattice(n int) *v3.Matrix {
	ret := v3.Zeros(n * n * n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				ret.SetRow(x*n*n+y*n+z, []float64{float64(x), float64(y), float64(z)})
			}
		}
	}
	return ret
}

func randomPoints(r *rand.Rand, B *box.Box, n int) *v3.Matrix {
	rel := v3.Zeros(n)
	for i := 0; i < n; i++ {
		rel.SetRow(i, []float64{r.Float64(), r.Float64(), r.Float64()})
	}
	return B.ToCartesian(rel)
}

func lists(nl *NeighborList) [][]int {
	ret := make([][]int, nl.Len())
	for i := range ret {
		ret[i] = nl.Neighbors(i)
	}
	return ret
}

func TestSimpleCubic(Te *testing.T) {
	for _, n := range []int{4, 6} {
		B, err := box.Cubic(float64(n))
		if err != nil {
			Te.Fatal(err)
		}
		nl, err := Build(cubicLattice(n), B, box.Periodic, 1.1)
		if err != nil {
			Te.Fatal(err)
		}
		idx := func(x, y, z int) int {
			w := func(v int) int { return ((v % n) + n) % n }
			return w(x)*n*n + w(y)*n + w(z)
		}
		for x := 0; x < n; x++ {
			for y := 0; y < n; y++ {
				for z := 0; z < n; z++ {
					expected := []int{idx(x-1, y, z), idx(x+1, y, z), idx(x, y-1, z), idx(x, y+1, z), idx(x, y, z-1), idx(x, y, z+1)}
					sort.Ints(expected)
					got := nl.Neighbors(idx(x, y, z))
					if !reflect.DeepEqual(got, expected) {
						Te.Errorf("lattice %d, point (%d,%d,%d): expected neighbors %v, got %v", n, x, y, z, expected, got)
					}
				}
			}
		}
		if m := nl.MeanCoordination(); m != 6 {
			Te.Errorf("lattice %d: mean coordination should be 6, got %v", n, m)
		}
		h := nl.CoordinationHistogram()
		if len(h) != 7 || h[6] != float64(n*n*n) {
			Te.Errorf("lattice %d: unexpected coordination histogram %v", n, h)
		}
		//with sqrt(2) < cutoff < sqrt(3), the 12 edge neighbors join in.
		nl, err = Build(cubicLattice(n), B, box.Periodic, 1.5)
		if err != nil {
			Te.Fatal(err)
		}
		for i, c := range nl.Coordinations() {
			if c != 18 {
				Te.Errorf("lattice %d, point %d: expected 18 neighbors, got %d", n, i, c)
				break
			}
		}
	}
}

func TestBuildersAgree(Te *testing.T) {
	B, err := box.FromLattice(9, 10, 11, 75, 85, 100)
	if err != nil {
		Te.Fatal(err)
	}
	r := rand.New(rand.NewSource(11))
	pos := randomPoints(r, B, 300)
	pbcs := []box.PBC{box.Periodic, {true, false, true}, box.NonPeriodic}
	//the larger cutoff is more than half of every box width.
	for _, cutoff := range []float64{1.7, 6} {
		for _, pbc := range pbcs {
			ref := DefaultOptions()
			ref.Builder(AllPairs{})
			expected, err := Build(pos, B, pbc, cutoff, ref)
			if err != nil {
				Te.Fatal(err)
			}
			for _, mult := range []float64{0.5, 1, 2} {
				o := DefaultOptions()
				o.BinSizeMultiplier(mult)
				o.Cpus(3)
				got, err := Build(pos, B, pbc, cutoff, o)
				if err != nil {
					Te.Fatal(err)
				}
				if !reflect.DeepEqual(lists(got), lists(expected)) {
					Te.Errorf("cutoff %v, pbc %v, bin size multiplier %v: cell list and all pairs differ", cutoff, pbc, mult)
				}
			}
		}
	}
}

func TestSymmetric(Te *testing.T) {
	B, err := box.FromVectors([]float64{8, 0, 0}, []float64{3, 7, 0}, []float64{-2, 2.5, 9})
	if err != nil {
		Te.Fatal(err)
	}
	r := rand.New(rand.NewSource(5))
	nl, err := Build(randomPoints(r, B, 200), B, box.Periodic, 2.5)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < nl.Len(); i++ {
		for _, j := range nl.Neighbors(i) {
			if j == i {
				Te.Errorf("point %d is its own neighbor", i)
			}
			if !nl.Contains(j, i) {
				Te.Errorf("%d is a neighbor of %d, but not the other way around", j, i)
			}
		}
	}
}

func TestCapacity(Te *testing.T) {
	B, err := box.Cubic(5)
	if err != nil {
		Te.Fatal(err)
	}
	pos := cubicLattice(5)
	expected, err := Build(pos, B, box.Periodic, 1.9)
	if err != nil {
		Te.Fatal(err)
	}
	for _, c := range [][2]int{{1, 1}, {0, 3}, {2, 10}} {
		o := DefaultOptions()
		o.InitialCapacity(c[0])
		o.Growth(c[1])
		got, err := Build(pos, B, box.Periodic, 1.9, o)
		if err != nil {
			Te.Fatal(err)
		}
		if !reflect.DeepEqual(lists(got), lists(expected)) {
			Te.Errorf("initial capacity %d, growth %d: lists differ from the default ones", c[0], c[1])
		}
	}
	//6 at distance 1, 12 at sqrt(2) and 8 at sqrt(3)
	if expected.Coordination(0) != 26 {
		Te.Errorf("expected 26 neighbors, got %d", expected.Coordination(0))
	}
}

func TestPeriodicity(Te *testing.T) {
	B, err := box.Cubic(10)
	if err != nil {
		Te.Fatal(err)
	}
	pos, _ := v3.NewMatrix([]float64{0, 0, 0, 9, 0, 0, 5, 5, 5})
	nl, err := Build(pos, B, box.Periodic, 1.5)
	if err != nil {
		Te.Fatal(err)
	}
	if !nl.Contains(0, 1) || !nl.Contains(1, 0) || nl.Coordination(2) != 0 {
		Te.Errorf("unexpected periodic neighbors %v", lists(nl))
	}
	nl, err = Build(pos, B, box.PBC{false, true, true}, 1.5)
	if err != nil {
		Te.Fatal(err)
	}
	if nl.Contains(0, 1) || nl.Coordination(0) != 0 {
		Te.Errorf("points 0 and 1 should not be neighbors without periodicity along x: %v", lists(nl))
	}
	if nl.Cutoff() != 1.5 {
		Te.Errorf("wrong cutoff %v", nl.Cutoff())
	}
}

func TestErrors(Te *testing.T) {
	B, err := box.Cubic(10)
	if err != nil {
		Te.Fatal(err)
	}
	pos, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	if _, err := Build(nil, B, box.Periodic, 1); !errors.Is(err, box.ErrEmptyPointSet) {
		Te.Errorf("nil points should give an empty point set error, got %v", err)
	}
	for _, c := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Build(pos, B, box.Periodic, c); !errors.Is(err, box.ErrInvalidCutoff) {
			Te.Errorf("cutoff %v should give an invalid cutoff error, got %v", c, err)
		}
	}
	if _, err := Build(pos, nil, box.Periodic, 1); !errors.Is(err, box.ErrInvalidGeometry) {
		Te.Errorf("a nil box should give an invalid geometry error, got %v", err)
	}
	if _, err := Build(pos, new(box.Box), box.Periodic, 1); !errors.Is(err, box.ErrInvalidGeometry) {
		Te.Errorf("a zero-value box should give an invalid geometry error, got %v", err)
	}
}

func TestOutOfRange(Te *testing.T) {
	B, err := box.Cubic(10)
	if err != nil {
		Te.Fatal(err)
	}
	pos, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	nl, err := Build(pos, B, box.Periodic, 1.5)
	if err != nil {
		Te.Fatal(err)
	}
	if nl.Contains(5, 0) || nl.Contains(-1, 0) {
		Te.Error("Contains should be false for points not in the list")
	}
	for _, f := range []func(){func() { nl.Neighbors(2) }, func() { nl.Coordination(-1) }} {
		func() {
			defer func() {
				if recover() == nil {
					Te.Error("an index out of range should panic")
				}
			}()
			f()
		}()
	}
}

func TestSingleBin(Te *testing.T) {
	B, err := box.Cubic(2)
	if err != nil {
		Te.Fatal(err)
	}
	pos, _ := v3.NewMatrix([]float64{0.1, 0.1, 0.1, 1.9, 0.1, 0.1, 1, 0.5, 0.5})
	o := DefaultOptions()
	o.Verbose(true)
	nl, err := Build(pos, B, box.Periodic, 1.5, o)
	if err != nil {
		Te.Fatal(err)
	}
	expected := [][]int{{1, 2}, {0, 2}, {0, 1}}
	if !reflect.DeepEqual(lists(nl), expected) {
		Te.Errorf("expected %v, got %v", expected, lists(nl))
	}
}

func TestDumpLoad(Te *testing.T) {
	B, err := box.FromLattice(6, 6.5, 7, 80, 90, 100)
	if err != nil {
		Te.Fatal(err)
	}
	r := rand.New(rand.NewSource(2))
	nl, err := Build(randomPoints(r, B, 80), B, box.Periodic, 2.3)
	if err != nil {
		Te.Fatal(err)
	}
	for _, compress := range []bool{false, true} {
		var buf bytes.Buffer
		if err := nl.Dump(&buf, compress); err != nil {
			Te.Fatal(err)
		}
		if compress != bytes.HasPrefix(buf.Bytes(), zstdMagic) {
			Te.Errorf("compress=%v, but the output starts with %x", compress, buf.Bytes()[:4])
		}
		if !compress {
			first := strings.SplitN(buf.String(), "\n", 3)[1]
			fields := strings.Fields(first)
			if fields[0] != "0" || fields[1] != fmt.Sprint(nl.Coordination(0)) {
				Te.Errorf("unexpected first line %q", first)
			}
		}
		got, err := Load(&buf)
		if err != nil {
			Te.Fatal(err)
		}
		if got.Cutoff() != nl.Cutoff() || !reflect.DeepEqual(lists(got), lists(nl)) {
			Te.Errorf("compress=%v: the loaded list differs from the dumped one", compress)
		}
	}
	if _, err := Load(strings.NewReader("# cutoff 1\n0 2 1\n1 1 0\n")); !errors.Is(err, box.ErrDimensionMismatch) {
		Te.Errorf("a wrong neighbor count should give a dimension mismatch, got %v", err)
	}
	if _, err := Load(strings.NewReader("# cutoff 1\n0 1 5\n1 1 0\n")); !errors.Is(err, box.ErrIndexOutOfRange) {
		Te.Errorf("a neighbor out of range should give an index out of range error, got %v", err)
	}
	if _, err := Load(strings.NewReader("# cutoff 1\n1 0\n")); !errors.Is(err, box.ErrDimensionMismatch) {
		Te.Errorf("points out of order should give a dimension mismatch, got %v", err)
	}
	for _, text := range []string{"0 1 1\n1 1 0\n", "# a comment\n0 0\n", ""} {
		if _, err := Load(strings.NewReader(text)); !errors.Is(err, box.ErrDimensionMismatch) {
			Te.Errorf("a list without a cutoff header should give a dimension mismatch, got %v", err)
		}
	}
	if _, err := Load(strings.NewReader("# cutoff -2\n0 0\n")); !errors.Is(err, box.ErrInvalidCutoff) {
		Te.Errorf("a negative cutoff should give an invalid cutoff error, got %v", err)
	}
	l, err := Load(strings.NewReader("# cutoff 1.5\n0 1 1\n1 1 0\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if l.Cutoff() != 1.5 || !l.Contains(0, 1) {
		Te.Errorf("wrong list loaded: cutoff %v, lists %v", l.Cutoff(), lists(l))
	}
}

func TestGraph(Te *testing.T) {
	B, err := box.Cubic(20)
	if err != nil {
		Te.Fatal(err)
	}
	pos, _ := v3.NewMatrix([]float64{
		0, 0, 0,
		1, 0, 0,
		2, 0, 0,
		5, 5, 5,
		10, 10, 10,
		10, 11, 10,
	})
	nl, err := Build(pos, B, box.NonPeriodic, 1.5)
	if err != nil {
		Te.Fatal(err)
	}
	expected := [][]int{{0, 1, 2}, {3}, {4, 5}}
	if c := nl.Clusters(); !reflect.DeepEqual(c, expected) {
		Te.Errorf("expected clusters %v, got %v", expected, c)
	}
	g := nl.Graph()
	if !g.HasEdgeBetween(0, 1) || g.HasEdgeBetween(0, 2) || g.HasEdgeBetween(0, 99) {
		Te.Errorf("wrong edges in the graph")
	}
	if g.Edge(4, 5) == nil || g.Edge(3, 4) != nil {
		Te.Errorf("wrong edges in the graph")
	}
	if g.Node(99) != nil || g.Node(3) == nil {
		Te.Errorf("wrong nodes in the graph")
	}
	if n := g.From(1).Len(); n != 2 {
		Te.Errorf("node 1 should have 2 neighbors, got %d", n)
	}
	if n := g.Nodes().Len(); n != 6 {
		Te.Errorf("the graph should have 6 nodes, got %d", n)
	}
	if h := nl.CoordinationHistogram(); !floats.Equal(h, []float64{1, 4, 1}) {
		Te.Errorf("unexpected coordination histogram %v", h)
	}
}
