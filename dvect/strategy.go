/*
 * strategy.go, part of gobox.
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
	"sort"

	box "github.com/rmera/gobox"
	v3 "github.com/rmera/gobox/v3"
	"golang.org/x/sync/errgroup"
)

// Strategy computes minimum image vectors for pairs of points.
// dst has already the right size, and a and b have either as many vectors
// as dst, or only one, which is then paired with every vector of the other.
type Strategy interface {
	Name() string
	Shortest(dst, a, b *v3.Matrix, im *Imager) error
}

// Reference is the plain, sequential Strategy. It computes every image
// shift on the fly.
type Reference struct{}

func (Reference) Name() string { return "reference" }

func (Reference) Shortest(dst, a, b *v3.Matrix, im *Imager) error {
	for i := 0; i < dst.NVecs(); i++ {
		d := diff(a, b, i)
		s := im.Shortest(d)
		dst.SetRow(i, s[:])
	}
	return nil
}

// Tabulated uses a precomputed table of the ±1 image shifts, and splits
// the pairs among Cpus goroutines. Pairs whose minimum image could lie
// further away go through the general search, so the results are
// identical to those of Reference.
type Tabulated struct {
	Cpus int //0 or less means "use the Options value"
}

func (Tabulated) Name() string { return "tabulated" }

//below this many pairs per goroutine, we don't bother splitting.
const minChunk = 64

func (T Tabulated) Shortest(dst, a, b *v3.Matrix, im *Imager) error {
	n := dst.NVecs()
	cpus := T.Cpus
	if cpus <= 0 {
		cpus = box.DefaultConfig().Cpus
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
				d := diff(a, b, i)
				s := im.ShortestFast(d)
				dst.SetRow(i, s[:]) //each goroutine writes its own rows only
			}
			return nil
		})
	}
	return g.Wait()
}

// diff returns the ith b - a vector, broadcasting single-vector operands.
func diff(a, b *v3.Matrix, i int) [3]float64 {
	pa := a.RawRowView(bcast(a, i))
	pb := b.RawRowView(bcast(b, i))
	return [3]float64{pb[0] - pa[0], pb[1] - pa[1], pb[2] - pa[2]}
}

func bcast(m *v3.Matrix, i int) int {
	if m.NVecs() == 1 {
		return 0
	}
	return i
}

var strategies = map[string]Strategy{
	Reference{}.Name(): Reference{},
	Tabulated{}.Name(): Tabulated{},
}

// SelectStrategy returns the Strategy with the given name.
func SelectStrategy(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, box.NewError(box.AmbiguousParameters, fmt.Sprintf("unknown strategy %q", name), "SelectStrategy")
	}
	return s, nil
}

// Strategies returns the names of the available strategies, sorted.
func Strategies() []string {
	ret := make([]string, 0, len(strategies))
	for k := range strategies {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
