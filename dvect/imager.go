/*
 * imager.go, part of gobox.
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
	"math"

	box "github.com/rmera/gobox"
	"gonum.org/v1/gonum/floats"
)

//slack added to the search breadth so rounding in the fractional
//coordinates can't leave out the boundary images.
const breadthSlack = 1e-9

// Imager finds minimum image vectors in a given box with a given periodicity.
// It takes a snapshot of the box when created, so later changes to the box
// are not seen by the Imager. An Imager is safe for concurrent use.
type Imager struct {
	vects [3][3]float64
	recip [3][3]float64
	rnorm [3]float64 //lengths of the reciprocal vectors
	pbc   box.PBC
	unit  [3]int        //the ±1 breadth, 0 on non-periodic axes
	table [][3]float64 //shifts for the unit breadth, in search order, without the zero shift
}

// NewImager returns an Imager for the box cell with periodicity pbc.
func NewImager(cell *box.Box, pbc box.PBC) *Imager {
	im := new(Imager)
	im.vects, _ = cell.Array()
	im.recip = cell.ReciprocalArray()
	im.pbc = pbc
	for i := range im.recip {
		im.rnorm[i] = floats.Norm(im.recip[i][:], 2)
		if pbc[i] {
			im.unit[i] = 1
		}
	}
	u := im.unit
	for i := -u[0]; i <= u[0]; i++ {
		for j := -u[1]; j <= u[1]; j++ {
			for k := -u[2]; k <= u[2]; k++ {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				im.table = append(im.table, im.shift(i, j, k))
			}
		}
	}
	return im
}

// PBC returns the periodicity of the Imager.
func (im *Imager) PBC() box.PBC {
	return im.pbc
}

// shift returns the lattice translation i*a + j*b + k*c. The explicit
// conversions prevent fused multiply-adds, so a shift is always the same
// number no matter where it is computed.
func (im *Imager) shift(i, j, k int) [3]float64 {
	fi, fj, fk := float64(i), float64(j), float64(k)
	v := im.vects
	var s [3]float64
	for c := 0; c < 3; c++ {
		s[c] = float64(fi*v[0][c]) + float64(fj*v[1][c]) + float64(fk*v[2][c])
	}
	return s
}

func sqnorm(d [3]float64) float64 {
	return float64(d[0]*d[0]) + float64(d[1]*d[1]) + float64(d[2]*d[2])
}

// Fractional returns the box-relative components of the vector d.
func (im *Imager) Fractional(d [3]float64) [3]float64 {
	var f [3]float64
	for i := range f {
		r := im.recip[i]
		f[i] = float64(d[0]*r[0]) + float64(d[1]*r[1]) + float64(d[2]*r[2])
	}
	return f
}

// reduce subtracts from d the lattice translation, along periodic axes only,
// that brings each of its fractional components to [-0.5, 0.5].
func (im *Imager) reduce(d [3]float64) [3]float64 {
	if !im.pbc.Any() {
		return d
	}
	f := im.Fractional(d)
	var k [3]int
	for i := range k {
		if im.pbc[i] {
			k[i] = int(math.Round(f[i]))
		}
	}
	if k == [3]int{} {
		return d
	}
	s := im.shift(k[0], k[1], k[2])
	return [3]float64{d[0] - s[0], d[1] - s[1], d[2] - s[2]}
}

// breadth returns, for a reduced vector r, how many images along each
// periodic axis need to be tested. A minimum image v* is never longer than r,
// so its fractional component i is at most |r||b*_i|, and the image differs
// from r by at most that plus one half along i. The breadth is at least 1
// on periodic axes and 0 on the others.
func (im *Imager) breadth(r [3]float64) [3]int {
	n := math.Sqrt(sqnorm(r))
	var b [3]int
	for i := range b {
		if !im.pbc[i] {
			continue
		}
		b[i] = int(math.Floor(n*im.rnorm[i] + 0.5 + breadthSlack))
		if b[i] < 1 {
			b[i] = 1
		}
	}
	return b
}

// search returns the shortest of r plus every lattice translation within
// the breadth n. Ties go to the first candidate, with r itself first.
func (im *Imager) search(r [3]float64, n [3]int) [3]float64 {
	best := r
	bestd := sqnorm(r)
	for i := -n[0]; i <= n[0]; i++ {
		for j := -n[1]; j <= n[1]; j++ {
			for k := -n[2]; k <= n[2]; k++ {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				s := im.shift(i, j, k)
				c := [3]float64{r[0] + s[0], r[1] + s[1], r[2] + s[2]}
				if d := sqnorm(c); d < bestd {
					best, bestd = c, d
				}
			}
		}
	}
	return best
}

// searchTable is search for the unit breadth, using the precomputed shifts.
func (im *Imager) searchTable(r [3]float64) [3]float64 {
	best := r
	bestd := sqnorm(r)
	for _, s := range im.table {
		c := [3]float64{r[0] + s[0], r[1] + s[1], r[2] + s[2]}
		if d := sqnorm(c); d < bestd {
			best, bestd = c, d
		}
	}
	return best
}

// Shortest returns the minimum image of the vector d.
func (im *Imager) Shortest(d [3]float64) [3]float64 {
	r := im.reduce(d)
	if !im.pbc.Any() {
		return r
	}
	return im.search(r, im.breadth(r))
}

// ShortestFast is like Shortest, but uses the precomputed ±1 shifts when
// they are enough. The result is identical to that of Shortest.
func (im *Imager) ShortestFast(d [3]float64) [3]float64 {
	r := im.reduce(d)
	if !im.pbc.Any() {
		return r
	}
	n := im.breadth(r)
	if n == im.unit {
		return im.searchTable(r)
	}
	return im.search(r, n)
}

// Distance2 returns the squared length of the minimum image of the vector
// from p to q.
func (im *Imager) Distance2(p, q []float64) float64 {
	v := im.ShortestFast([3]float64{q[0] - p[0], q[1] - p[1], q[2] - p[2]})
	return sqnorm(v)
}
