/*
 * params.go, part of gobox.
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

	"gonum.org/v1/gonum/floats"
)

// Params groups the four equivalent ways of defining a box. Exactly one
// of the fields must be non-nil.
type Params struct {
	Vectors *VectorParams
	Lattice *LatticeParams
	Bounds  *BoundParams
	Lengths *LengthParams
}

// VectorParams defines a box by its vectors. A nil Origin means zero.
type VectorParams struct {
	A, B, C []float64
	Origin  []float64
}

// LatticeParams defines a box by its lattice parameters. Angles are in degrees,
// alpha is the angle between b and c, beta between a and c, gamma between a and b.
// A nil Origin means zero.
type LatticeParams struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
	Origin             []float64
}

// Lattice returns lattice parameters with the given lengths and angles
// (alpha, beta, gamma, in degrees). Angles not given are 90.
func Lattice(a, b, c float64, angles ...float64) (*LatticeParams, error) {
	if len(angles) > 3 {
		return nil, NewError(InvalidGeometry, fmt.Sprintf("%d angles given, at most 3 (alpha, beta, gamma) expected", len(angles)), "Lattice")
	}
	ang := [3]float64{90, 90, 90}
	copy(ang[:], angles)
	return &LatticeParams{A: a, B: b, C: c, Alpha: ang[0], Beta: ang[1], Gamma: ang[2]}, nil
}

// BoundParams defines a normalized box in the LAMMPS way: the bounds
// (the lo values are the origin) and the tilt factors.
type BoundParams struct {
	Xlo, Xhi, Ylo, Yhi, Zlo, Zhi float64
	Xy, Xz, Yz                   float64
}

// LengthParams defines a normalized box by the lengths lx, ly, lz and the tilt
// factors. A nil Origin means zero.
type LengthParams struct {
	Lx, Ly, Lz float64
	Xy, Xz, Yz float64
	Origin     []float64
}

// Set redefines the box from the one non-nil parameter set in p. If p has more than
// one (or none) parameter set, the error has the AmbiguousParameters kind. If the
// parameters give a degenerate or non-physical box, the error has the InvalidGeometry
// kind. On error, the box is not modified.
func (B *Box) Set(p Params) error {
	given := 0
	for _, ok := range []bool{p.Vectors != nil, p.Lattice != nil, p.Bounds != nil, p.Lengths != nil} {
		if ok {
			given++
		}
	}
	if given != 1 {
		return NewError(AmbiguousParameters, fmt.Sprintf("%d parameter sets given, exactly one expected", given), "Set")
	}
	var vects [3][3]float64
	var origin [3]float64
	var err error
	switch {
	case p.Vectors != nil:
		vects, origin, err = p.Vectors.vectors()
	case p.Lattice != nil:
		vects, origin, err = p.Lattice.vectors(B.tol)
	case p.Bounds != nil:
		vects, origin, err = p.Bounds.vectors()
	case p.Lengths != nil:
		vects, origin, err = p.Lengths.vectors()
	}
	if err != nil {
		return ErrDecorate(err, "Set")
	}
	if err = checkDegenerate(vects, B.tol); err != nil {
		return ErrDecorate(err, "Set")
	}
	B.vects = vects
	B.origin = origin
	return nil
}

// checkDegenerate returns an error if the vectors are non-finite, have zero
// length, or are (within tol) linearly dependent. The volume is compared relative to the product of the
// lengths, so the check doesn't depend on the size of the box.
func checkDegenerate(v [3][3]float64, tol float64) error {
	for i, name := range []string{"a", "b", "c"} {
		for _, x := range v[i] {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return NewError(InvalidGeometry, fmt.Sprintf("non-finite component in vector %s", name), "checkDegenerate")
			}
		}
	}
	la, lb, lc := floats.Norm(v[0][:], 2), floats.Norm(v[1][:], 2), floats.Norm(v[2][:], 2)
	if la == 0 || lb == 0 || lc == 0 {
		return NewError(InvalidGeometry, "zero-length box vector", "checkDegenerate")
	}
	b := Box{vects: v}
	if math.Abs(b.Volume())/(la*lb*lc) <= tol {
		return NewError(InvalidGeometry, "box vectors are linearly dependent", "checkDegenerate")
	}
	return nil
}

func toArray(s []float64, name string) ([3]float64, error) {
	var r [3]float64
	if s == nil && name == "origin" {
		return r, nil
	}
	if len(s) != 3 {
		return r, NewError(InvalidGeometry, fmt.Sprintf("%s should have 3 components, has %d", name, len(s)), "toArray")
	}
	copy(r[:], s)
	return r, nil
}

func (p *VectorParams) vectors() (v [3][3]float64, o [3]float64, err error) {
	for i, s := range [][]float64{p.A, p.B, p.C} {
		if v[i], err = toArray(s, "box vector"); err != nil {
			return v, o, err
		}
	}
	o, err = toArray(p.Origin, "origin")
	return v, o, err
}

func (p *LatticeParams) vectors(tol float64) (v [3][3]float64, o [3]float64, err error) {
	if p.A <= 0 || p.B <= 0 || p.C <= 0 {
		return v, o, NewError(InvalidGeometry, fmt.Sprintf("lattice lengths must be positive: %g %g %g", p.A, p.B, p.C), "vectors")
	}
	for _, ang := range []float64{p.Alpha, p.Beta, p.Gamma} {
		if !(ang > 0 && ang < 180) {
			return v, o, NewError(InvalidGeometry, fmt.Sprintf("lattice angles must be in (0,180) degrees: %g %g %g", p.Alpha, p.Beta, p.Gamma), "vectors")
		}
	}
	ca, cb, cg := cosd(p.Alpha), cosd(p.Beta), cosd(p.Gamma)
	sg := math.Sin(p.Gamma * deg2Rad)
	cx := p.C * cb
	cy := p.C * (ca - cb*cg) / sg
	cz2 := p.C*p.C - cx*cx - cy*cy
	if cz2 <= tol*p.C*p.C {
		return v, o, NewError(InvalidGeometry, fmt.Sprintf("angles %g %g %g give a degenerate box", p.Alpha, p.Beta, p.Gamma), "vectors")
	}
	v[0] = [3]float64{p.A, 0, 0}
	v[1] = [3]float64{p.B * cg, p.B * sg, 0}
	v[2] = [3]float64{cx, cy, math.Sqrt(cz2)}
	o, err = toArray(p.Origin, "origin")
	return v, o, err
}

// cosd returns the cosine of an angle in degrees. The right angle is
// special-cased so normalized orthogonal boxes have exact zeros.
func cosd(deg float64) float64 {
	if deg == 90 {
		return 0
	}
	return math.Cos(deg * deg2Rad)
}

func (p *BoundParams) vectors() (v [3][3]float64, o [3]float64, err error) {
	if !(p.Xhi > p.Xlo && p.Yhi > p.Ylo && p.Zhi > p.Zlo) {
		return v, o, NewError(InvalidGeometry, fmt.Sprintf("hi bounds must be larger than lo bounds: %g %g %g %g %g %g", p.Xlo, p.Xhi, p.Ylo, p.Yhi, p.Zlo, p.Zhi), "vectors")
	}
	v[0] = [3]float64{p.Xhi - p.Xlo, 0, 0}
	v[1] = [3]float64{p.Xy, p.Yhi - p.Ylo, 0}
	v[2] = [3]float64{p.Xz, p.Yz, p.Zhi - p.Zlo}
	o = [3]float64{p.Xlo, p.Ylo, p.Zlo}
	return v, o, nil
}

func (p *LengthParams) vectors() (v [3][3]float64, o [3]float64, err error) {
	if !(p.Lx > 0 && p.Ly > 0 && p.Lz > 0) {
		return v, o, NewError(InvalidGeometry, fmt.Sprintf("lengths must be positive: %g %g %g", p.Lx, p.Ly, p.Lz), "vectors")
	}
	v[0] = [3]float64{p.Lx, 0, 0}
	v[1] = [3]float64{p.Xy, p.Ly, 0}
	v[2] = [3]float64{p.Xz, p.Yz, p.Lz}
	o, err = toArray(p.Origin, "origin")
	return v, o, err
}

//Normalized accessors. All of them fail with a NotNormalized error if
//the box is not in the lower triangular layout.

func (B *Box) normalized(caller string) error {
	if !B.IsNormalized() {
		return NewError(NotNormalized, "the a vector must lie on the x axis and b on the xy plane", caller)
	}
	return nil
}

// Bounds returns the LAMMPS bounds and tilt factors of a normalized box.
func (B *Box) Bounds() (*BoundParams, error) {
	if err := B.normalized("Bounds"); err != nil {
		return nil, err
	}
	v, o := B.vects, B.origin
	return &BoundParams{
		Xlo: o[0], Xhi: o[0] + v[0][0],
		Ylo: o[1], Yhi: o[1] + v[1][1],
		Zlo: o[2], Zhi: o[2] + v[2][2],
		Xy: v[1][0], Xz: v[2][0], Yz: v[2][1],
	}, nil
}

// Lengths returns the lengths and tilt factors of a normalized box.
func (B *Box) Lengths() (*LengthParams, error) {
	if err := B.normalized("Lengths"); err != nil {
		return nil, err
	}
	v := B.vects
	return &LengthParams{Lx: v[0][0], Ly: v[1][1], Lz: v[2][2], Xy: v[1][0], Xz: v[2][0], Yz: v[2][1], Origin: B.Origin()}, nil
}

func (B *Box) component(i, j int, caller string) (float64, error) {
	if err := B.normalized(caller); err != nil {
		return 0, err
	}
	return B.vects[i][j], nil
}

func (B *Box) hi(i int, caller string) (float64, error) {
	if err := B.normalized(caller); err != nil {
		return 0, err
	}
	return B.origin[i] + B.vects[i][i], nil
}

func (B *Box) lo(i int, caller string) (float64, error) {
	if err := B.normalized(caller); err != nil {
		return 0, err
	}
	return B.origin[i], nil
}

func (B *Box) Lx() (float64, error) { return B.component(0, 0, "Lx") }
func (B *Box) Ly() (float64, error) { return B.component(1, 1, "Ly") }
func (B *Box) Lz() (float64, error) { return B.component(2, 2, "Lz") }
func (B *Box) Xy() (float64, error) { return B.component(1, 0, "Xy") }
func (B *Box) Xz() (float64, error) { return B.component(2, 0, "Xz") }
func (B *Box) Yz() (float64, error) { return B.component(2, 1, "Yz") }

func (B *Box) Xlo() (float64, error) { return B.lo(0, "Xlo") }
func (B *Box) Ylo() (float64, error) { return B.lo(1, "Ylo") }
func (B *Box) Zlo() (float64, error) { return B.lo(2, "Zlo") }
func (B *Box) Xhi() (float64, error) { return B.hi(0, "Xhi") }
func (B *Box) Yhi() (float64, error) { return B.hi(1, "Yhi") }
func (B *Box) Zhi() (float64, error) { return B.hi(2, "Zhi") }
