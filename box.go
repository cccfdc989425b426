/*
 * box.go, part of gobox.
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
)

// PBC holds the periodicity flags for the a, b and c directions.
type PBC [3]bool

var (
	Periodic    = PBC{true, true, true}
	NonPeriodic = PBC{false, false, false}
)

// Any returns true if at least one direction is periodic.
func (p PBC) Any() bool {
	return p[0] || p[1] || p[2]
}

// Box is a parallelepiped given by three lattice vectors, a, b and c,
// and an origin. A Box can only be changed by setting one complete
// parameter set (see Set), so the vectors are always linearly independent.
// A Box is not safe for concurrent modification. Readers can share it
// as long as nobody sets it.
type Box struct {
	vects  [3][3]float64 //rows are a, b and c
	origin [3]float64
	tol    float64
}

// New returns a unit cube with its origin at zero.
func New() *Box {
	B := &Box{tol: DefaultConfig().Tolerance}
	B.vects = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	return B
}

// Cubic returns a cubic box with lattice parameter a and its origin at zero.
func Cubic(a float64) (*Box, error) {
	return FromLengths(a, a, a)
}

// FromVectors returns a new Box with the given vectors and, optionally, origin.
func FromVectors(a, b, c []float64, origin ...[]float64) (*Box, error) {
	B := New()
	if err := B.SetVectors(a, b, c, origin...); err != nil {
		return nil, ErrDecorate(err, "FromVectors")
	}
	return B, nil
}

// FromLattice returns a new Box with the given lattice parameters. The
// angles (alpha, beta, gamma, in degrees) default to 90.
func FromLattice(a, b, c float64, angles ...float64) (*Box, error) {
	B := New()
	if err := B.SetLattice(a, b, c, angles...); err != nil {
		return nil, ErrDecorate(err, "FromLattice")
	}
	return B, nil
}

// FromBounds returns a new Box with the given LAMMPS-style bounds and,
// optionally, tilt factors xy, xz and yz, in that order.
func FromBounds(xlo, xhi, ylo, yhi, zlo, zhi float64, tilts ...float64) (*Box, error) {
	B := New()
	if err := B.SetBounds(xlo, xhi, ylo, yhi, zlo, zhi, tilts...); err != nil {
		return nil, ErrDecorate(err, "FromBounds")
	}
	return B, nil
}

// FromLengths returns a new Box with the given lengths and, optionally,
// tilt factors xy, xz and yz, in that order. The origin is zero.
func FromLengths(lx, ly, lz float64, tilts ...float64) (*Box, error) {
	B := New()
	if err := B.SetLengths(lx, ly, lz, tilts...); err != nil {
		return nil, ErrDecorate(err, "FromLengths")
	}
	return B, nil
}

// Copy returns a deep copy of the box.
func (B *Box) Copy() *Box {
	r := *B
	return &r
}

// Tolerance returns the absolute tolerance the box uses for its equality
// comparisons (normalization, handedness, crystal family, degeneracy),
// and sets it to a new value, if a non-negative one is given.
func (B *Box) Tolerance(t ...float64) float64 {
	if len(t) > 0 && t[0] >= 0 {
		B.tol = t[0]
	}
	return B.tol
}

//Setters. Each is a complete redefinition of the box.

// SetVectors sets the three box vectors and, optionally, the origin
// (zero if not given). Handedness is not checked, linear independence is.
func (B *Box) SetVectors(a, b, c []float64, origin ...[]float64) error {
	p := &VectorParams{A: a, B: b, C: c}
	if len(origin) > 0 {
		p.Origin = origin[0]
	}
	return ErrDecorate(B.Set(Params{Vectors: p}), "SetVectors")
}

// SetLattice sets the box from its lattice parameters. The angles alpha, beta and
// gamma (in degrees, in that order) default to 90. The resulting box is normalized
// and right handed: a lies on the x axis and b on the xy plane.
func (B *Box) SetLattice(a, b, c float64, angles ...float64) error {
	p, err := Lattice(a, b, c, angles...)
	if err != nil {
		return ErrDecorate(err, "SetLattice")
	}
	return ErrDecorate(B.Set(Params{Lattice: p}), "SetLattice")
}

// SetBounds sets the box from the LAMMPS-style bounds and, optionally, the tilt
// factors xy, xz and yz. The origin is (xlo, ylo, zlo).
func (B *Box) SetBounds(xlo, xhi, ylo, yhi, zlo, zhi float64, tilts ...float64) error {
	p := &BoundParams{Xlo: xlo, Xhi: xhi, Ylo: ylo, Yhi: yhi, Zlo: zlo, Zhi: zhi}
	if err := setTilts(tilts, &p.Xy, &p.Xz, &p.Yz); err != nil {
		return ErrDecorate(err, "SetBounds")
	}
	return ErrDecorate(B.Set(Params{Bounds: p}), "SetBounds")
}

// SetLengths sets the box from the lengths lx, ly, lz and, optionally,
// the tilt factors xy, xz and yz. The origin is zero. Use Set with a
// LengthParams to give another origin.
func (B *Box) SetLengths(lx, ly, lz float64, tilts ...float64) error {
	p := &LengthParams{Lx: lx, Ly: ly, Lz: lz}
	if err := setTilts(tilts, &p.Xy, &p.Xz, &p.Yz); err != nil {
		return ErrDecorate(err, "SetLengths")
	}
	return ErrDecorate(B.Set(Params{Lengths: p}), "SetLengths")
}

func setTilts(tilts []float64, xy, xz, yz *float64) error {
	if len(tilts) > 3 {
		return NewError(InvalidGeometry, fmt.Sprintf("%d tilt factors given, at most 3 (xy, xz, yz) expected", len(tilts)), "setTilts")
	}
	dst := []*float64{xy, xz, yz}
	for i, v := range tilts {
		*dst[i] = v
	}
	return nil
}

//Getters

// Vects returns a copy of the box vectors, as the rows of a 3x3 v3.Matrix.
func (B *Box) Vects() *v3.Matrix {
	m := v3.Zeros(3)
	for i := range B.vects {
		m.SetRow(i, B.vects[i][:])
	}
	return m
}

// AVect returns a copy of the a vector.
func (B *Box) AVect() []float64 { return vcopy(B.vects[0]) }

// BVect returns a copy of the b vector.
func (B *Box) BVect() []float64 { return vcopy(B.vects[1]) }

// CVect returns a copy of the c vector.
func (B *Box) CVect() []float64 { return vcopy(B.vects[2]) }

// Origin returns a copy of the origin of the box.
func (B *Box) Origin() []float64 { return vcopy(B.origin) }

// Array returns the box vectors and origin as arrays. Being values, they
// don't alias the box.
func (B *Box) Array() (vects [3][3]float64, origin [3]float64) {
	return B.vects, B.origin
}

func vcopy(v [3]float64) []float64 {
	r := make([]float64, 3)
	copy(r, v[:])
	return r
}

// A returns the length of the a vector.
func (B *Box) A() float64 { return floats.Norm(B.vects[0][:], 2) }

// B returns the length of the b vector.
func (B *Box) B() float64 { return floats.Norm(B.vects[1][:], 2) }

// C returns the length of the c vector.
func (B *Box) C() float64 { return floats.Norm(B.vects[2][:], 2) }

// Alpha returns the angle between the b and c vectors, in degrees.
func (B *Box) Alpha() float64 { return VectAngle(B.vects[1][:], B.vects[2][:]) }

// Beta returns the angle between the a and c vectors, in degrees.
func (B *Box) Beta() float64 { return VectAngle(B.vects[0][:], B.vects[2][:]) }

// Gamma returns the angle between the a and b vectors, in degrees.
func (B *Box) Gamma() float64 { return VectAngle(B.vects[0][:], B.vects[1][:]) }

// LatticeParams returns the lattice parameters of the box.
func (B *Box) LatticeParams() *LatticeParams {
	return &LatticeParams{A: B.A(), B: B.B(), C: B.C(), Alpha: B.Alpha(), Beta: B.Beta(), Gamma: B.Gamma(), Origin: B.Origin()}
}

// Volume returns the signed volume of the box, a·(b×c). It is positive for
// right handed boxes.
func (B *Box) Volume() float64 {
	bc := v3.Cross(B.vects[1][:], B.vects[2][:])
	return floats.Dot(B.vects[0][:], bc[:])
}

// Check returns an error with the InvalidGeometry kind if the box is degenerate,
// as the zero value of Box is.
func (B *Box) Check() error {
	if err := checkDegenerate(B.vects, B.tol); err != nil {
		return ErrDecorate(err, "Check")
	}
	return nil
}

// IsNormalized returns true if the box vectors are in the lower triangular
// (LAMMPS) layout, i.e. the y and z components of a and the z component of b are
// zero, within the tolerance of the box.
func (B *Box) IsNormalized() bool {
	t := B.tol
	return math.Abs(B.vects[0][1]) <= t && math.Abs(B.vects[0][2]) <= t && math.Abs(B.vects[1][2]) <= t
}

// IsRightHanded returns true if the box is normalized and a·(b×c) is positive.
// This is the condition for a box to be given to LAMMPS. Whether the tilt factors
// are small enough for LAMMPS is not checked.
func (B *Box) IsRightHanded() bool {
	return B.IsNormalized() && B.Volume() > 0
}

// IsLAMMPSNorm is an alias for IsRightHanded.
func (B *Box) IsLAMMPSNorm() bool {
	return B.IsRightHanded()
}

// Family returns the crystal family of the box, using the tolerance of the box.
func (B *Box) Family() Family {
	return IdentifyFamily(B.A(), B.B(), B.C(), B.Alpha(), B.Beta(), B.Gamma(), B.tol)
}

// String returns a representation of the box vectors and origin.
func (B *Box) String() string {
	f := func(name string, v [3]float64) string {
		return fmt.Sprintf("%-6s = [%10.4f, %10.4f, %10.4f]\n", name, v[0], v[1], v[2])
	}
	return f("avect", B.vects[0]) + f("bvect", B.vects[1]) + f("cvect", B.vects[2]) + f("origin", B.origin)
}
