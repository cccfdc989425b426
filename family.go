/*
 * family.go, part of gobox.
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

import "math"

// Family is a crystal family.
type Family string

const (
	FamilyCubic        Family = "cubic"
	FamilyHexagonal    Family = "hexagonal"
	FamilyTetragonal   Family = "tetragonal"
	FamilyRhombohedral Family = "rhombohedral"
	FamilyOrthorhombic Family = "orthorhombic"
	FamilyMonoclinic   Family = "monoclinic"
	FamilyTriclinic    Family = "triclinic"
	FamilyNone         Family = "none"
)

// IdentifyFamily returns the crystal family that corresponds to the lattice
// parameters a, b, c, alpha, beta, gamma (angles in degrees), or FamilyNone if
// none does. Two values are considered equal if they differ by at most tol.
// The families are tested in the order cubic, hexagonal, tetragonal,
// rhombohedral, orthorhombic, monoclinic, triclinic.
func IdentifyFamily(a, b, c, alpha, beta, gamma, tol float64) Family {
	l := lattice{a, b, c, alpha, beta, gamma, tol}
	switch {
	case l.cubic():
		return FamilyCubic
	case l.hexagonal():
		return FamilyHexagonal
	case l.tetragonal():
		return FamilyTetragonal
	case l.rhombohedral():
		return FamilyRhombohedral
	case l.orthorhombic():
		return FamilyOrthorhombic
	case l.monoclinic():
		return FamilyMonoclinic
	case l.triclinic():
		return FamilyTriclinic
	}
	return FamilyNone
}

type lattice struct {
	a, b, c, alpha, beta, gamma, tol float64
}

func (l lattice) eq(x, y float64) bool {
	return math.Abs(x-y) <= l.tol
}

func (l lattice) rightAngles() bool {
	return l.eq(l.alpha, 90) && l.eq(l.beta, 90) && l.eq(l.gamma, 90)
}

func (l lattice) distinctLengths() bool {
	return !l.eq(l.a, l.b) && !l.eq(l.b, l.c) && !l.eq(l.a, l.c)
}

// a = b = c, alpha = beta = gamma = 90
func (l lattice) cubic() bool {
	return l.eq(l.a, l.b) && l.eq(l.b, l.c) && l.rightAngles()
}

// a = b != c, alpha = beta = 90, gamma = 120
func (l lattice) hexagonal() bool {
	return l.eq(l.a, l.b) && !l.eq(l.a, l.c) && l.eq(l.alpha, 90) && l.eq(l.beta, 90) && l.eq(l.gamma, 120)
}

// a = b != c, alpha = beta = gamma = 90
func (l lattice) tetragonal() bool {
	return l.eq(l.a, l.b) && !l.eq(l.a, l.c) && l.rightAngles()
}

// a = b = c, alpha = beta = gamma != 90
func (l lattice) rhombohedral() bool {
	return l.eq(l.a, l.b) && l.eq(l.b, l.c) && l.eq(l.alpha, l.beta) && l.eq(l.beta, l.gamma) && !l.eq(l.alpha, 90)
}

// a != b != c, alpha = beta = gamma = 90
func (l lattice) orthorhombic() bool {
	return l.distinctLengths() && l.rightAngles()
}

// a != b != c, alpha = gamma = 90, beta != 90
func (l lattice) monoclinic() bool {
	return l.distinctLengths() && l.eq(l.alpha, 90) && l.eq(l.gamma, 90) && !l.eq(l.beta, 90)
}

// a != b != c, alpha != beta != gamma, none of them 90
func (l lattice) triclinic() bool {
	return l.distinctLengths() && !l.eq(l.alpha, l.beta) && !l.eq(l.beta, l.gamma) && !l.eq(l.alpha, l.gamma) &&
		!l.eq(l.alpha, 90) && !l.eq(l.beta, 90) && !l.eq(l.gamma, 90)
}

//Per-family predicates on a box, using the tolerance of the box.

func (B *Box) lattice() lattice {
	return lattice{B.A(), B.B(), B.C(), B.Alpha(), B.Beta(), B.Gamma(), B.tol}
}

func (B *Box) IsCubic() bool        { return B.lattice().cubic() }
func (B *Box) IsHexagonal() bool    { return B.lattice().hexagonal() }
func (B *Box) IsTetragonal() bool   { return B.lattice().tetragonal() }
func (B *Box) IsRhombohedral() bool { return B.lattice().rhombohedral() }
func (B *Box) IsOrthorhombic() bool { return B.lattice().orthorhombic() }
func (B *Box) IsMonoclinic() bool   { return B.lattice().monoclinic() }
func (B *Box) IsTriclinic() bool    { return B.lattice().triclinic() }
