/*
 * doc.go, part of gobox.
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

/*
Package box is the main package of the gobox library. It provides the periodic
simulation cell used in atomistic simulations, and the geometric substrate that
analyses of such simulations are built on.

	**gobox Capabilities**

	Represents a parallelepiped simulation box given by three lattice vectors and
	an origin. The box can be set from any of four equivalent parameter sets: the
	vectors themselves, the lattice parameters (a, b, c, alpha, beta, gamma), the
	LAMMPS-style bounds (xlo, xhi, ylo, yhi, zlo, zhi, xy, xz, yz) or the lengths
	and tilt factors. Each set is a complete redefinition of the box.

	Reads back lengths, angles, and, for boxes in the normalized (lower
	triangular) layout, the LAMMPS bounds and tilt factors.

	Classifies the box into a crystal family.

	Converts between cartesian and box-relative coordinates, wraps points
	into the box.

	Computes the shortest (minimum image) vectors between points in a box
	with any combination of periodic axes (package dvect).

	Builds cell-linked neighbor lists (package nlist).

All comparisons (normalization, handedness, crystal family) use one absolute
tolerance per box, see Box.Tolerance. The default is read from the environment
(GOBOX_TOLERANCE) the first time it is needed.

gobox uses the v3.Matrix type (package v3), a Nx3 gonum Dense, for sets of
points and for the box vectors. Each row of a v3.Matrix is one point in space.
*/
package box
