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
Package v3 implements a Matrix type representing a row-major 3D matrix (i.e. a Nx3 matrix).
The v3.Matrix is used to represent the cartesian (or box-relative) coordinates of sets of
points in gobox, and also the three lattice vectors of a simulation box.
It is based on gonum's Dense type, with some additional restrictions because of the fixed
number of columns and with some additional functions that were found useful for periodic
geometry.

Within the package it is understood that a "vector" is a row vector, i.e. the
coordinates of a point in 3D space. The name of some functions in the library reflect this.
*/
package v3
