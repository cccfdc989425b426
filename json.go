/*
 * json.go, part of gobox.
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
	"encoding/json"
)

type jsonBox struct {
	AVect     []float64 `json:"avect"`
	BVect     []float64 `json:"bvect"`
	CVect     []float64 `json:"cvect"`
	Origin    []float64 `json:"origin"`
	Tolerance *float64  `json:"tolerance,omitempty"`
}

// MarshalJSON encodes the box vectors, origin and tolerance.
func (B *Box) MarshalJSON() ([]byte, error) {
	t := B.tol
	return json.Marshal(jsonBox{
		AVect:     B.AVect(),
		BVect:     B.BVect(),
		CVect:     B.CVect(),
		Origin:    B.Origin(),
		Tolerance: &t,
	})
}

// UnmarshalJSON sets the box from its JSON representation. Setting the
// vectors is a complete redefinition, so the usual checks apply.
// If no tolerance is given, the box keeps its own (or the default one, for a
// zero Box).
func (B *Box) UnmarshalJSON(b []byte) error {
	var j jsonBox
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	prev := B.tol
	if j.Tolerance != nil && *j.Tolerance >= 0 {
		B.tol = *j.Tolerance
	} else if B.tol == 0 && B.Volume() == 0 {
		B.tol = DefaultConfig().Tolerance
	}
	if err := B.SetVectors(j.AVect, j.BVect, j.CVect, j.Origin); err != nil {
		B.tol = prev
		return ErrDecorate(err, "UnmarshalJSON")
	}
	return nil
}
