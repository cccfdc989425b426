/*
 * box_test.go, part of gobox.
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
	"errors"
	"fmt"
	"math"
	"testing"

	v3 "github.com/rmera/gobox/v3"
	"gonum.org/v1/gonum/floats"
)

const testtol = 1e-9

func TestLatticeRoundTrip(Te *testing.T) {
	cases := [][6]float64{
		{1, 1, 1, 90, 90, 90},
		{3.2, 3.2, 5.1, 90, 90, 120},
		{2.5, 4.1, 6.3, 80, 95, 110},
		{4, 4, 4, 60, 60, 60},
		{1, 2, 3, 45, 50, 60},
		{7.1, 2.2, 1.3, 120, 110, 100},
		{1e-4, 1e-4, 1e-4, 80, 85, 95},
		{3e-10, 4e-10, 5e-10, 70, 80, 100},
	}
	for _, c := range cases {
		B, err := FromLattice(c[0], c[1], c[2], c[3], c[4], c[5])
		if err != nil {
			Te.Fatalf("%v: %v", c, err)
		}
		got := []float64{B.A(), B.B(), B.C(), B.Alpha(), B.Beta(), B.Gamma()}
		if !floats.EqualApprox(got, c[:], testtol) {
			Te.Errorf("lattice parameters not reproduced. Given %v, got %v", c, got)
		}
		if !B.IsNormalized() || !B.IsRightHanded() {
			Te.Errorf("a box built from lattice parameters should be normalized and right handed: %v", B)
		}
	}
}

func TestLatticeInvalid(Te *testing.T) {
	cases := [][6]float64{
		{0, 1, 1, 90, 90, 90},
		{1, -1, 1, 90, 90, 90},
		{1, 1, 1, 0, 90, 90},
		{1, 1, 1, 90, 180, 90},
		{1, 1, 1, 90, 90, 200},
		{1, 1, 1, 10, 80, 90}, //no room for c
	}
	for _, c := range cases {
		_, err := FromLattice(c[0], c[1], c[2], c[3], c[4], c[5])
		if !errors.Is(err, ErrInvalidGeometry) {
			Te.Errorf("%v should give an invalid geometry error, got %v", c, err)
		}
	}
	if _, err := FromLattice(1, 1, 1, 90, 90, 90, 90); !errors.Is(err, ErrInvalidGeometry) {
		Te.Errorf("4 angles should not be accepted, got %v", err)
	}
}

func TestBoundsRoundTrip(Te *testing.T) {
	given := BoundParams{Xlo: -2.5, Xhi: 7.25, Ylo: 1, Yhi: 3.5, Zlo: -8, Zhi: 0.5, Xy: 0.5, Xz: -1.25, Yz: 0.75}
	B, err := FromBounds(given.Xlo, given.Xhi, given.Ylo, given.Yhi, given.Zlo, given.Zhi, given.Xy, given.Xz, given.Yz)
	if err != nil {
		Te.Fatal(err)
	}
	got, err := B.Bounds()
	if err != nil {
		Te.Fatal(err)
	}
	if *got != given {
		Te.Errorf("bounds not reproduced exactly. Given %+v, got %+v", given, *got)
	}
	xhi, err := B.Xhi()
	if err != nil || xhi != 7.25 {
		Te.Errorf("Xhi should be 7.25, got %f, %v", xhi, err)
	}
	yz, _ := B.Yz()
	if yz != 0.75 {
		Te.Errorf("Yz should be 0.75, got %f", yz)
	}
	if !floats.Equal(B.Origin(), []float64{-2.5, 1, -8}) {
		Te.Errorf("origin should be the lo bounds, got %v", B.Origin())
	}
	if _, err := FromBounds(1, 1, 0, 1, 0, 1); !errors.Is(err, ErrInvalidGeometry) {
		Te.Errorf("xhi == xlo should be invalid, got %v", err)
	}
}

func TestLengths(Te *testing.T) {
	B, err := FromLengths(2, 3, 4, 0.5)
	if err != nil {
		Te.Fatal(err)
	}
	if !B.IsNormalized() {
		Te.Error("a box from lengths and tilts should be normalized")
	}
	l, err := B.Lengths()
	if err != nil {
		Te.Fatal(err)
	}
	if l.Lx != 2 || l.Ly != 3 || l.Lz != 4 || l.Xy != 0.5 || l.Xz != 0 || l.Yz != 0 {
		Te.Errorf("wrong lengths and tilts: %+v", l)
	}
	o := []float64{1, 2, 3}
	if err = B.Set(Params{Lengths: &LengthParams{Lx: 1, Ly: 1, Lz: 1, Origin: o}}); err != nil {
		Te.Fatal(err)
	}
	zlo, _ := B.Zlo()
	zhi, _ := B.Zhi()
	if zlo != 3 || zhi != 4 {
		Te.Errorf("zlo, zhi should be 3, 4, got %f, %f", zlo, zhi)
	}
	if err = B.SetLengths(1, 1, 1, 0, 0, 0, 0); !errors.Is(err, ErrInvalidGeometry) {
		Te.Errorf("4 tilts should not be accepted, got %v", err)
	}
}

func TestNotNormalized(Te *testing.T) {
	B, err := FromVectors([]float64{1, 0.5, 0}, []float64{0, 1, 0}, []float64{0, 0, 1})
	if err != nil {
		Te.Fatal(err)
	}
	if B.IsNormalized() || B.IsRightHanded() {
		Te.Error("a vector with a y component should not be normalized")
	}
	for name, f := range map[string]func() (float64, error){
		"Lx": B.Lx, "Ly": B.Ly, "Lz": B.Lz, "Xy": B.Xy, "Xz": B.Xz, "Yz": B.Yz,
		"Xlo": B.Xlo, "Xhi": B.Xhi, "Ylo": B.Ylo, "Yhi": B.Yhi, "Zlo": B.Zlo, "Zhi": B.Zhi,
	} {
		if _, err := f(); !errors.Is(err, ErrNotNormalized) {
			Te.Errorf("%s should fail on a non normalized box, got %v", name, err)
		}
	}
	if _, err := B.Bounds(); !errors.Is(err, ErrNotNormalized) {
		Te.Errorf("Bounds should fail on a non normalized box, got %v", err)
	}
	B2, _ := FromVectors([]float64{1, 0, 0}, []float64{0, 1, 0.1}, []float64{0, 0, 1})
	if B2.IsNormalized() {
		Te.Error("b with a z component should not be normalized")
	}
	//tolerance is configurable
	B2.Tolerance(0.2)
	if !B2.IsNormalized() {
		Te.Error("with tolerance 0.2, a b vector with z=0.1 should be normalized")
	}
}

func TestHandedness(Te *testing.T) {
	B, err := FromVectors([]float64{1, 0, 0}, []float64{0, 1, 0}, []float64{0, 0, -1})
	if err != nil {
		Te.Fatal(err)
	}
	if !B.IsNormalized() {
		Te.Error("box should be normalized")
	}
	if B.IsRightHanded() {
		Te.Error("box with c along -z is not right handed")
	}
	if B.Volume() != -1 {
		Te.Errorf("volume should be -1, got %f", B.Volume())
	}
}

func TestDegenerate(Te *testing.T) {
	B := New()
	before := B.String()
	err := B.SetVectors([]float64{1, 0, 0}, []float64{2, 0, 0}, []float64{0, 0, 1})
	if !errors.Is(err, ErrInvalidGeometry) {
		Te.Errorf("parallel vectors should be rejected, got %v", err)
	}
	if B.String() != before {
		Te.Error("a failed set should leave the box unchanged")
	}
	if err = B.SetVectors([]float64{1, 0}, []float64{0, 1, 0}, []float64{0, 0, 1}); !errors.Is(err, ErrInvalidGeometry) {
		Te.Errorf("a 2-component vector should be rejected, got %v", err)
	}
	var gerr *Error
	if errors.As(err, &gerr) {
		fmt.Println("decoration:", gerr.Trace())
		if gerr.Kind() != InvalidGeometry {
			Te.Errorf("wrong kind %s", gerr.Kind())
		}
	} else {
		Te.Error("errors should be *box.Error")
	}
	if _, err = FromLengths(3e-10, 2e-10, 1e-10); err != nil {
		Te.Errorf("a small box is not degenerate: %v", err)
	}
	if err = new(Box).Check(); !errors.Is(err, ErrInvalidGeometry) {
		Te.Errorf("the zero value of Box should not pass the check, got %v", err)
	}
	if err = New().Check(); err != nil {
		Te.Errorf("the unit cube should pass the check, got %v", err)
	}
}

func TestAmbiguous(Te *testing.T) {
	B := New()
	lat, _ := Lattice(1, 1, 1)
	err := B.Set(Params{Lattice: lat, Lengths: &LengthParams{Lx: 1, Ly: 1, Lz: 1}})
	if !errors.Is(err, ErrAmbiguousParameters) {
		Te.Errorf("two parameter sets should be ambiguous, got %v", err)
	}
	if err = B.Set(Params{}); !errors.Is(err, ErrAmbiguousParameters) {
		Te.Errorf("no parameter set should be ambiguous, got %v", err)
	}
	if err = B.Set(Params{Lattice: lat}); err != nil {
		Te.Error(err)
	}
}

func TestFamilies(Te *testing.T) {
	cases := []struct {
		p    [6]float64
		want Family
	}{
		{[6]float64{3, 3, 3, 90, 90, 90}, FamilyCubic},
		{[6]float64{3, 3, 5, 90, 90, 120}, FamilyHexagonal},
		{[6]float64{3, 3, 5, 90, 90, 90}, FamilyTetragonal},
		{[6]float64{3, 3, 3, 70, 70, 70}, FamilyRhombohedral},
		{[6]float64{3, 4, 5, 90, 90, 90}, FamilyOrthorhombic},
		{[6]float64{3, 4, 5, 90, 100, 90}, FamilyMonoclinic},
		{[6]float64{3, 4, 5, 80, 100, 110}, FamilyTriclinic},
		{[6]float64{3, 3, 5, 90, 100, 90}, FamilyNone},
	}
	for _, c := range cases {
		p := c.p
		if f := IdentifyFamily(p[0], p[1], p[2], p[3], p[4], p[5], testtol); f != c.want {
			Te.Errorf("%v should be %s, got %s", p, c.want, f)
		}
		B, err := FromLattice(p[0], p[1], p[2], p[3], p[4], p[5])
		if err != nil {
			Te.Fatal(err)
		}
		if f := B.Family(); f != c.want {
			Te.Errorf("box from %v should be %s, got %s", p, c.want, f)
		}
	}
	B, _ := Cubic(2)
	if !B.IsCubic() || B.IsTetragonal() || B.IsOrthorhombic() {
		Te.Error("predicates for a cubic box are wrong")
	}
}

func TestRelative(Te *testing.T) {
	B, err := FromBounds(1, 3, -1, 1, 0, 4, 0.5, 0.25, -0.5)
	if err != nil {
		Te.Fatal(err)
	}
	pos, _ := v3.NewMatrix([]float64{1, -1, 0, 2.2, 0.3, 1.7, 3.75, 0.5, 4, 10, 10, 10})
	rel := B.ToRelative(pos)
	if !floats.EqualApprox(rel.RawRowView(0), []float64{0, 0, 0}, testtol) {
		Te.Errorf("the origin should be (0,0,0) in relative coordinates, got %v", rel.RawRowView(0))
	}
	back := B.ToCartesian(rel)
	for i := 0; i < pos.NVecs(); i++ {
		if !floats.EqualApprox(back.RawRowView(i), pos.RawRowView(i), testtol) {
			Te.Errorf("cartesian->relative->cartesian changed point %d: %v vs %v", i, pos.RawRowView(i), back.RawRowView(i))
		}
	}
	in := B.Inside(pos)
	if !in[0] || !in[1] || !in[2] || in[3] {
		Te.Errorf("wrong Inside result: %v", in)
	}
	w := B.Wrap(pos, Periodic)
	if !B.Inside(w)[3] {
		Te.Error("a wrapped point should be inside the box")
	}
	recip := B.ReciprocalArray()
	vects, _ := B.Array()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d := floats.Dot(recip[i][:], vects[j][:])
			if math.Abs(d-kronecker(i, j)) > testtol {
				Te.Errorf("reciprocal vector %d times vector %d should be delta_ij, got %f", i, j, d)
			}
		}
	}
}

func kronecker(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}

func TestAxesCheck(Te *testing.T) {
	ax, _ := v3.NewMatrix([]float64{2, 0, 0, 0, 3, 0, 0, 0, 1})
	u, err := AxesCheck(ax, testtol)
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(u.RawRowView(1), []float64{0, 1, 0}) {
		Te.Errorf("axes should be normalized, got %v", u)
	}
	left, _ := v3.NewMatrix([]float64{1, 0, 0, 0, 0, 1, 0, 1, 0})
	if _, err = AxesCheck(left, testtol); !errors.Is(err, ErrInvalidGeometry) {
		Te.Errorf("left handed axes should be rejected, got %v", err)
	}
	skew, _ := v3.NewMatrix([]float64{1, 0, 0, 1, 1, 0, 0, 0, 1})
	if _, err = AxesCheck(skew, testtol); !errors.Is(err, ErrInvalidGeometry) {
		Te.Errorf("non-orthogonal axes should be rejected, got %v", err)
	}
	if a := VectAngle([]float64{1, 0, 0}, []float64{0, 0, 3}); math.Abs(a-90) > testtol {
		Te.Errorf("angle between x and z should be 90, got %f", a)
	}
}

func TestJSON(Te *testing.T) {
	B, _ := FromLattice(3, 4, 5, 80, 100, 110)
	B.Tolerance(1e-6)
	j, err := json.Marshal(B)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(string(j))
	B2 := new(Box)
	if err = json.Unmarshal(j, B2); err != nil {
		Te.Fatal(err)
	}
	if B2.String() != B.String() || B2.Tolerance() != 1e-6 {
		Te.Errorf("JSON round trip changed the box:\n%v\n%v", B, B2)
	}
	bad := []byte(`{"avect":[1,0,0],"bvect":[1,0,0],"cvect":[0,0,1],"origin":[0,0,0]}`)
	if err = json.Unmarshal(bad, B2); !errors.Is(err, ErrInvalidGeometry) {
		Te.Errorf("degenerate JSON box should be rejected, got %v", err)
	}
}

func TestConfig(Te *testing.T) {
	Te.Setenv("GOBOX_TOLERANCE", "1e-5")
	Te.Setenv("GOBOX_CPUS", "3")
	cfg, err := LoadConfig()
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.Tolerance != 1e-5 || cfg.Cpus != 3 {
		Te.Errorf("config not read from the environment: %+v", cfg)
	}
	Te.Setenv("GOBOX_TOLERANCE", "notanumber")
	cfg, err = LoadConfig()
	if err == nil || cfg.Tolerance != DefaultTolerance {
		Te.Errorf("a bad tolerance should give an error and the defaults, got %+v, %v", cfg, err)
	}
}
