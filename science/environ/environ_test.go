/*
Copyright © 2020 the LCC authors.
This file is part of LCC.

LCC is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

LCC is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with LCC.  If not, see <http://www.gnu.org/licenses/>.
*/

package environ

import (
	"math"
	"testing"

	"github.com/ctessum/unit"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestAtmosphericPressure(t *testing.T) {
	if p := AtmosphericPressure(0); p != P0 {
		t.Errorf("sea level pressure = %g, should be exactly %g", p, P0)
	}
	if p := AtmosphericPressure(1000); different(p, 89875, 1.e-3) {
		t.Errorf("pressure at 1000 m = %g, should be about 89875", p)
	}
	last := AtmosphericPressure(0)
	for elv := 10.; elv <= 5000; elv += 10 {
		p := AtmosphericPressure(elv)
		if !(p < last) {
			t.Fatalf("pressure should decrease with elevation: p(%g)=%g, previous %g", elv, p, last)
		}
		last = p
	}
	if p := AtmosphericPressure(50000); !math.IsNaN(p) {
		t.Errorf("pressure above the formula's range should be NaN, got %g", p)
	}
}

func TestArrheniusFactor(t *testing.T) {
	if f := ArrheniusFactor(TkRef, 37830, TkRef); f != 1 {
		t.Errorf("factor at the reference temperature should be 1, got %g", f)
	}
	if f := Arrhenius25(Kelvin(30), 37830); !(f > 1) {
		t.Errorf("factor above the reference temperature should exceed 1, got %g", f)
	}
	if f := Arrhenius25(Kelvin(10), 37830); !(f < 1) {
		t.Errorf("factor below the reference temperature should be below 1, got %g", f)
	}
	want := math.Exp(79430 * (Kelvin(20) - 298.15) / (298.15 * 8.3145 * Kelvin(20)))
	if f := Arrhenius25(Kelvin(20), 79430); different(f, want, 1.e-12) {
		t.Errorf("factor = %g, want %g", f, want)
	}
}

func TestWater(t *testing.T) {
	tests := []struct {
		tc, patm       float64
		density, visco float64
	}{
		{tc: 15, patm: P0, density: 999.1, visco: 1.138e-3},
		{tc: 25, patm: P0, density: 997.05, visco: 0.890e-3},
		{tc: 40, patm: P0, density: 992.2, visco: 0.653e-3},
	}
	for _, test := range tests {
		if rho := WaterDensity(test.tc, test.patm); different(rho, test.density, 1.e-3) {
			t.Errorf("density(%g, %g) = %g, want %g", test.tc, test.patm, rho, test.density)
		}
		if mu := WaterViscosity(test.tc, test.patm); different(mu, test.visco, 5.e-3) {
			t.Errorf("viscosity(%g, %g) = %g, want %g", test.tc, test.patm, mu, test.visco)
		}
	}
}

func TestViscosityRatio(t *testing.T) {
	if ns := ViscosityRatio(RefTc, P0); ns != 1 {
		t.Errorf("ratio at the reference state should be 1, got %g", ns)
	}
	// Warmer water is less viscous.
	if ns := ViscosityRatio(25, P0); !(ns < 1) {
		t.Errorf("ratio at 25 °C should be below 1, got %g", ns)
	}
}

func TestConversions(t *testing.T) {
	if ca := CO2PPMToPa(400, P0); different(ca, 40.53, 1.e-12) {
		t.Errorf("ca = %g Pa, want 40.53", ca)
	}
	if v := VPDToPa(1.2); v != 1200 {
		t.Errorf("vpd = %g Pa, want 1200", v)
	}
	if tk := Kelvin(-273.15); tk != 0 {
		t.Errorf("absolute zero = %g K", tk)
	}
}

func TestUnits(t *testing.T) {
	p, err := PressureAt(unit.New(0, unit.Meter))
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Check(unit.Pascal); err != nil {
		t.Error(err)
	}
	if p.Value() != P0 {
		t.Errorf("pressure = %v, want %g", p, P0)
	}
	if _, err := PressureAt(unit.New(0, unit.Second)); err == nil {
		t.Error("elevation in seconds should be rejected")
	}

	ca, err := PartialPressure(400, p)
	if err != nil {
		t.Fatal(err)
	}
	if different(ca.Value(), 40.53, 1.e-12) {
		t.Errorf("ca = %v", ca)
	}
	if _, err := PartialPressure(400, unit.New(P0, unit.Meter)); err == nil {
		t.Error("pressure in meters should be rejected")
	}

	tk := unit.New(Kelvin(15), unit.Kelvin)
	mu, err := Viscosity(tk, p)
	if err != nil {
		t.Fatal(err)
	}
	if err := mu.Check(PascalSecond); err != nil {
		t.Error(err)
	}
	if different(mu.Value(), WaterViscosity(15, P0), 1.e-12) {
		t.Errorf("viscosity = %v", mu)
	}
	rho, err := Density(tk, p)
	if err != nil {
		t.Fatal(err)
	}
	if err := rho.Check(unit.KilogramPerMeter3); err != nil {
		t.Error(err)
	}
	if _, err := Viscosity(p, tk); err == nil {
		t.Error("swapped temperature and pressure should be rejected")
	}
}
