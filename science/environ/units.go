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
	"fmt"

	"github.com/ctessum/unit"
)

// PascalSecond is the dimension of dynamic viscosity [kg m-1 s-1].
var PascalSecond = unit.Dimensions{
	unit.MassDim:   1,
	unit.LengthDim: -1,
	unit.TimeDim:   -1,
}

// PressureAt is a dimension-checked version of AtmosphericPressure.
// elv must have dimensions of length; the result is in Pascals.
func PressureAt(elv *unit.Unit) (*unit.Unit, error) {
	if err := elv.Check(unit.Meter); err != nil {
		return nil, fmt.Errorf("environ: elevation: %v", err)
	}
	return unit.New(AtmosphericPressure(elv.Value()), unit.Pascal), nil
}

// PartialPressure converts a mole fraction [ppm] into a partial pressure
// at the atmospheric pressure patm, which must be in Pascals.
func PartialPressure(ppm float64, patm *unit.Unit) (*unit.Unit, error) {
	if err := patm.Check(unit.Pascal); err != nil {
		return nil, fmt.Errorf("environ: atmospheric pressure: %v", err)
	}
	return unit.New(CO2PPMToPa(ppm, patm.Value()), unit.Pascal), nil
}

// Density is a dimension-checked version of WaterDensity where t is
// an absolute temperature and patm is a pressure.
func Density(t, patm *unit.Unit) (*unit.Unit, error) {
	tc, p, err := checkTP(t, patm)
	if err != nil {
		return nil, err
	}
	return unit.New(WaterDensity(tc, p), unit.KilogramPerMeter3), nil
}

// Viscosity is a dimension-checked version of WaterViscosity where t is
// an absolute temperature and patm is a pressure.
func Viscosity(t, patm *unit.Unit) (*unit.Unit, error) {
	tc, p, err := checkTP(t, patm)
	if err != nil {
		return nil, err
	}
	return unit.New(WaterViscosity(tc, p), PascalSecond), nil
}

// checkTP validates temperature and pressure dimensions and returns the
// temperature in °C and the pressure in Pa.
func checkTP(t, patm *unit.Unit) (tc, p float64, err error) {
	if err = t.Check(unit.Kelvin); err != nil {
		return 0, 0, fmt.Errorf("environ: temperature: %v", err)
	}
	if err = patm.Check(unit.Pascal); err != nil {
		return 0, 0, fmt.Errorf("environ: atmospheric pressure: %v", err)
	}
	return t.Value() - ZeroCelsius, patm.Value(), nil
}
