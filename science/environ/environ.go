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

// Package environ provides the physical environment functions that the leaf
// models depend on: atmospheric pressure, temperature scaling of reaction
// rates, the density and viscosity of liquid water, and unit conversions for
// CO2 and vapour pressure deficit.
//
// All functions are pure and operate on float64 scalars. Out-of-range inputs
// are not checked; they propagate as NaN or Inf through the arithmetic.
package environ

import "math"

// Standard atmosphere and gas constants.
const (
	P0 = 101325.0 // standard sea-level pressure [Pa]
	T0 = 288.15   // standard sea-level temperature [K]

	lapseRate   = 0.0065   // temperature lapse rate [K m-1]
	gravity     = 9.80665  // gravitational acceleration [m s-2]
	molMassAir  = 0.028963 // molecular weight of dry air [kg mol-1]
	rPressure   = 8.3143   // universal gas constant used in the barometric formula [J mol-1 K-1]
	ZeroCelsius = 273.15   // [K]

	// R is the universal gas constant used for Arrhenius scaling [J mol-1 K-1].
	R = 8.3145

	// TkRef is the reference temperature for kinetic parameters [K].
	TkRef = 298.15

	// Mc is the molar mass of carbon [g mol-1].
	Mc = 12.0107
)

// AtmosphericPressure returns the atmospheric pressure [Pa] at elevation
// elv [m] above sea level, from the barometric formula for a standard
// atmosphere with a constant lapse rate (Allen et al., 1998, FAO 56 eq. 7).
// The result decreases monotonically with elevation and is only defined
// for elv < T0/L (about 44 km).
func AtmosphericPressure(elv float64) float64 {
	return P0 * math.Pow(1-lapseRate*elv/T0, gravity*molMassAir/(rPressure*lapseRate))
}

// ArrheniusFactor returns the multiplicative factor that scales a rate
// constant from the reference temperature tkRef [K] to the temperature tk [K],
// given an activation energy dHa [J mol-1].
func ArrheniusFactor(tk, dHa, tkRef float64) float64 {
	return math.Exp(dHa * (tk - tkRef) / (tkRef * R * tk))
}

// Arrhenius25 is ArrheniusFactor with the reference temperature set to 25 °C.
func Arrhenius25(tk, dHa float64) float64 {
	return ArrheniusFactor(tk, dHa, TkRef)
}

// Kelvin converts a temperature in degrees Celsius to Kelvin.
func Kelvin(tc float64) float64 { return tc + ZeroCelsius }

// CO2PPMToPa converts a CO2 mole fraction [ppm] into a partial
// pressure [Pa] at atmospheric pressure patm [Pa].
func CO2PPMToPa(ppm, patm float64) float64 {
	return 1.0e-6 * ppm * patm
}

// VPDToPa converts a vapour pressure deficit from kPa to Pa.
func VPDToPa(vpd float64) float64 { return vpd * 1000 }
