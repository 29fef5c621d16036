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

import "math"

// RefTc is the temperature [°C] at which the reference viscosity used by
// ViscosityRatio is evaluated. The reference pressure is P0.
const RefTc = 15.0

// refViscosity is the viscosity of water at RefTc and P0 [Pa s].
var refViscosity = WaterViscosity(RefTc, P0)

// WaterDensity returns the density of liquid water [kg m-3] at temperature
// tc [°C] and pressure patm [Pa], using the Tumlirz equation with the
// coefficients of Chen et al. (1977), J. Chem. Phys. 66, 2142.
// The fit is valid for 0–100 °C.
func WaterDensity(tc, patm float64) float64 {
	tc2 := tc * tc
	tc3 := tc2 * tc
	tc4 := tc3 * tc

	// Lambda [bar cm3 g-1]
	lambda := 1788.316 + 21.55053*tc - 0.4695911*tc2 +
		3.096363e-3*tc3 - 7.341182e-6*tc4

	// Po [bar]
	po := 5918.499 + 58.05267*tc - 1.1253317*tc2 +
		6.6123869e-3*tc3 - 1.4661625e-5*tc4

	// Specific volume at infinite pressure [cm3 g-1]
	vinf := 0.6980547 - 7.435626e-4*tc + 3.704258e-5*tc2 -
		6.315724e-7*tc3 + 9.829576e-9*tc4 -
		1.197269e-10*math.Pow(tc, 5) + 1.005461e-12*math.Pow(tc, 6) -
		5.437898e-15*math.Pow(tc, 7) + 1.69946e-17*math.Pow(tc, 8) -
		2.295063e-20*math.Pow(tc, 9)

	pbar := 1.0e-5 * patm
	v := vinf + lambda/(po+pbar) // [cm3 g-1]
	return 1.0e3 / v
}

// Critical point constants and the coefficient table of Huber et al. (2009),
// J. Phys. Chem. Ref. Data 38, 101, Table 3. huber[i][j] multiplies
// (1/T̄ - 1)^i (ρ̄ - 1)^j.
const (
	tkCritical  = 647.096 // [K]
	rhoCritical = 322.0   // [kg m-3]
	muRef       = 1.0e-6  // [Pa s]
)

var huber = [6][7]float64{
	{0.520094, 0.222531, -0.281378, 0.161913, -0.0325372, 0, 0},
	{0.0850895, 0.999115, -0.906851, 0.257399, 0, 0, 0},
	{-1.08374, 1.88797, -0.772479, 0, 0, 0, 0},
	{-0.289555, 1.26613, -0.489837, 0, 0.0698452, 0, -0.00435673},
	{0, 0, -0.25704, 0, 0, 0.00872102, 0},
	{0, 0.120573, 0, 0, 0, 0, -0.000593264},
}

// WaterViscosity returns the dynamic viscosity of liquid water [Pa s] at
// temperature tc [°C] and pressure patm [Pa], following the international
// formulation of Huber et al. (2009) equations 10–12, with density from
// WaterDensity.
func WaterViscosity(tc, patm float64) float64 {
	rho := WaterDensity(tc, patm)

	tbar := Kelvin(tc) / tkCritical
	rbar := rho / rhoCritical

	// Viscosity in the dilute-gas limit, eq. 11.
	mu0 := 1.67752 + 2.20462/tbar + 0.6366564/(tbar*tbar) - 0.241605/(tbar*tbar*tbar)
	mu0 = 1.0e2 * math.Sqrt(tbar) / mu0

	// Contribution from finite density, eq. 12.
	ctbar := 1/tbar - 1
	var mu1 float64
	for i, row := range huber {
		coef1 := math.Pow(ctbar, float64(i))
		var coef2 float64
		for j, h := range row {
			coef2 += h * math.Pow(rbar-1, float64(j))
		}
		mu1 += coef1 * coef2
	}
	mu1 = math.Exp(rbar * mu1)

	return mu0 * mu1 * muRef
}

// ViscosityRatio returns ns_star, the viscosity of water at tc [°C] and
// patm [Pa] relative to its viscosity at RefTc and standard pressure.
// It scales the unit cost of transpiration.
func ViscosityRatio(tc, patm float64) float64 {
	return WaterViscosity(tc, patm) / refViscosity
}
