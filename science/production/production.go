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

// Package production predicts gross primary production (GPP) by combining
// the least-cost CO2 ratio with the coordination hypothesis, under which
// the light- and Rubisco-limited rates of photosynthesis are equal at the
// typical daytime operating point (Wang et al. 2017, Nat. Plants 3,
// 734–741; Stocker et al. 2020, Geosci. Model Dev. 13, 1545–1581).
//
// GPP has the units of the photon flux supplied, converted to carbon:
// if PPFD is in mol m-2 month-1, GPP is in gC m-2 month-1.
package production

import (
	"math"

	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/environ"
	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/kinetics"
	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/leastcost"
)

// CStar is the unit cost of maintaining electron transport capacity
// (Jmax), relative to the carbon gained.
const CStar = 0.41

// QuantumEfficiency returns the maximum quantum efficiency of
// photosynthesis [gC mol-1 photons] at temperature tc [°C], for the
// intrinsic quantum yield cphi. The temperature dependence follows
// Bernacchi et al. (2003).
func QuantumEfficiency(tc, cphi float64) float64 {
	return cphi * (0.352 + 0.022*tc - 3.4e-4*tc*tc) * environ.Mc
}

// CO2Limitation returns m, the CO2 limitation factor of light-limited
// assimilation, for a stomatal-basis environment e and cost ratio beta.
func CO2Limitation(e leastcost.Env, beta float64) float64 {
	sq := math.Sqrt(leastcost.DiffusivityRatio * e.NsStar * e.VPD / beta / (e.K + e.Gstar))
	return (e.Ca - e.Gstar) / (e.Ca + 2*e.Gstar + 3*e.Gstar*sq)
}

// LightLimitation returns m' = m sqrt(1 - (c*/m)^(2/3)), the factor that
// accounts for the cost of electron transport capacity.
// When m < c*, or m is not a number, no viable operating point exists and
// the result is 0.
func LightLimitation(m float64) float64 {
	mp := m * math.Sqrt(1-math.Pow(CStar/m, 2.0/3.0))
	if math.IsNaN(mp) {
		return 0
	}
	return mp
}

// LUE returns the light use efficiency [gC mol-1 photons] at temperature
// tc [°C], elevation elv [m], ambient CO2 ca [ppm] and vapour pressure
// deficit vpd [kPa], for intrinsic quantum yield cphi and cost ratio beta.
func LUE(tc, elv, ca, vpd, cphi, beta float64) float64 {
	e := leastcost.NewEnv(tc, elv, vpd, ca, kinetics.Stomatal)
	return LightLimitation(CO2Limitation(e, beta)) * QuantumEfficiency(tc, cphi)
}

// GPP returns gross primary production for a photosynthetic photon flux
// density ppfd and a fraction of absorbed PAR fapar (0–1).
// It is zero when no viable operating point exists.
func GPP(tc, elv, ca, vpd, ppfd, fapar, cphi, beta float64) float64 {
	return LUE(tc, elv, ca, vpd, cphi, beta) * fapar * ppfd
}
