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

// Package isotope predicts the discrimination against 13C during C3
// photosynthesis, Δ13C [‰], from the least-cost CO2 ratios.
//
// Three models of increasing fidelity are provided, following Farquhar
// et al. (1982, 1989): a linear model in ci/ca, a model with a
// photorespiratory term, and a model that also separates the drawdown
// across the mesophyll. The CO2 ratios are always taken from the
// solutions that include the compensation point.
package isotope

import (
	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/kinetics"
	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/leastcost"
)

// Fractionation factors [‰].
const (
	// A is the fractionation during diffusion of CO2 through the stomata.
	A = 4.4
	// Am is the fractionation during dissolution and diffusion of CO2
	// through the mesophyll.
	Am = 1.8
)

// SimpleFromChi returns A + (b - A) chi, where b [‰] is the effective
// fractionation by carboxylation.
func SimpleFromChi(chi, b float64) float64 {
	return A + (b-A)*chi
}

// PhotorespirationFromChi adds the photorespiratory term -f Γ*/ca to
// SimpleFromChi, where f [‰] is the fractionation during photorespiration
// and gamma is Γ*/ca.
func PhotorespirationFromChi(chi, b, f, gamma float64) float64 {
	return A + (b-A)*chi - f*gamma
}

// MesophyllFromChi returns A (1 - chi) + Am (chi - chc) + b chc - f Γ*/ca,
// the discrimination with separate stomatal and mesophyll drawdowns.
func MesophyllFromChi(chi, chc, b, f, gamma float64) float64 {
	return A*(1-chi) + Am*(chi-chc) + b*chc - f*gamma
}

// Simple returns Δ13C [‰] from the linear model at temperature tc [°C],
// elevation elv [m], ambient CO2 ca [ppm] and vapour pressure deficit
// vpd [kPa], for fractionation b [‰] and cost ratio beta.
func Simple(tc, elv, ca, vpd, b, beta float64) float64 {
	return SimpleFromChi(leastcost.ChiComplex(tc, elv, vpd, ca, beta), b)
}

// Photorespiration returns Δ13C [‰] including the photorespiratory
// fractionation f [‰]. Γ* is on the stomatal basis.
func Photorespiration(tc, elv, ca, vpd, b, f, beta float64) float64 {
	e := leastcost.NewEnv(tc, elv, vpd, ca, kinetics.Stomatal)
	return PhotorespirationFromChi(e.ChiComplex(beta), b, f, e.GammaRatio())
}

// Mesophyll returns Δ13C [‰] with a finite mesophyll conductance, theta
// times the stomatal conductance. chi uses the stomatal basis; chc and the
// photorespiratory Γ* use the chloroplast basis.
func Mesophyll(tc, elv, ca, vpd, b, f, beta, theta float64) float64 {
	es := leastcost.NewEnv(tc, elv, vpd, ca, kinetics.Stomatal)
	ec := leastcost.NewEnv(tc, elv, vpd, ca, kinetics.Chloroplast)
	return MesophyllFromChi(es.ChiComplex(beta), ec.ChcComplex(beta, theta), b, f, ec.GammaRatio())
}
