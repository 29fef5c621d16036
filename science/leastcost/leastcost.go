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

// Package leastcost implements the least-cost hypothesis for the ratio of
// leaf-internal to ambient CO2 partial pressure (Prentice et al. 2014,
// Ecol. Lett. 17, 82–91; Wang et al. 2017, Nat. Plants 3, 734–741).
//
// The optimal ratio at the intercellular air spaces, chi = ci/ca, and at the
// chloroplast, chc = cc/ca, have closed-form solutions. Given an observed
// chi or chc, the same formulas are inverted for the cost ratio beta.
//
// Inputs are in the units of the meteorological drivers: temperature tc
// [°C], elevation elv [m], vapour pressure deficit vpd [kPa] and ambient
// CO2 ca [ppm]. Results are not clamped to (0, 1); invalid inputs propagate
// as NaN unless one of the Strict variants is used.
package leastcost

import (
	"math"

	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/environ"
	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/kinetics"
)

// DiffusivityRatio is the ratio of the diffusivities of water vapour and
// CO2 in air.
const DiffusivityRatio = 1.6

// Env holds the environmental terms the solvers share, evaluated for a
// single kinetic basis.
type Env struct {
	Patm   float64 // atmospheric pressure [Pa]
	NsStar float64 // viscosity of water relative to its reference value
	K      float64 // Michaelis-Menten coefficient [Pa]
	Gstar  float64 // photorespiratory compensation point [Pa]
	Ca     float64 // ambient CO2 partial pressure [Pa]
	VPD    float64 // vapour pressure deficit [Pa]
}

// NewEnv evaluates the environmental terms at temperature tc [°C],
// elevation elv [m], vapour pressure deficit vpd [kPa] and ambient CO2
// ca [ppm] on the given basis.
func NewEnv(tc, elv, vpd, ca float64, basis kinetics.Basis) Env {
	patm := environ.AtmosphericPressure(elv)
	return Env{
		Patm:   patm,
		NsStar: environ.ViscosityRatio(tc, patm),
		K:      kinetics.MichaelisMentenK(tc, patm, basis),
		Gstar:  kinetics.CompensationPoint(tc, patm, basis),
		Ca:     environ.CO2PPMToPa(ca, patm),
		VPD:    environ.VPDToPa(vpd),
	}
}

// GammaRatio returns Γ*/ca, the lower bound of chi.
func (e Env) GammaRatio() float64 { return e.Gstar / e.Ca }

// MesophyllFactor returns 1 + 1/theta, the increase in total diffusive
// resistance from a mesophyll conductance that is theta times the stomatal
// conductance.
func MesophyllFactor(theta float64) float64 { return 1 + 1/theta }

// Xi returns the sensitivity of chi to the vapour pressure deficit
// [Pa^½] for cost ratio beta, a carboxylation coefficient k [Pa] (K or
// K + Γ*), relative viscosity nsStar and total-resistance factor
// mesophyll (1 at the stomatal surface).
func Xi(beta, k, nsStar, mesophyll float64) float64 {
	return math.Sqrt(beta * k / (DiffusivityRatio * nsStar * mesophyll))
}

// supplyRatio is xi / (xi + sqrt(D)).
func supplyRatio(xi, vpd float64) float64 {
	return xi / (xi + math.Sqrt(vpd))
}

// complexRatio adds the compensation point to the supply ratio.
func complexRatio(xi, vpd, gamma float64) float64 {
	return gamma + (1-gamma)*supplyRatio(xi, vpd)
}

// ChiSimple returns ci/ca ignoring the photorespiratory compensation point,
// for cost ratio beta.
func ChiSimple(tc, elv, vpd, beta float64) float64 {
	return NewEnv(tc, elv, vpd, 0, kinetics.Stomatal).ChiSimple(beta)
}

// ChiSimple is ChiSimple for a precomputed stomatal-basis environment.
func (e Env) ChiSimple(beta float64) float64 {
	return supplyRatio(Xi(beta, e.K, e.NsStar, 1), e.VPD)
}

// ChiComplex returns ci/ca including the photorespiratory compensation
// point, for cost ratio beta.
func ChiComplex(tc, elv, vpd, ca, beta float64) float64 {
	return NewEnv(tc, elv, vpd, ca, kinetics.Stomatal).ChiComplex(beta)
}

// ChiComplex is ChiComplex for a precomputed stomatal-basis environment.
func (e Env) ChiComplex(beta float64) float64 {
	return complexRatio(Xi(beta, e.K+e.Gstar, e.NsStar, 1), e.VPD, e.GammaRatio())
}

// ChcSimple returns cc/ca ignoring the photorespiratory compensation point,
// for cost ratio beta and mesophyll-to-stomatal conductance ratio theta.
func ChcSimple(tc, elv, vpd, beta, theta float64) float64 {
	return NewEnv(tc, elv, vpd, 0, kinetics.Chloroplast).ChcSimple(beta, theta)
}

// ChcSimple is ChcSimple for a precomputed chloroplast-basis environment.
func (e Env) ChcSimple(beta, theta float64) float64 {
	return supplyRatio(Xi(beta, e.K, e.NsStar, MesophyllFactor(theta)), e.VPD)
}

// ChcComplex returns cc/ca including the photorespiratory compensation
// point, for cost ratio beta and mesophyll-to-stomatal conductance ratio
// theta.
func ChcComplex(tc, elv, vpd, ca, beta, theta float64) float64 {
	return NewEnv(tc, elv, vpd, ca, kinetics.Chloroplast).ChcComplex(beta, theta)
}

// ChcComplex is ChcComplex for a precomputed chloroplast-basis environment.
func (e Env) ChcComplex(beta, theta float64) float64 {
	xi := Xi(beta, e.K+e.Gstar, e.NsStar, MesophyllFactor(theta))
	return complexRatio(xi, e.VPD, e.GammaRatio())
}
