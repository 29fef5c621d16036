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

package leastcost

import "github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/kinetics"

// BetaSimple returns the cost ratio beta implied by an observed ci/ca,
// chi, under the simple least-cost solution (no compensation point).
// The result is undefined at chi = 1.
func BetaSimple(tc, elv, vpd, chi float64) float64 {
	return NewEnv(tc, elv, vpd, 0, kinetics.Stomatal).BetaSimple(chi)
}

// BetaSimple is BetaSimple for a precomputed stomatal-basis environment.
func (e Env) BetaSimple(chi float64) float64 {
	return e.beta(chi, 0, e.K, 1)
}

// BetaComplex returns the cost ratio beta implied by an observed ci/ca,
// chi, under the least-cost solution with a compensation point.
// The result is undefined at chi = 1 and not physical for chi < Γ*/ca.
func BetaComplex(tc, elv, vpd, ca, chi float64) float64 {
	return NewEnv(tc, elv, vpd, ca, kinetics.Stomatal).BetaComplex(chi)
}

// BetaComplex is BetaComplex for a precomputed stomatal-basis environment.
func (e Env) BetaComplex(chi float64) float64 {
	return e.beta(chi, e.GammaRatio(), e.K+e.Gstar, 1)
}

// BetaMeso returns the cost ratio beta implied by an observed cc/ca, chc,
// for a mesophyll-to-stomatal conductance ratio theta.
// The result is undefined at chc = 1 and not physical for chc < Γ*/ca.
func BetaMeso(tc, elv, vpd, ca, chc, theta float64) float64 {
	return NewEnv(tc, elv, vpd, ca, kinetics.Chloroplast).BetaMeso(chc, theta)
}

// BetaMeso is BetaMeso for a precomputed chloroplast-basis environment.
func (e Env) BetaMeso(chc, theta float64) float64 {
	return e.beta(chc, e.GammaRatio(), e.K+e.Gstar, MesophyllFactor(theta))
}

// beta inverts chi = γ + (1-γ) ξ/(ξ+√D) for beta, where k and mesophyll
// are the terms of Xi.
func (e Env) beta(chi, gamma, k, mesophyll float64) float64 {
	num := chi - gamma
	den := 1 - chi
	return DiffusivityRatio * e.NsStar * e.VPD * num * num / (den * den * k) * mesophyll
}
