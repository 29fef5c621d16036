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

// Package kinetics provides the temperature- and pressure-dependent
// Rubisco kinetic parameters used by the leaf models: the effective
// Michaelis-Menten coefficient K and the photorespiratory CO2 compensation
// point Γ*.
//
// Each parameter exists on two bases. The stomatal basis (ci) uses the
// in vivo constants of Bernacchi et al. (2001), which implicitly assume an
// infinite mesophyll conductance. The chloroplast basis (cc) uses the
// constants of Bernacchi et al. (2002), which were fitted with a finite
// mesophyll conductance. The two sets must not be mixed within a
// calculation.
package kinetics

import (
	"fmt"
	"math"

	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/environ"
)

// Basis selects the set of kinetic constants.
type Basis int

const (
	// Stomatal selects constants expressed at the intercellular air spaces (ci).
	Stomatal Basis = iota
	// Chloroplast selects constants expressed at the carboxylation site (cc).
	Chloroplast
)

func (b Basis) String() string {
	switch b {
	case Stomatal:
		return "stomatal"
	case Chloroplast:
		return "chloroplast"
	default:
		return fmt.Sprintf("Basis(%d)", int(b))
	}
}

// Valid reports whether b is a known basis.
func (b Basis) Valid() bool { return b == Stomatal || b == Chloroplast }

// O2 is the atmospheric mole fraction of oxygen [ppm].
const O2 = 2.09476e5

// constants holds the reference values at 25 °C and the activation
// energies for one basis. Mole fractions are in ppm.
type constants struct {
	kc25, ko25   float64 // [ppm]
	dHaKc, dHaKo float64 // [J mol-1]
	gstar25      float64 // [ppm]
	dHaGstar     float64 // [J mol-1]
}

var bases = map[Basis]constants{
	// Bernacchi et al. (2001), Plant Cell Environ. 24, 253–259.
	Stomatal: {
		kc25:     404.9,
		ko25:     278.4e3,
		dHaKc:    79430,
		dHaKo:    36380,
		gstar25:  42.75,
		dHaGstar: 37830,
	},
	// Bernacchi et al. (2002), Plant Physiol. 130, 1992–1998.
	Chloroplast: {
		kc25:     272.38,
		ko25:     165.82e3,
		dHaKc:    80990,
		dHaKo:    23720,
		gstar25:  37.43,
		dHaGstar: 24460,
	},
}

// Carboxylation returns the Michaelis-Menten constant of Rubisco for CO2,
// Kc [Pa], at temperature tc [°C] and atmospheric pressure patm [Pa].
// It returns NaN for an unknown basis.
func Carboxylation(tc, patm float64, basis Basis) float64 {
	c, ok := bases[basis]
	if !ok {
		return math.NaN()
	}
	return environ.CO2PPMToPa(c.kc25, patm) * environ.Arrhenius25(environ.Kelvin(tc), c.dHaKc)
}

// Oxygenation returns the Michaelis-Menten constant of Rubisco for O2,
// Ko [Pa], at temperature tc [°C] and atmospheric pressure patm [Pa].
// It returns NaN for an unknown basis.
func Oxygenation(tc, patm float64, basis Basis) float64 {
	c, ok := bases[basis]
	if !ok {
		return math.NaN()
	}
	return environ.CO2PPMToPa(c.ko25, patm) * environ.Arrhenius25(environ.Kelvin(tc), c.dHaKo)
}

// MichaelisMentenK returns the effective Michaelis-Menten coefficient of
// Rubisco-limited photosynthesis, K = Kc (1 + pO2/Ko) [Pa], at temperature
// tc [°C] and atmospheric pressure patm [Pa].
func MichaelisMentenK(tc, patm float64, basis Basis) float64 {
	po := O2 * 1.0e-6 * patm // [Pa]
	return Carboxylation(tc, patm, basis) * (1 + po/Oxygenation(tc, patm, basis))
}

// CompensationPoint returns the photorespiratory CO2 compensation point
// Γ* [Pa] at temperature tc [°C] and atmospheric pressure patm [Pa].
// It returns NaN for an unknown basis.
func CompensationPoint(tc, patm float64, basis Basis) float64 {
	c, ok := bases[basis]
	if !ok {
		return math.NaN()
	}
	return environ.CO2PPMToPa(c.gstar25, patm) * environ.Arrhenius25(environ.Kelvin(tc), c.dHaGstar)
}

// CompensationPointRefixed returns Γ* (1 - alpha) [Pa], the compensation
// point when a fraction alpha (0–1) of the CO2 released by photorespiration
// is refixed before it leaves the leaf.
func CompensationPointRefixed(tc, patm float64, basis Basis, alpha float64) float64 {
	return CompensationPoint(tc, patm, basis) * (1 - alpha)
}
