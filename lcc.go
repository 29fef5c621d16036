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

// Package lcc predicts leaf CO2 ratios, carbon isotope discrimination and
// gross primary production from meteorological drivers, using the
// least-cost and coordination hypotheses of plant physiology.
//
// The physical formulas live in the science packages, which are pure
// functions of scalar inputs. This package applies them to many sites or
// time steps at once: each row of drivers is held in a Site, and a Model
// runs a set of calculations over all sites in parallel.
package lcc

import (
	"fmt"

	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/leastcost"
)

// Params holds the model parameters shared by all sites.
type Params struct {
	// Beta is the ratio of the unit costs of maintaining carboxylation
	// and transpiration capacities.
	Beta float64
	// Theta is the ratio of mesophyll to stomatal conductance.
	Theta float64
	// B is the fractionation by Rubisco carboxylation [‰].
	B float64
	// F is the fractionation during photorespiration [‰].
	F float64
	// Cphi is the intrinsic quantum yield of photosynthesis.
	Cphi float64
	// Alpha is the fraction (0–1) of photorespired CO2 that is refixed.
	// It reduces Γ* on both kinetic bases.
	Alpha float64
	// Strict makes a run fail on the first site whose inputs are outside
	// the domain of the formulas, instead of propagating NaN.
	Strict bool
}

// DefaultParams returns commonly used parameter values.
func DefaultParams() Params {
	return Params{
		Beta:  146,
		Theta: 1,
		B:     27,
		F:     12,
		Cphi:  0.081785,
		Alpha: 0,
	}
}

// Validate checks that the parameters are physically meaningful.
func (p Params) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"Beta", p.Beta}, {"Theta", p.Theta}, {"Cphi", p.Cphi}} {
		if err := leastcost.CheckPositive(v.name, v.val); err != nil {
			return fmt.Errorf("lcc: invalid parameter: %w", err)
		}
	}
	if !(p.Alpha >= 0 && p.Alpha <= 1) {
		return fmt.Errorf("lcc: invalid parameter: %w",
			&DomainError{Quantity: "Alpha", Value: p.Alpha, Reason: "must be in [0, 1]"})
	}
	return nil
}

// DomainError reports an input outside the range where a formula is
// defined. It is only returned when Params.Strict is set.
type DomainError = leastcost.DomainError

// RowError is a DomainError annotated with the index of the site that
// caused it.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string { return fmt.Sprintf("lcc: site %d: %v", e.Row, e.Err) }

// Unwrap returns the underlying error.
func (e *RowError) Unwrap() error { return e.Err }
