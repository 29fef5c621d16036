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

import (
	"fmt"
	"math"

	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/kinetics"
)

// DomainError reports an input that is outside the range where the
// least-cost solutions are defined.
type DomainError struct {
	Quantity string  // name of the offending quantity
	Value    float64 // its value
	Reason   string  // the violated condition
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s = %g: %s", e.Quantity, e.Value, e.Reason)
}

// CheckEnv checks that the atmospheric pressure is positive, that ambient
// CO2 is positive and above the compensation point, and that the vapour
// pressure deficit is not negative. Set ca to a positive value to check
// an environment that was created without CO2.
func CheckEnv(e Env) error {
	switch {
	case !(e.Patm > 0):
		return &DomainError{"patm", e.Patm, "atmospheric pressure must be positive; elevation is beyond the range of the barometric formula"}
	case !(e.Ca > 0):
		return &DomainError{"ca", e.Ca, "ambient CO2 partial pressure must be positive"}
	case !(e.Ca > e.Gstar):
		return &DomainError{"ca", e.Ca, fmt.Sprintf("ambient CO2 partial pressure must exceed Γ* (%g Pa)", e.Gstar)}
	case !(e.VPD >= 0):
		return &DomainError{"vpd", e.VPD, "vapour pressure deficit must not be negative"}
	}
	return nil
}

// CheckChi checks that an observed ratio lies in (gamma, 1), where gamma is
// the lower bound Γ*/ca (0 for the simple solution).
func CheckChi(name string, chi, gamma float64) error {
	if !(chi > 0 && chi < 1) {
		return &DomainError{name, chi, "must be in (0, 1)"}
	}
	if !(chi > gamma) {
		return &DomainError{name, chi, fmt.Sprintf("must exceed Γ*/ca (%g)", gamma)}
	}
	return nil
}

// CheckPositive checks that a model parameter such as beta or theta is
// positive and finite.
func CheckPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return &DomainError{name, v, "must be positive and finite"}
	}
	return nil
}

// ChiComplexStrict is ChiComplex with its inputs checked.
func ChiComplexStrict(tc, elv, vpd, ca, beta float64) (float64, error) {
	e := NewEnv(tc, elv, vpd, ca, kinetics.Stomatal)
	if err := CheckEnv(e); err != nil {
		return math.NaN(), err
	}
	if err := CheckPositive("beta", beta); err != nil {
		return math.NaN(), err
	}
	return e.ChiComplex(beta), nil
}

// ChcComplexStrict is ChcComplex with its inputs checked.
func ChcComplexStrict(tc, elv, vpd, ca, beta, theta float64) (float64, error) {
	e := NewEnv(tc, elv, vpd, ca, kinetics.Chloroplast)
	if err := CheckEnv(e); err != nil {
		return math.NaN(), err
	}
	if err := CheckPositive("beta", beta); err != nil {
		return math.NaN(), err
	}
	if err := CheckPositive("theta", theta); err != nil {
		return math.NaN(), err
	}
	return e.ChcComplex(beta, theta), nil
}

// BetaSimpleStrict is BetaSimple with its inputs checked.
func BetaSimpleStrict(tc, elv, vpd, chi float64) (float64, error) {
	e := NewEnv(tc, elv, vpd, 0, kinetics.Stomatal)
	e.Ca = math.Inf(1) // CO2 does not enter the simple solution
	if err := CheckEnv(e); err != nil {
		return math.NaN(), err
	}
	if err := CheckChi("chi", chi, 0); err != nil {
		return math.NaN(), err
	}
	return e.BetaSimple(chi), nil
}

// BetaComplexStrict is BetaComplex with its inputs checked.
func BetaComplexStrict(tc, elv, vpd, ca, chi float64) (float64, error) {
	e := NewEnv(tc, elv, vpd, ca, kinetics.Stomatal)
	if err := CheckEnv(e); err != nil {
		return math.NaN(), err
	}
	if err := CheckChi("chi", chi, e.GammaRatio()); err != nil {
		return math.NaN(), err
	}
	return e.BetaComplex(chi), nil
}

// BetaMesoStrict is BetaMeso with its inputs checked.
func BetaMesoStrict(tc, elv, vpd, ca, chc, theta float64) (float64, error) {
	e := NewEnv(tc, elv, vpd, ca, kinetics.Chloroplast)
	if err := CheckEnv(e); err != nil {
		return math.NaN(), err
	}
	if err := CheckPositive("theta", theta); err != nil {
		return math.NaN(), err
	}
	if err := CheckChi("chc", chc, e.GammaRatio()); err != nil {
		return math.NaN(), err
	}
	return e.BetaMeso(chc, theta), nil
}
