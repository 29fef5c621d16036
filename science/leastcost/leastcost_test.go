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
	"errors"
	"math"
	"testing"

	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/kinetics"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

// Typical site conditions.
const (
	tc    = 20.
	elv   = 0.
	vpd   = 1.
	ca    = 400.
	beta  = 146.
	theta = 1.
)

func TestChiComplexBounds(t *testing.T) {
	for _, tc := range []float64{0, 10, 20, 30, 40} {
		for _, elv := range []float64{0, 1000, 3000} {
			for _, vpd := range []float64{0.05, 0.5, 1, 3, 6} {
				for _, ca := range []float64{200, 400, 800} {
					for _, beta := range []float64{1, 50, 146, 500, 5000} {
						e := NewEnv(tc, elv, vpd, ca, kinetics.Stomatal)
						if !(e.Ca > e.Gstar) {
							continue
						}
						chi := ChiComplex(tc, elv, vpd, ca, beta)
						if !(chi > 0 && chi < 1) {
							t.Errorf("chi(%g, %g, %g, %g, %g) = %g, should be in (0, 1)", tc, elv, vpd, ca, beta, chi)
						}
						if !(chi > e.GammaRatio()) {
							t.Errorf("chi(%g, %g, %g, %g, %g) = %g, should exceed Γ*/ca = %g", tc, elv, vpd, ca, beta, chi, e.GammaRatio())
						}
					}
				}
			}
		}
	}
}

func TestChiValues(t *testing.T) {
	chi := ChiComplex(tc, elv, vpd, ca, beta)
	if different(chi, 0.720, 0.01) {
		t.Errorf("chi = %g, want about 0.720", chi)
	}
	chc := ChcComplex(tc, elv, vpd, ca, beta, theta)
	if different(chc, 0.629, 0.01) {
		t.Errorf("chc = %g, want about 0.629", chc)
	}
	if !(chc < chi) {
		t.Errorf("mesophyll resistance should lower the CO2 ratio: chc=%g, chi=%g", chc, chi)
	}
	if s := ChiSimple(tc, elv, vpd, beta); !(s < chi) {
		t.Errorf("simple chi %g should be below complex chi %g", s, chi)
	}
	if s := ChcSimple(tc, elv, vpd, beta, theta); !(s < chc) {
		t.Errorf("simple chc %g should be below complex chc %g", s, chc)
	}
	// A very large mesophyll conductance approaches the stomatal solution
	// form on the chloroplast basis.
	e := NewEnv(tc, elv, vpd, ca, kinetics.Chloroplast)
	if c := ChcComplex(tc, elv, vpd, ca, beta, 1e12); different(c, e.ChcComplex(beta, math.Inf(1)), 1e-9) {
		t.Errorf("chc with infinite theta = %g", c)
	}
}

func TestChiResponse(t *testing.T) {
	last := 0.
	for b := 10.; b <= 1000; b += 10 {
		chi := ChiComplex(tc, elv, vpd, ca, b)
		if !(chi > last) {
			t.Fatalf("chi should increase with beta: chi(%g)=%g, previous %g", b, chi, last)
		}
		last = chi
	}
	last = 1.
	for d := 0.1; d <= 5; d += 0.1 {
		chi := ChiComplex(tc, elv, d, ca, beta)
		if !(chi < last) {
			t.Fatalf("chi should decrease with vpd: chi(%g)=%g, previous %g", d, chi, last)
		}
		last = chi
	}
}

func TestBetaRoundTrip(t *testing.T) {
	const tol = 1.e-6
	for _, b0 := range []float64{0.5, 10, 146, 240, 2000} {
		for _, tc := range []float64{5, 20, 35} {
			chi := ChiComplex(tc, 500, vpd, ca, b0)
			if b := BetaComplex(tc, 500, vpd, ca, chi); different(b, b0, tol) {
				t.Errorf("complex: beta=%g, want %g (tc=%g)", b, b0, tc)
			}
			chi = ChiSimple(tc, 500, vpd, b0)
			if b := BetaSimple(tc, 500, vpd, chi); different(b, b0, tol) {
				t.Errorf("simple: beta=%g, want %g (tc=%g)", b, b0, tc)
			}
			chc := ChcComplex(tc, 500, vpd, ca, b0, 0.8)
			if b := BetaMeso(tc, 500, vpd, ca, chc, 0.8); different(b, b0, tol) {
				t.Errorf("meso: beta=%g, want %g (tc=%g)", b, b0, tc)
			}
		}
	}
}

func TestNaNPropagation(t *testing.T) {
	if chi := ChiComplex(tc, elv, vpd, 0, beta); !math.IsNaN(chi) {
		t.Errorf("chi with zero CO2 should be NaN, got %g", chi)
	}
	if chi := ChiComplex(tc, 50000, vpd, ca, beta); !math.IsNaN(chi) {
		t.Errorf("chi beyond the pressure formula's range should be NaN, got %g", chi)
	}
	if b := BetaComplex(tc, elv, vpd, ca, 1); !math.IsInf(b, 1) {
		t.Errorf("beta at chi=1 should be +Inf, got %g", b)
	}
	if b := BetaSimple(tc, elv, vpd, 1); !math.IsInf(b, 1) {
		t.Errorf("beta at chi=1 should be +Inf, got %g", b)
	}
}

func TestStrict(t *testing.T) {
	gamma := NewEnv(tc, elv, vpd, ca, kinetics.Stomatal).GammaRatio()
	tests := []struct {
		name     string
		f        func() (float64, error)
		quantity string
	}{
		{"chi at 1", func() (float64, error) { return BetaComplexStrict(tc, elv, vpd, ca, 1) }, "chi"},
		{"chi below Γ*/ca", func() (float64, error) { return BetaComplexStrict(tc, elv, vpd, ca, gamma/2) }, "chi"},
		{"chi negative", func() (float64, error) { return BetaSimpleStrict(tc, elv, vpd, -0.1) }, "chi"},
		{"zero CO2", func() (float64, error) { return BetaComplexStrict(tc, elv, vpd, 0, 0.7) }, "ca"},
		{"high elevation", func() (float64, error) { return ChiComplexStrict(tc, 50000, vpd, ca, beta) }, "patm"},
		{"negative vpd", func() (float64, error) { return ChiComplexStrict(tc, elv, -1, ca, beta) }, "vpd"},
		{"zero beta", func() (float64, error) { return ChiComplexStrict(tc, elv, vpd, ca, 0) }, "beta"},
		{"zero theta", func() (float64, error) { return ChcComplexStrict(tc, elv, vpd, ca, beta, 0) }, "theta"},
		{"chc at 1", func() (float64, error) { return BetaMesoStrict(tc, elv, vpd, ca, 1, theta) }, "chc"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := test.f()
			var de *DomainError
			if !errors.As(err, &de) {
				t.Fatalf("expected a domain error, got %v", err)
			}
			if de.Quantity != test.quantity {
				t.Errorf("quantity = %q, want %q (%v)", de.Quantity, test.quantity, err)
			}
			if !math.IsNaN(v) {
				t.Errorf("value should be NaN on error, got %g", v)
			}
		})
	}

	chi := ChiComplex(tc, elv, vpd, ca, beta)
	got, err := BetaComplexStrict(tc, elv, vpd, ca, chi)
	if err != nil {
		t.Fatal(err)
	}
	if got != BetaComplex(tc, elv, vpd, ca, chi) {
		t.Errorf("strict and default results differ: %g", got)
	}
	if c, err := ChiComplexStrict(tc, elv, vpd, ca, beta); err != nil || c != chi {
		t.Errorf("strict chi = %g, %v; want %g", c, err, chi)
	}
	if c, err := ChcComplexStrict(tc, elv, vpd, ca, beta, theta); err != nil || c != ChcComplex(tc, elv, vpd, ca, beta, theta) {
		t.Errorf("strict chc = %g, %v", c, err)
	}
	if _, err := BetaMesoStrict(tc, elv, vpd, ca, 0.6, theta); err != nil {
		t.Error(err)
	}
	if _, err := BetaSimpleStrict(tc, elv, vpd, 0.7); err != nil {
		t.Error(err)
	}
}
