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

package lcc

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/environ"
	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/isotope"
	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/kinetics"
	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/leastcost"
	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/production"
)

// SiteManipulator performs a calculation on a single site. It may only
// modify the site it is given.
type SiteManipulator func(s *Site, p Params) error

// DomainManipulator performs an operation on all of the sites in a model.
type DomainManipulator func(m *Model) error

// Model holds a set of sites and the operations to run on them.
type Model struct {
	Params Params
	Sites  []*Site

	// RunFuncs are carried out in order by Run.
	RunFuncs []DomainManipulator

	// Log receives progress information.
	Log logrus.FieldLogger
}

// New returns a model that runs the full calculation sequence on sites.
func New(p Params, sites []*Site) *Model {
	return &Model{
		Params:   p,
		Sites:    sites,
		RunFuncs: DefaultRunFuncs(),
		Log:      logrus.StandardLogger(),
	}
}

// DefaultRunFuncs returns the full calculation sequence: environment,
// kinetics, CO2 ratios, isotope discrimination, production and, for sites
// with observed CO2 ratios, the implied cost ratio.
func DefaultRunFuncs() []DomainManipulator {
	return []DomainManipulator{
		Calculations(Environment(), Kinetics(), LeastCost(), Isotopes(), Production(), InverseBeta()),
	}
}

// Run validates the parameters and carries out the RunFuncs. ctx is
// checked between RunFuncs.
func (m *Model) Run(ctx context.Context) error {
	if m.Log == nil {
		m.Log = logrus.StandardLogger()
	}
	if err := m.Params.Validate(); err != nil {
		return err
	}
	m.Log.WithFields(logrus.Fields{
		"sites":  len(m.Sites),
		"strict": m.Params.Strict,
	}).Debug("lcc: starting run")
	for _, f := range m.RunFuncs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f(m); err != nil {
			return err
		}
	}
	m.logUndefined()
	return nil
}

// logUndefined logs the sites where the CO2 ratio is undefined.
func (m *Model) logUndefined() {
	var n int
	for i, s := range m.Sites {
		if math.IsNaN(s.Chi) {
			n++
			m.Log.WithFields(logrus.Fields{
				"site": i,
				"tc":   s.Tc,
				"elv":  s.Elv,
				"vpd":  s.VPD,
				"co2":  s.CO2,
			}).Debug("lcc: chi is undefined")
		}
	}
	if n > 0 {
		m.Log.WithField("sites", n).Warn("lcc: chi is undefined at some sites")
	}
}

// Calculations returns a function that concurrently runs a series of
// calculations on all of the sites in a model. Each worker handles every
// nprocs-th site. If any calculation fails, the error for the
// lowest-numbered failing site is returned.
func Calculations(calculators ...SiteManipulator) DomainManipulator {
	return func(m *Model) error {
		nprocs := runtime.GOMAXPROCS(0) // number of processors
		errs := make([]error, nprocs)
		var wg sync.WaitGroup
		wg.Add(nprocs)
		for pp := 0; pp < nprocs; pp++ {
			go func(pp int) {
				defer wg.Done()
				for ii := pp; ii < len(m.Sites); ii += nprocs {
					s := m.Sites[ii]
					for _, f := range calculators {
						if err := f(s, m.Params); err != nil {
							errs[pp] = &RowError{Row: ii, Err: err}
							return
						}
					}
				}
			}(pp)
		}
		wg.Wait()
		var first *RowError
		for _, err := range errs {
			if err == nil {
				continue
			}
			if re := err.(*RowError); first == nil || re.Row < first.Row {
				first = re
			}
		}
		if first != nil {
			return first
		}
		return nil
	}
}

// Environment returns a function that calculates atmospheric pressure,
// the relative viscosity of water and the partial pressure of CO2.
func Environment() SiteManipulator {
	return func(s *Site, _ Params) error {
		s.Patm = environ.AtmosphericPressure(s.Elv)
		s.NsStar = environ.ViscosityRatio(s.Tc, s.Patm)
		s.Ca = environ.CO2PPMToPa(s.CO2, s.Patm)
		return nil
	}
}

// Kinetics returns a function that calculates the Rubisco kinetic
// parameters on both bases. Γ* is reduced by the refixed fraction
// Params.Alpha. In strict mode, sites with non-positive pressure, CO2 at or
// below Γ*, or negative vapour pressure deficit are rejected.
func Kinetics() SiteManipulator {
	return func(s *Site, p Params) error {
		s.K = kinetics.MichaelisMentenK(s.Tc, s.Patm, kinetics.Stomatal)
		s.Gstar = kinetics.CompensationPointRefixed(s.Tc, s.Patm, kinetics.Stomatal, p.Alpha)
		s.KCc = kinetics.MichaelisMentenK(s.Tc, s.Patm, kinetics.Chloroplast)
		s.GstarCc = kinetics.CompensationPointRefixed(s.Tc, s.Patm, kinetics.Chloroplast, p.Alpha)

		vpd := environ.VPDToPa(s.VPD)
		s.stomatal = leastcost.Env{Patm: s.Patm, NsStar: s.NsStar, K: s.K, Gstar: s.Gstar, Ca: s.Ca, VPD: vpd}
		s.chloroplast = leastcost.Env{Patm: s.Patm, NsStar: s.NsStar, K: s.KCc, Gstar: s.GstarCc, Ca: s.Ca, VPD: vpd}
		if p.Strict {
			if err := leastcost.CheckEnv(s.stomatal); err != nil {
				return err
			}
			return leastcost.CheckEnv(s.chloroplast)
		}
		return nil
	}
}

// LeastCost returns a function that calculates the optimal ci/ca and
// cc/ca ratios. Kinetics must run first.
func LeastCost() SiteManipulator {
	return func(s *Site, p Params) error {
		s.ChiSimple = s.stomatal.ChiSimple(p.Beta)
		s.Chi = s.stomatal.ChiComplex(p.Beta)
		s.ChcSimple = s.chloroplast.ChcSimple(p.Beta, p.Theta)
		s.Chc = s.chloroplast.ChcComplex(p.Beta, p.Theta)
		return nil
	}
}

// Isotopes returns a function that calculates Δ13C with the three
// discrimination models. LeastCost must run first.
func Isotopes() SiteManipulator {
	return func(s *Site, p Params) error {
		s.D13CSimple = isotope.SimpleFromChi(s.Chi, p.B)
		s.D13CPhoto = isotope.PhotorespirationFromChi(s.Chi, p.B, p.F, s.stomatal.GammaRatio())
		s.D13CMeso = isotope.MesophyllFromChi(s.Chi, s.Chc, p.B, p.F, s.chloroplast.GammaRatio())
		return nil
	}
}

// Production returns a function that calculates light use efficiency and
// gross primary production. Kinetics must run first.
func Production() SiteManipulator {
	return func(s *Site, p Params) error {
		s.QE = production.QuantumEfficiency(s.Tc, p.Cphi)
		s.M = production.LightLimitation(production.CO2Limitation(s.stomatal, p.Beta))
		s.LUE = s.M * s.QE
		s.GPP = s.LUE * s.FAPAR * s.PPFD
		return nil
	}
}

// InverseBeta returns a function that calculates the cost ratio implied
// by observed ci/ca (ChiObs) and cc/ca (ChcObs). Sites without
// observations are left as NaN. In strict mode, observations outside
// (Γ*/ca, 1) are rejected.
func InverseBeta() SiteManipulator {
	return func(s *Site, p Params) error {
		s.BetaSimple, s.BetaComplex, s.BetaMeso = math.NaN(), math.NaN(), math.NaN()
		if !math.IsNaN(s.ChiObs) {
			if p.Strict {
				if err := leastcost.CheckChi("ChiObs", s.ChiObs, s.stomatal.GammaRatio()); err != nil {
					return err
				}
			}
			s.BetaSimple = s.stomatal.BetaSimple(s.ChiObs)
			s.BetaComplex = s.stomatal.BetaComplex(s.ChiObs)
		}
		if !math.IsNaN(s.ChcObs) {
			if p.Strict {
				if err := leastcost.CheckChi("ChcObs", s.ChcObs, s.chloroplast.GammaRatio()); err != nil {
					return err
				}
			}
			s.BetaMeso = s.chloroplast.BetaMeso(s.ChcObs, p.Theta)
		}
		return nil
	}
}

// String returns a short description of the site drivers.
func (s *Site) String() string {
	return fmt.Sprintf("site(tc=%g °C, elv=%g m, vpd=%g kPa, co2=%g ppm)", s.Tc, s.Elv, s.VPD, s.CO2)
}
