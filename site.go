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
	"fmt"
	"math"
	"reflect"

	"github.com/Alielav/Least-cost-and-coordination-hypotheses-codes/science/leastcost"
)

// Site holds the drivers and the calculated results for a single site or
// time step. Driver fields are set by the caller; the rest are filled in
// by a Model run.
type Site struct {
	Tc     float64 `desc:"Air temperature" units:"°C"`
	Elv    float64 `desc:"Elevation above sea level" units:"m"`
	VPD    float64 `desc:"Vapour pressure deficit" units:"kPa"`
	CO2    float64 `desc:"Ambient CO2 mole fraction" units:"ppm"`
	PPFD   float64 `desc:"Photosynthetic photon flux density" units:"mol m-2 time-1"`
	FAPAR  float64 `desc:"Fraction of absorbed photosynthetically active radiation" units:"fraction"`
	ChiObs float64 `desc:"Observed ci/ca; NaN if not observed" units:"fraction"`
	ChcObs float64 `desc:"Observed cc/ca; NaN if not observed" units:"fraction"`

	Patm    float64 `desc:"Atmospheric pressure" units:"Pa"`
	NsStar  float64 `desc:"Viscosity of water relative to 15 °C" units:"fraction"`
	Ca      float64 `desc:"Ambient CO2 partial pressure" units:"Pa"`
	K       float64 `desc:"Michaelis-Menten coefficient, stomatal basis" units:"Pa"`
	Gstar   float64 `desc:"CO2 compensation point, stomatal basis" units:"Pa"`
	KCc     float64 `desc:"Michaelis-Menten coefficient, chloroplast basis" units:"Pa"`
	GstarCc float64 `desc:"CO2 compensation point, chloroplast basis" units:"Pa"`

	ChiSimple float64 `desc:"ci/ca without compensation point" units:"fraction"`
	Chi       float64 `desc:"ci/ca" units:"fraction"`
	ChcSimple float64 `desc:"cc/ca without compensation point" units:"fraction"`
	Chc       float64 `desc:"cc/ca" units:"fraction"`

	D13CSimple float64 `desc:"Δ13C, linear model" units:"‰"`
	D13CPhoto  float64 `desc:"Δ13C with photorespiration" units:"‰"`
	D13CMeso   float64 `desc:"Δ13C with mesophyll conductance" units:"‰"`

	QE  float64 `desc:"Maximum quantum efficiency" units:"gC mol-1"`
	M   float64 `desc:"CO2 and light limitation factor" units:"fraction"`
	LUE float64 `desc:"Light use efficiency" units:"gC mol-1"`
	GPP float64 `desc:"Gross primary production" units:"gC m-2 time-1"`

	BetaSimple  float64 `desc:"beta implied by ChiObs, simple model" units:"fraction"`
	BetaComplex float64 `desc:"beta implied by ChiObs" units:"fraction"`
	BetaMeso    float64 `desc:"beta implied by ChcObs" units:"fraction"`

	stomatal, chloroplast leastcost.Env
}

// Columns holds drivers for many sites in column form. Every column must
// have either one value, which is used for all sites, or the same number
// of values as the longest column. PPFD, FAPAR, ChiObs and ChcObs may be
// empty, in which case they are NaN.
type Columns struct {
	Tc, Elv, VPD, CO2 []float64
	PPFD, FAPAR       []float64
	ChiObs, ChcObs    []float64
}

// NewSites creates one Site per row of c.
func NewSites(c Columns) ([]*Site, error) {
	cols := []struct {
		name     string
		v        []float64
		required bool
	}{
		{"Tc", c.Tc, true}, {"Elv", c.Elv, true}, {"VPD", c.VPD, true}, {"CO2", c.CO2, true},
		{"PPFD", c.PPFD, false}, {"FAPAR", c.FAPAR, false},
		{"ChiObs", c.ChiObs, false}, {"ChcObs", c.ChcObs, false},
	}
	n := 0
	for _, col := range cols {
		if col.required && len(col.v) == 0 {
			return nil, fmt.Errorf("lcc: column %s is required", col.name)
		}
		if len(col.v) > n {
			n = len(col.v)
		}
	}
	for _, col := range cols {
		if l := len(col.v); l > 1 && l != n {
			return nil, fmt.Errorf("lcc: column %s has %d values; it should have 1 or %d", col.name, l, n)
		}
	}
	at := func(v []float64, i int) float64 {
		switch len(v) {
		case 0:
			return math.NaN()
		case 1:
			return v[0]
		default:
			return v[i]
		}
	}
	sites := make([]*Site, n)
	for i := range sites {
		sites[i] = &Site{
			Tc:     at(c.Tc, i),
			Elv:    at(c.Elv, i),
			VPD:    at(c.VPD, i),
			CO2:    at(c.CO2, i),
			PPFD:   at(c.PPFD, i),
			FAPAR:  at(c.FAPAR, i),
			ChiObs: at(c.ChiObs, i),
			ChcObs: at(c.ChcObs, i),
		}
	}
	return sites, nil
}

// siteField returns the float64 field of s with the given name.
func siteField(s *Site, name string) (float64, error) {
	v := reflect.ValueOf(s).Elem().FieldByName(name)
	if !v.IsValid() || v.Kind() != reflect.Float64 || !v.CanInterface() {
		return math.NaN(), fmt.Errorf("lcc: %q is not a site variable", name)
	}
	return v.Float(), nil
}

// Describe returns the description and units of the site variable with
// the given name.
func Describe(name string) (desc, units string, err error) {
	f, ok := reflect.TypeOf(Site{}).FieldByName(name)
	if !ok || f.Type.Kind() != reflect.Float64 || f.PkgPath != "" {
		return "", "", fmt.Errorf("lcc: %q is not a site variable", name)
	}
	return f.Tag.Get("desc"), f.Tag.Get("units"), nil
}
