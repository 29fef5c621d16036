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
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the defined (non-NaN) values of a site variable.
type Stats struct {
	N              int // number of defined values
	Undefined      int // number of NaN values
	Mean, Min, Max float64
}

// DefaultSummaryVars are the variables summarized when none are given.
var DefaultSummaryVars = []string{"Chi", "Chc", "D13CPhoto", "GPP"}

// Column returns the values of the named site variable, one per site.
func (m *Model) Column(name string) ([]float64, error) {
	o := make([]float64, len(m.Sites))
	for i, s := range m.Sites {
		v, err := siteField(s, name)
		if err != nil {
			return nil, err
		}
		o[i] = v
	}
	return o, nil
}

// Summary returns statistics for the named site variables, or for
// DefaultSummaryVars if no names are given, and logs them.
func (m *Model) Summary(names ...string) (map[string]Stats, error) {
	if len(names) == 0 {
		names = DefaultSummaryVars
	}
	o := make(map[string]Stats, len(names))
	for _, name := range names {
		col, err := m.Column(name)
		if err != nil {
			return nil, err
		}
		o[name] = summarize(col)
	}
	if m.Log != nil {
		fields := make(logrus.Fields, len(o))
		for name, s := range o {
			fields[name] = s.Mean
		}
		m.Log.WithFields(fields).Info("lcc: mean values")
	}
	return o, nil
}

func summarize(col []float64) Stats {
	defined := make([]float64, 0, len(col))
	for _, v := range col {
		if !math.IsNaN(v) {
			defined = append(defined, v)
		}
	}
	s := Stats{N: len(defined), Undefined: len(col) - len(defined)}
	if s.N == 0 {
		s.Mean, s.Min, s.Max = math.NaN(), math.NaN(), math.NaN()
		return s
	}
	s.Mean = stat.Mean(defined, nil)
	s.Min = floats.Min(defined)
	s.Max = floats.Max(defined)
	return s
}
