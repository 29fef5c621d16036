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

// Package lccutil holds configuration utilities for the LCC leaf models.
package lccutil

import (
	"fmt"
	"io"
	"strings"

	lcc "github.com/Alielav/Least-cost-and-coordination-hypotheses-codes"
	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to configuration keys when they are read from
// environment variables, so Params.Beta is set by LCC_PARAMS_BETA.
const EnvPrefix = "LCC"

// Options are the configuration options available to LCC.
var Options = []struct {
	Name, Usage string
	DefaultVal  interface{}
}{
	{
		Name: "Params.Beta",
		Usage: `
              Params.Beta is the ratio of the unit costs of maintaining
              carboxylation and transpiration capacities. It must be positive.`,
		DefaultVal: lcc.DefaultParams().Beta,
	},
	{
		Name: "Params.Theta",
		Usage: `
              Params.Theta is the ratio of mesophyll to stomatal conductance.
              It must be positive.`,
		DefaultVal: lcc.DefaultParams().Theta,
	},
	{
		Name: "Params.B",
		Usage: `
              Params.B is the isotopic fractionation by Rubisco carboxylation,
              in permil.`,
		DefaultVal: lcc.DefaultParams().B,
	},
	{
		Name: "Params.F",
		Usage: `
              Params.F is the isotopic fractionation during photorespiration,
              in permil.`,
		DefaultVal: lcc.DefaultParams().F,
	},
	{
		Name: "Params.Cphi",
		Usage: `
              Params.Cphi is the intrinsic quantum yield of photosynthesis
              used by the GPP predictor.`,
		DefaultVal: lcc.DefaultParams().Cphi,
	},
	{
		Name: "Params.Alpha",
		Usage: `
              Params.Alpha is the fraction of photorespired CO2 that is
              refixed before it leaves the leaf. It must be between 0 and 1.`,
		DefaultVal: lcc.DefaultParams().Alpha,
	},
	{
		Name: "Params.Strict",
		Usage: `
              Params.Strict causes a run to fail on the first site whose
              inputs are outside the domain of the model equations, rather
              than returning NaN for that site.`,
		DefaultVal: lcc.DefaultParams().Strict,
	},
}

// NewConfig returns a configuration holding the default value of every
// option, with environment variable overrides enabled.
func NewConfig() *viper.Viper {
	cfg := viper.New()
	for _, option := range Options {
		cfg.SetDefault(option.Name, option.DefaultVal)
	}
	cfg.SetEnvPrefix(EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	return cfg
}

// ReadConfig merges the TOML configuration in r into cfg.
func ReadConfig(cfg *viper.Viper, r io.Reader) error {
	cfg.SetConfigType("toml")
	if err := cfg.MergeConfig(r); err != nil {
		return fmt.Errorf("lccutil: problem reading configuration file: %v", err)
	}
	return nil
}

// ReadConfigFile merges the configuration file at path into cfg. The
// format is inferred from the file extension.
func ReadConfigFile(cfg *viper.Viper, path string) error {
	cfg.SetConfigFile(path)
	if err := cfg.MergeInConfig(); err != nil {
		return fmt.Errorf("lccutil: problem reading configuration file: %v", err)
	}
	return nil
}

// Params extracts and validates the model parameters held in cfg.
func Params(cfg *viper.Viper) (lcc.Params, error) {
	var p lcc.Params
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"Params.Beta", &p.Beta},
		{"Params.Theta", &p.Theta},
		{"Params.B", &p.B},
		{"Params.F", &p.F},
		{"Params.Cphi", &p.Cphi},
		{"Params.Alpha", &p.Alpha},
	} {
		v, err := cast.ToFloat64E(cfg.Get(f.name))
		if err != nil {
			return p, fmt.Errorf("lccutil: parsing config variable %s: %v", f.name, err)
		}
		*f.dst = v
	}
	strict, err := cast.ToBoolE(cfg.Get("Params.Strict"))
	if err != nil {
		return p, fmt.Errorf("lccutil: parsing config variable Params.Strict: %v", err)
	}
	p.Strict = strict
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// ReadParams decodes a TOML document with a [Params] table from r.
// Parameters missing from the document keep their default values and
// unrecognized keys are an error.
func ReadParams(r io.Reader) (lcc.Params, error) {
	c := struct {
		Params lcc.Params
	}{Params: lcc.DefaultParams()}
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return c.Params, fmt.Errorf("lccutil: problem reading parameters: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return c.Params, fmt.Errorf("lccutil: unrecognized parameters: %s", strings.Join(keys, ", "))
	}
	if err := c.Params.Validate(); err != nil {
		return c.Params, err
	}
	return c.Params, nil
}
