// seehuhn.de/go/pdfbundle - combine applicant PDF files into bundles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pdfbundle/engine"
)

// settings are default values for command line options, read from a YAML
// file.  Options given on the command line take precedence.
type settings struct {
	Config string `yaml:"config"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Engine string `yaml:"engine"`
}

func loadSettings(fname string) (*settings, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	s, err := parseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

func parseSettings(data []byte) (*settings, error) {
	s := &settings{}
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if s.Engine != "" {
		if _, err := engine.ByName(s.Engine); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// applyTo copies the non-empty settings into opt, except for the options
// listed in explicit.
func (s *settings) applyTo(opt *options, explicit map[string]bool) {
	set := func(flagName string, dst *string, val string) {
		if val != "" && !explicit[flagName] {
			*dst = val
		}
	}
	set("config", &opt.configDir, s.Config)
	set("input", &opt.input, s.Input)
	set("output", &opt.output, s.Output)
	set("engine", &opt.engine, s.Engine)
}
