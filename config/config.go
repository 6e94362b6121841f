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

// Package config loads the lookup tables which control how input files are
// grouped, ordered and named.
//
// A configuration directory may contain four plain text files:
//
//   - documents_to_ignore.txt: one substring per line; input files whose
//     name contains one of these are not processed.
//   - recommendation_application_associations.txt: lines of the form
//     "secondary<TAB>primary", routing files of a secondary reference code
//     to the bundle of a primary code.
//   - application_filenames.txt: lines of the form "primary<TAB>output",
//     giving the output file name for every bundle.
//   - document_order.txt: one pattern per line; files are ordered by the
//     first pattern they contain.
//
// Missing files are treated as empty.
package config

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/pdfbundle/refcode"
)

// Names of the configuration files inside the configuration directory.
const (
	IgnoreFile       = "documents_to_ignore.txt"
	AssociationsFile = "recommendation_application_associations.txt"
	OutputNamesFile  = "application_filenames.txt"
	DocumentOrder    = "document_order.txt"
)

// Config holds the lookup tables for one run.
// A Config is not modified after construction.
type Config struct {
	ignore []string
	assoc  map[refcode.Code]refcode.Code
	names  map[refcode.Code]string
	order  []string
}

// New returns a Config with the given tables.
// The arguments are copied, and all strings are normalised to NFC.
func New(ignore []string, assoc map[refcode.Code]refcode.Code, names map[refcode.Code]string, order []string) *Config {
	c := &Config{
		ignore: normList(ignore),
		assoc:  maps.Clone(assoc),
		names:  make(map[refcode.Code]string, len(names)),
		order:  normList(order),
	}
	if c.assoc == nil {
		c.assoc = map[refcode.Code]refcode.Code{}
	}
	for code, name := range names {
		c.names[code] = norm.NFC.String(name)
	}
	return c
}

// IgnoreList returns the substrings which mark input files to be skipped.
func (c *Config) IgnoreList() []string {
	return slices.Clone(c.ignore)
}

// Associations returns the map from secondary to primary reference codes.
func (c *Config) Associations() map[refcode.Code]refcode.Code {
	return maps.Clone(c.assoc)
}

// OutputNames returns the map from primary reference codes to output file
// names.  The keys of this map are exactly the bundles of a run.
func (c *Config) OutputNames() map[refcode.Code]string {
	return maps.Clone(c.names)
}

// DocumentOrder returns the ordering patterns, earliest tier first.
func (c *Config) DocumentOrder() []string {
	return slices.Clone(c.order)
}

// Primaries returns the primary reference codes in sorted order.
func (c *Config) Primaries() []refcode.Code {
	return slices.Sorted(maps.Keys(c.names))
}

// Ignored reports whether name contains one of the ignore-list entries.
func (c *Config) Ignored(name string) bool {
	name = norm.NFC.String(name)
	for _, pat := range c.ignore {
		if strings.Contains(name, pat) {
			return true
		}
	}
	return false
}

func normList(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = norm.NFC.String(s)
	}
	return out
}
