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

package bundle

import (
	"seehuhn.de/go/pdfbundle/config"
	"seehuhn.de/go/pdfbundle/refcode"
)

// An Assigner decides which bundle an input file belongs to.
type Assigner struct {
	cfg     *config.Config
	names   map[refcode.Code]string
	assoc   map[refcode.Code]refcode.Code
	bundles *Set
}

// NewAssigner returns an Assigner which routes files into the bundles of s,
// using the tables in c.
func NewAssigner(c *config.Config, s *Set) *Assigner {
	return &Assigner{
		cfg:     c,
		names:   c.OutputNames(),
		assoc:   c.Associations(),
		bundles: s,
	}
}

// Assign returns the bundle the file name belongs to.
//
// If the name contains an ignore-list entry, skip is true and no bundle is
// returned.  Otherwise the reference code in the name selects the bundle:
// primary codes select their own bundle, secondary codes are redirected
// through the associations table.  Assign does not modify the bundle.
func (a *Assigner) Assign(name string) (b *Bundle, skip bool, err error) {
	if a.cfg.Ignored(name) {
		return nil, true, nil
	}

	code, err := refcode.Extract(name)
	if err != nil {
		return nil, false, err
	}

	target := code
	if _, isPrimary := a.names[code]; !isPrimary {
		primary, ok := a.assoc[code]
		if !ok {
			return nil, false, &UnresolvedError{Name: name, Code: code}
		}
		target = primary
	}

	b, ok := a.bundles.Get(target)
	if !ok {
		return nil, false, &UnknownBundleError{Code: target}
	}
	return b, false, nil
}
