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
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sort puts the files of the bundle into output order.
//
// Each pattern in order forms one tier, consisting of all files whose name
// contains the pattern and which did not match an earlier pattern.  Inside a
// tier, files keep their previous relative order.  Files matching no pattern
// come last, in lexicographic order.
//
// Sort must be called exactly once per bundle.
func (b *Bundle) Sort(order []string) error {
	if b.sorted {
		return ErrAlreadySorted
	}

	res, err := b.flatten(b.Tiers(order))
	if err != nil {
		return err
	}

	b.files = res
	b.sorted = true
	return nil
}

// flatten concatenates the tiers, and checks that no file was lost or
// duplicated on the way.
func (b *Bundle) flatten(tiers [][]string) ([]string, error) {
	res := make([]string, 0, len(b.files))
	for _, tier := range tiers {
		res = append(res, tier...)
	}
	if len(res) != len(b.files) {
		return nil, &IntegrityError{Code: b.code, Want: len(b.files), Got: len(res)}
	}
	return res, nil
}

// Tiers partitions the files of the bundle by the patterns in order.
// The result has one entry for each pattern, followed by the sorted list of
// files which matched no pattern.  Tiers does not modify the bundle.
func (b *Bundle) Tiers(order []string) [][]string {
	pool := slices.Clone(b.files)
	keys := make([]string, len(pool))
	for i, name := range pool {
		keys[i] = norm.NFC.String(name)
	}

	tiers := make([][]string, 0, len(order)+1)
	for _, pat := range order {
		pat = norm.NFC.String(pat)

		var tier []string
		k := 0
		for i, name := range pool {
			if strings.Contains(keys[i], pat) {
				tier = append(tier, name)
				continue
			}
			pool[k] = name
			keys[k] = keys[i]
			k++
		}
		pool = pool[:k]
		keys = keys[:k]
		tiers = append(tiers, tier)
	}

	slices.Sort(pool)
	tiers = append(tiers, pool)
	return tiers
}

// Sorted reports whether [Bundle.Sort] has been called.
func (b *Bundle) Sorted() bool {
	return b.sorted
}
