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

// Package refcode extracts applicant reference codes from file names.
//
// A reference code consists of four upper case ASCII letters followed by
// four ASCII digits, for example "AJDK5462".  Every input file name must
// contain exactly one such code.
package refcode

import (
	"regexp"
	"strings"
)

// Code is an applicant reference code of the form AAAA1111.
type Code string

var pattern = regexp.MustCompile(`[A-Z]{4}[0-9]{4}`)

// Extract returns the unique reference code contained in name.
//
// If name contains no code, or more than one code, an *AmbiguousError is
// returned.
func Extract(name string) (Code, error) {
	matches := pattern.FindAllString(name, -1)
	if len(matches) != 1 {
		return "", &AmbiguousError{Name: name, Matches: matches}
	}
	return Code(matches[0]), nil
}

// AmbiguousError is returned by [Extract] if a name does not contain
// exactly one reference code.
type AmbiguousError struct {
	Name    string
	Matches []string
}

func (err *AmbiguousError) Error() string {
	if len(err.Matches) == 0 {
		return "no reference code in " + quote(err.Name)
	}
	return "several reference codes (" + strings.Join(err.Matches, ", ") +
		") in " + quote(err.Name)
}

func quote(s string) string {
	return `"` + s + `"`
}
