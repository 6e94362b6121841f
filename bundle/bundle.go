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

// Package bundle groups input files by applicant and puts the files of each
// group into output order.
package bundle

import (
	"errors"
	"slices"
	"strconv"

	"seehuhn.de/go/pdfbundle/config"
	"seehuhn.de/go/pdfbundle/refcode"
)

// A Bundle is the list of input files which are combined into the output
// file of one applicant.
type Bundle struct {
	code   refcode.Code
	output string
	files  []string
	sorted bool
}

// New returns an empty bundle for the given primary reference code.
func New(code refcode.Code, output string) *Bundle {
	return &Bundle{code: code, output: output}
}

// Code returns the primary reference code of the bundle.
func (b *Bundle) Code() refcode.Code {
	return b.code
}

// Output returns the name of the output file.
func (b *Bundle) Output() string {
	return b.output
}

// Files returns the file names in the bundle, in their current order.
func (b *Bundle) Files() []string {
	return slices.Clone(b.files)
}

// Len returns the number of files in the bundle.
func (b *Bundle) Len() int {
	return len(b.files)
}

// Add appends a file name to the bundle.
// Files cannot be added after the bundle has been sorted.
func (b *Bundle) Add(name string) error {
	if b.sorted {
		return ErrAlreadySorted
	}
	b.files = append(b.files, name)
	return nil
}

// Set is the collection of bundles for one run, ordered by reference code.
type Set struct {
	list   []*Bundle
	byCode map[refcode.Code]*Bundle
}

// NewSet creates one empty bundle for every entry of the output name table.
func NewSet(c *config.Config) *Set {
	names := c.OutputNames()
	s := &Set{
		byCode: make(map[refcode.Code]*Bundle, len(names)),
	}
	for _, code := range c.Primaries() {
		s.add(New(code, names[code]))
	}
	return s
}

func (s *Set) add(b *Bundle) {
	s.list = append(s.list, b)
	s.byCode[b.code] = b
}

// Get returns the bundle for a primary reference code.
func (s *Set) Get(code refcode.Code) (*Bundle, bool) {
	b, ok := s.byCode[code]
	return b, ok
}

// All returns the bundles in order of their reference codes.
func (s *Set) All() []*Bundle {
	return slices.Clone(s.list)
}

// Len returns the number of bundles.
func (s *Set) Len() int {
	return len(s.list)
}

// ErrAlreadySorted is returned when a bundle is modified or sorted after
// it has been sorted.
var ErrAlreadySorted = errors.New("bundle already sorted")

// UnresolvedError is returned by [Assigner.Assign] if the reference code of a
// file is neither a primary code nor listed in the associations table.
type UnresolvedError struct {
	Name string
	Code refcode.Code
}

func (err *UnresolvedError) Error() string {
	return "no bundle for reference code " + string(err.Code) + " of " + strconv.Quote(err.Name)
}

// UnknownBundleError is returned by [Assigner.Assign] if a file resolves to a
// primary code for which no bundle exists.
type UnknownBundleError struct {
	Code refcode.Code
}

func (err *UnknownBundleError) Error() string {
	return "unknown bundle " + string(err.Code)
}

// IntegrityError indicates that sorting changed the number of files in a
// bundle.  This is a bug in the sorting code.
type IntegrityError struct {
	Code      refcode.Code
	Want, Got int
}

func (err *IntegrityError) Error() string {
	return "bundle " + string(err.Code) + ": sorting produced " +
		strconv.Itoa(err.Got) + " files instead of " + strconv.Itoa(err.Want)
}
