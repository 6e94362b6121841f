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

// Package scan finds input files which cannot be read.
//
// A file counts as unreadable if the PDF library cannot determine its page
// count, for example because it is encrypted or damaged.  This is a
// heuristic: files with a readable page tree but broken page contents are
// not detected.
package scan

import (
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"seehuhn.de/go/pdfbundle/bundle"
)

// PageCounter reports the number of pages of a PDF file.
type PageCounter interface {
	NumPages(path string) (int, error)
}

// Scanner checks files with a PageCounter.
type Scanner struct {
	pc  PageCounter
	log *zap.Logger
}

// New returns a Scanner which uses pc to probe files.
// If log is nil, nothing is logged.
func New(pc PageCounter, log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{pc: pc, log: log}
}

// IsUnreadable reports whether the page count of the file at path cannot be
// determined.
func (s *Scanner) IsUnreadable(path string) bool {
	n, err := s.pc.NumPages(path)
	if err != nil {
		s.log.Debug("unreadable file", zap.String("file", path), zap.Error(err))
		return true
	}
	s.log.Debug("page count", zap.String("file", path), zap.Int("pages", n))
	return false
}

// Bundle returns the names of the unreadable files in b, in bundle order.
// File names are resolved relative to dir.
func (s *Scanner) Bundle(dir string, b *bundle.Bundle) []string {
	var res []string
	for _, name := range b.Files() {
		if s.IsUnreadable(filepath.Join(dir, name)) {
			res = append(res, name)
		}
	}
	return res
}

// All returns the names of the unreadable files in all bundles, sorted and
// without duplicates.
func (s *Scanner) All(dir string, bundles []*bundle.Bundle) []string {
	var res []string
	for _, b := range bundles {
		res = append(res, s.Bundle(dir, b)...)
	}
	slices.Sort(res)
	return slices.Compact(res)
}
