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

// Package pdftest creates small PDF files for use in tests.
package pdftest

import (
	"os"
	"testing"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/pagetree"
)

// Height is the page height used for all generated pages.
const Height = 200

// WritePage writes a PDF file with a single empty page of the given width.
// Tests use the width to tell pages apart after merging.
func WritePage(t *testing.T, path string, width float64) {
	t.Helper()
	writePage(t, path, width, nil)
}

// WriteEncrypted writes a single-page PDF file which needs a password to
// open.
func WriteEncrypted(t *testing.T, path string) {
	t.Helper()
	opt := &pdf.WriterOptions{
		UserPassword:  "secret",
		OwnerPassword: "owner",
	}
	writePage(t, path, 100, opt)
}

// WriteGarbage writes a file which is not a PDF file.
func WriteGarbage(t *testing.T, path string) {
	t.Helper()
	err := os.WriteFile(path, []byte("%PDF-1.7\nthis is not a PDF file\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
}

func writePage(t *testing.T, path string, width float64, opt *pdf.WriterOptions) {
	t.Helper()
	paper := &pdf.Rectangle{URx: width, URy: Height}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, opt)
	if err != nil {
		t.Fatal(err)
	}
	err = page.Close()
	if err != nil {
		t.Fatal(err)
	}
}

// PageWidths returns the width of every page in the PDF file at path.
func PageWidths(t *testing.T, path string) []float64 {
	t.Helper()
	r, err := pdf.Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	numPages, err := pagetree.NumPages(r)
	if err != nil {
		t.Fatal(err)
	}
	res := make([]float64, numPages)
	for i := range numPages {
		_, pageDict, err := pagetree.GetPage(r, i)
		if err != nil {
			t.Fatal(err)
		}
		box, err := pdf.GetRectangle(r, pageDict["MediaBox"])
		if err != nil {
			t.Fatal(err)
		}
		res[i] = box.Dx()
	}
	return res
}
