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

// Package engine provides the PDF operations needed to combine bundles:
// reading the page count of a file, and concatenating the pages of several
// files into a new file.
package engine

import (
	"errors"
	"fmt"
)

// Engine is implemented by the supported PDF libraries.
type Engine interface {
	// NumPages returns the number of pages in the PDF file at path.
	// An error is returned if the file cannot be read.
	NumPages(path string) (int, error)

	// Merge writes a new PDF file to out, which contains all pages of the
	// files in, in order.  If in is empty, ErrNoInput is returned and no
	// file is written.
	Merge(out string, in []string) error
}

// Names lists the engines known to [ByName].
var Names = []string{"native", "pdfcpu"}

// ByName returns the engine with the given name.
// The empty string selects the default engine.
func ByName(name string) (Engine, error) {
	switch name {
	case "", "native":
		return Native{}, nil
	case "pdfcpu":
		return NewPDFCPU(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownEngine, name)
	}
}

var (
	// ErrUnknownEngine is returned by [ByName] for unsupported names.
	ErrUnknownEngine = errors.New("unknown PDF engine")

	// ErrEncrypted indicates a file which is protected by encryption.
	ErrEncrypted = errors.New("file is encrypted")

	// ErrNoInput is returned by Merge if there are no files to merge.
	// PDF files must have at least one page.
	ErrNoInput = errors.New("no input files")
)
