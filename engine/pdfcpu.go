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

package engine

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFCPU implements [Engine] using the pdfcpu library.
type PDFCPU struct {
	conf *model.Configuration
}

// NewPDFCPU returns a pdfcpu engine with relaxed validation.
func NewPDFCPU() *PDFCPU {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFCPU{conf: conf}
}

// NumPages implements the [Engine] interface.
func (e *PDFCPU) NumPages(path string) (int, error) {
	fd, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer fd.Close()

	ctx, err := api.ReadContext(fd, e.conf)
	if err != nil {
		return 0, err
	}
	if ctx.Encrypt != nil {
		return 0, ErrEncrypted
	}
	err = ctx.EnsurePageCount()
	if err != nil {
		return 0, err
	}
	return ctx.PageCount, nil
}

// Merge implements the [Engine] interface.
func (e *PDFCPU) Merge(out string, in []string) error {
	if len(in) == 0 {
		return ErrNoInput
	}
	return api.MergeCreateFile(in, out, false, e.conf)
}
