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
	"fmt"
	"maps"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// Native implements [Engine] using the seehuhn.de/go/pdf library.
//
// Only the page contents are copied; outlines, document information and
// other document-level structures of the inputs are not transferred.
type Native struct{}

// NumPages implements the [Engine] interface.
func (Native) NumPages(path string) (int, error) {
	r, err := open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	return pagetree.NumPages(r)
}

// Merge implements the [Engine] interface.
func (Native) Merge(out string, in []string) error {
	if len(in) == 0 {
		return ErrNoInput
	}

	var readers []*pdf.Reader
	defer func() {
		for _, r := range readers {
			r.Close()
		}
	}()

	// The output uses the highest PDF version found among the inputs.
	v := pdf.V1_0
	for _, fname := range in {
		r, err := open(fname)
		if err != nil {
			return fmt.Errorf("%s: %w", fname, err)
		}
		readers = append(readers, r)

		if ver := r.GetMeta().Version; ver > v {
			v = ver
		}
	}

	w, err := pdf.Create(out, v, nil)
	if err != nil {
		return err
	}
	abort := func(err error) error {
		w.Close()
		return err
	}

	rm := pdf.NewResourceManager(w)
	tree := pagetree.NewWriter(w, rm)
	for i, r := range readers {
		err := appendPages(w, tree, r)
		if err != nil {
			return abort(fmt.Errorf("%s: %w", in[i], err))
		}
	}

	treeRef, err := tree.Close()
	if err != nil {
		return abort(fmt.Errorf("failed to close page tree: %w", err))
	}
	err = rm.Close()
	if err != nil {
		return abort(fmt.Errorf("failed to close resource manager: %w", err))
	}

	w.GetMeta().Catalog.Pages = treeRef
	return w.Close()
}

// appendPages copies all pages of r to the end of the page tree.
func appendPages(w *pdf.Writer, tree *pagetree.Writer, r *pdf.Reader) error {
	numPages, err := pagetree.NumPages(r)
	if err != nil {
		return err
	}

	copier := pdf.NewCopier(w, r)
	for pageNo := range numPages {
		refIn, pageIn, err := pagetree.GetPage(r, pageNo)
		if err != nil {
			return fmt.Errorf("failed to get page %d: %w", pageNo+1, err)
		}

		// The page tree writer sets a new parent.  Copying the old one would
		// drag the complete input page tree along.
		pageIn = maps.Clone(pageIn)
		delete(pageIn, "Parent")

		// Redirect first, so that references from annotations back to the
		// page point to the copy.
		refOut := w.Alloc()
		if refIn != 0 {
			copier.Redirect(refIn, refOut)
		}

		pageOut, err := copier.CopyDict(pageIn)
		if err != nil {
			return fmt.Errorf("failed to copy page %d: %w", pageNo+1, err)
		}
		err = tree.AppendPageDict(refOut, pageOut)
		if err != nil {
			return fmt.Errorf("failed to append page %d: %w", pageNo+1, err)
		}
	}
	return nil
}

// open opens a PDF file for reading.  Only the empty password is tried, and
// encrypted files are rejected with [ErrEncrypted].
func open(fname string) (*pdf.Reader, error) {
	r, err := pdf.Open(fname, nil)
	if err != nil {
		return nil, err
	}
	if r.GetMeta().Trailer["Encrypt"] != nil {
		r.Close()
		return nil, ErrEncrypted
	}
	return r, nil
}
