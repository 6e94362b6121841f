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

package scan

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfbundle/bundle"
	"seehuhn.de/go/pdfbundle/refcode"
)

// fakeCounter fails for the base names listed in bad.
type fakeCounter struct {
	bad   map[string]bool
	calls []string
}

func (f *fakeCounter) NumPages(path string) (int, error) {
	f.calls = append(f.calls, path)
	if f.bad[filepath.Base(path)] {
		return 0, errors.New("encrypted")
	}
	return 1, nil
}

func makeBundle(t *testing.T, code string, files ...string) *bundle.Bundle {
	t.Helper()
	b := bundle.New(refcode.Code("ABCD"+code), "out.pdf")
	for _, f := range files {
		if err := b.Add(f); err != nil {
			t.Fatal(err)
		}
	}
	return b
}

func TestIsUnreadable(t *testing.T) {
	fc := &fakeCounter{bad: map[string]bool{"bad.pdf": true}}
	s := New(fc, nil)
	if s.IsUnreadable("in/good.pdf") {
		t.Error("good.pdf reported as unreadable")
	}
	if !s.IsUnreadable("in/bad.pdf") {
		t.Error("bad.pdf reported as readable")
	}
}

func TestBundle(t *testing.T) {
	fc := &fakeCounter{bad: map[string]bool{"z.pdf": true, "b.pdf": true}}
	s := New(fc, nil)

	b := makeBundle(t, "0001", "z.pdf", "a.pdf", "b.pdf")
	got := s.Bundle("in", b)
	if d := cmp.Diff([]string{"z.pdf", "b.pdf"}, got); d != "" {
		t.Errorf("wrong result (-want +got):\n%s", d)
	}
	wantCalls := []string{
		filepath.Join("in", "z.pdf"),
		filepath.Join("in", "a.pdf"),
		filepath.Join("in", "b.pdf"),
	}
	if d := cmp.Diff(wantCalls, fc.calls); d != "" {
		t.Errorf("wrong files probed (-want +got):\n%s", d)
	}

	if got := s.Bundle("in", makeBundle(t, "0002", "a.pdf")); len(got) != 0 {
		t.Errorf("expected no unreadable files, got %q", got)
	}
}

func TestAll(t *testing.T) {
	fc := &fakeCounter{bad: map[string]bool{"z.pdf": true, "c.pdf": true, "a.pdf": true}}
	s := New(fc, nil)

	bundles := []*bundle.Bundle{
		makeBundle(t, "0001", "z.pdf", "ok1.pdf"),
		makeBundle(t, "0002"),
		makeBundle(t, "0003", "c.pdf", "a.pdf", "a.pdf"),
	}
	got := s.All("in", bundles)
	if d := cmp.Diff([]string{"a.pdf", "c.pdf", "z.pdf"}, got); d != "" {
		t.Errorf("wrong result (-want +got):\n%s", d)
	}
}
