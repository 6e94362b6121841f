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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfbundle/refcode"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		IgnoreFile: "UpADocumentToIgnore\nAndAnotherOne\n",
		AssociationsFile: "SJDK2136\tAJDK5462\n" +
			"POEU2146\tALDJ2136\r\n",
		OutputNamesFile: "AJDK5462\tSome_Application_John_Smith_AJDK5462\n" +
			"Old_Man_Winter_CJEU3216.pdf\tWinter.pdf\n" +
			"ALDJ2136\t Some_Application_Elon_Musk_ALDJ2136 \n",
		DocumentOrder: "Application\n\nUp Resume\nUpPassport\nRecommendation\n",
	})

	c, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff([]string{"UpADocumentToIgnore", "AndAnotherOne"}, c.IgnoreList()); d != "" {
		t.Errorf("ignore list (-want +got):\n%s", d)
	}
	wantAssoc := map[refcode.Code]refcode.Code{
		"SJDK2136": "AJDK5462",
		"POEU2146": "ALDJ2136",
	}
	if d := cmp.Diff(wantAssoc, c.Associations()); d != "" {
		t.Errorf("associations (-want +got):\n%s", d)
	}
	wantNames := map[refcode.Code]string{
		"AJDK5462": "Some_Application_John_Smith_AJDK5462",
		"CJEU3216": "Winter.pdf",
		"ALDJ2136": "Some_Application_Elon_Musk_ALDJ2136",
	}
	if d := cmp.Diff(wantNames, c.OutputNames()); d != "" {
		t.Errorf("output names (-want +got):\n%s", d)
	}
	wantOrder := []string{"Application", "Up Resume", "UpPassport", "Recommendation"}
	if d := cmp.Diff(wantOrder, c.DocumentOrder()); d != "" {
		t.Errorf("document order (-want +got):\n%s", d)
	}
	wantPrimaries := []refcode.Code{"AJDK5462", "ALDJ2136", "CJEU3216"}
	if d := cmp.Diff(wantPrimaries, c.Primaries()); d != "" {
		t.Errorf("primaries (-want +got):\n%s", d)
	}
}

func TestLoadMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.IgnoreList()) != 0 || len(c.DocumentOrder()) != 0 {
		t.Error("expected empty lists")
	}
	if len(c.Associations()) != 0 || len(c.OutputNames()) != 0 {
		t.Error("expected empty maps")
	}
	if c.IgnoreList() == nil || c.Associations() == nil {
		t.Error("empty tables should not be nil")
	}
}

func TestLoadMalformed(t *testing.T) {
	type testCase struct {
		file, body string
		line       int
	}
	cases := []testCase{
		{AssociationsFile, "SJDK2136\tAJDK5462\nSJDK2137 AJDK5462\n", 2},
		{OutputNamesFile, "AJDK5462\ta\tb\n", 1},
		{OutputNamesFile, "AJDK5462\tsub/dir.pdf\n", 1},
		{OutputNamesFile, "AJDK5462\tout.pdf\n\nALDJ2136\tother.pdf\n", 2},
		{AssociationsFile, "SJDK2136\tAJDK5462\n \t\n", 2},
		{AssociationsFile, "SJDK2136\tAJDK5462\n\n", 2},
		{OutputNamesFile, "AJDK5462\t..\n", 1},
		{OutputNamesFile, "no code\tx.pdf\n", 1},
		{AssociationsFile, "SJDK2136\tAJDK5462_ALDJ2136\n", 1},
	}
	for i, c := range cases {
		dir := writeFiles(t, map[string]string{c.file: c.body})
		_, err := Load(dir)
		var malformed *MalformedError
		if !errors.As(err, &malformed) {
			t.Errorf("%d: expected *MalformedError, got %v", i, err)
			continue
		}
		if malformed.Line != c.line {
			t.Errorf("%d: error reported for line %d, want %d", i, malformed.Line, c.line)
		}
		if malformed.File != filepath.Join(dir, c.file) {
			t.Errorf("%d: error reported for file %q", i, malformed.File)
		}
	}
}

// Only missing files count as empty.  Other read errors are reported.
func TestLoadReadError(t *testing.T) {
	// a configuration "file" which is a directory can be opened, but not read
	dir := t.TempDir()
	err := os.Mkdir(filepath.Join(dir, OutputNamesFile), 0o755)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Load(dir)
	if err == nil {
		t.Error("directory in place of a file: expected an error")
	}

	// a configuration directory which is a regular file cannot be opened
	notDir := filepath.Join(t.TempDir(), "config")
	err = os.WriteFile(notDir, nil, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Load(notDir)
	if err == nil {
		t.Error("file in place of the directory: expected an error")
	}

	var malformed *MalformedError
	if errors.As(err, &malformed) {
		t.Errorf("read error reported as %v", err)
	}
}

func TestLoadKeyCode(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		OutputNamesFile: "Some_Application_ABCD2356\tout.pdf\n",
	})
	c, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.OutputNames()["ABCD2356"]; got != "out.pdf" {
		t.Errorf("got %q, want \"out.pdf\"", got)
	}
}

func TestIgnored(t *testing.T) {
	c := New([]string{"UpADocumentToIgnore", "AndAnotherOne"}, nil, nil, nil)
	for name, want := range map[string]bool{
		"something_UpADocumentToIgnore_something": true,
		"AndAnotherOne":                           true,
		"upadocumenttoignore":                     false,
		"AJDK5462_Application.pdf":                false,
	} {
		if got := c.Ignored(name); got != want {
			t.Errorf("Ignored(%q) = %t, want %t", name, got, want)
		}
	}
}

// Names read from some file systems use decomposed Unicode.
func TestIgnoredNormalisation(t *testing.T) {
	c := New([]string{"Zeugnis_Müller"}, nil, nil, nil)
	decomposed := "AJDK5462_Zeugnis_Mu\u0308ller.pdf"
	if !c.Ignored(decomposed) {
		t.Error("decomposed file name not matched")
	}
}

func TestImmutable(t *testing.T) {
	order := []string{"A", "B"}
	c := New(nil, nil, nil, order)
	order[0] = "X"
	got := c.DocumentOrder()
	got[1] = "Y"
	if d := cmp.Diff([]string{"A", "B"}, c.DocumentOrder()); d != "" {
		t.Errorf("config was modified (-want +got):\n%s", d)
	}
}
