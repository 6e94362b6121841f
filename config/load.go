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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/pdfbundle/refcode"
)

// Load reads the configuration files from the directory dir.
// Files which do not exist are treated as empty.
func Load(dir string) (*Config, error) {
	ignore, err := readList(filepath.Join(dir, IgnoreFile))
	if err != nil {
		return nil, err
	}
	order, err := readList(filepath.Join(dir, DocumentOrder))
	if err != nil {
		return nil, err
	}

	assocFile := filepath.Join(dir, AssociationsFile)
	assocRaw, err := readMap(assocFile)
	if err != nil {
		return nil, err
	}
	assoc := make(map[refcode.Code]refcode.Code, len(assocRaw))
	for _, e := range assocRaw {
		from, err := refcode.Extract(e.key)
		if err != nil {
			return nil, e.fail(assocFile, err)
		}
		to, err := refcode.Extract(e.val)
		if err != nil {
			return nil, e.fail(assocFile, err)
		}
		assoc[from] = to
	}

	namesFile := filepath.Join(dir, OutputNamesFile)
	namesRaw, err := readMap(namesFile)
	if err != nil {
		return nil, err
	}
	names := make(map[refcode.Code]string, len(namesRaw))
	for _, e := range namesRaw {
		code, err := refcode.Extract(e.key)
		if err != nil {
			return nil, e.fail(namesFile, err)
		}
		if !isBaseName(e.val) {
			return nil, e.fail(namesFile, errBadOutputName)
		}
		names[code] = e.val
	}

	return New(ignore, assoc, names, order), nil
}

// readList reads one trimmed entry per line.  Blank lines are skipped.
func readList(fname string) ([]string, error) {
	var res []string
	err := scanLines(fname, true, func(_ int, line string) error {
		res = append(res, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

type entry struct {
	line     int
	key, val string
}

func (e entry) fail(fname string, err error) error {
	return &MalformedError{File: fname, Line: e.line, Fields: 2, Err: err}
}

// readMap reads tab-separated key/value pairs, in file order.  Every line,
// including a blank one, must hold exactly one pair.
func readMap(fname string) ([]entry, error) {
	var res []entry
	err := scanLines(fname, false, func(lineNo int, line string) error {
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return &MalformedError{File: fname, Line: lineNo, Fields: len(fields)}
		}
		res = append(res, entry{
			line: lineNo,
			key:  strings.TrimSpace(fields[0]),
			val:  strings.TrimSpace(fields[1]),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// scanLines calls fn for every line of the file, with surrounding white
// space removed.  If skipBlank is set, blank lines are left out.  Line
// numbers start at 1.
func scanLines(fname string, skipBlank bool, fn func(lineNo int, line string) error) error {
	fd, err := os.Open(fname)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	defer fd.Close()

	s := bufio.NewScanner(fd)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := s.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimSpace(norm.NFC.String(line))
		if line == "" && skipBlank {
			continue
		}
		err := fn(lineNo, line)
		if err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

func isBaseName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

var errBadOutputName = errors.New("output name must be a plain file name")

// MalformedError is returned by [Load] if a line of a configuration file
// cannot be parsed.
type MalformedError struct {
	File   string
	Line   int
	Fields int
	Err    error
}

func (err *MalformedError) Error() string {
	msg := err.File + ":" + strconv.Itoa(err.Line) + ": "
	if err.Err != nil {
		return msg + err.Err.Error()
	}
	return msg + "expected 2 tab-separated fields, found " + strconv.Itoa(err.Fields)
}

func (err *MalformedError) Unwrap() error {
	return err.Err
}
