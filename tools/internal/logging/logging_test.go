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

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	type testCase struct {
		interactive, verbose bool
		encoding             string
		level                zapcore.Level
	}
	cases := []testCase{
		{false, false, "json", zapcore.InfoLevel},
		{false, true, "json", zapcore.DebugLevel},
		{true, false, "console", zapcore.InfoLevel},
		{true, true, "console", zapcore.DebugLevel},
	}
	for _, c := range cases {
		cfg := newConfig(c.interactive, c.verbose)
		if cfg.Encoding != c.encoding {
			t.Errorf("%t/%t: encoding %q, want %q", c.interactive, c.verbose, cfg.Encoding, c.encoding)
		}
		if got := cfg.Level.Level(); got != c.level {
			t.Errorf("%t/%t: level %s, want %s", c.interactive, c.verbose, got, c.level)
		}
	}
}

func TestNew(t *testing.T) {
	log, err := New(false)
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("not shown")
}
