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

// Package buildinfo reports version information for the command line tools.
package buildinfo

import (
	"runtime/debug"
)

// pdfModule is the PDF library whose version is reported next to the tool's.
const pdfModule = "seehuhn.de/go/pdf"

// Short returns a short version string for a CLI tool, e.g.
// "pdf-bundle (seehuhn.de/go/pdfbundle v0.1.0, seehuhn.de/go/pdf v0.6.0)".
func Short(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolName
	}

	parts := mainVersion(info)
	for _, dep := range info.Deps {
		if dep.Path != pdfModule {
			continue
		}
		if dep.Replace != nil {
			dep = dep.Replace
		}
		parts = append(parts, pdfModule+" "+dep.Version)
	}
	if len(parts) == 0 {
		return toolName
	}

	res := toolName + " ("
	for i, p := range parts {
		if i > 0 {
			res += ", "
		}
		res += p
	}
	return res + ")"
}

// mainVersion describes the main module, falling back to the VCS revision
// for development builds.
func mainVersion(info *debug.BuildInfo) []string {
	version := info.Main.Version
	if version != "" && version != "(devel)" {
		return []string{info.Main.Path + " " + version}
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return nil
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return []string{info.Main.Path + " " + rev}
}
