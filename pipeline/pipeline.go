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

// Package pipeline combines the input files of all applicants.
//
// A run moves through the states
//
//	Initialized → BundlesBuilt → FilesAssigned → Sorted → Scanned → Merged
//
// and stops in state Blocked instead of Merged if any input file cannot be
// read.  In this case no output is written at all.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"seehuhn.de/go/pdfbundle/bundle"
	"seehuhn.de/go/pdfbundle/config"
	"seehuhn.de/go/pdfbundle/refcode"
	"seehuhn.de/go/pdfbundle/scan"
)

// State is a stage of a run.
type State int

// These are the states of a run.
const (
	Initialized State = iota
	BundlesBuilt
	FilesAssigned
	Sorted
	Scanned
	Merged
	Blocked
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case BundlesBuilt:
		return "bundles built"
	case FilesAssigned:
		return "files assigned"
	case Sorted:
		return "sorted"
	case Scanned:
		return "scanned"
	case Merged:
		return "merged"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Engine is the PDF library used to probe and merge files.
type Engine interface {
	scan.PageCounter
	Merge(out string, in []string) error
}

// Options describes a run.
type Options struct {
	// Input is the directory containing the input PDF files.
	Input string

	// Output is the directory where the combined files are written.
	// The directory must exist.
	Output string

	Config *config.Config
	Engine Engine

	// Logger receives progress messages.  If nil, nothing is logged.
	Logger *zap.Logger

	// DryRun stops the run after the input files have been scanned.
	DryRun bool
}

// Result describes the outcome of a run.
type Result struct {
	// State is the state in which the run stopped.  This is Merged or
	// Blocked, or Scanned for a dry run.
	State State

	// Bundles are the bundles of the run, in order of their reference codes.
	Bundles []*bundle.Bundle

	// Blocked lists the unreadable input files, sorted.
	Blocked []string

	// Empty lists the bundles which received no input files.  No output is
	// written for these.
	Empty []refcode.Code

	// Written lists the output files, in bundle order.
	Written []string
}

// Run processes all files in the input directory.
//
// Unreadable input files are not an error: in this case the run stops in
// state Blocked and the files are listed in Result.Blocked.  All other
// problems abort the run and are returned as errors.
func Run(opt *Options) (*Result, error) {
	r := &runner{
		opt: opt,
		log: opt.Logger,
		res: &Result{State: Initialized},
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}

	for !r.done() {
		next, err := r.step()
		if err != nil {
			return nil, err
		}
		r.log.Debug("state change",
			zap.Stringer("from", r.res.State),
			zap.Stringer("to", next))
		r.res.State = next
	}
	return r.res, nil
}

type runner struct {
	opt *Options
	log *zap.Logger
	res *Result
	set *bundle.Set
}

func (r *runner) done() bool {
	switch r.res.State {
	case Merged, Blocked:
		return true
	case Scanned:
		return r.opt.DryRun
	default:
		return false
	}
}

func (r *runner) step() (State, error) {
	switch r.res.State {
	case Initialized:
		r.set = bundle.NewSet(r.opt.Config)
		r.res.Bundles = r.set.All()
		return BundlesBuilt, nil

	case BundlesBuilt:
		return FilesAssigned, r.assign()

	case FilesAssigned:
		order := r.opt.Config.DocumentOrder()
		for _, b := range r.res.Bundles {
			err := b.Sort(order)
			if err != nil {
				return 0, err
			}
		}
		return Sorted, nil

	case Sorted:
		s := scan.New(r.opt.Engine, r.log)
		r.res.Blocked = s.All(r.opt.Input, r.res.Bundles)
		return Scanned, nil

	case Scanned:
		if len(r.res.Blocked) > 0 {
			r.log.Warn("unreadable input files, nothing written",
				zap.Strings("files", r.res.Blocked))
			return Blocked, nil
		}
		return Merged, r.merge()

	default:
		return 0, fmt.Errorf("no transition from state %s", r.res.State)
	}
}

// assign routes every file of the input directory into its bundle.
func (r *runner) assign() error {
	entries, err := os.ReadDir(r.opt.Input)
	if err != nil {
		return err
	}

	a := bundle.NewAssigner(r.opt.Config, r.set)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		b, skip, err := a.Assign(name)
		if err != nil {
			return err
		}
		if skip {
			r.log.Debug("ignoring file", zap.String("file", name))
			continue
		}
		err = b.Add(name)
		if err != nil {
			return err
		}
	}
	return nil
}

// merge writes the output files.  All bundles are first written to
// temporary files, which are renamed once every bundle has been merged.
func (r *runner) merge() error {
	type staged struct {
		tmp, final string
	}
	var todo []staged
	success := false
	defer func() {
		if success {
			return
		}
		for _, s := range todo {
			os.Remove(s.tmp)
		}
	}()

	seen := make(map[string]refcode.Code)
	for _, b := range r.res.Bundles {
		if b.Len() == 0 {
			r.log.Warn("no input files, bundle skipped", zap.String("code", string(b.Code())))
			r.res.Empty = append(r.res.Empty, b.Code())
			continue
		}

		final := filepath.Join(r.opt.Output, b.Output())
		if other, dup := seen[final]; dup {
			return &OutputError{
				Path: final,
				Err:  fmt.Errorf("%w (bundles %s and %s)", errDuplicateOutput, other, b.Code()),
			}
		}
		seen[final] = b.Code()

		fd, err := os.CreateTemp(r.opt.Output, ".pdf-bundle-*")
		if err != nil {
			return &OutputError{Path: final, Err: err}
		}
		tmp := fd.Name()
		fd.Close()
		todo = append(todo, staged{tmp: tmp, final: final})

		in := make([]string, 0, b.Len())
		for _, name := range b.Files() {
			in = append(in, filepath.Join(r.opt.Input, name))
		}
		err = r.opt.Engine.Merge(tmp, in)
		if err != nil {
			return &OutputError{Path: final, Err: err}
		}
		r.log.Info("bundle merged",
			zap.String("code", string(b.Code())),
			zap.Int("files", len(in)),
			zap.String("output", final))
	}

	for i, s := range todo {
		err := os.Rename(s.tmp, s.final)
		if err != nil {
			todo = todo[i:]
			return &OutputError{Path: s.final, Err: err}
		}
		r.res.Written = append(r.res.Written, s.final)
	}
	success = true
	return nil
}

var errDuplicateOutput = errors.New("output file name used twice")

// OutputError is returned by [Run] if an output file cannot be written.
type OutputError struct {
	Path string
	Err  error
}

func (err *OutputError) Error() string {
	return "cannot write " + err.Path + ": " + err.Err.Error()
}

func (err *OutputError) Unwrap() error {
	return err.Err
}
