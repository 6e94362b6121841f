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

// Pdf-bundle combines the PDF files of applicants into one file per
// applicant.
//
// Every input file name contains the reference code of an applicant.  Files
// are grouped by reference code, put into the order given by the
// configuration, and concatenated.  If any input file cannot be read, the
// unreadable files are listed and no output is written.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"seehuhn.de/go/pdfbundle/config"
	"seehuhn.de/go/pdfbundle/engine"
	"seehuhn.de/go/pdfbundle/pipeline"
	"seehuhn.de/go/pdfbundle/tools/internal/buildinfo"
	"seehuhn.de/go/pdfbundle/tools/internal/logging"
	"seehuhn.de/go/pdfbundle/tools/internal/profile"
)

const toolName = "pdf-bundle"

// options holds all command-line flag values.
type options struct {
	configDir  string
	input      string
	output     string
	engine     string
	settings   string
	dryRun     bool
	verbose    bool
	cpuprofile string
	memprofile string
}

func main() {
	opt, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if errors.Is(err, errUsage) {
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	log, err := logging.New(opt.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer log.Sync()

	err = run(opt, os.Stdout, log)
	if err != nil {
		log.Sync()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opt := &options{}
	fs := flag.NewFlagSet(toolName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.configDir, "config", "config", "read configuration files from `dir`")
	fs.StringVar(&opt.input, "input", "input", "read input PDF files from `dir`")
	fs.StringVar(&opt.output, "output", "output", "write combined files to `dir`")
	fs.StringVar(&opt.engine, "engine", "native",
		"PDF `library` to use ("+strings.Join(engine.Names, ", ")+")")
	fs.StringVar(&opt.settings, "settings", "", "read default option values from YAML `file`")
	fs.BoolVar(&opt.dryRun, "n", false, "show the bundles, but do not write any files")
	fs.BoolVar(&opt.verbose, "v", false, "show debug messages")
	fs.StringVar(&opt.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	fs.StringVar(&opt.memprofile, "memprofile", "", "write memory profile to `file`")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s \u2014 combine the PDF files of each applicant\n", toolName)
		fmt.Fprintf(out, "%s\n\n", buildinfo.Short(toolName))
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  %s [options]\n\n", toolName)
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  %s -input scans -output combined\n", toolName)
		fmt.Fprintf(out, "  %s -n -v\n", toolName)
	}

	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil, err
	} else if err != nil {
		// the flag package has already reported the problem
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return nil, errUsage
	}

	if opt.settings != "" {
		s, err := loadSettings(opt.settings)
		if err != nil {
			return nil, err
		}
		explicit := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) {
			explicit[f.Name] = true
		})
		s.applyTo(opt, explicit)
	}
	return opt, nil
}

var errUsage = errors.New("invalid command line")

var errBlocked = errors.New("unreadable input files, no output written")

func run(opt *options, stdout io.Writer, log *zap.Logger) error {
	stop, err := profile.Start(opt.cpuprofile, opt.memprofile, log)
	if err != nil {
		return err
	}
	defer stop()

	cfg, err := config.Load(opt.configDir)
	if err != nil {
		return err
	}
	eng, err := engine.ByName(opt.engine)
	if err != nil {
		return err
	}
	log.Debug("configuration loaded",
		zap.String("dir", opt.configDir),
		zap.Int("bundles", len(cfg.OutputNames())),
		zap.String("engine", opt.engine))

	res, err := pipeline.Run(&pipeline.Options{
		Input:  opt.input,
		Output: opt.output,
		Config: cfg,
		Engine: eng,
		Logger: log,
		DryRun: opt.dryRun,
	})
	if err != nil {
		return err
	}

	if opt.dryRun {
		showPlan(stdout, cfg, res)
	}
	if len(res.Blocked) > 0 {
		fmt.Fprintln(stdout, "unreadable PDF files found:")
		for _, name := range res.Blocked {
			fmt.Fprintln(stdout, name)
		}
		return errBlocked
	}
	if res.State == pipeline.Merged {
		log.Info("done", zap.Int("written", len(res.Written)))
	}
	return nil
}

// showPlan lists every bundle with its files, in output order, together with
// the ordering pattern which placed each file.
func showPlan(w io.Writer, cfg *config.Config, res *pipeline.Result) {
	order := cfg.DocumentOrder()
	for _, b := range res.Bundles {
		fmt.Fprintf(w, "%s -> %s (%d files)\n", b.Code(), b.Output(), b.Len())
		for i, tier := range b.Tiers(order) {
			label := "other"
			if i < len(order) {
				label = order[i]
			}
			for _, name := range tier {
				fmt.Fprintf(w, "  %s  [%s]\n", name, label)
			}
		}
	}
}
