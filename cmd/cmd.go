package cmd

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path"
	"strconv"
	"strings"
)

import (
	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/gspan/config"
	"github.com/timtadh/gspan/lattice"
	"github.com/timtadh/gspan/miners"
	"github.com/timtadh/gspan/miners/reporters"
	"github.com/timtadh/gspan/types/graph"
)

var ErrorCodes map[string]int = map[string]int{
	"usage":   0,
	"version": 2,
	"opts":    3,
	"badint":  5,
	"baddir":  6,
	"badfile": 7,
	"load":    8,
	"mine":    9,
}

var UsageMessage string
var ExtendedMessage string

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

// InputPaths lists the files named by inputPath: the file itself or every
// regular file of a directory in name order.
func InputPaths(inputPath string) ([]string, error) {
	stat, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}
	if !stat.IsDir() {
		return []string{inputPath}, nil
	}
	dir, err := ioutil.ReadDir(inputPath)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(dir))
	for _, info := range dir {
		if info.IsDir() {
			continue
		}
		paths = append(paths, path.Join(inputPath, info.Name()))
	}
	return paths, nil
}

// Load reads the graphs of every file named by inputPath. Each file is
// loaded on its own so a "t # -1" only ends the file it is in. The parse
// errors of all the files are returned together, prefixed by file name.
func Load(inputPath string, directed bool) ([]*graph.Graph, error) {
	paths, err := InputPaths(inputPath)
	if err != nil {
		return nil, err
	}
	var errs *multierror.Error
	graphs := make([]*graph.Graph, 0, 10)
	for _, p := range paths {
		gs, err := loadFile(p, directed)
		if err != nil {
			errs = multierror.Append(errs, multierror.Prefix(err, p+":"))
			continue
		}
		errors.Logf("DEBUG", "loaded %d graphs from %v", len(gs), p)
		graphs = append(graphs, gs...)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return graphs, nil
}

func loadFile(inputPath string, directed bool) ([]*graph.Graph, error) {
	input, closer, err := InputFile(inputPath)
	if err != nil {
		return nil, err
	}
	defer closer()
	return graph.NewLoader(directed).Load(input)
}

// InputFile opens a file, decompressing it when the name ends in .gz or
// .zst.
func InputFile(inputPath string) (reader io.Reader, closeall func(), err error) {
	freader, err := os.Open(inputPath)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasSuffix(inputPath, ".gz") {
		greader, err := gzip.NewReader(freader)
		if err != nil {
			freader.Close()
			return nil, nil, err
		}
		return greader, func() {
			greader.Close()
			freader.Close()
		}, nil
	} else if strings.HasSuffix(inputPath, ".zst") {
		zreader, err := zstd.NewReader(freader)
		if err != nil {
			freader.Close()
			return nil, nil, err
		}
		return zreader, func() {
			zreader.Close()
			freader.Close()
		}, nil
	}
	return freader, func() {
		freader.Close()
	}, nil
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

func EmptyDir(dir string) string {
	dir = path.Clean(dir)
	_, err := os.Stat(dir)
	if err != nil && os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0775)
		if err != nil {
			log.Fatal(err)
		}
	} else if err != nil {
		log.Fatal(err)
	} else {
		// something already exists lets delete it
		err := os.RemoveAll(dir)
		if err != nil {
			log.Fatal(err)
		}
		err = os.MkdirAll(dir, 0775)
		if err != nil {
			log.Fatal(err)
		}
	}
	return dir
}

func AssertFileOrDirExists(fname string) string {
	fname = path.Clean(fname)
	_, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "File '%s' does not exist!\n", fname)
		Usage(ErrorCodes["badfile"])
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

func AssertFile(fname string) string {
	fname = path.Clean(fname)
	fi, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		return fname
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		Usage(ErrorCodes["badfile"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s\n", fname)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

var Formats map[string]lattice.Formatter = map[string]lattice.Formatter{
	"txt": &lattice.Txt{},
	"dot": &lattice.Dot{},
}

func Formatter(name string) lattice.Formatter {
	fmtr, has := Formats[name]
	if !has {
		fmt.Fprintf(os.Stderr, "Unknown format '%v'\n", name)
		fmt.Fprintln(os.Stderr, "Formats:")
		for k := range Formats {
			fmt.Fprintln(os.Stderr, "  ", k)
		}
		Usage(ErrorCodes["opts"])
	}
	return fmtr
}

type Reporter func(map[string]Reporter, []string, lattice.Formatter, *config.Config) (miners.Reporter, []string)

// noOpts parses a reporter which only takes -h.
func noOpts(argv []string) []string {
	args, optargs, err := getopt.GetOpt(argv, "h", []string{"help"})
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return args
}

func unknownReporter(reports map[string]Reporter, name string) {
	errors.Logf("ERROR", "Unknown reporter '%v'", name)
	fmt.Fprintln(os.Stderr, "Reporters:")
	for k := range reports {
		fmt.Fprintln(os.Stderr, "  ", k)
	}
	Usage(ErrorCodes["opts"])
}

// inner parses the reporter wrapped by unique and skip.
func inner(reports map[string]Reporter, args []string, fmtr lattice.Formatter, conf *config.Config, wrapper string) (miners.Reporter, []string) {
	if len(args) == 0 {
		errors.Logf("ERROR", "You must supply an inner reporter to %v", wrapper)
		fmt.Fprintf(os.Stderr, "try: %v file\n", wrapper)
		Usage(ErrorCodes["opts"])
	} else if _, has := reports[args[0]]; !has {
		unknownReporter(reports, args[0])
	}
	return reports[args[0]](reports, args[1:], fmtr, conf)
}

func logReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hl:p:",
		[]string{
			"help",
			"level=",
			"prefix=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	level := "INFO"
	prefix := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-l", "--level":
			level = oa.Arg()
		case "-p", "--prefix":
			prefix = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return reporters.NewLog(level, prefix), args
}

func fileReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hp:n:",
		[]string{
			"help",
			"patterns=",
			"names=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	patterns := "patterns"
	names := "names.txt"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-p", "--patterns":
			patterns = oa.Arg()
		case "-n", "--names":
			names = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	fr, err := reporters.NewFile(conf, fmtr, patterns, names)
	if err != nil {
		errors.Logf("ERROR", "There was error creating output files\n")
		errors.Logf("ERROR", "%v\n", err)
		os.Exit(1)
	}
	return fr, args
}

func dirReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hd:",
		[]string{
			"help",
			"dir-name=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	dir := "patterns"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-d", "--dir-name":
			dir = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	dr, err := reporters.NewDir(conf, fmtr, dir)
	if err != nil {
		errors.Logf("ERROR", "There was error creating output files\n")
		errors.Logf("ERROR", "%v", err)
		os.Exit(1)
	}
	return dr, args
}

func chainReporter(reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args := noOpts(argv)
	rptrs := make([]miners.Reporter, 0, 10)
	for len(args) >= 1 {
		if args[0] == "endchain" {
			args = args[1:]
			break
		}
		if _, has := reports[args[0]]; !has {
			unknownReporter(reports, args[0])
		}
		var rptr miners.Reporter
		rptr, args = reports[args[0]](reports, args[1:], fmtr, conf)
		rptrs = append(rptrs, rptr)
	}
	if len(rptrs) == 0 {
		errors.Logf("ERROR", "Empty chain")
		fmt.Fprintln(os.Stderr, "try: chain log file")
		Usage(ErrorCodes["opts"])
	}
	return &reporters.Chain{Reporters: rptrs}, args
}

func uniqueReporter(reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args := noOpts(argv)
	rptr, args := inner(reports, args, fmtr, conf, "unique")
	return reporters.NewUnique(rptr), args
}

func skipReporter(reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hn:",
		[]string{
			"help",
			"every=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	every := 1
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-n", "--every":
			every = ParseInt(oa.Arg())
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	rptr, args := inner(reports, args, fmtr, conf, "skip")
	return reporters.NewSkip(every, rptr), args
}

func summaryReporter(reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args := noOpts(argv)
	return reporters.NewSummary(os.Stdout), args
}

func heapProfileReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hp:a:e:",
		[]string{
			"help",
			"profile=",
			"after=",
			"every=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	after := 0
	every := 1
	profile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-p", "--profile":
			profile = AssertFile(oa.Arg())
		case "-a", "--after":
			after = ParseInt(oa.Arg())
		case "-e", "--every":
			every = ParseInt(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	if profile == "" {
		fmt.Fprintf(os.Stderr, "You must supply a location to write the profile (-p) in heap-profile.\n")
		os.Exit(1)
	}
	r, err := reporters.NewHeapProfile(profile, after, every)
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error creating output files\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	return r, args
}

var Reporters map[string]Reporter

func init() {
	Reporters = map[string]Reporter{
		"log":          logReporter,
		"file":         fileReporter,
		"dir":          dirReporter,
		"chain":        chainReporter,
		"unique":       uniqueReporter,
		"skip":         skipReporter,
		"summary":      summaryReporter,
		"heap-profile": heapProfileReporter,
	}
}

// ParseReporter builds the reporter named by args[0] (or the default
// "chain log file" when args is empty) and returns the unconsumed args.
func ParseReporter(args []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	if len(args) == 0 {
		rptr, _ := Reporters["chain"](Reporters, []string{"log", "file"}, fmtr, conf)
		return rptr, args
	} else if _, has := Reporters[args[0]]; !has {
		unknownReporter(Reporters, args[0])
	}
	return Reporters[args[0]](Reporters, args[1:], fmtr, conf)
}
