package main

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
	"os"
	"runtime/pprof"
	"strings"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/gspan/cmd"
	"github.com/timtadh/gspan/config"
	"github.com/timtadh/gspan/miners/gspan"
	"github.com/timtadh/gspan/stats"
)

func init() {
	cmd.UsageMessage = "gspan --help"
	cmd.ExtendedMessage = `
gspan - mine frequent connected subgraphs

$ gspan -o <path> --support=<int> [Global Options] \
    <input-path> \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then <input-path> and finally the
      reporter. Changes in ordering are not supported.

Note: The <input-path> may be a file, a gzipped file (.gz), a zstd file
      (.zst) or a directory of such files. The files of a directory are
      loaded one at a time (in name order) so a 't # -1' line only ends
      the file it is in.

Note: If you don't supply a reporter by default it will use 'chain log file'.

Global Options
    -h, --help                view this message
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -s, --support=<int>       minimum support of patterns (required). The
                              number of graphs a pattern must occur in.
    --min-vertices=<int>      smallest pattern reported (default 1)
    --max-vertices=<int>      largest pattern reported (default 10). A value
                              <= --min-vertices removes the upper bound.
    -d, --directed            treat the edges as directed. Patterns only
                              grow along outgoing edges, so a pattern with
                              a vertex that is the target of two pattern
                              edges (a->b<-c) is never found.
    -f, --format=<fmt>        pattern output format: txt or dot (default txt)
    --config=<path>           yaml file with defaults for the options above
                              (keys: output, support, min-vertices,
                              max-vertices, directed, format, metrics)
    --metrics=<path>          write prometheus metrics for the run here
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Input Format
    t # <graph-id>
    v <vertex-id> <label>
    e <from-id> <to-id> <label>
    t # -1

    Vertex ids start at 0 in each graph and must be given in order. Labels
    are non-negative integers. An edge may only use vertices declared before
    it. The optional 't # -1' line ends the input.

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the patterns
    file                      write the patterns to a file in the output dir
    dir                       write patterns to a nested dir format
    unique                    only passes patterns not seen before to its
                              inner reporter
    skip                      passes every n-th pattern to its inner reporter
    summary                   print a table of pattern counts by size
    heap-profile              write heap profiles while mining

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -p, patterns=<name>   the prefix of the name of the file in the output
                              directory to write the patterns
        -n, names=<name>      the name of the file in the output directory to
                              write the pattern names

    dir Options
        -d, dir-name=<name>   name of the directory.

    skip Options
        -n, every=<int>       report every n-th pattern (default 1)

    heap-profile Options
        -p, profile=<path>    where you want the heap-profile written
        -e, every=<int>       collect every n patterns (default 1)
        -a, after=<int>       collect after n patterns (default 0)

    Examples

        $ gspan -o /tmp/gspan --support=5 ./data/graphs.txt

        $ gspan -o /tmp/gspan --support=5 --max-vertices=6 -f dot \
            ./data/graphs.txt.gz \
            chain log summary dir endchain
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:s:df:",
		[]string{
			"help",
			"reporters",
			"output=",
			"support=",
			"min-vertices=",
			"max-vertices=",
			"directed",
			"format=",
			"config=",
			"metrics=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	conf := config.Default()
	// the config file is loaded first so the flags override it.
	for _, oa := range optargs {
		if oa.Opt() == "--config" {
			if err := conf.Load(oa.Arg()); err != nil {
				fmt.Fprintln(os.Stderr, err)
				cmd.Usage(cmd.ErrorCodes["badfile"])
			}
		}
	}

	output := ""
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "-o", "--output":
			output = oa.Arg()
		case "-s", "--support":
			conf.Support = cmd.ParseInt(oa.Arg())
		case "--min-vertices":
			conf.MinVertices = cmd.ParseInt(oa.Arg())
		case "--max-vertices":
			conf.MaxVertices = cmd.ParseInt(oa.Arg())
		case "-d", "--directed":
			conf.Directed = true
		case "-f", "--format":
			conf.Format = oa.Arg()
		case "--config":
		case "--metrics":
			conf.Metrics = cmd.AssertFile(oa.Arg())
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if output != "" {
		conf.Output = output
	}
	if conf.Output == "" {
		fmt.Fprintln(os.Stderr, "You must supply an output dir (-o)")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	conf.Output = cmd.EmptyDir(conf.Output)
	if err := conf.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	fmtr := cmd.Formatter(conf.Format)

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply an input path\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	inputPath := cmd.AssertFileOrDirExists(args[0])
	args = args[1:]

	rptr, args := cmd.ParseReporter(args, fmtr, conf)
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "unconsumed commandline options: '%v'\n", strings.Join(args, " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			errors.Logf("ERROR", "%v", err)
			return 1
		}
		defer f.Close()
		err = pprof.StartCPUProfile(f)
		if err != nil {
			errors.Logf("ERROR", "%v", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	errors.Logf("INFO", "Got configuration about to load dataset")
	start := time.Now()
	graphs, err := cmd.Load(inputPath, conf.Directed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error during the loading process\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return cmd.ErrorCodes["load"]
	}
	errors.Logf("INFO", "loaded %d graphs in %v", len(graphs), time.Since(start))

	metrics := stats.NewMetrics()
	miner := gspan.NewMiner(conf, metrics)
	start = time.Now()
	mineErr := miner.Mine(graphs, rptr)

	code := 0
	if e := miner.Close(); e != nil {
		errors.Logf("ERROR", "error closing %v", e)
		code = 1
	}
	if conf.Metrics != "" {
		if e := metrics.WriteTextfile(conf.Metrics); e != nil {
			errors.Logf("ERROR", "error writing metrics %v", e)
			code = 1
		}
	}
	if mineErr != nil {
		fmt.Fprintf(os.Stderr, "There was error during the mining process\n")
		fmt.Fprintf(os.Stderr, "%v\n", mineErr)
		return cmd.ErrorCodes["mine"]
	}
	errors.Logf("INFO", "Done! %d patterns in %v", miner.Count(), time.Since(start))
	return code
}
