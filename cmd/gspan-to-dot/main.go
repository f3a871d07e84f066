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
	"io"
	"os"
	"strings"
)

import (
	"github.com/klauspost/compress/gzip"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/gspan/cmd"
	"github.com/timtadh/gspan/types/graph"
)

func init() {
	cmd.UsageMessage = "gspan-to-dot --help"
	cmd.ExtendedMessage = `
gspan-to-dot -i graphs.txt -o graphs.dot
gspan-to-dot -i graphs.txt.gz > graphs.dot
gspan-to-dot -d -i graphs.txt -g 4 -o graph-4.dot
cat graphs.txt | gspan-to-dot > graphs.dot

Options
    -h, --help                view this message
    -i, --input=<path>        transaction graphs, a file or a directory
                              (.gz and .zst are decompressed). Default
                              stdin.
    -o, --output=<path>       where to write the dot (.gz is compressed).
                              Default stdout.
    -d, --directed            read the edges as directed
    -g, --graph=<id>          only convert the graph with this id
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hi:o:dg:",
		[]string{
			"help",
			"input=",
			"output=",
			"directed",
			"graph=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "trailing args: %v\n", args)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	inputPath := ""
	outputPath := ""
	directed := false
	only := -1
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-i", "--input":
			inputPath = cmd.AssertFileOrDirExists(oa.Arg())
		case "-o", "--output":
			outputPath = cmd.AssertFile(oa.Arg())
		case "-d", "--directed":
			directed = true
		case "-g", "--graph":
			only = cmd.ParseInt(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	var graphs []*graph.Graph
	if inputPath != "" {
		graphs, err = cmd.Load(inputPath, directed)
	} else {
		inputPath = "<stdin>"
		graphs, err = graph.NewLoader(directed).Load(os.Stdin)
	}
	if err != nil {
		errors.Logf("ERROR", "could not load %v : %v", inputPath, err)
		return 1
	}

	var output io.Writer
	if outputPath != "" {
		outputf, err := os.Create(outputPath)
		if err != nil {
			errors.Logf("ERROR", "could not open %v : %v", outputPath, err)
			return 1
		}
		defer outputf.Close()
		if strings.HasSuffix(outputPath, ".gz") {
			z := gzip.NewWriter(outputf)
			defer z.Close()
			output = z
		} else {
			output = outputf
		}
	} else {
		outputPath = "<stdout>"
		output = os.Stdout
	}

	errors.Logf("INFO", "converting %v writing to %v", inputPath, outputPath)
	err = convert(graphs, output, only)
	if err != nil {
		errors.Logf("ERROR", "error converting graphs to dot %v", err)
		return 1
	}
	return 0
}

func convert(graphs []*graph.Graph, output io.Writer, only int) error {
	found := false
	for _, g := range graphs {
		if only >= 0 && g.Id != only {
			continue
		}
		found = true
		dot, err := g.Dot(fmt.Sprintf("graph_%d", g.Id))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(output, "%s\n\n", dot); err != nil {
			return err
		}
	}
	if only >= 0 && !found {
		return errors.Errorf("no graph with id %d", only)
	}
	return nil
}
