// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fmmatch looks up patterns against a previously built
// FM-index, either a single pattern on the command line or a batch of
// reads from a FASTA file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/danieldk/fmindex/cmd/common"
	"github.com/danieldk/fmindex/dna"
	"github.com/danieldk/fmindex/fmindex"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] indexfile\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

var (
	patternString = flag.String("patternstring", "", "a single pattern to match")
	patternFile   = flag.String("patternfile", "", "a FASTA file of reads to match")
	outputFile    = flag.String("outputfile", "", "file to write --patternfile match results to (default: stdout); --patternstring results always go to stdout")
	parallel      = flag.Bool("parallel", false, "match FASTA records concurrently")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if *patternString != "" && *patternFile != "" {
		fmt.Fprintln(os.Stderr, "--patternstring and --patternfile are mutually exclusive")
		os.Exit(1)
	}
	if *patternString == "" && *patternFile == "" {
		fmt.Fprintln(os.Stderr, "You must supply a pattern string or a pattern file")
		os.Exit(1)
	}

	in, err := os.Open(flag.Arg(0))
	common.ExitIfError("cannot open index file", err)
	defer in.Close()

	idx, err := fmindex.ReadFrom(in)
	common.ExitIfError("cannot read index", err)

	if *patternString != "" {
		matchSingle(idx, *patternString)
		return
	}

	matchFile(idx, *patternFile)
}

func matchSingle(idx *fmindex.Index, pattern string) {
	positions, err := idx.Locate([]byte(pattern))
	common.ExitIfError("cannot match pattern", err)
	fmt.Println(positionsString(positions))
}

func matchFile(idx *fmindex.Index, filename string) {
	f, err := os.Open(filename)
	common.ExitIfError("cannot open pattern file", err)
	defer f.Close()

	records, err := common.ReadFASTARecords(f)
	common.ExitIfError("cannot read pattern file", err)

	dnaRecords := make([]dna.Record, len(records))
	for i, r := range records {
		dnaRecords[i] = dna.Record{Name: r.Name, Sequence: r.Sequence}
	}

	var matches []dna.Match
	if *parallel {
		matches, err = dna.MatchFASTAConcurrent(idx, dnaRecords)
	} else {
		matches, err = dna.MatchFASTA(idx, dnaRecords)
	}
	common.ExitIfError("cannot match patterns", err)

	out := os.Stdout
	if *outputFile != "" {
		out, err = os.Create(*outputFile)
		common.ExitIfError("cannot create output file", err)
		defer out.Close()
	}

	w := bufio.NewWriter(out)
	defer w.Flush()

	for _, m := range matches {
		fmt.Fprintf(w, "%s\t%s\n", m.Name, positionsString(m.Positions))
	}
}

func positionsString(positions []int) string {
	strs := make([]string, len(positions))
	for i, p := range positions {
		strs[i] = strconv.Itoa(p)
	}
	return strings.Join(strs, "\t")
}
