// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fmbuild constructs an FM-index from a genome and writes it
// to a file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danieldk/fmindex/cmd/common"
	"github.com/danieldk/fmindex/cmd/fmconfig"
	"github.com/danieldk/fmindex/fmindex"
	"github.com/danieldk/fmindex/text"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] indexfile\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

var (
	genomeFile = flag.String("genomefile", "", "file containing the genome, one line of sequence per record")
	genome     = flag.String("genome", "", "genome as a literal string, terminated by $")
	countGap   = flag.Int("countgap", -1, "sample gap for the rank checkpoint table (0 = dense, default: from config or dense)")
	suffixGap  = flag.Int("suffixgap", -1, "sample gap for the suffix array (0 = dense, default: from config or dense)")
	configFile = flag.String("config", "", "TOML file providing default sample gaps")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if *genomeFile != "" && *genome != "" {
		fmt.Fprintln(os.Stderr, "--genomefile and --genome are mutually exclusive")
		os.Exit(1)
	}
	if *genomeFile == "" && *genome == "" {
		fmt.Fprintln(os.Stderr, "You must supply a genome file or a genome string")
		os.Exit(1)
	}

	cfg := fmconfig.Config{SuffixGap: 0, CountGap: 0}
	if *configFile != "" {
		cfg = *fmconfig.MustParseConfig(*configFile)
	}

	if *suffixGap >= 0 {
		cfg.SuffixGap = *suffixGap
	}
	if *countGap >= 0 {
		cfg.CountGap = *countGap
	}

	raw := loadGenomeText()

	t, err := text.New(raw)
	common.ExitIfError("invalid genome", err)

	idx, err := fmindex.Build(t, cfg.SuffixGap, cfg.CountGap)
	common.ExitIfError("cannot build index", err)

	out, err := os.Create(flag.Arg(0))
	common.ExitIfError("cannot create index file", err)
	defer out.Close()

	err = idx.WriteTo(out)
	common.ExitIfError("cannot write index", err)
}

func loadGenomeText() []byte {
	if *genome != "" {
		return appendSentinel([]byte(*genome))
	}

	f, err := os.Open(*genomeFile)
	common.ExitIfError("cannot open genome file", err)
	defer f.Close()

	raw, err := common.LoadGenome(f)
	common.ExitIfError("cannot read genome file", err)

	return appendSentinel(raw)
}

func appendSentinel(raw []byte) []byte {
	if len(raw) > 0 && raw[len(raw)-1] == text.Sentinel {
		return raw
	}
	return append(raw, text.Sentinel)
}
