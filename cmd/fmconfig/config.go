// Copyright 2016 Daniël de Kok. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fmconfig parses the optional TOML configuration file that
// fmbuild accepts for its sample-gap defaults.
package fmconfig

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/danieldk/fmindex/cmd/common"
)

// Config stores the build-time defaults that fmbuild's --config file
// can override. Flags passed explicitly on the command line always
// take precedence over a loaded Config.
type Config struct {
	SuffixGap int `toml:"suffix_gap"`
	CountGap  int `toml:"count_gap"`
}

func defaultConfig() *Config {
	return &Config{
		SuffixGap: 0,
		CountGap:  0,
	}
}

// MustParseConfig opens and parses filename, exiting the program on
// any failure.
func MustParseConfig(filename string) *Config {
	f, err := os.Open(filename)
	common.ExitIfError("cannot open configuration file", err)
	defer f.Close()

	config, err := ParseConfig(f)
	common.ExitIfError("cannot parse configuration file", err)

	return config
}

// ParseConfig attempts to parse a Config from reader, applying
// defaultConfig's values for any field the TOML document doesn't set.
func ParseConfig(reader io.Reader) (*Config, error) {
	config := defaultConfig()
	if _, err := toml.DecodeReader(reader, config); err != nil {
		return config, err
	}

	return config, nil
}
