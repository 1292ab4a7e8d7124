// Copyright 2024 The fmindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text validates reference text for FM-index construction and
// derives its sorted alphabet.
//
// A Text is a finite sequence of bytes terminated by a unique sentinel
// ('$') that sorts strictly before every other symbol. This package is
// the only place that invariant is checked; every other package in this
// module trusts a Text it is handed.
package text

import (
	"fmt"
	"sort"
)

// Sentinel is the symbol that must terminate every Text exactly once.
const Sentinel = '$'

// Text is a validated, sentinel-terminated reference sequence together
// with its derived alphabet.
type Text struct {
	raw      []byte
	alphabet []byte
}

// New validates raw and derives its alphabet. raw must be non-empty,
// must end in exactly one Sentinel, must not contain the sentinel
// anywhere else, and must not contain any byte that sorts below the
// sentinel.
func New(raw []byte) (Text, error) {
	if len(raw) == 0 {
		return Text{}, &InputError{Reason: "text is empty"}
	}

	if raw[len(raw)-1] != Sentinel {
		return Text{}, &InputError{Reason: "text is not terminated by the sentinel '$'"}
	}

	for i := 0; i < len(raw)-1; i++ {
		if raw[i] == Sentinel {
			return Text{}, &InputError{Reason: fmt.Sprintf("sentinel '$' appears at position %d before the end of the text", i)}
		}
		if raw[i] < Sentinel {
			return Text{}, &InputError{Reason: fmt.Sprintf("byte %q at position %d sorts below the sentinel '$'", raw[i], i)}
		}
	}

	return Text{
		raw:      raw,
		alphabet: deriveAlphabet(raw),
	}, nil
}

// Bytes returns the validated text, including its trailing sentinel.
func (t Text) Bytes() []byte {
	return t.raw
}

// Len returns len(t.Bytes()).
func (t Text) Len() int {
	return len(t.raw)
}

// At returns the byte at position i, where i == -1 refers to the
// sentinel position (len(t)-1). This mirrors the cyclic indexing used
// throughout the BWT construction: L[i] = T[SA[i]-1 mod |T|].
func (t Text) At(i int) byte {
	if i < 0 {
		i += len(t.raw)
	}
	return t.raw[i]
}

// Alphabet returns the sorted, deduplicated set of symbols in the text,
// sentinel first.
func (t Text) Alphabet() []byte {
	return t.alphabet
}

func deriveAlphabet(raw []byte) []byte {
	seen := make(map[byte]bool)
	for _, b := range raw {
		seen[b] = true
	}

	alphabet := make([]byte, 0, len(seen))
	for b := range seen {
		alphabet = append(alphabet, b)
	}

	// The sentinel ('$', 0x24) already sorts below every uppercase or
	// lowercase letter in ASCII, so a plain byte-value sort satisfies
	// "sentinel strictly least" without special-casing it.
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })
	return alphabet
}
