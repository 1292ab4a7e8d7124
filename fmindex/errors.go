package fmindex

import "fmt"

// InputError reports a problem with data handed to this package (or to
// package dna) that originates outside it: an index that cannot be
// read, a negative sample gap, or a read containing a symbol outside
// {A, C, G, T}.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Reason
}

// FormatError reports a malformed serialized index: the wrong number
// of lines, a non-integer field where one was expected, or an
// alphabet/rank row whose length does not match the rest of the file.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed index at line %d: %s", e.Line, e.Reason)
}

// InternalError reports an invariant violation in an already-loaded
// index: for example, a last-to-first walk that fails to reach a
// sampled suffix array entry. It always indicates a corrupted index,
// never a user error.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "corrupted index: " + e.Reason
}
