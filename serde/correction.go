package serde

import (
	"math/big"
	"time"

	"github.com/mellemahp/smithy4go/document"
)

// Protocol defaults for required members that were absent from the
// source. Scalars whose default is the Go zero value need no helper;
// these cover the types where the zero value is wrong or nil.

// DefaultTimestamp returns the Unix epoch.
func DefaultTimestamp() time.Time { return time.Unix(0, 0).UTC() }

// DefaultBigInteger returns zero.
func DefaultBigInteger() *big.Int { return new(big.Int) }

// DefaultBigDecimal returns zero.
func DefaultBigDecimal() *big.Rat { return new(big.Rat) }

// DefaultDocument returns an explicit null document.
func DefaultDocument() document.Value { return document.Null{} }

// CorrectSlice error-corrects a slice of builders into a slice of values.
func CorrectSlice[T any, B Corrector[T]](bs []B) []T {
	if bs == nil {
		return nil
	}
	out := make([]T, len(bs))
	for i, b := range bs {
		out[i] = b.Correct()
	}
	return out
}

// CorrectMap error-corrects a string-keyed map of builders into a map of
// values.
func CorrectMap[T any, B Corrector[T]](m map[string]B) map[string]T {
	if m == nil {
		return nil
	}
	out := make(map[string]T, len(m))
	for k, b := range m {
		out[k] = b.Correct()
	}
	return out
}
