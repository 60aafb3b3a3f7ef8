package types

import (
	"crypto/sha1"
	"encoding/hex"
)

// Pattern is a fixed regular expression timed by the harness.
type Pattern struct {
	ID           string // e.g., "problematic"
	Name         string // human-readable name
	Expr         string // regex source, engine independent
	DotAll       bool   // "." also matches '\n'
	StructuralID string // SHA-1 of Expr and flags (computed)
}

// ComputeStructuralID computes SHA-1 of the expression and its flags, so the
// same expression compiled with and without DotAll gets distinct IDs.
func (p *Pattern) ComputeStructuralID() string {
	h := sha1.New()
	h.Write([]byte(p.Expr))
	h.Write([]byte{0})
	if p.DotAll {
		h.Write([]byte{'s'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// InputUnit is the string repeated multiplier times to build the input.
const InputUnit = "a\nb\nc"

// Problematic nests unbounded repetitions inside an unbounded repetition.
// Backtracking engines re-explore the overlapping splits of every line.
var Problematic = newPattern("problematic", "Problematic Regex", `((\n*.*\n*)*)`, false)

// Simple is a lazy any-character match with dot-matches-newline semantics.
var Simple = newPattern("simple", "Simple Regex", `(.*?)`, true)

func newPattern(id, name, expr string, dotAll bool) Pattern {
	p := Pattern{ID: id, Name: name, Expr: expr, DotAll: dotAll}
	p.StructuralID = p.ComputeStructuralID()
	return p
}
