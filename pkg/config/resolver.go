package config

import "os"

// Candidate is a named configuration lookup. Candidates are evaluated
// lazily so that sources which are expensive or absent cost nothing
// until their turn comes.
type Candidate struct {
	Name   string
	Lookup func() string
}

// Env returns a candidate that reads the named process environment
// variable. A missing or empty variable yields an empty string, which
// Resolve treats as a miss rather than an error.
func Env(name string) Candidate {
	return Candidate{
		Name:   name,
		Lookup: func() string { return os.Getenv(name) },
	}
}

// Static returns a candidate with a fixed value. Useful for values
// injected at build time via -ldflags.
func Static(name, value string) Candidate {
	return Candidate{
		Name:   name,
		Lookup: func() string { return value },
	}
}

// Resolve evaluates candidates in declared order and returns the first
// non-empty value. The order is fixed and deterministic; absence of a
// source is a normal outcome, so Resolve never errors. It returns
// ok=false only when every candidate is empty.
func Resolve(candidates ...Candidate) (string, bool) {
	for _, c := range candidates {
		if c.Lookup == nil {
			continue
		}
		if v := c.Lookup(); v != "" {
			return v, true
		}
	}
	return "", false
}
