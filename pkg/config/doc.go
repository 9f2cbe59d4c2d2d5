// Package config provides the two configuration primitives teamgate
// relies on: struct-based environment loading and ordered-candidate
// value resolution.
//
// # Environment loading
//
// Load parses environment variables into tagged structs via
// github.com/caarlos0/env, with an optional .env file loaded once per
// process through github.com/joho/godotenv. Parsed configurations are
// cached per type, so repeated loads are cheap and consistent across
// goroutines.
//
// # Candidate resolution
//
// Some values come from an ordered list of possible sources rather
// than a single variable. Resolve formalizes the "first non-empty
// wins" contract: candidates are evaluated in declared order, misses
// are normal (never an error), and resolution is deterministic.
//
//	endpoint, ok := config.Resolve(
//		config.Env("PUBLIC_BACKEND_URL"),
//		config.Env("PUBLIC_API_URL"),
//		config.Static("build", buildBackendURL),
//		config.Env("BACKEND_URL"),
//		config.Env("API_URL"),
//	)
//
// Candidates are pure reads; Resolve has no side effects.
package config
