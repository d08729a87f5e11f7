// Package registry is the glue between puzzle names and the Go code that
// solves them.
//
// Each day's module registers a Puzzle under a canonical name ("day1",
// "day2", ...). The application looks puzzles up by the names given on the
// command line or in a manifest. Registration happens once at startup and is
// validated before anything runs, so a missing part fails fast instead of
// halfway through a run. The registry knows nothing about input data; the
// application checks embedded samples separately.
package registry
