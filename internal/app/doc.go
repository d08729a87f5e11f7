// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle: deciding which puzzles to
// solve, loading their inputs, solving both parts, and reporting answers,
// decoupled from any specific entrypoint like a CLI.
package app
