// Package rounds parses cube game records of the form
//
//	Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green
//
// into a game identifier and its ordered rounds, and provides the aggregate
// policies built on top of them (feasibility against a bag limit and the
// minimal covering set).
//
// The parser is strict: any deviation from the grammar is reported as a
// *lines.ParseError and no partial result is returned.
package rounds
