// Package lines splits puzzle input into lines and pulls numeric tokens out of
// them. It is the shared tokenizing layer used by every day's parser.
package lines
