// Package manifest loads run manifests: small HCL or YAML files naming the
// puzzles to run, the input file each one reads, and optionally the answers
// each part is expected to produce.
//
// An HCL manifest looks like:
//
//	puzzle "day1" {
//	  input   = "${manifest_dir}/inputs/day1.txt"
//	  enabled = true
//	  expect {
//	    part1 = 142
//	    part2 = 281
//	  }
//	}
//
// HCL expressions can refer to manifest_dir (the directory holding the
// manifest) and env (the process environment as a map of strings). Relative
// input paths are resolved against the manifest's directory. A puzzle without
// an input falls back to its embedded sample.
package manifest
