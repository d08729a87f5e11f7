package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclManifestFile represents the top-level structure of a manifest for decoding.
type hclManifestFile struct {
	Puzzles []*hclPuzzle `hcl:"puzzle,block"`
}

type hclPuzzle struct {
	Name    string     `hcl:"name,label"`
	Input   *string    `hcl:"input,optional"`
	Enabled *bool      `hcl:"enabled,optional"`
	Expect  *hclExpect `hcl:"expect,block"`
}

type hclExpect struct {
	Part1 *int `hcl:"part1,optional"`
	Part2 *int `hcl:"part2,optional"`
}

// evalContext exposes manifest_dir and env to manifest expressions.
func evalContext(dir string) *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"manifest_dir": cty.StringVal(dir),
			"env":          env,
		},
	}
}

// decodeHCL parses a single HCL manifest and returns its raw entries.
func decodeHCL(filePath string, parser *hclparse.Parser) ([]Entry, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var parsed hclManifestFile
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(filepath.Dir(filePath)), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}

	entries := make([]Entry, 0, len(parsed.Puzzles))
	for _, p := range parsed.Puzzles {
		e := Entry{Name: p.Name, Enabled: true, Source: filePath}
		if p.Input != nil {
			e.Input = *p.Input
		}
		if p.Enabled != nil {
			e.Enabled = *p.Enabled
		}
		if p.Expect != nil {
			e.Expect = &Expect{Part1: p.Expect.Part1, Part2: p.Expect.Part2}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
