package manifest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/fsutil"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

var extensions = []string{".hcl", ".yaml", ".yml"}

// Load reads the manifest at path. A directory is searched recursively for
// .hcl, .yaml and .yml files, which are merged in lexical order. The path is
// made absolute first; manifest_dir and relative inputs resolve against it.
func Load(ctx context.Context, path string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading manifest from path", "path", path)

	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path: %w", err)
	}

	files, err := fsutil.FindFilesByExtension(path, extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to find manifest files in %s: %w", path, err)
	}

	m := &Manifest{}
	if len(files) == 0 {
		logger.Warn("No manifest files found in path, returning empty manifest", "path", path)
		return m, nil
	}

	parser := hclparse.NewParser()
	seen := make(map[string]string)
	for _, file := range files {
		var entries []Entry
		switch strings.ToLower(filepath.Ext(file)) {
		case ".yaml", ".yml":
			entries, err = decodeYAML(file)
		default:
			entries, err = decodeHCL(file, parser)
		}
		if err != nil {
			return nil, err
		}

		for _, e := range entries {
			if strings.TrimSpace(e.Name) == "" {
				return nil, fmt.Errorf("%s: puzzle entry without a name", file)
			}
			e.Name = registry.Normalize(e.Name)
			if prev, dup := seen[e.Name]; dup {
				return nil, fmt.Errorf("%s: puzzle %q already declared in %s", file, e.Name, prev)
			}
			seen[e.Name] = file

			if e.Input != "" && !filepath.IsAbs(e.Input) {
				e.Input = filepath.Join(filepath.Dir(file), e.Input)
			}
			m.Entries = append(m.Entries, e)
		}
		logger.Debug("Successfully loaded manifest file", "file", file, "entries", len(entries))
	}

	logger.Info("Manifest loaded.", "files", len(files), "puzzles", len(m.Entries))
	return m, nil
}
