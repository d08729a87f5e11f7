// Package testutil holds the end-to-end harness used by the integration
// tests: it lays out input and manifest files in a temporary directory, builds
// an App against them, runs it, and captures everything it writes.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/puzzlegrid/internal/app"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string // answers written by the app
	LogOutput string
	Err       error
	Dir       string // temporary root the files were written to
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg, modules...)
}

// RunIntegrationTestWithContext writes files below a temporary root, resolves
// the relative InputPath and ManifestPath of cfg against that root, and runs
// the app.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	if cfg.InputPath != "" {
		cfg.InputPath = filepath.Join(tmpDir, cfg.InputPath)
	}
	if cfg.ManifestPath != "" {
		cfg.ManifestPath = filepath.Join(tmpDir, cfg.ManifestPath)
	}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: err, Dir: tmpDir}
	}

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	t.Cleanup(func() {
		if os.Getenv("PUZZLEGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(out, logs, appConfig, modules...)
	}()
	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logs.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
			Dir:       tmpDir,
		}
	}

	runErr := testApp.Run(ctx)

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		Dir:       tmpDir,
	}
}
