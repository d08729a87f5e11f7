package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func intPtr(n int) *int { return &n }

func TestLoad_HCL(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, "run.hcl")
	writeFile(t, path, `
puzzle "day1" {
  input = "inputs/day1.txt"
  expect {
    part1 = 142
    part2 = 281
  }
}

puzzle "3" {
  input   = "${manifest_dir}/grid.txt"
  enabled = false
}

puzzle "day4" {}
`)

	// --- Act ---
	m, err := Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	expected := []Entry{
		{
			Name:    "day1",
			Input:   filepath.Join(dir, "inputs", "day1.txt"),
			Enabled: true,
			Expect:  &Expect{Part1: intPtr(142), Part2: intPtr(281)},
			Source:  path,
		},
		{Name: "day3", Input: filepath.Join(dir, "grid.txt"), Enabled: false, Source: path},
		{Name: "day4", Enabled: true, Source: path},
	}
	if diff := cmp.Diff(expected, m.Entries); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	enabled := m.Enabled()
	require.Len(t, enabled, 2)
	assert.Equal(t, "day1", enabled[0].Name)
	assert.Equal(t, "day4", enabled[1].Name)
}

func TestLoad_RelativeManifestPath(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sub", "run.hcl"), `
puzzle "day1" {
  input = "${manifest_dir}/in.txt"
}

puzzle "day2" {
  input = "plain.txt"
}
`)
	writeFile(t, filepath.Join(dir, "sub", "in.txt"), "1abc2\n")
	t.Chdir(dir)

	// --- Act ---
	m, err := Load(context.Background(), filepath.Join("sub", "run.hcl"))

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, m.Entries, 2)

	want := filepath.Join(dir, "sub", "in.txt")
	assert.True(t, filepath.IsAbs(m.Entries[0].Input), "input %q should be absolute", m.Entries[0].Input)
	assert.Equal(t, want, m.Entries[0].Input)
	_, statErr := os.Stat(m.Entries[0].Input)
	assert.NoError(t, statErr)
	assert.Equal(t, filepath.Join(dir, "sub", "plain.txt"), m.Entries[1].Input)
}

func TestLoad_RelativeDirectoryPath(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "manifests", "run.yaml"), `
puzzles:
  - name: day4
    input: cards.txt
`)
	t.Chdir(dir)

	// --- Act ---
	m, err := Load(context.Background(), "manifests")

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, m.Entries, 1)
	assert.Equal(t, filepath.Join(dir, "manifests", "cards.txt"), m.Entries[0].Input)
}

func TestLoad_HCLEnvVariable(t *testing.T) {
	t.Setenv("PUZZLEGRID_TEST_INPUT", "/tmp/from-env.txt")
	path := filepath.Join(t.TempDir(), "env.hcl")
	writeFile(t, path, `
puzzle "day2" {
  input = env.PUZZLEGRID_TEST_INPUT
}
`)

	m, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, m.Entries, 1)
	assert.Equal(t, "/tmp/from-env.txt", m.Entries[0].Input)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	writeFile(t, path, `
puzzles:
  - name: day2
    input: day2.txt
    expect:
      part1: 8
  - name: "04"
    enabled: false
`)

	m, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, m.Entries, 2)

	first := m.Entries[0]
	assert.Equal(t, "day2", first.Name)
	assert.Equal(t, filepath.Join(dir, "day2.txt"), first.Input)
	v, ok := first.Expect.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 8, v)
	_, ok = first.Expect.Get(2)
	assert.False(t, ok)

	assert.Equal(t, "day4", m.Entries[1].Name)
	assert.False(t, m.Entries[1].Enabled)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.hcl"), `puzzle "day1" {}`)
	writeFile(t, filepath.Join(dir, "b", "c.yml"), "puzzles:\n  - name: day2\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	m, err := Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, m.Entries, 2)
	assert.Equal(t, "day1", m.Entries[0].Name)
	assert.Equal(t, "day2", m.Entries[1].Name)
}

func TestLoad_DirectoryUppercaseExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "RUN.HCL"), `puzzle "day3" {}`)
	writeFile(t, filepath.Join(dir, "more", "Cards.YML"), "puzzles:\n  - name: day4\n")

	m, err := Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, m.Entries, 2)
	assert.Equal(t, "day3", m.Entries[0].Name)
	assert.Equal(t, "day4", m.Entries[1].Name)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	m, err := Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, m.Entries)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		files     map[string]string
		expectErr string
	}{
		{
			name:      "hcl syntax error",
			files:     map[string]string{"a.hcl": `puzzle "day1" {`},
			expectErr: "failed to parse HCL file",
		},
		{
			name:      "hcl unknown attribute",
			files:     map[string]string{"a.hcl": `puzzle "day1" { color = "red" }`},
			expectErr: "failed to decode HCL file",
		},
		{
			name:      "hcl wrong type",
			files:     map[string]string{"a.hcl": "puzzle \"day1\" {\n  expect {\n    part1 = \"many\"\n  }\n}\n"},
			expectErr: "failed to decode HCL file",
		},
		{
			name:      "yaml unknown key",
			files:     map[string]string{"a.yaml": "puzzles:\n  - name: day1\n    colour: red\n"},
			expectErr: "failed to decode YAML file",
		},
		{
			name:      "yaml entry without name",
			files:     map[string]string{"a.yaml": "puzzles:\n  - input: x.txt\n"},
			expectErr: "puzzle entry without a name",
		},
		{
			name: "duplicate across files",
			files: map[string]string{
				"a.hcl":  `puzzle "day1" {}`,
				"b.yaml": "puzzles:\n  - name: \"1\"\n",
			},
			expectErr: `puzzle "day1" already declared`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tc.files {
				writeFile(t, filepath.Join(dir, name), content)
			}

			_, err := Load(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find manifest files")
}

func TestExpect_GetOnNil(t *testing.T) {
	var e *Expect
	_, ok := e.Get(1)
	assert.False(t, ok)
}
