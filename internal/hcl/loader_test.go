package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeManifest writes one manifest file into dir and returns its path.
func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_SingleManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "ext.hcl", `
extension "ext" {
  package     = "supertool"
  description = "Power tools."

  settings = {
    greeting = "hello"
    retries  = 3
    verbose  = true
    tags     = ["a", "b"]
    nested = {
      inner = "deep"
    }
  }
}
`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Extensions, 1)

	def := model.Extensions["ext"]
	require.NotNil(t, def)
	assert.Equal(t, "ext", def.Attr)
	assert.Equal(t, "supertool", def.Package)
	assert.Equal(t, "Power tools.", def.Description)

	assert.Equal(t, "hello", def.Settings["greeting"])
	assert.Equal(t, float64(3), def.Settings["retries"])
	assert.Equal(t, true, def.Settings["verbose"])
	assert.Equal(t, []any{"a", "b"}, def.Settings["tags"])
	nested, ok := def.Settings["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "deep", nested["inner"])
}

func TestLoad_MultipleFilesMerge(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "a.hcl", `
extension "ext" {
  package = "supertool"
}
`)
	writeManifest(t, dir, "b.hcl", `
extension "sio" {
  package = "socketio"
}
`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Extensions, 2)
	assert.Equal(t, "supertool", model.Extensions["ext"].Package)
	assert.Equal(t, "socketio", model.Extensions["sio"].Package)
}

func TestLoad_DuplicateAttrFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "a.hcl", `
extension "ext" {
  package = "supertool"
}
`)
	writeManifest(t, dir, "b.hcl", `
extension "ext" {
  package = "other"
}
`)

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `extension attribute "ext" declared in both`)
}

func TestLoad_ParseErrorSurfaced(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "bad.hcl", `
extension "ext" {
  package = "supertool"
`)

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_EmptyPackageFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "empty.hcl", `
extension "ext" {
  package = ""
}
`)

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package must not be empty")
}

func TestLoad_NoManifestsIsEmptyModel(t *testing.T) {
	t.Parallel()

	model, err := NewLoader().Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, model.Extensions)
}

func TestLoad_UnsupportedSettingsTypeFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "scalar.hcl", `
extension "ext" {
  package  = "supertool"
  settings = "not-an-object"
}
`)

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings must be an object")
}
