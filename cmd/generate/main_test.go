package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flames.blue/internal/config"
	"flames.blue/internal/content"
	"flames.blue/internal/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	reg, err := content.Load("")
	require.NoError(t, err)
	return &config.Config{
		Settings: config.Settings{DefaultTheme: "dark", SceneURL: config.DefaultSceneURL},
		Registry: reg,
	}
}

func TestExportWritesPagesAndAssets(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	err := export(context.Background(), testConfig(t), dir, []string{"dark", "light"}, &out)
	require.NoError(t, err)

	for _, name := range []string{"index.html", "dark.html", "light.html", "static/site.css", "static/motion.js"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	dark, err := os.ReadFile(filepath.Join(dir, "dark.html"))
	require.NoError(t, err)
	assert.Equal(t, dark, index)

	data, err := os.ReadFile(filepath.Join(dir, "projects", "light.json"))
	require.NoError(t, err)
	var list models.ProjectList
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Len(t, list.Projects, 9)

	assert.Contains(t, out.String(), "Created light.html")
}

func TestExportSkipsIndexWithoutDefaultTheme(t *testing.T) {
	dir := t.TempDir()

	err := export(context.Background(), testConfig(t), dir, []string{"light"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "light.html"))
	assert.NoFileExists(t, filepath.Join(dir, "index.html"))
}

func TestExportUnknownTheme(t *testing.T) {
	err := export(context.Background(), testConfig(t), t.TempDir(), []string{"sepia"}, &bytes.Buffer{})
	require.ErrorIs(t, err, content.ErrUnknownTheme)
}
