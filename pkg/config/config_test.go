package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/notjagan/pogodex/pkg/pogo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pogodex.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRead_Missing(t *testing.T) {
	cfg, err := Read(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.False(t, cfg.UsesDatabase())
}

func TestRead(t *testing.T) {
	path := writeConfig(t, `
[dataset]
path = "data/pokedex.json"

[database]
path = "pokeapi.sqlite3"
language = "fr"

[images]
show = true

[random]
seed = 99

[pogo]
cp_ceiling = 5000
`)

	cfg, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "data/pokedex.json", cfg.Dataset.Path)
	assert.Equal(t, "effectiveness.json", cfg.Effectiveness.Path)
	assert.Equal(t, "pokeapi.sqlite3", cfg.DB.Path)
	assert.Equal(t, "fr", cfg.DB.Language)
	assert.Equal(t, "images", cfg.Images.Dir)
	assert.True(t, cfg.Images.Show)
	assert.Equal(t, int64(99), cfg.Random.Seed)
	assert.True(t, cfg.UsesDatabase())

	want := pogo.DefaultStatConfig()
	want.CPCeiling = 5000
	assert.Equal(t, want, cfg.Pogo)
}

func TestRead_InvalidPogo(t *testing.T) {
	path := writeConfig(t, `
[pogo]
cp_modifier = -1.0
`)

	_, err := Read(path)
	assert.ErrorIs(t, err, pogo.ErrInvalidConfig)
}

func TestRead_Malformed(t *testing.T) {
	path := writeConfig(t, `[dataset`)

	_, err := Read(path)
	assert.Error(t, err)
}
