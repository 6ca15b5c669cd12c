package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1e-10, cfg.Precision)
	assert.Equal(t, 1000, cfg.MaxIterations)
	assert.NoError(t, cfg.Validate())
	assert.InDelta(t, 1e-9, cfg.DedupDistance(), 1e-20)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Config{Precision: 0, MaxIterations: 10}.Validate())
	assert.Error(t, Config{Precision: -1, MaxIterations: 10}.Validate())
	assert.Error(t, Config{Precision: 1e-6, MaxIterations: 0}.Validate())
	assert.NoError(t, Config{Precision: 1e-6, MaxIterations: 1}.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 1.0e-8\n"), 0o600))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1e-8, cfg.Precision)
	assert.Equal(t, DefaultMaxIterations, cfg.MaxIterations)

	path = filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_iterations: -3\n"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
