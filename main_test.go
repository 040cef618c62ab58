package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leoxiewl/want-to-be/internal/config"
	"github.com/leoxiewl/want-to-be/internal/dataset"
	"github.com/leoxiewl/want-to-be/internal/storage"
)

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	applyFlags(cfg, "", "", "")
	assert.Equal(t, config.Default(), cfg)

	applyFlags(cfg, "http", "9000", "people.yaml")
	assert.Equal(t, "http", cfg.Server.Transport)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "people.yaml", cfg.Data.Source)
}

func TestExportDataset_ConvertsBetweenFormats(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Engine.ReferenceYear = 2024

	// seed -> YAML document
	yamlPath := filepath.Join(dir, "people.yaml")
	require.NoError(t, exportDataset(cfg, zap.NewNop(), yamlPath))

	// YAML document -> SQLite catalog
	cfg.Data.Source = yamlPath
	dbPath := filepath.Join(dir, "people.db")
	require.NoError(t, exportDataset(cfg, zap.NewNop(), dbPath))

	people, err := storage.Load(dbPath, 2024)
	require.NoError(t, err)
	assert.Equal(t, dataset.Seed(), people)
}

func TestExportDataset_Errors(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	err := exportDataset(cfg, zap.NewNop(), filepath.Join(dir, "people.csv"))
	assert.ErrorIs(t, err, storage.ErrUnsupportedSource)

	cfg.Data.Source = filepath.Join(dir, "missing.yaml")
	assert.Error(t, exportDataset(cfg, zap.NewNop(), filepath.Join(dir, "out.yaml")))
}
