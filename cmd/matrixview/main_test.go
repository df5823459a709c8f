package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"matrixview/internal/settings"
)

func TestSaveConfig(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "matrixview.yaml")
	cfg := settings.Default()
	cfg.Table.Color = "cyan"
	require.NoError(t, saveConfig(cfg, "cells.csv", dest))

	got, err := settings.Load(dest)
	require.NoError(t, err)
	require.Equal(t, "cells.csv", got.Data)
	require.Equal(t, "cyan", got.Table.Color)

	cfg.Table.CellFontSize = 0
	require.ErrorIs(t, saveConfig(cfg, "", dest), settings.ErrFontSize)
}
