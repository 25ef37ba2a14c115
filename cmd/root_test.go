package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/golightsout/game"
)

func TestGameModeValue(t *testing.T) {
	var mode game.GameMode
	value := newGameModeValue(game.RowColumn, &mode)
	assert.Equal(t, game.RowColumn, mode)
	assert.Equal(t, "rowcol", value.String())

	require.NoError(t, value.Set("diagonal"))
	assert.Equal(t, game.Diagonal, mode)
	assert.Error(t, value.Set("knight"))
	assert.Equal(t, game.Diagonal, mode)
	assert.Equal(t, "game.GameMode", value.Type())
}

func TestSolveCommand(t *testing.T) {
	dir := t.TempDir()
	layout := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(layout, []byte("board: |\n  .#.\n  ###\n  .#.\n"), 0644))
	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("mode: diagonal\nwidth: 9\n"), 0644))

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{
		"solve",
		"--config", config,
		"--layout", layout,
		"--mode", "cardinal",
		"--log-level", "error",
	})
	require.NoError(t, rootCmd.Execute())

	result := out.String()
	assert.Contains(t, result, "mode: cardinal")
	assert.Contains(t, result, "solvable: true")
	assert.Contains(t, result, "presses: [4]")
}
