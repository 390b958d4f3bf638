package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand_PrintsInitialBoardThenEveryGeneration(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"run", "--sim", "rule110", "--steps", "3"})
	require.NoError(t, rootCmd.Execute())

	blocks := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	require.Len(t, blocks, 4, "initial board plus one block per step")
	assert.Equal(t, "00000000001011101100101011010010100000000000000000", blocks[0])
	for i, block := range blocks {
		assert.Len(t, block, 50, "block %d", i)
	}
}

func TestRunCommand_UnknownSim(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"run", "--sim", "nope"})
	assert.Error(t, rootCmd.Execute())
}
