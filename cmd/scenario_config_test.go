package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarioConfig(t *testing.T) {
	path := writeConfig(t, `
sim: life
size: 20
steps: 10
cells:
  - [2, 1]
  - [3, 2]
`)
	sc, err := LoadScenarioConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "life", sc.Sim)
	assert.Equal(t, 20, sc.Size)
	assert.Equal(t, 10, sc.Steps)
	assert.Nil(t, sc.Rule)
	assert.Equal(t, [][]int{{2, 1}, {3, 2}}, sc.Cells)
}

func TestLoadScenarioConfig_ElementaryRule(t *testing.T) {
	path := writeConfig(t, `
sim: elementary
size: 50
rule: 30
cells:
  - [25]
`)
	sc, err := LoadScenarioConfig(path)
	require.NoError(t, err)
	require.NotNil(t, sc.Rule)
	assert.Equal(t, 30, *sc.Rule)
	assert.Equal(t, [][]int{{25}}, sc.Cells)
}

func TestLoadScenarioConfig_RejectsBadValues(t *testing.T) {
	_, err := LoadScenarioConfig(writeConfig(t, "rule: 300\n"))
	assert.Error(t, err)

	_, err = LoadScenarioConfig(writeConfig(t, "size: -4\n"))
	assert.Error(t, err)

	_, err = LoadScenarioConfig(writeConfig(t, "steps: [not, a, number]\n"))
	assert.Error(t, err)

	_, err = LoadScenarioConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
