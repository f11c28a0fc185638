package config

import (
	"os"
	"testing"

	"github.com/eriklarko/truth-table/src/boolexpr"
	helpers_test "github.com/eriklarko/truth-table/src/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {

	t.Run("valid, existing config", func(t *testing.T) {
		content := `max-variables: 8
format: "markdown"
symbols: ascii
history-file: /tmp/history`
		configFile := helpers_test.CreateTempFileWithContents(t, content)

		config, err := LoadConfig(configFile)
		require.NoError(t, err)

		assert.Equal(t, 8, config.MaxVariables)
		assert.Equal(t, "markdown", config.Format)
		assert.Equal(t, SymbolsASCII, config.Symbols)
		assert.Equal(t, "/tmp/history", config.HistoryFile)
		assert.Equal(t, configFile, config.Path)
	})

	t.Run("missing keys keep their defaults", func(t *testing.T) {
		configFile := helpers_test.CreateTempFileWithContents(t, "format: csv\n")

		config, err := LoadConfig(configFile)
		require.NoError(t, err)

		assert.Equal(t, "csv", config.Format)
		assert.Equal(t, Default().MaxVariables, config.MaxVariables)
		assert.Equal(t, SymbolsUnicode, config.Symbols)
	})

	t.Run("empty config", func(t *testing.T) {
		configFile := helpers_test.CreateTempFileWithContents(t, "")

		config, err := LoadConfig(configFile)
		require.NoError(t, err)
		assert.Equal(t, Default().Format, config.Format)
	})

	t.Run("invalid, existing config", func(t *testing.T) {
		tests := map[string]string{
			"no keys":      `foo`,
			"unknown key":  `licenses-file: foo.csv`,
			"bad format":   `format: html`,
			"bad limit":    `max-variables: 64`,
			"bad symbols":  `symbols: emoji`,
			"not a number": `max-variables: many`,
		}
		for name, content := range tests {
			t.Run(name, func(t *testing.T) {
				configFile := helpers_test.CreateTempFileWithContents(t, content)

				_, err := LoadConfig(configFile)
				assert.False(t, os.IsNotExist(err))
				assert.Error(t, err)
			})
		}
	})

	t.Run("non-existing config", func(t *testing.T) {
		_, err := LoadConfig(helpers_test.NonExistingPath(t, "non-existing.yaml"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestWriteConfig(t *testing.T) {
	configFile := helpers_test.NonExistingPath(t, "test_config.yaml")

	config := &Config{
		MaxVariables: 10,
		Format:       "yaml",
		Symbols:      SymbolsASCII,
		HistoryFile:  "/tmp/history",

		Path: configFile,
	}

	err := config.Write()
	require.NoError(t, err)

	// Verify file content
	content := helpers_test.ReadFile(t, configFile)
	assert.Contains(t, content, "max-variables: 10\n")
	assert.Contains(t, content, "format: yaml\n")
	assert.Contains(t, content, "symbols: ascii\n")
	assert.Contains(t, content, "history-file: /tmp/history\n")
	assert.NotContains(t, content, "path:")

	// verify permissions
	fileInfo, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), fileInfo.Mode())

	// and that it can be read back
	loaded, err := LoadConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestWriteConfigWithoutPath(t *testing.T) {
	assert.Error(t, Default().Write())
}

func TestApplyEnvironment(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		t.Setenv(EnvFormat, "csv")
		t.Setenv(EnvMaxVariables, "4")

		config := Default()
		require.NoError(t, config.ApplyEnvironment())

		assert.Equal(t, "csv", config.Format)
		assert.Equal(t, 4, config.MaxVariables)
	})

	t.Run("not a number", func(t *testing.T) {
		t.Setenv(EnvMaxVariables, "four")

		assert.Error(t, Default().ApplyEnvironment())
	})

	t.Run("out of range", func(t *testing.T) {
		t.Setenv(EnvMaxVariables, "0")

		assert.Error(t, Default().ApplyEnvironment())
	})
}

func TestSymbolSet(t *testing.T) {
	config := Default()
	assert.Equal(t, boolexpr.UnicodeSymbols, config.SymbolSet())

	config.Symbols = SymbolsASCII
	assert.Equal(t, boolexpr.ASCIISymbols, config.SymbolSet())
}

func TestGenerator(t *testing.T) {
	config := Default()
	config.MaxVariables = 2

	generator, err := config.Generator()
	require.NoError(t, err)
	assert.Equal(t, 2, generator.MaxVariables)
}
