package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/shashtable/configuration"
)

func writeFile(t *testing.T, name string, content string) string {
	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))

	return filePath
}

func TestLoadDefaults(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{
		"table.buckets":  1024,
		"table.hashFunc": "djb2",
	}))

	require.True(t, config.Exists("table.hashFunc"))
	require.True(t, config.Exists("table.hashfunc"))
	require.Equal(t, 1024, config.Int("table.buckets"))
	require.Equal(t, "djb2", config.String("TABLE.HASHFUNC"))
	require.False(t, config.Exists("table.missing"))
}

func TestFetchFlagset(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("A", "123", "test")
	testFlagSet.Int("B", 5, "test")
	require.NoError(t, testFlagSet.Parse([]string{"--A=321"}))

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	require.Equal(t, "321", config.String("A"))
	// defaults of flags are used for keys that are unknown so far
	require.Equal(t, 5, config.Int("b"))
}

func TestFetchEnvVars(t *testing.T) {
	t.Setenv("TEST_SECTION_KNOWN", "321")
	t.Setenv("TEST_SECTION_UNKNOWN", "321")

	config := configuration.New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{
		"section.known": 1,
	}))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	require.Equal(t, 321, config.Int("section.known"))
	require.False(t, config.Exists("section.unknown"), "env vars must only overwrite existing keys")
}

func TestFetchJSONFile(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.json", `{"Table": {"Buckets": 321}}`)))

	require.Equal(t, 321, config.Int("table.buckets"))
	_, exists := config.Flat()["table.buckets"]
	require.True(t, exists, "all keys should be lower cased")
}

func TestFetchYAMLFile(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.yaml", "table:\n  hashFunc: xxhash\nlogger:\n  outputPaths:\n    - stdout\n    - app.log\n")))

	require.Equal(t, "xxhash", config.String("table.hashFunc"))
	require.Equal(t, []string{"stdout", "app.log"}, config.Strings("logger.outputPaths"))
}

func TestLoadFileErrors(t *testing.T) {
	config := configuration.New()

	err := config.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	tomlFile := writeFile(t, "config.toml", "a = 1")
	err = config.LoadFile(tomlFile)
	require.ErrorIs(t, err, configuration.ErrUnknownConfigFormat)
	require.EqualError(t, err, "unknown config file format: "+tomlFile)

	err = config.LoadFile(writeFile(t, "broken.json", "{"))
	require.ErrorContains(t, err, "invalid JSON config: ")
}

func TestMergeParameters(t *testing.T) {
	t.Setenv("TEST_TABLE_BUCKETS", "322")

	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.Int("table.buckets", 1, "test")
	testFlagSet.String("table.hashFunc", "djb2", "test")
	require.NoError(t, testFlagSet.Parse([]string{"--table.hashFunc=xxhash"}))

	config := configuration.New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{
		"table.buckets":  1024,
		"table.hashFunc": "djb2",
		"logger.level":   "info",
	}))
	require.NoError(t, config.LoadFile(writeFile(t, "config.json", `{"table": {"buckets": 321}, "logger": {"level": "debug"}}`)))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	var table struct {
		Buckets  int    `koanf:"buckets"`
		HashFunc string `koanf:"hashFunc"`
	}
	require.NoError(t, config.Unmarshal("table", &table))

	// env overrides file, unset flag defaults do not override anything
	require.Equal(t, 322, table.Buckets)
	require.Equal(t, "xxhash", table.HashFunc)
	require.Equal(t, "debug", config.String("logger.level"))
}
