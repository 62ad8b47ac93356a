package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
var ErrUnknownConfigFormat = ierrors.New("unknown config file format")

// Configuration holds config parameters from several sources (defaults, file, env vars, flags).
// All keys are lower cased, lookups are case-insensitive.
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadDefaults merges the given flat map of "section.key" defaults into the loaded config.
func (c *Configuration) LoadDefaults(defaults map[string]interface{}) error {
	lowered := make(map[string]interface{}, len(defaults))
	for key, value := range defaults {
		lowered[strings.ToLower(key)] = value
	}

	return c.config.Load(confmap.Provider(lowered, "."), nil)
}

// LoadFile loads parameters from a JSON or YAML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return err
	}

	var parser koanf.Parser
	switch filepath.Ext(filePath) {
	case ".json":
		parser = &JSONLowerParser{}
	case ".yaml", ".yml":
		parser = &YAMLLowerParser{}
	default:
		return ierrors.Wrapf(ErrUnknownConfigFormat, "%s", filePath)
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Errorf("unable to load config file %s: %w", filePath, err)
	}

	return nil
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars, "_" separates the levels (PREFIX_SECTION_KEY).
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) and merges them into the loaded config.
// Flags that were set on the command line always win, default values of flags are only used for keys that
// did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// Exists returns true if the key is set.
func (c *Configuration) Exists(key string) bool {
	return c.config.Exists(strings.ToLower(key))
}

// String returns the string value of the key or "".
func (c *Configuration) String(key string) string {
	return c.config.String(strings.ToLower(key))
}

// Strings returns the string slice value of the key or nil.
func (c *Configuration) Strings(key string) []string {
	return c.config.Strings(strings.ToLower(key))
}

// Int returns the int value of the key or 0.
func (c *Configuration) Int(key string) int {
	return c.config.Int(strings.ToLower(key))
}

// Unmarshal decodes the section at path into the struct pointed to by out using its koanf tags.
func (c *Configuration) Unmarshal(path string, out interface{}) error {
	if err := c.config.Unmarshal(strings.ToLower(path), out); err != nil {
		return ierrors.Errorf("unable to unmarshal config section %q: %w", path, err)
	}

	return nil
}

// Flat returns all loaded keys and values as a flat "section.key" map.
func (c *Configuration) Flat() map[string]interface{} {
	flat, _ := maps.Flatten(c.config.Raw(), nil, ".")

	return flat
}
