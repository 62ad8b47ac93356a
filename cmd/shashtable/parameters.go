package main

import (
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/shashtable/configuration"
	"github.com/iotaledger/shashtable/ds/sortedhashtable"
	"github.com/iotaledger/shashtable/logger"
)

const (
	// envPrefix is the prefix of environment variables that override config keys (SHASHTABLE_TABLE_BUCKETS).
	envPrefix = "SHASHTABLE"

	flagConfig = "config"

	configurationKeyBuckets  = "table.buckets"
	configurationKeyHashFunc = "table.hashFunc"
)

// ParametersTable contains the configuration of the table that the shell operates on.
type ParametersTable struct {
	// Buckets is the fixed number of buckets of the table.
	Buckets int `koanf:"buckets"`
	// HashFunc is the name of the hash function that distributes keys over the buckets.
	HashFunc string `koanf:"hashFunc"`
}

// Parameters contains all configuration of the executable.
type Parameters struct {
	Table  ParametersTable
	Logger logger.Config
}

func defaultParameters() map[string]interface{} {
	return map[string]interface{}{
		configurationKeyBuckets:                  1024,
		configurationKeyHashFunc:                 sortedhashtable.HashFuncDJB2,
		logger.ConfigurationKeyLevel:             logger.DefaultCfg.Level,
		logger.ConfigurationKeyDisableCaller:     logger.DefaultCfg.DisableCaller,
		logger.ConfigurationKeyDisableStacktrace: logger.DefaultCfg.DisableStacktrace,
		logger.ConfigurationKeyEncoding:          logger.DefaultCfg.Encoding,
		logger.ConfigurationKeyOutputPaths:       logger.DefaultCfg.OutputPaths,
	}
}

func newFlagSet() *flag.FlagSet {
	flagSet := flag.NewFlagSet("shashtable", flag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.String(flagConfig, "", "path to a JSON or YAML config file")
	flagSet.Int(configurationKeyBuckets, 1024, "number of buckets of the table")
	flagSet.String(configurationKeyHashFunc, sortedhashtable.HashFuncDJB2, "hash function (djb2 or xxhash)")
	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "minimum log level")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "log encoding (console or json)")

	return flagSet
}

// loadParameters merges defaults, the optional config file, env vars and command line flags (in that order).
func loadParameters(args []string) (*Parameters, error) {
	flagSet := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	config := configuration.New()
	if err := config.LoadDefaults(defaultParameters()); err != nil {
		return nil, err
	}

	if configFile, _ := flagSet.GetString(flagConfig); configFile != "" {
		if err := config.LoadFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, err
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, err
	}

	params := &Parameters{}
	if err := config.Unmarshal("table", &params.Table); err != nil {
		return nil, err
	}
	if err := config.Unmarshal("logger", &params.Logger); err != nil {
		return nil, err
	}

	return params, nil
}
