package logger

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	defaultEncoderConfig.TimeKey = "" // no timestamps in tests
}

func TestNewRootLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expectRx string
	}{
		{
			name: "console",
			cfg: Config{
				Level:    "info",
				Encoding: "console",
			},
			expectRx: `INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\t\{"key": "value"\}\n`,
		},
		{
			name: "json",
			cfg: Config{
				Level:    "info",
				Encoding: "json",
			},
			expectRx: `{"level":"INFO","caller":"logger/logger_test.go:\d+","msg":"info"}\n` +
				`{"level":"WARN","caller":"logger/logger_test.go:\d+","msg":"warn","key":"value"}`,
		},
		{
			name: "debug",
			cfg: Config{
				Level: "debug",
			},
			expectRx: `DEBUG\tlogger/logger_test.go:\d+\tdebug\n` +
				`INFO\tlogger/logger_test.go:\d+\tinfo\n`,
		},
		{
			name: "noCaller",
			cfg: Config{
				DisableCaller: true,
			},
			expectRx: "INFO\tinfo\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "shashtable-logger-test.log")
			tt.cfg.OutputPaths = []string{logFile}

			logger, err := NewRootLogger(tt.cfg)
			require.NoError(t, err, "Unexpected error constructing logger.")

			logger.Debug("debug")
			logger.Info("info")
			logger.Warn("warn", zap.String("key", "value"))
			require.NoError(t, logger.Sync())

			assert.Regexp(t, tt.expectRx, getLogs(t, logFile), "Unexpected log output.")
		})
	}
}

func TestNewRootLoggerInvalidLevel(t *testing.T) {
	_, err := NewRootLogger(Config{Level: "invalid"})
	require.Error(t, err)
	require.EqualError(t, err, `invalid log level "invalid": unrecognized level: "invalid"`)
}

func TestWrappedLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "shashtable-wrapped-logger-test.log")

	root, err := NewRootLogger(Config{Level: "debug", DisableCaller: true, OutputPaths: []string{logFile}})
	require.NoError(t, err)

	wrapped := NewWrappedLogger(root.Named("shell"))
	wrapped.LogDebug("debug")
	wrapped.LogWarn("warn", zap.Int("line", 3))
	require.NoError(t, root.Sync())

	assert.Regexp(t, `DEBUG\tshell\tdebug\nWARN\tshell\twarn\t\{"line": 3\}\n`, getLogs(t, logFile))

	// a wrapper without logger swallows all messages
	empty := NewWrappedLogger(nil)
	empty.LogInfo("nothing")
	empty.LogError("nothing")
}

func getLogs(t require.TestingT, fileName string) string {
	file, err := os.Open(fileName)
	require.NoError(t, err, "Couldn't open log file.")
	defer file.Close()

	byteContents, err := io.ReadAll(file)
	require.NoError(t, err, "Couldn't read log contents from file.")

	return string(byteContents)
}
