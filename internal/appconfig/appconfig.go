// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultTimedIterations is the number of timed runs per (cipher, payload) pair.
	defaultTimedIterations = 5
	// defaultWarmupIterations is the number of untimed warm-up round trips per pair.
	defaultWarmupIterations = 1
	// defaultDataDir holds the generated payload files.
	defaultDataDir = "data"
	// defaultResultsDir holds the CSV output.
	defaultResultsDir = "results"
	// defaultCSVName is the results file written after a successful run.
	defaultCSVName = "benchmark_results.csv"
)

// Config represents the top-level application configuration.
type Config struct {
	DataDir          string   `json:"dataDir,omitempty"`
	ResultsDir       string   `json:"resultsDir,omitempty"`
	CSVFile          string   `json:"csvFile,omitempty"`
	Algorithms       []string `json:"algorithms,omitempty"`
	Files            []string `json:"files,omitempty"`
	WarmupIterations int      `json:"warmupIterations,omitempty"`
	TimedIterations  int      `json:"timedIterations,omitempty"`
	LogFile          string   `json:"logFile,omitempty"`
	Debug            bool     `json:"debug"`
	ConfigPath       string   `json:"-"`
}

// configSchema describes the structural shape a config document must have.
// Validation runs before decoding so malformed configs fail with field-level
// messages instead of silent zero values.
var configSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"dataDir":          map[string]any{"type": "string"},
		"resultsDir":       map[string]any{"type": "string"},
		"csvFile":          map[string]any{"type": "string"},
		"algorithms":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"files":            map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"warmupIterations": map[string]any{"type": "integer", "minimum": 0},
		"timedIterations":  map[string]any{"type": "integer", "minimum": 1},
		"logFile":          map[string]any{"type": "string"},
		"debug":            map[string]any{"type": "boolean"},
	},
	"additionalProperties": false,
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		DataDir:          defaultDataDir,
		ResultsDir:       defaultResultsDir,
		WarmupIterations: defaultWarmupIterations,
		TimedIterations:  defaultTimedIterations,
	}
}

// TimedRuns returns the timed iteration count, falling back to the default.
func (c Config) TimedRuns() int {
	if c.TimedIterations <= 0 {
		return defaultTimedIterations
	}
	return c.TimedIterations
}

// WarmupRuns returns the warm-up iteration count. Zero is a valid explicit
// choice; negatives fall back to the default.
func (c Config) WarmupRuns() int {
	if c.WarmupIterations < 0 {
		return defaultWarmupIterations
	}
	return c.WarmupIterations
}

// DataDirPath returns the payload directory, applying the default if unset.
func (c Config) DataDirPath() string {
	if strings.TrimSpace(c.DataDir) != "" {
		return c.DataDir
	}
	return defaultDataDir
}

// CSVPath returns the results file path, derived from the results directory
// when not set explicitly.
func (c Config) CSVPath() string {
	if strings.TrimSpace(c.CSVFile) != "" {
		return c.CSVFile
	}
	dir := c.ResultsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultResultsDir
	}
	return filepath.Join(dir, defaultCSVName)
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "cipherbench.log"
}

// Load reads the application configuration from the specified path. A missing
// file at the default path yields the defaults; a missing file at an explicit
// path is an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if path == DefaultConfigPath {
				return Default(), nil
			}
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := validate(data); err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}

	config := Default()
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	if config.TimedIterations <= 0 {
		config.TimedIterations = defaultTimedIterations
	}
	config.ConfigPath = path

	return config, nil
}

// validate checks the raw config document against configSchema.
func validate(data []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(configSchema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(errs, ", "))
}
