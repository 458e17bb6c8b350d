/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee Fuzzy commands. Provides common
configuration loading, logging setup, input parsing, and output formatting used
across all command implementations.
*/

package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-fuzzy/pkg/config"
	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
	"github.com/kleascm/akaylee-fuzzy/pkg/logging"
)

// SetupLogging configures the logging system from the bound flags and returns
// the logrus instance commands and systems log through. The log file stays
// open for the lifetime of the process.
func SetupLogging() (*logrus.Logger, error) {
	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	logConfig := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Colors:    !viper.GetBool("json_logs"),
	}
	if err := logConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging configuration: %w", err)
	}

	logger, err := logging.NewLogger(logConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger.GetLogger(), nil
}

// LoadSystem loads and compiles the system definition named by --config,
// honoring the AKAYLEE_FUZZY environment prefix
func LoadSystem(logger *logrus.Logger) (*fuzzy.System, error) {
	viper.SetEnvPrefix("AKAYLEE_FUZZY")
	viper.AutomaticEnv()

	path := viper.GetString("config")
	if path == "" {
		return nil, fmt.Errorf("no system definition given, use --config")
	}

	spec, err := config.LoadSpec(path)
	if err != nil {
		return nil, err
	}
	return config.Compile(spec, logger)
}

// ParseInputs parses repeated variable=value pairs into an input map
func ParseInputs(pairs []string) (map[string]float64, error) {
	inputs := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, raw, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid input %q, expected variable=value", pair)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for input %q: %w", name, err)
		}
		inputs[name] = value
	}
	return inputs, nil
}

// PrintOutputs prints crisp outputs in deterministic order
func PrintOutputs(outputs map[string]float64) {
	names := make([]string, 0, len(outputs))
	for name := range outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s = %.4f\n", name, outputs[name])
	}
}

// PrintDegrees prints a label->degree table in label order
func PrintDegrees(labels []string, degrees map[string]float64) {
	for _, label := range labels {
		fmt.Printf("    %-12s %.3f\n", label, degrees[label])
	}
}
