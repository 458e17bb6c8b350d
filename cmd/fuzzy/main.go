/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for Akaylee Fuzzy. Provides commands for
computing inferences from declarative system definitions, validating definitions,
batch evaluation, and a built-in tipping demo, with comprehensive logging options.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-fuzzy/cmd/fuzzy/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64

	// Compute configuration
	inputPairs []string
	showTrace  bool
	reportDir  string

	// Batch configuration
	inputsFile string
	workers    int

	// Demo configuration
	demoQuality float64
	demoService float64
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-fuzzy",
		Short: "Akaylee Fuzzy - Mamdani fuzzy-logic inference engine",
		Long: `Akaylee Fuzzy is a fuzzy-logic inference engine that computes crisp output
values from imprecise numeric inputs. Inputs are fuzzified into qualitative categories,
combined through a rule base with fuzzy AND/OR/NOT, and the aggregated result is
defuzzified into a single numeric recommendation. Systems are defined declaratively
in YAML and evaluated deterministically, one invocation at a time or in parallel batches.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "System definition file (YAML/JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))

	// Add compute command
	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "Run one inference over a system definition",
		Long: `Compute crisp outputs for one set of inputs against a declarative system
definition. Inputs are given as --input variable=value pairs, one per antecedent
variable. With --trace the full diagnostic record (fuzzified degrees, rule firing
strengths, activation curves, aggregated profiles) is printed or written as JSON.`,
		RunE: commands.RunCompute,
	}
	computeCmd.Flags().StringSliceVar(&inputPairs, "input", []string{}, "Crisp input as variable=value (repeatable)")
	computeCmd.Flags().BoolVar(&showTrace, "trace", false, "Print the full diagnostic trace as JSON")
	computeCmd.Flags().StringVar(&reportDir, "report-dir", "", "Write the trace as a JSON report to this directory")
	viper.BindPFlag("inputs", computeCmd.Flags().Lookup("input"))
	viper.BindPFlag("trace", computeCmd.Flags().Lookup("trace"))
	viper.BindPFlag("report_dir", computeCmd.Flags().Lookup("report-dir"))
	rootCmd.AddCommand(computeCmd)

	// Add validate command
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a system definition without computing",
		Long: `Build a system definition and report every configuration problem: malformed
membership parameters, duplicate labels, rules referencing unknown variables or terms.
Exits non-zero when the definition is unusable. Useful for CI/CD integration.`,
		RunE: commands.RunValidate,
	}
	rootCmd.AddCommand(validateCmd)

	// Add batch command
	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate many input tuples against one system definition",
		Long: `Evaluate a JSON file of input tuples against one system definition in
parallel. Each tuple is an independent inference; results are reported in input order.`,
		RunE: commands.RunBatch,
	}
	batchCmd.Flags().StringVar(&inputsFile, "inputs", "", "JSON file with an array of input tuples (required)")
	batchCmd.Flags().IntVar(&workers, "workers", 0, "Number of parallel workers (0 = auto-detect)")
	batchCmd.Flags().StringVar(&reportDir, "report-dir", "", "Write each trace as a JSON report to this directory")
	batchCmd.MarkFlagRequired("inputs")
	viper.BindPFlag("inputs_file", batchCmd.Flags().Lookup("inputs"))
	viper.BindPFlag("workers", batchCmd.Flags().Lookup("workers"))
	viper.BindPFlag("report_dir", batchCmd.Flags().Lookup("report-dir"))
	rootCmd.AddCommand(batchCmd)

	// Add demo command
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in tipping demo system",
		Long: `Run the classic tipping problem: rate food quality and service on 0-10
scales and receive a tip recommendation on a 0-25% scale. Prints the membership
degrees, rule firing strengths, and the defuzzified result.`,
		RunE: commands.RunDemo,
	}
	demoCmd.Flags().Float64Var(&demoQuality, "quality", 5, "Food quality rating (0-10)")
	demoCmd.Flags().Float64Var(&demoService, "service", 5, "Service rating (0-10)")
	viper.BindPFlag("demo_quality", demoCmd.Flags().Lookup("quality"))
	viper.BindPFlag("demo_service", demoCmd.Flags().Lookup("service"))
	rootCmd.AddCommand(demoCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
