/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch.go
Description: Batch command implementation for Akaylee Fuzzy. Evaluates a JSON file of
input tuples against one system definition with a parallel worker pool and prints the
crisp outputs per tuple in input order.
*/

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-fuzzy/pkg/utils"
)

// RunBatch evaluates many input tuples against one system
func RunBatch(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	system, err := LoadSystem(logger)
	if err != nil {
		return fmt.Errorf("failed to load system: %w", err)
	}

	path := viper.GetString("inputs_file")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read inputs file: %w", err)
	}

	var inputs []map[string]float64
	if err := json.Unmarshal(data, &inputs); err != nil {
		return fmt.Errorf("failed to parse inputs file %s: %w", path, err)
	}

	workers := viper.GetInt("workers")
	start := time.Now()
	results, err := system.ComputeBatch(inputs, workers)
	if err != nil {
		return fmt.Errorf("batch evaluation failed: %w", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("System: %s\n", system.Name())
	fmt.Printf("Evaluated %d tuples in %s\n", len(results), elapsed)
	for _, result := range results {
		fmt.Printf("[%d]\n", result.Index)
		PrintOutputs(result.Trace.Outputs)
	}

	if dir := viper.GetString("report_dir"); dir != "" {
		for _, result := range results {
			if _, err := utils.WriteTraceReport(dir, result.Trace); err != nil {
				return fmt.Errorf("failed to write trace report for tuple %d: %w", result.Index, err)
			}
		}
		fmt.Printf("Trace reports written to %s\n", dir)
	}

	return nil
}
