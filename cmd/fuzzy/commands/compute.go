/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: compute.go
Description: Compute command implementation for Akaylee Fuzzy. Loads a system
definition, runs one inference over the supplied crisp inputs, prints the crisp
outputs, and optionally emits the full diagnostic trace as JSON.
*/

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-fuzzy/pkg/utils"
)

// RunCompute executes one inference invocation
func RunCompute(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	system, err := LoadSystem(logger)
	if err != nil {
		return fmt.Errorf("failed to load system: %w", err)
	}

	inputs, err := ParseInputs(viper.GetStringSlice("inputs"))
	if err != nil {
		return err
	}

	trace, err := system.ComputeWithTrace(inputs)
	if err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}

	fmt.Printf("System: %s\n", system.Name())
	fmt.Println("Outputs:")
	PrintOutputs(trace.Outputs)
	for _, name := range trace.FallbackOutputs {
		fmt.Printf("  (no rule fired for %s, midpoint fallback used)\n", name)
	}

	if viper.GetBool("trace") {
		data, err := json.MarshalIndent(trace, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal trace: %w", err)
		}
		fmt.Println(string(data))
	}

	if dir := viper.GetString("report_dir"); dir != "" {
		path, err := utils.WriteTraceReport(dir, trace)
		if err != nil {
			return fmt.Errorf("failed to write trace report: %w", err)
		}
		fmt.Printf("Trace report written to %s\n", path)
	}

	return nil
}
