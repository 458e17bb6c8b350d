/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validate.go
Description: Validate command implementation for Akaylee Fuzzy. Performs a dry-run
build of a system definition and reports every configuration issue without computing
anything. Exits non-zero when the definition is unusable.
*/

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
)

// RunValidate builds the system definition and reports configuration issues
func RunValidate(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	system, err := LoadSystem(logger)
	if err != nil {
		var configErr *fuzzy.ConfigError
		if errors.As(err, &configErr) {
			fmt.Printf("❌ System definition is invalid (%d issues):\n", len(configErr.Issues))
			for _, issue := range configErr.Issues {
				fmt.Printf("  - %s\n", issue)
			}
		}
		return err
	}

	fmt.Printf("✅ System %q is valid\n", system.Name())
	fmt.Printf("  Variables: %d\n", len(system.Variables()))
	for _, v := range system.Variables() {
		u := v.Universe()
		fmt.Printf("    %-12s %-10s universe [%g, %g] (%d samples), terms: %v\n",
			v.Name(), v.Role(), u.Min(), u.Max(), u.Len(), v.Labels())
	}
	fmt.Printf("  Rules: %d\n", len(system.Rules()))
	for _, r := range system.Rules() {
		fmt.Printf("    %s\n", r)
	}
	fmt.Printf("  Defuzzifier: %s\n", system.Method())

	return nil
}
