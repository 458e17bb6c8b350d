/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: demo.go
Description: Demo command implementation for Akaylee Fuzzy. Builds the classic tipping
problem in code (quality and service on 0-10 scales, tip on a 0-25% scale, three
rules) and walks through fuzzification, rule activation, and defuzzification for the
given inputs.
*/

package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
)

// RunDemo runs the built-in tipping system
func RunDemo(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	system, err := TippingSystem(logger)
	if err != nil {
		return fmt.Errorf("failed to build tipping system: %w", err)
	}

	inputs := map[string]float64{
		"quality": viper.GetFloat64("demo_quality"),
		"service": viper.GetFloat64("demo_service"),
	}

	trace, err := system.ComputeWithTrace(inputs)
	if err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}

	fmt.Println("💸 Tipping Problem - Fuzzy Logic")
	fmt.Println("================================")
	fmt.Println()
	fmt.Printf("Inputs: quality=%.1f service=%.1f\n", inputs["quality"], inputs["service"])
	fmt.Println()

	fmt.Println("Fuzzification:")
	for _, name := range []string{"quality", "service"} {
		v, _ := system.Variable(name)
		fmt.Printf("  %s:\n", name)
		PrintDegrees(v.Labels(), trace.Fuzzified[name])
	}
	fmt.Println()

	fmt.Println("Rule activation:")
	for _, activation := range trace.Activations {
		fmt.Printf("  %-8s %.3f  %s\n", activation.Rule, activation.FiringStrength, activation.Expression)
	}
	fmt.Println()

	fmt.Printf("💰 Recommended Tip: %.2f%%\n", trace.Outputs["tip"])
	return nil
}

// TippingSystem builds the reference tipping rule base: three triangular sets
// per variable and three rules mapping experience quality to tip level
func TippingSystem(logger *logrus.Logger) (*fuzzy.System, error) {
	qualityRange, err := fuzzy.NewRangeUniverse(0, 10, 1)
	if err != nil {
		return nil, err
	}
	serviceRange, err := fuzzy.NewRangeUniverse(0, 10, 1)
	if err != nil {
		return nil, err
	}
	tipRange, err := fuzzy.NewRangeUniverse(0, 25, 1)
	if err != nil {
		return nil, err
	}

	quality := fuzzy.NewAntecedent("quality", qualityRange)
	service := fuzzy.NewAntecedent("service", serviceRange)
	tip := fuzzy.NewConsequent("tip", tipRange)

	type termDef struct {
		v       *fuzzy.Variable
		label   string
		a, b, c float64
	}
	terms := []termDef{
		{quality, "low", 0, 0, 5},
		{quality, "medium", 0, 5, 10},
		{quality, "high", 5, 10, 10},
		{service, "low", 0, 0, 5},
		{service, "medium", 0, 5, 10},
		{service, "high", 5, 10, 10},
		{tip, "low", 0, 0, 13},
		{tip, "medium", 0, 13, 25},
		{tip, "high", 13, 25, 25},
	}
	for _, td := range terms {
		f, err := fuzzy.NewTriangular(td.a, td.b, td.c)
		if err != nil {
			return nil, err
		}
		if err := td.v.AddTerm(td.label, f); err != nil {
			return nil, err
		}
	}

	rules := []*fuzzy.Rule{
		fuzzy.NewRule(
			fuzzy.Or(fuzzy.Term("quality", "low"), fuzzy.Term("service", "low")),
			"tip", "low",
		).WithLabel("poor"),
		fuzzy.NewRule(
			fuzzy.Term("service", "medium"),
			"tip", "medium",
		).WithLabel("decent"),
		fuzzy.NewRule(
			fuzzy.Or(fuzzy.Term("service", "high"), fuzzy.Term("quality", "high")),
			"tip", "high",
		).WithLabel("great"),
	}

	opts := []fuzzy.Option{fuzzy.WithName("tipping")}
	if logger != nil {
		opts = append(opts, fuzzy.WithLogger(logger))
	}
	return fuzzy.NewSystem([]*fuzzy.Variable{quality, service, tip}, rules, opts...)
}
