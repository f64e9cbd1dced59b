package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	testFraction float64
	seed         uint64
	showMisses   bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Report held-out accuracy on a seeded train/test split",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(ctx)
		if err != nil {
			return err
		}

		report, err := e.trainer.Evaluate(ctx, testFraction, seed)
		if err != nil {
			return err
		}

		fmt.Printf("Train/test: %d/%d patterns\n", report.Train, report.Test)
		fmt.Printf("Held-out accuracy: %.2f%%\n", report.Accuracy*100)
		if showMisses {
			for _, m := range report.Misses {
				fmt.Printf("  %q: want %s, got %s\n", m.Pattern, m.Want, m.Got)
			}
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().Float64Var(&testFraction, "test-size", 0.2, "fraction of patterns held out")
	evalCmd.Flags().Uint64Var(&seed, "seed", 42, "shuffle seed")
	evalCmd.Flags().BoolVar(&showMisses, "misses", false, "print misclassified patterns")
}
