package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"intent-chatbot/internal/pipeline"
)

var modelPath string

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit the softmax model on every catalog pattern and save the artifact",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(ctx)
		if err != nil {
			return err
		}

		model, report, err := e.trainer.Fit(ctx)
		if err != nil {
			return err
		}

		path := e.cfg.Model.Path
		if modelPath != "" {
			path = modelPath
		}
		artifact, err := pipeline.NewArtifact(model, e.emb, e.cfg.Embedder)
		if err != nil {
			return err
		}
		artifact.Accuracy = report.TrainAccuracy
		if err := artifact.Save(path); err != nil {
			return err
		}

		fmt.Printf("Trained on %d patterns across %d intents\n", report.Examples, len(report.Labels))
		fmt.Printf("Training accuracy: %.2f%%\n", report.TrainAccuracy*100)
		fmt.Printf("Model saved to %s\n", path)
		return nil
	},
}

func init() {
	fitCmd.Flags().StringVarP(&modelPath, "out", "o", "", "artifact path, overrides model.path")
}
