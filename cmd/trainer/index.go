package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"intent-chatbot/internal/pipeline"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the Qdrant pattern collection used by the neighbours classifier",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(ctx)
		if err != nil {
			return err
		}

		client := pipeline.NewQdrantClient(e.cfg.Qdrant)
		repo := pipeline.NewPatternRepository(client, e.cfg.Qdrant, e.l)

		n, err := e.trainer.Index(ctx, repo)
		if err != nil {
			return err
		}
		fmt.Printf("Indexed %d patterns into %s\n", n, e.cfg.Qdrant.CollectionName)
		return nil
	},
}
