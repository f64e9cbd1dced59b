package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"intent-chatbot/config"
	"intent-chatbot/internal/classifier"
	"intent-chatbot/internal/embedding"
	"intent-chatbot/internal/intent"
	"intent-chatbot/internal/pipeline"
	"intent-chatbot/internal/trainer"
	"intent-chatbot/pkg/log"
)

var (
	cfgFile     string
	catalogPath string
	epochs      int
	learnRate   float64
	l2          float64
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Train and index the intent classifier",
	Long: `trainer builds the classifier state the chat server loads at startup.
It fits the softmax model artifact from the intent catalog, rebuilds the
Qdrant pattern collection for the neighbours classifier, and reports held-out
accuracy for catalog changes.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "intent catalog path, overrides catalog.path")
	rootCmd.PersistentFlags().IntVar(&epochs, "epochs", classifier.DefaultTrainOptions().Epochs, "gradient descent epochs")
	rootCmd.PersistentFlags().Float64Var(&learnRate, "learning-rate", classifier.DefaultTrainOptions().LearningRate, "gradient descent step size")
	rootCmd.PersistentFlags().Float64Var(&l2, "l2", classifier.DefaultTrainOptions().L2, "L2 regularisation strength")

	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(indexCmd)
}

// env is what every subcommand needs: config, logger, catalog and the
// embedder the server will use.
type env struct {
	cfg     *config.Config
	l       log.Logger
	catalog *intent.Catalog
	emb     embedding.Embedder
	trainer *trainer.Trainer
}

func setup(ctx context.Context) (*env, error) {
	// .env is optional; real environment variables still apply.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}

	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	catalog, err := intent.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	l.Infof(ctx, "Loaded %d intents from %s", catalog.Len(), cfg.Catalog.Path)

	emb, err := pipeline.NewEmbedder(cfg.Embedder, catalog)
	if err != nil {
		return nil, fmt.Errorf("build embedder: %w", err)
	}

	opts := classifier.TrainOptions{Epochs: epochs, LearningRate: learnRate, L2: l2}
	return &env{
		cfg:     cfg,
		l:       l,
		catalog: catalog,
		emb:     emb,
		trainer: trainer.New(catalog, emb, opts, l),
	}, nil
}
