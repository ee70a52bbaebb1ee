// Trainer builds the quotation price model from historical quotation lines.
//
// Usage:
//
//	trainer train [--seed 42] [--test-fraction 0.2] [--min-rows 5]
//	trainer inspect
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"reliant_crm/internal/adapter/persistence"
	"reliant_crm/internal/config"
	"reliant_crm/internal/estimation"
	"reliant_crm/internal/infrastructure/logger"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "trainer",
		Usage: "Train and inspect the quotation price model",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "storage-driver",
				Usage:   "Where historical quotations live (dynamodb, postgres, sqlite)",
				EnvVars: []string{"STORAGE_DRIVER"},
			},
			&cli.StringFlag{
				Name:    "model-store",
				Usage:   "Where the artifact is kept (file, dynamodb)",
				EnvVars: []string{"MODEL_STORE"},
			},
			&cli.StringFlag{
				Name:    "model-path",
				Usage:   "Artifact path for the file store",
				EnvVars: []string{"MODEL_PATH"},
			},
		},
		Commands: []*cli.Command{
			trainCommand(),
			inspectCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig applies global flag overrides on top of the environment.
func loadConfig(c *cli.Context) config.Config {
	cfg := config.Load()
	if v := c.String("storage-driver"); v != "" {
		cfg.StorageDriver = strings.ToLower(v)
	}
	if v := c.String("model-store"); v != "" {
		cfg.Model.Store = strings.ToLower(v)
	}
	if v := c.String("model-path"); v != "" {
		cfg.Model.Path = v
	}
	return cfg
}

func newLogger(cfg config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

func trainCommand() *cli.Command {
	return &cli.Command{
		Name:  "train",
		Usage: "Fit a model on every priced quotation line and store it",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Seed of the train/test split",
			},
			&cli.Float64Flag{
				Name:  "test-fraction",
				Usage: "Share of rows held out for evaluation",
			},
			&cli.IntFlag{
				Name:  "min-rows",
				Usage: "Minimum number of historical lines required",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := loadConfig(c)
			if c.IsSet("seed") {
				cfg.Model.Seed = c.Int64("seed")
			}
			if c.IsSet("test-fraction") {
				cfg.Model.TestFraction = c.Float64("test-fraction")
			}
			if c.IsSet("min-rows") {
				cfg.Model.MinRows = c.Int("min-rows")
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx := context.Background()
			stores, err := persistence.Open(ctx, cfg, log)
			if err != nil {
				return err
			}

			trainer := estimation.NewTrainer(stores.Quotations, stores.Artifacts, persistence.TrainerOptions(cfg.Model), log)
			a, err := trainer.Train(ctx)
			if err != nil {
				if errors.Is(err, estimation.ErrData) {
					return cli.Exit(fmt.Sprintf("not enough training data: %v", err), 2)
				}
				return err
			}
			printArtifact(c, a)
			return nil
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Print the stored artifact columns and metrics",
		Action: func(c *cli.Context) error {
			cfg := loadConfig(c)
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx := context.Background()
			stores, err := persistence.Open(ctx, cfg, log)
			if err != nil {
				return err
			}
			a, err := stores.Artifacts.Load(ctx)
			if err != nil {
				return err
			}
			if err := a.Validate(); err != nil {
				return err
			}
			printArtifact(c, a)
			return nil
		},
	}
}

func printArtifact(c *cli.Context, a *estimation.Artifact) {
	w := c.App.Writer
	fmt.Fprintf(w, "artifact:  %s\n", a.ID)
	fmt.Fprintf(w, "schema:    %s\n", a.SchemaID)
	fmt.Fprintf(w, "algorithm: %s\n", a.Algorithm)
	fmt.Fprintf(w, "trained:   %s\n", a.TrainedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "rows:      %d train / %d test (seed %d)\n", a.Metrics.TrainRows, a.Metrics.TestRows, a.Metrics.Seed)
	if a.Metrics.R2 != nil {
		fmt.Fprintf(w, "R^2:       %.2f\n", *a.Metrics.R2)
	} else {
		fmt.Fprintln(w, "R^2:       n/a")
	}
	fmt.Fprintln(w, "columns:")
	for i, col := range a.Columns {
		fmt.Fprintf(w, "  %-28s %12.4f\n", col, a.Model.Coefficients[i])
	}
	fmt.Fprintf(w, "  %-28s %12.4f\n", "(intercept)", a.Model.Intercept)
}
