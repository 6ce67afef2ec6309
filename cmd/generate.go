package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/avrillon/teamsplit/config"
	"github.com/avrillon/teamsplit/core/engine"
	"github.com/avrillon/teamsplit/core/events"
	"github.com/avrillon/teamsplit/infra/logger"
	"github.com/avrillon/teamsplit/infra/metrics"
	"github.com/avrillon/teamsplit/internal/eventbus"
	"github.com/avrillon/teamsplit/pkg/export"
)

var (
	rosterPath string
	teamCount  int
	seed       int64
	format     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate balanced teams from a roster file",
	RunE:  generate,
}

func init() {
	generateCmd.Flags().StringVarP(&rosterPath, "roster", "r", "roster.yaml", "roster file (json or yaml)")
	generateCmd.Flags().IntVarP(&teamCount, "teams", "n", 2, "number of teams")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed for reproducible output (0 = random)")
	generateCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or csv")
	rootCmd.AddCommand(generateCmd)
}

func generate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bootstrap logger until the configured one can be built.
	log := logger.New("generate")

	cfg := &config.Config{}
	if cfgPath != "" {
		log.Debugf("loading configuration from %s", cfgPath)
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg.Engine.SetDefaults()
		cfg.Logging.SetDefaults()
		cfg.Metrics.SetDefaults()
	}
	log = logger.NewWithOptions("generate", os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	roster, err := config.LoadRoster(rosterPath)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	if cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, cfg.Metrics.PrometheusAddr, log); err != nil {
				log.Errorf("prom server: %v", err)
			}
		}()
	}

	bus := eventbus.New()
	defer bus.Close()
	progress := bus.Subscribe(64)
	go func() {
		for ev := range progress {
			if at, ok := ev.(events.AttemptEvent); ok && at.Improved {
				log.Debugf("attempt %d improved the allocation", at.Attempt)
			}
		}
	}()

	engineSeed := seed
	if engineSeed == 0 {
		engineSeed = cfg.Engine.Seed
	}
	eng := engine.New(
		engine.WithLogger(log),
		engine.WithEventBus(bus),
		engine.WithSeed(engineSeed),
		engine.WithRefinerIterations(cfg.Engine.RefinerIterations),
	)

	res, err := eng.Generate(ctx, engine.Request{
		Members:        roster.ModelMembers(),
		ExclusionRules: config.Rules(roster.Exclusions),
		CohesionRules:  config.Rules(roster.Cohesions),
		TeamCount:      teamCount,
		MaxAttempts:    cfg.Engine.MaxAttempts,
	})
	if err != nil {
		var genErr *engine.Error
		if errors.As(err, &genErr) {
			fmt.Fprintf(os.Stderr, "generation failed: %s\nsuggestion: %s\n", genErr.Message, genErr.Suggestion)
			return err
		}
		return err
	}

	switch format {
	case "json":
		return export.WriteJSON(os.Stdout, res)
	case "csv":
		return export.WriteCSV(os.Stdout, res)
	case "text":
		return export.WriteText(os.Stdout, res)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
