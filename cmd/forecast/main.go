package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ezBadminton/goqualifier/core"
	"github.com/ezBadminton/goqualifier/internal/config"
	"github.com/ezBadminton/goqualifier/internal/report"
	"github.com/ezBadminton/goqualifier/internal/scenario"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("Forecast failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	s, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		return err
	}
	model, err := s.Model()
	if err != nil {
		return err
	}

	logger.Info("Scenario loaded",
		zap.String("path", cfg.ScenarioPath),
		zap.Int("groups", len(s.Groups)),
		zap.Int("brackets", len(s.Brackets)),
		zap.Int("paths", len(s.Paths)),
		zap.Int64("seed", cfg.Seed),
	)

	registry := prometheus.NewRegistry()
	metrics := core.NewSimulationMetrics(registry)

	simulator := core.NewGroupSimulator(model,
		core.WithWorkers(cfg.Workers),
		core.WithTieBreak(cfg.TieBreak),
		core.WithLogger(logger),
		core.WithMetrics(metrics),
	)

	rep := &report.Report{
		RunID:      runID,
		Scenario:   s.Name,
		Seed:       cfg.Seed,
		Iterations: cfg.Iterations,
		TieBreak:   cfg.TieBreak.String(),
	}

	for i, g := range s.Groups {
		// Every group gets its own stream so that adding a group
		// does not change the forecasts of the others
		seed := cfg.Seed + int64(i)
		forecast, err := simulator.SimulateSeeded(ctx, g.CoreTeams(), cfg.Iterations, seed)
		if err != nil {
			return fmt.Errorf("group %q: %w", g.Name, err)
		}
		rep.AddGroup(g.Name, g.Qualifiers, forecast)
		logger.Info("Group forecast", zap.String("group", g.Name), zap.Int("teams", len(g.Teams)))
	}

	for _, b := range s.Brackets {
		result := core.SolveBracketTeams(b.CoreTeams())
		metrics.ObserveKnockout(report.KindBracket)
		rep.AddBracket(b.Name, result)
		logger.Debug("Bracket solved",
			zap.String("bracket", b.Name),
			zap.Float64("expectedWinnerRating", result.ExpectedWinnerRating),
		)
	}

	for _, p := range s.Paths {
		result, err := core.SolvePathTeams(p.CoreTeams())
		if err != nil {
			return fmt.Errorf("path %q: %w", p.Name, err)
		}
		metrics.ObserveKnockout(report.KindPath)
		rep.AddPath(p.Name, result)
		logger.Debug("Path solved",
			zap.String("path", p.Name),
			zap.Float64("expectedWinnerRating", result.ExpectedWinnerRating),
		)
	}

	if err := render(cfg, rep, model, out); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("Metrics written", zap.String("file", cfg.MetricsFile))
	}

	return nil
}

func render(cfg *config.Config, rep *report.Report, model core.MatchModel, out io.Writer) error {
	if cfg.Output == config.OutputJSON {
		return rep.WriteJSON(out)
	}

	if err := rep.WriteTable(out); err != nil {
		return err
	}
	if cfg.ReferenceTable {
		fmt.Fprintln(out, "Match model")
		return report.ProbabilityTable(out, model)
	}
	return nil
}
