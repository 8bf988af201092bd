package core

import (
	"context"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// Number of iterations between two checks for cancellation
	cancelCheckInterval = 1024
	// Number of iterations of SimulateSeeded that share a random stream
	batchSize = 4096
)

// A RandomSource yields uniform random numbers in [0,1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// A GroupSimulator forecasts the final standings of round
// robin groups by repeated random playouts.
//
// It holds no state between simulations and may be used
// by concurrent callers.
type GroupSimulator struct {
	model    MatchModel
	workers  int
	tieBreak TieBreak
	logger   *zap.Logger
	metrics  *SimulationMetrics
}

type SimulatorOption func(s *GroupSimulator)

// Sets the number of parallel workers of SimulateSeeded.
// Values below 1 select runtime.GOMAXPROCS. The worker count
// only affects the speed, never the forecast.
func WithWorkers(workers int) SimulatorOption {
	return func(s *GroupSimulator) {
		if workers < 1 {
			workers = runtime.GOMAXPROCS(0)
		}
		s.workers = workers
	}
}

func WithTieBreak(tieBreak TieBreak) SimulatorOption {
	return func(s *GroupSimulator) { s.tieBreak = tieBreak }
}

func WithLogger(logger *zap.Logger) SimulatorOption {
	return func(s *GroupSimulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(metrics *SimulationMetrics) SimulatorOption {
	return func(s *GroupSimulator) { s.metrics = metrics }
}

func NewGroupSimulator(model MatchModel, opts ...SimulatorOption) *GroupSimulator {
	s := &GroupSimulator{
		model:    model,
		workers:  1,
		tieBreak: TieBreakEntryOrder,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GroupSimulator) Workers() int {
	return s.workers
}

// Simulates the group of teams iterations times on a single
// stream of random numbers.
//
// Every iteration draws exactly one number per fixture from rng,
// plus the tie-break draws when TieBreakRandom is set. Given the
// same rng state the forecast is always the same.
func (s *GroupSimulator) Simulate(teams []Team, iterations int, rng RandomSource) (*GroupForecast, error) {
	if rng == nil {
		return nil, ErrNilRandomSource
	}
	schedule, err := s.prepare(teams, iterations)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	tally := newGroupTally(len(teams))
	if err := s.playout(context.Background(), schedule, iterations, rng, tally); err != nil {
		return nil, err
	}

	return s.finish(schedule, tally, 1, start), nil
}

// Simulates the group of teams iterations times split across the
// simulator's workers.
//
// The iterations are cut into batches of batchSize and every batch
// plays on its own random stream derived from the seed and the batch
// index. Workers pull the batches in order and their tallies are
// summed after all workers are done. Given the same seed the forecast
// is always the same, no matter how many workers run.
func (s *GroupSimulator) SimulateSeeded(
	ctx context.Context,
	teams []Team,
	iterations int,
	seed int64,
) (*GroupForecast, error) {
	schedule, err := s.prepare(teams, iterations)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	numBatches := (iterations + batchSize - 1) / batchSize
	batchSeeds := make([]int64, numBatches)
	seeds := rand.New(rand.NewSource(seed))
	for b := range batchSeeds {
		batchSeeds[b] = seeds.Int63()
	}

	workers := min(s.workers, numBatches)
	tallies := make([]*groupTally, workers)
	var nextBatch atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		tally := newGroupTally(len(teams))
		tallies[w] = tally

		g.Go(func() error {
			for {
				b := int(nextBatch.Add(1) - 1)
				if b >= numBatches {
					return nil
				}
				size := min(batchSize, iterations-b*batchSize)
				rng := rand.New(rand.NewSource(batchSeeds[b]))
				if err := s.playout(ctx, schedule, size, rng, tally); err != nil {
					return err
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The tallies are plain counts so the sum does not
	// depend on which worker played which batch
	total := newGroupTally(len(teams))
	for _, tally := range tallies {
		total.Add(tally)
	}

	return s.finish(schedule, total, workers, start), nil
}

func (s *GroupSimulator) prepare(teams []Team, iterations int) (*GroupSchedule, error) {
	if iterations < 1 {
		return nil, ErrInvalidIterations
	}
	return NewGroupSchedule(teams, s.model)
}

// Plays iterations runs of the schedule on rng and records them in tally
func (s *GroupSimulator) playout(
	ctx context.Context,
	schedule *GroupSchedule,
	iterations int,
	rng RandomSource,
	tally *groupTally,
) error {
	run := newSimulationRun(len(schedule.Teams))

	for i := range iterations {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		run.play(schedule, rng)
		ranking := run.rank(s.tieBreak, rng)
		tally.record(run, ranking)
	}

	return nil
}

func (s *GroupSimulator) finish(
	schedule *GroupSchedule,
	tally *groupTally,
	workers int,
	start time.Time,
) *GroupForecast {
	elapsed := time.Since(start)
	s.metrics.observeSimulation(tally.iterations, len(schedule.Fixtures), elapsed)

	s.logger.Debug("group simulated",
		zap.Int("teams", len(schedule.Teams)),
		zap.Int("fixtures", len(schedule.Fixtures)),
		zap.Int("iterations", tally.iterations),
		zap.Int("workers", workers),
		zap.Stringer("tieBreak", s.tieBreak),
		zap.Duration("elapsed", elapsed),
	)

	return tally.forecast(schedule)
}
