package harness

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"yqhp/minbench/internal/execution"
	"yqhp/minbench/internal/workload"
	"yqhp/minbench/pkg/logger"
	"yqhp/minbench/pkg/types"
	"yqhp/minbench/pkg/utils"
)

// Allocator creates the workload arrays for a given element count.
type Allocator func(size int) (*workload.Workload, error)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithRegistry replaces the default partitioner registry.
func WithRegistry(r *execution.Registry) Option {
	return func(c *Coordinator) { c.registry = r }
}

// WithAllocator replaces workload.New.
func WithAllocator(fn Allocator) Option {
	return func(c *Coordinator) { c.allocate = fn }
}

// WithWorkload supplies pre-filled inputs. No allocation or random fill
// happens and Config.WorkloadSize is ignored.
func WithWorkload(wl *workload.Workload) Option {
	return func(c *Coordinator) { c.wl = wl }
}

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

// Coordinator owns the workload, the farming cursor and the trial loop.
type Coordinator struct {
	cfg         Config
	log         *zap.Logger
	registry    *execution.Registry
	allocate    Allocator
	partitioner execution.Partitioner
	cursor      execution.Cursor
	wl          *workload.Workload
	names       []string
}

// New validates cfg, then allocates and fills the workload. Nothing is
// allocated when validation fails.
func New(cfg Config, opts ...Option) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Coordinator{
		cfg:      cfg,
		registry: execution.DefaultRegistry,
		allocate: workload.New,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.L()
	}

	size := cfg.WorkloadSize
	if c.wl != nil {
		size = c.wl.Len()
	}
	if size > 0 && c.cfg.ChunkSize > size {
		c.log.Warn("chunk size exceeds workload size, using one chunk",
			zap.Int("chunk_size", c.cfg.ChunkSize),
			zap.Int("elements", size),
		)
		c.cfg.ChunkSize = size
	}

	p, err := c.registry.Get(cfg.Strategy, c.cfg.ChunkSize)
	if err != nil {
		return nil, fmt.Errorf("create partitioner (registered: %v): %w", c.registry.List(), err)
	}
	c.partitioner = p

	if cfg.Strategy == types.StrategyFarming {
		cursor, err := execution.NewCursor(cfg.Cursor)
		if err != nil {
			return nil, fmt.Errorf("create cursor: %w", err)
		}
		c.cursor = cursor
	}

	c.names = make([]string, cfg.Workers)
	for i := range c.names {
		c.names[i] = fmt.Sprintf("worker-%d", i)
	}

	if c.wl == nil {
		if err := c.setupWorkload(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Coordinator) setupWorkload() error {
	wl, err := c.allocate(c.cfg.WorkloadSize)
	if err != nil {
		return fmt.Errorf("allocate workload of %d elements: %w", c.cfg.WorkloadSize, err)
	}

	seed := c.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	maxValue := c.cfg.MaxValue
	if maxValue <= 0 {
		maxValue = 1000
	}
	wl.Fill(seed, maxValue)
	c.wl = wl

	c.log.Debug("workload ready",
		zap.Int("elements", wl.Len()),
		zap.Int64("seed", seed),
		zap.Int("max_value", maxValue),
	)
	return nil
}

// Workload returns the workload the coordinator operates on.
func (c *Coordinator) Workload() *workload.Workload {
	return c.wl
}

// Run executes every trial and aggregates the timings. ctx is checked
// before each trial; once started a trial always completes.
func (c *Coordinator) Run(ctx context.Context) (*Result, error) {
	result := &Result{
		RunID:        uuid.NewString(),
		StartedAt:    time.Now(),
		Method:       int(c.cfg.Strategy),
		MethodName:   c.cfg.Strategy.String(),
		Workers:      c.cfg.Workers,
		Migration:    c.cfg.Migration,
		WorkloadSize: c.wl.Len(),
		ChunkSize:    c.cfg.ChunkSize,
		TrialCount:   c.cfg.Trials,
		Trials:       make([]TrialResult, 0, c.cfg.Trials),
	}
	if c.cursor != nil {
		result.Cursor = string(c.cfg.Cursor)
		if result.Cursor == "" {
			result.Cursor = string(types.CursorMutex)
		}
	}

	log := c.log.With(zap.String("run_id", result.RunID), zap.Stringer("strategy", c.cfg.Strategy))
	log.Info("benchmark started",
		zap.Int("threads", c.cfg.Workers),
		zap.Int("elements", c.wl.Len()),
		zap.Int("chunk_size", c.cfg.ChunkSize),
		zap.Int("trials", c.cfg.Trials),
	)

	hist := newTimingHistogram()
	for i := 0; i < c.cfg.Trials; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run aborted before trial %d: %w", i, err)
		}

		tr, err := c.runTrial(i)
		if err != nil {
			return nil, err
		}
		if err := recordTrial(hist, tr.Elapsed); err != nil {
			log.Warn("trial duration out of histogram range", zap.Duration("elapsed", tr.Elapsed))
		}

		result.TotalTime += tr.Elapsed
		result.Trials = append(result.Trials, tr)
		log.Debug("trial finished", zap.Int("trial", i), zap.Duration("elapsed", tr.Elapsed))
	}

	result.MeanTime = result.TotalTime / time.Duration(c.cfg.Trials)
	result.Timing = summarize(hist)
	result.Farming = newFarmingStats(result.Trials)

	log.Info("benchmark finished",
		zap.Duration("mean", result.MeanTime),
		zap.Duration("p99", result.Timing.P99),
	)
	return result, nil
}

// runTrial spawns one worker per identity and joins all of them.
func (c *Coordinator) runTrial(index int) (TrialResult, error) {
	var blocks []int
	if c.cursor != nil {
		c.cursor.Reset()
		blocks = make([]int, c.cfg.Workers)
	}

	var (
		wg        sync.WaitGroup
		panicOnce sync.Once
		panicErr  error
	)

	start := time.Now()
	for id := 0; id < c.cfg.Workers; id++ {
		w := &execution.Worker{
			ID:     id,
			Count:  c.cfg.Workers,
			Cursor: c.cursor,
		}
		if blocks != nil {
			w.Blocks = &blocks[id]
		}

		// Done is called after the panic is recorded so the join observes it.
		wg.Add(1)
		utils.SafeGo(c.names[id], func() {
			w.Run(c.partitioner, c.wl)
			wg.Done()
		}, func(r any) {
			panicOnce.Do(func() {
				panicErr = fmt.Errorf("%w: trial %d, worker %d: %v", ErrWorkerPanic, index, w.ID, r)
			})
			wg.Done()
		})
	}
	wg.Wait()
	elapsed := time.Since(start)

	if panicErr != nil {
		return TrialResult{}, panicErr
	}
	return TrialResult{Index: index, Elapsed: elapsed, Blocks: blocks}, nil
}
