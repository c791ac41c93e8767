package service

import (
	"errors"
	"io"
	"time"

	"github.com/beka-birhanu/alice-maze/maze"
	"github.com/beka-birhanu/alice-maze/service/i"
	"github.com/beka-birhanu/alice-maze/solver"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

const (
	outcomeSolved   = "solved"
	outcomeUnsolved = "unsolved"
	outcomeError    = "error"
)

// Service errors.
var ErrNilMaze = errors.New("maze is nil")

// SolveOptions configures a SolveService.
type SolveOptions struct {
	MaxStepSizes int                   // Passed to solver.WithStepLimit
	Logger       logrus.FieldLogger    // Defaults to a discarding logger
	Registerer   prometheus.Registerer // Where metrics are registered; nil skips registration
}

type solveMetrics struct {
	total    *prometheus.CounterVec
	expanded prometheus.Histogram
	duration prometheus.Histogram
}

// SolveService runs searches under a run ID, logging and recording metrics
// for each one.
type SolveService struct {
	opts    SolveOptions
	logger  logrus.FieldLogger
	metrics solveMetrics
}

var _ i.MazeSolver = &SolveService{}

// NewSolveService creates a SolveService.
func NewSolveService(opts *SolveOptions) (*SolveService, error) {
	if opts == nil {
		opts = &SolveOptions{}
	}
	if opts.MaxStepSizes < 0 {
		return nil, errors.New("max step sizes must not be negative")
	}

	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	// promauto.With(nil) creates collectors without registering them.
	factory := promauto.With(opts.Registerer)
	return &SolveService{
		opts:   *opts,
		logger: logger,
		metrics: solveMetrics{
			total: factory.NewCounterVec(prometheus.CounterOpts{
				Name: "alice_maze_solves_total",
				Help: "Total number of searches by outcome",
			}, []string{"outcome"}),
			expanded: factory.NewHistogram(prometheus.HistogramOpts{
				Name:    "alice_maze_solve_expanded_states",
				Help:    "States taken off the queue per search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			}),
			duration: factory.NewHistogram(prometheus.HistogramOpts{
				Name:    "alice_maze_solve_duration_seconds",
				Help:    "Search duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			}),
		},
	}, nil
}

// Solve implements i.MazeSolver.
func (s *SolveService) Solve(m *maze.Maze) (uuid.UUID, solver.Result, error) {
	runID := uuid.New()
	if m == nil {
		return runID, solver.Result{}, ErrNilMaze
	}
	log := s.logger.WithField("run_id", runID)
	log.WithFields(logrus.Fields{
		"cells": m.Len(),
		"start": m.Start.String(),
		"goal":  m.Goal.String(),
	}).Debug("search started")

	began := time.Now()
	res, err := solver.FindPath(m, m.Start, m.Goal,
		solver.WithStepLimit(s.opts.MaxStepSizes),
		solver.WithLogger(log),
	)
	s.metrics.duration.Observe(time.Since(began).Seconds())

	if err != nil {
		s.metrics.total.WithLabelValues(outcomeError).Inc()
		log.WithError(err).Warn("search failed")
		return runID, solver.Result{}, err
	}

	s.metrics.expanded.Observe(float64(res.Expanded))
	fields := logrus.Fields{
		"expanded": res.Expanded,
		"steps":    res.StepSizes,
	}
	if !res.Solved {
		s.metrics.total.WithLabelValues(outcomeUnsolved).Inc()
		log.WithFields(fields).Info("no solution")
		return runID, res, nil
	}

	s.metrics.total.WithLabelValues(outcomeSolved).Inc()
	fields["length"] = res.Length
	log.WithFields(fields).Info("search solved")
	return runID, res, nil
}
