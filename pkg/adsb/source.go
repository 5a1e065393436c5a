package adsb

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/unklstewy/airforcenone/internal/errors"
)

// DefaultMinInterval is the minimum spacing between outbound requests (1 req/s).
const DefaultMinInterval = time.Second

// ErrSourceFault marks every fault returned by RateLimitedSource.Fetch.
var ErrSourceFault = errors.New("data source fault")

// Fetcher issues a single query against the remote feed.
// *Client implements it; tests substitute fakes.
type Fetcher interface {
	Get(ctx context.Context, sel Selector) ([]Track, error)
}

// Snapshot is the outcome of one poll.
// Tracks is never nil; on failure it is empty and Fault describes the failure.
type Snapshot struct {
	Tracks    []Track
	Fault     error
	Selector  Selector
	FetchedAt time.Time
}

// RateLimitedSource wraps a Fetcher and guarantees a minimum interval between
// outbound requests. Every attempt consumes the interval, successful or not,
// so repeated failures still respect pacing.
type RateLimitedSource struct {
	fetcher Fetcher
	limiter *rate.Limiter
	retry   RetryConfig
	logger  *zap.SugaredLogger
}

// SourceOption customizes a RateLimitedSource.
type SourceOption func(*RateLimitedSource)

// WithRetry sets the retry policy applied to each Fetch.
func WithRetry(cfg RetryConfig) SourceOption {
	return func(s *RateLimitedSource) {
		s.retry = cfg
	}
}

// WithLogger sets the logger used for fault reporting.
func WithLogger(logger *zap.SugaredLogger) SourceOption {
	return func(s *RateLimitedSource) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewRateLimitedSource creates a source that issues at most one request per minInterval.
// A non-positive minInterval uses DefaultMinInterval.
func NewRateLimitedSource(fetcher Fetcher, minInterval time.Duration, opts ...SourceOption) *RateLimitedSource {
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}

	s := &RateLimitedSource{
		fetcher: fetcher,
		// burst of 1: the first request goes out immediately, later ones are spaced
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
		retry:   DefaultRetryConfig(),
		logger:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.retry.Logger == nil {
		s.retry.Logger = s.logger
	}
	return s
}

// Fetch runs the query chosen by sel, blocking as needed to honour the minimum interval.
// It never returns a nil track list and never panics past this boundary; failures are
// reported through Snapshot.Fault, marked with ErrSourceFault.
func (s *RateLimitedSource) Fetch(ctx context.Context, sel Selector) (snap Snapshot) {
	snap = Snapshot{Tracks: []Track{}, Selector: sel}

	defer func() {
		if r := recover(); r != nil {
			snap.Tracks = []Track{}
			snap.Fault = errors.Mark(errors.Newf("panic during fetch %s: %v", sel, r), ErrSourceFault)
			s.logger.Errorw("Recovered from panic in fetch", "selector", sel.String(), "panic", r)
		}
	}()

	tracks, err := RetryWithBackoffResult(ctx, s.retry, func() ([]Track, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "rate limiter")
		}
		return s.fetcher.Get(ctx, sel)
	})
	snap.FetchedAt = time.Now().UTC()

	if err != nil {
		snap.Fault = errors.Mark(errors.Wrapf(err, "fetch %s", sel), ErrSourceFault)
		s.logger.Warnw("Source fault, continuing with empty snapshot",
			"selector", sel.String(),
			"error", err)
		return snap
	}

	if tracks != nil {
		snap.Tracks = tracks
	}
	s.logger.Debugw("Fetched snapshot", "selector", sel.String(), "tracks", len(snap.Tracks))
	return snap
}
