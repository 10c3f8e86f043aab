// Package cached implements the cache-and-fallback policy shared by the
// currencies and quotes repositories.
//
// On every Get the repository decides whether the local snapshot is fresh
// enough to serve (younger than the TTL) or whether the remote source must be
// asked. Successful remote data is written through to the local store and the
// fetch timestamp is advanced; remote failures fall back to whatever the local
// store holds, stale or not.
package cached

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
)

// FetchFunc reads a full collection from a source.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// SaveFunc replaces the local snapshot with the given collection.
type SaveFunc[T any] func(ctx context.Context, items []T) error

type options struct {
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Repository.
type Option func(*options)

// WithTTL overrides the cache timeout.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger used for swallowed failures.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Repository is a generic TTL cache in front of a remote source, backed by a
// durable local store and a timestamp store.
type Repository[T any] struct {
	op         string
	key        domain.CacheKey
	remote     FetchFunc[T]
	load       FetchFunc[T]
	save       SaveFunc[T]
	timestamps portsrepo.TimestampStore
	ttl        time.Duration
	now        func() time.Time
	logger     *slog.Logger

	// mu serializes whole Get calls so read-then-write sequences of one cache
	// domain never interleave.
	mu sync.Mutex
}

// New creates a Repository for one cache domain. op names the domain in
// errors and logs.
func New[T any](
	op string,
	key domain.CacheKey,
	remote FetchFunc[T],
	load FetchFunc[T],
	save SaveFunc[T],
	timestamps portsrepo.TimestampStore,
	defaultTTL time.Duration,
	opts ...Option,
) *Repository[T] {
	o := options{ttl: defaultTTL, now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Repository[T]{
		op:         op,
		key:        key,
		remote:     remote,
		load:       load,
		save:       save,
		timestamps: timestamps,
		ttl:        o.ttl,
		now:        o.now,
		logger:     o.logger.With(slog.String("cache", op)),
	}
}

// TTL returns the configured cache timeout.
func (r *Repository[T]) TTL() time.Duration { return r.ttl }

// Get returns the best available collection or a *apperrors.RepositoryError.
func (r *Repository[T]) Get(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	if r.isFresh(ctx, now) {
		local, err := r.load(ctx)
		if err != nil {
			return nil, apperrors.NewLocalFetchError(r.op, err)
		}
		if len(local) > 0 {
			return local, nil
		}
		r.logger.Debug("Local snapshot empty inside TTL, refreshing from remote")
	}

	fresh, err := r.remote(ctx)
	if err != nil {
		r.logger.Warn("Remote fetch failed, falling back to local store", slog.String("error", err.Error()))
		return r.fallback(ctx)
	}

	if err := r.save(ctx, fresh); err != nil {
		r.logger.Warn("Write-through failed, serving remote data anyway",
			slog.String("error", apperrors.NewSaveError(r.op, err).Error()))
	}
	// Advanced on every remote success, whatever the save outcome.
	if err := r.timestamps.SetTimestamp(ctx, r.key, now.Unix()); err != nil {
		r.logger.Warn("Failed to record fetch timestamp", slog.String("error", err.Error()))
	}

	return fresh, nil
}

func (r *Repository[T]) isFresh(ctx context.Context, now time.Time) bool {
	last, err := r.timestamps.GetTimestamp(ctx, r.key)
	if err != nil {
		r.logger.Warn("Failed to read fetch timestamp, treating cache as stale", slog.String("error", err.Error()))
		return false
	}
	return now.Sub(time.Unix(last, 0)) < r.ttl
}

func (r *Repository[T]) fallback(ctx context.Context) ([]T, error) {
	local, err := r.load(ctx)
	if err != nil {
		return nil, apperrors.NewLocalFetchError(r.op, err)
	}
	if len(local) == 0 {
		return nil, apperrors.NewNoDataError(r.op)
	}
	r.logger.Info("Serving stale local snapshot", slog.Int("count", len(local)))
	return local, nil
}
