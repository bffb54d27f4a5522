// Package dataloader provides per-request DataLoaders for batching GraphQL
// resolver queries into single SQL calls. DataLoaders call repositories
// directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/lawndon/lawndon-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type profileRepo interface {
	GetByAccountIDs(ctx context.Context, accountIDs []string) ([]*domain.Profile, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Profile profileRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains the per-request DataLoaders. Created per-request via
// NewLoaders; results are cached within a single request only.
type Loaders struct {
	ProfileByAccountID *dataloader.Loader[string, *domain.Profile]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		ProfileByAccountID: newLoader(newProfileBatchFn(repos.Profile)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Batch functions
// ---------------------------------------------------------------------------

func newProfileBatchFn(repo profileRepo) dataloader.BatchFunc[string, *domain.Profile] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.Profile] {
		profiles, err := repo.GetByAccountIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Profile](len(keys), err)
		}

		byID := make(map[string]*domain.Profile, len(profiles))
		for _, p := range profiles {
			byID[p.AccountID] = p
		}

		results := make([]*dataloader.Result[*domain.Profile], len(keys))
		for i, key := range keys {
			p, ok := byID[key]
			if !ok {
				results[i] = &dataloader.Result[*domain.Profile]{Error: domain.ErrNotFound}
				continue
			}
			results[i] = &dataloader.Result[*domain.Profile]{Data: p}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
