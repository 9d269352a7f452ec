// SPDX-License-Identifier: MIT

package optimizer

import (
	"context"

	"github.com/katalvlaran/volcano/search"
)

// Searcher answers one maximum-release query. *search.Engine implements it.
//
//go:generate mockgen -source=searcher.go -destination=mocks/mock_searcher.go -package=mocks
type Searcher interface {
	// MaxReleaseStats returns the best release for q and the work it took.
	MaxReleaseStats(ctx context.Context, q search.Query) (int, search.Stats, error)
}

var _ Searcher = (*search.Engine)(nil)
