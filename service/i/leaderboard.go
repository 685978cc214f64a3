package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-grid/domain"
)

// Leaderboard keeps the fewest steps each email has finished with.
type Leaderboard interface {
	// Record stores steps for email unless a lower count is already stored.
	Record(ctx context.Context, email string, steps int) error

	// Top returns up to n entries ordered by ascending steps.
	Top(ctx context.Context, n int64) ([]dmn.LeaderboardEntry, error)
}
