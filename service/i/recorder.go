package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-grid/domain"
)

// ResultRecorder is the server half of the result exchange.
type ResultRecorder interface {
	// Record validates and stores a submission, returning the message for the player.
	Record(ctx context.Context, s dmn.Submission) (string, error)
	Leaderboard(ctx context.Context, n int64) ([]dmn.LeaderboardEntry, error)
	Recent(ctx context.Context, limit int) ([]dmn.Record, error)
}
