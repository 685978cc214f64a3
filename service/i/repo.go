package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-grid/domain"
)

// SubmissionRepo defines the interface for persisting accepted submissions.
type SubmissionRepo interface {
	// Save inserts a record. Records are never updated.
	Save(ctx context.Context, r *dmn.Record) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]dmn.Record, error)
}
