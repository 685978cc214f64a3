package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	dmn "github.com/beka-birhanu/vinom-grid/domain"
	"github.com/beka-birhanu/vinom-grid/grid"
	"github.com/beka-birhanu/vinom-grid/service/i"
	"github.com/go-playground/validator/v10"
)

const (
	// ForbiddenEmail is always refused, so clients can exercise the failure path.
	ForbiddenEmail = "foo@bar.baz"

	defaultLeaderboardSize = 10
	maxListSize            = 100
)

// Result errors.
var (
	ErrInvalidSubmission = errors.New("invalid submission")
	ErrForbiddenEmail    = errors.New("forbidden email")
)

// RejectionError is a submission refused with a message meant for the player.
type RejectionError struct {
	Err     error
	Message string
}

func (e *RejectionError) Error() string { return e.Message }

func (e *RejectionError) Unwrap() error { return e.Err }

// ResultConfig wires a Result service.
type ResultConfig struct {
	Repo        i.SubmissionRepo
	Leaderboard i.Leaderboard
	Logger      i.Logger
}

// Result validates submissions, stores the accepted ones and ranks them.
type Result struct {
	repo        i.SubmissionRepo
	leaderboard i.Leaderboard
	validate    *validator.Validate
	logger      i.Logger

	// numbering serializes count and save so result numbers are unique per process.
	numbering sync.Mutex
}

// NewResult creates a Result service.
func NewResult(c ResultConfig) (*Result, error) {
	if c.Repo == nil || c.Leaderboard == nil || c.Logger == nil {
		return nil, errors.New("result service needs a repo, a leaderboard and a logger")
	}
	return &Result{
		repo:        c.Repo,
		leaderboard: c.Leaderboard,
		validate:    validator.New(),
		logger:      c.Logger,
	}, nil
}

// Record checks s, stores it and returns "<name> win #<n>", n being the
// stored result count including this one. Invalid or forbidden submissions return a
// *RejectionError.
func (r *Result) Record(ctx context.Context, s dmn.Submission) (string, error) {
	if err := r.check(s); err != nil {
		r.logger.Warning(fmt.Sprintf("rejected submission from %q: %s", s.Email, err))
		return "", err
	}

	r.numbering.Lock()
	defer r.numbering.Unlock()

	count, err := r.repo.Count(ctx)
	if err != nil {
		return "", fmt.Errorf("counting results: %w", err)
	}

	if s.Email == ForbiddenEmail {
		r.logger.Warning(fmt.Sprintf("refused forbidden email %q", s.Email))
		return "", &RejectionError{
			Err:     ErrForbiddenEmail,
			Message: fmt.Sprintf("%s failure #%d", s.Email, count+1),
		}
	}

	message := fmt.Sprintf("%s win #%d", localPart(s.Email), count+1)

	record := dmn.NewRecord(s, message)
	if err := r.repo.Save(ctx, record); err != nil {
		return "", fmt.Errorf("saving result: %w", err)
	}

	if err := r.leaderboard.Record(ctx, s.Email, s.Steps); err != nil {
		r.logger.Warning(fmt.Sprintf("updating leaderboard for %q: %s", s.Email, err))
	}

	r.logger.Info(fmt.Sprintf("recorded result %s: (%d, %d) in %d steps", record.ID, s.X, s.Y, s.Steps))
	return message, nil
}

// Leaderboard returns the best n results; n is clamped to [1, 100].
func (r *Result) Leaderboard(ctx context.Context, n int64) ([]dmn.LeaderboardEntry, error) {
	if n <= 0 {
		n = defaultLeaderboardSize
	}
	return r.leaderboard.Top(ctx, min(n, maxListSize))
}

// Recent returns the latest stored results; limit is clamped to [1, 100].
func (r *Result) Recent(ctx context.Context, limit int) ([]dmn.Record, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	return r.repo.Recent(ctx, min(limit, maxListSize))
}

// check applies the endpoint's validation rules, first failure wins.
func (r *Result) check(s dmn.Submission) error {
	reject := func(msg string) error {
		return &RejectionError{Err: ErrInvalidSubmission, Message: "Ouch: " + msg}
	}

	switch {
	case s.Email == "":
		return reject("email is required")
	case r.validate.Var(s.Email, "email") != nil:
		return reject("email must be a valid email")
	case s.X < 1 || s.X > grid.Size:
		return reject(fmt.Sprintf("x coordinate must be between 1 and %d", grid.Size))
	case s.Y < 1 || s.Y > grid.Size:
		return reject(fmt.Sprintf("y coordinate must be between 1 and %d", grid.Size))
	case s.Steps < 0:
		return reject("steps must be 0 or greater")
	}
	return nil
}

func localPart(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
