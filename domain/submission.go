// Package domain holds the value types shared by the grid client and the result server.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSubmissionFailed reports a result submission that failed without a server-provided message.
var ErrSubmissionFailed = errors.New("submission failed")

// Submission is the payload posted to the result endpoint.
type Submission struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Steps int    `json:"steps"`
	Email string `json:"email"`
}

// Record is an accepted submission as stored by the result server.
type Record struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	X         int       `bson:"x" json:"x"`
	Y         int       `bson:"y" json:"y"`
	Steps     int       `bson:"steps" json:"steps"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

// NewRecord stamps a submission with a fresh ID and creation time.
func NewRecord(s Submission, message string) *Record {
	return &Record{
		ID:        uuid.New(),
		X:         s.X,
		Y:         s.Y,
		Steps:     s.Steps,
		Email:     s.Email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

// LeaderboardEntry is the best (lowest) step count recorded for an email.
type LeaderboardEntry struct {
	Email string `json:"email"`
	Steps int    `json:"steps"`
}

// FailureError is a submission rejected by the server with a message meant for the user.
type FailureError struct {
	Status  int
	Message string
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("result rejected with status %d: %s", e.Status, e.Message)
}
