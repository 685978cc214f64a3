package grid

import (
	"context"
	"errors"
	"sync"

	dmn "github.com/beka-birhanu/vinom-grid/domain"
	"github.com/beka-birhanu/vinom-grid/service/i"
)

// FallbackFailureMessage is shown when a submission fails without a server message.
const FallbackFailureMessage = "Something went wrong, please try again"

// ErrNoResultService is returned by NewController without a result service.
var ErrNoResultService = errors.New("result service is required")

// Outcome is the resolution of one Submit call, delivered after it has been applied.
type Outcome struct {
	Submission dmn.Submission // Payload that was sent
	Message    string         // Message now shown to the player
	Err        error          // Non-nil when the submission failed
}

// Controller owns one widget's State. Every mutator runs to completion under
// the controller lock; a submit applies its response in a single step when the
// response arrives.
//
// Submits are not deduplicated or cancelled: when several are in flight, the
// one that resolves last decides the final message and email.
type Controller struct {
	state   State
	results i.ResultService
	sync.Mutex
}

// NewController creates a controller in InitialState.
func NewController(results i.ResultService) (*Controller, error) {
	if results == nil {
		return nil, ErrNoResultService
	}
	return &Controller{
		state:   InitialState,
		results: results,
	}, nil
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.Lock()
	defer c.Unlock()
	return c.state
}

// View renders the current state.
func (c *Controller) View() View {
	return Render(c.State())
}

// Move moves the token one cell in direction d. A move off the grid leaves
// the position and step count alone and sets the rejection message.
func (c *Controller) Move(d Direction) {
	c.Lock()
	defer c.Unlock()

	next, ok := NextIndex(c.state.Index, d)
	if !ok {
		c.state.Message = rejectMessage(d)
		return
	}

	c.state.Index = next
	c.state.Steps++
	c.state.Message = InitialState.Message
}

// Reset restores InitialState. In-flight submits are not affected.
func (c *Controller) Reset() {
	c.Lock()
	defer c.Unlock()
	c.state = InitialState
}

// UpdateEmail stores value as typed.
func (c *Controller) UpdateEmail(value string) {
	c.Lock()
	defer c.Unlock()
	c.state.Email = value
}

// Payload builds the submission for the current state.
func (c *Controller) Payload() dmn.Submission {
	c.Lock()
	defer c.Unlock()
	return payloadOf(c.state)
}

// Submit sends the current position, steps and email to the result service
// and returns without waiting. The returned channel yields the Outcome once
// the response has been applied to the state and is then closed.
func (c *Controller) Submit(ctx context.Context) <-chan Outcome {
	submission := c.Payload()
	done := make(chan Outcome, 1)

	go func() {
		defer close(done)
		message, err := c.results.Send(ctx, submission)
		done <- c.apply(submission, message, err)
	}()

	return done
}

// apply folds a result service response into the state.
func (c *Controller) apply(s dmn.Submission, message string, err error) Outcome {
	c.Lock()
	defer c.Unlock()

	if err != nil {
		c.state.Message = failureMessage(err)
		return Outcome{Submission: s, Message: c.state.Message, Err: err}
	}

	c.state.Message = message
	c.state.Email = InitialState.Email
	return Outcome{Submission: s, Message: message}
}

func payloadOf(s State) dmn.Submission {
	x, y := s.XY()
	return dmn.Submission{X: x, Y: y, Steps: s.Steps, Email: s.Email}
}

// failureMessage prefers the server's own text.
func failureMessage(err error) string {
	var failure *dmn.FailureError
	if errors.As(err, &failure) && failure.Message != "" {
		return failure.Message
	}
	return FallbackFailureMessage
}
