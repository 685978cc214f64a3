package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-grid/domain"
)

// ResultService delivers a finished grid session to the result endpoint.
type ResultService interface {
	// Send posts the submission once and returns the server's success message.
	// A rejection carrying server text is returned as *dmn.FailureError.
	Send(ctx context.Context, s dmn.Submission) (string, error)
}
