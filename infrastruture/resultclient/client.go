// Package resultclient posts finished grid sessions to the result endpoint.
package resultclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-grid/domain"
	"github.com/beka-birhanu/vinom-grid/service/i"
	"resty.dev/v3"
)

const defaultTimeout = 10 * time.Second

// messageBody is the shape of both success and failure responses.
type messageBody struct {
	Message string `json:"message"`
}

// Config configures a Client.
type Config struct {
	URL     string        // Result endpoint, e.g. http://localhost:9000/api/result
	Timeout time.Duration // Transport timeout for one request; 0 uses the default
	Logger  i.Logger
}

// Client implements i.ResultService over HTTP. Each Send is a single attempt.
type Client struct {
	url    string
	http   *resty.Client
	logger i.Logger
}

// New creates a Client for the configured endpoint.
func New(c Config) (*Client, error) {
	if c.URL == "" {
		return nil, errors.New("result url is required")
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetTimeout(c.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		url:    c.URL,
		http:   httpClient,
		logger: c.Logger,
	}, nil
}

// Send posts s and returns the server's message.
//
// A non-2xx response with a message is returned as *dmn.FailureError. Any other
// failure wraps dmn.ErrSubmissionFailed, including a 2xx response without a
// message.
func (c *Client) Send(ctx context.Context, s dmn.Submission) (string, error) {
	var ok, failed messageBody
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(s).
		SetResult(&ok).
		SetError(&failed).
		Post(c.url)
	if err != nil {
		c.logger.Error(fmt.Sprintf("posting result: %v", err))
		return "", fmt.Errorf("%w: %v", dmn.ErrSubmissionFailed, err)
	}

	if res.IsError() {
		c.logger.Warning(fmt.Sprintf("result rejected: status=%d message=%q", res.StatusCode(), failed.Message))
		if failed.Message == "" {
			return "", fmt.Errorf("%w: status %d", dmn.ErrSubmissionFailed, res.StatusCode())
		}
		return "", &dmn.FailureError{Status: res.StatusCode(), Message: failed.Message}
	}

	if ok.Message == "" {
		c.logger.Warning(fmt.Sprintf("result accepted without a message: status=%d", res.StatusCode()))
		return "", fmt.Errorf("%w: empty success message", dmn.ErrSubmissionFailed)
	}

	c.logger.Info(fmt.Sprintf("result accepted: x=%d y=%d steps=%d", s.X, s.Y, s.Steps))
	return ok.Message, nil
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.http.Close()
}
