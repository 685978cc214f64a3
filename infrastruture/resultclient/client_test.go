package resultclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/vinom-grid/config"
	dmn "github.com/beka-birhanu/vinom-grid/domain"
	"github.com/beka-birhanu/vinom-grid/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	l, err := logger.New("CLIENT", config.ColorBlue, io.Discard)
	require.NoError(t, err)

	c, err := New(Config{URL: url, Logger: l})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func newTestServer(t *testing.T, handler gin.HandlerFunc) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/result", handler)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientSend(t *testing.T) {
	submission := dmn.Submission{X: 3, Y: 2, Steps: 1, Email: "test@example.com"}

	t.Run("success returns the server message", func(t *testing.T) {
		var got dmn.Submission
		srv := newTestServer(t, func(ctx *gin.Context) {
			assert.NoError(t, ctx.ShouldBindJSON(&got))
			ctx.JSON(http.StatusOK, gin.H{"message": "test win #12"})
		})

		msg, err := newTestClient(t, srv.URL+"/api/result").Send(context.Background(), submission)
		require.NoError(t, err)
		assert.Equal(t, "test win #12", msg)
		assert.Equal(t, submission, got)
	})

	t.Run("rejection carries the server message", func(t *testing.T) {
		srv := newTestServer(t, func(ctx *gin.Context) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Ouch: email is required"})
		})

		_, err := newTestClient(t, srv.URL+"/api/result").Send(context.Background(), submission)
		var failure *dmn.FailureError
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.Status)
		assert.Equal(t, "Ouch: email is required", failure.Message)
	})

	t.Run("rejection without a message", func(t *testing.T) {
		srv := newTestServer(t, func(ctx *gin.Context) {
			ctx.Status(http.StatusInternalServerError)
		})

		_, err := newTestClient(t, srv.URL+"/api/result").Send(context.Background(), submission)
		assert.ErrorIs(t, err, dmn.ErrSubmissionFailed)
	})

	t.Run("success without a message is a failure", func(t *testing.T) {
		srv := newTestServer(t, func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		msg, err := newTestClient(t, srv.URL+"/api/result").Send(context.Background(), submission)
		assert.ErrorIs(t, err, dmn.ErrSubmissionFailed)
		assert.Empty(t, msg)
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := newTestServer(t, func(ctx *gin.Context) {})
		url := srv.URL + "/api/result"
		srv.Close()

		_, err := newTestClient(t, url).Send(context.Background(), submission)
		assert.ErrorIs(t, err, dmn.ErrSubmissionFailed)
	})
}

func TestNew(t *testing.T) {
	l, err := logger.New("CLIENT", config.ColorBlue, io.Discard)
	require.NoError(t, err)

	_, err = New(Config{Logger: l})
	assert.Error(t, err)

	_, err = New(Config{URL: "http://localhost:9000/api/result"})
	assert.Error(t, err)
}
