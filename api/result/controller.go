package resultapi

import (
	"errors"
	"net/http"
	"strconv"

	dmn "github.com/beka-birhanu/vinom-grid/domain"
	"github.com/beka-birhanu/vinom-grid/service"
	"github.com/beka-birhanu/vinom-grid/service/i"
	"github.com/gin-gonic/gin"
)

// ResultController handles result submissions and listings.
type ResultController struct {
	recorder i.ResultRecorder
	logger   i.Logger
}

// NewResultController initializes a ResultController.
func NewResultController(r i.ResultRecorder, l i.Logger) (*ResultController, error) {
	if r == nil || l == nil {
		return nil, errors.New("result controller needs a recorder and a logger")
	}
	return &ResultController{
		recorder: r,
		logger:   l,
	}, nil
}

// RegisterPublic registers public routes.
func (rc *ResultController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/result", rc.submit)
	route.GET("/leaderboard", rc.leaderboard)
}

// RegisterProtected registers operator routes.
func (rc *ResultController) RegisterProtected(route *gin.RouterGroup) {
	route.GET("/results", rc.recent)
}

// submit records a finished grid session.
func (rc *ResultController) submit(ctx *gin.Context) {
	var request SubmitRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, MessageResponse{Message: "Ouch: " + err.Error()})
		return
	}

	message, err := rc.recorder.Record(ctx.Request.Context(), dmn.Submission{
		X:     request.X,
		Y:     request.Y,
		Steps: request.Steps,
		Email: request.Email,
	})
	if err != nil {
		var rejection *service.RejectionError
		switch {
		case errors.As(err, &rejection) && errors.Is(err, service.ErrForbiddenEmail):
			ctx.JSON(http.StatusForbidden, MessageResponse{Message: rejection.Message})
		case errors.As(err, &rejection):
			ctx.JSON(http.StatusUnprocessableEntity, MessageResponse{Message: rejection.Message})
		default:
			rc.logger.Error("recording result: " + err.Error())
			ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "error while recording result"})
		}
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: message})
}

// leaderboard lists the fewest steps per email.
func (rc *ResultController) leaderboard(ctx *gin.Context) {
	limit, ok := limitParam(ctx)
	if !ok {
		return
	}

	entries, err := rc.recorder.Leaderboard(ctx.Request.Context(), int64(limit))
	if err != nil {
		rc.logger.Error("reading leaderboard: " + err.Error())
		ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "error while reading leaderboard"})
		return
	}
	if entries == nil {
		entries = []dmn.LeaderboardEntry{}
	}
	ctx.JSON(http.StatusOK, entries)
}

// recent lists the latest stored results.
func (rc *ResultController) recent(ctx *gin.Context) {
	limit, ok := limitParam(ctx)
	if !ok {
		return
	}

	records, err := rc.recorder.Recent(ctx.Request.Context(), limit)
	if err != nil {
		rc.logger.Error("reading results: " + err.Error())
		ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "error while reading results"})
		return
	}
	if records == nil {
		records = []dmn.Record{}
	}
	ctx.JSON(http.StatusOK, records)
}

// limitParam reads ?limit=, writing a 400 when it is not a number.
func limitParam(ctx *gin.Context) (int, bool) {
	raw := ctx.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "limit must be a number"})
		return 0, false
	}
	return limit, true
}
