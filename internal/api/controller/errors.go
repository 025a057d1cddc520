package controller

import (
	"ctchen222/three-in-a-row/internal/api/apperror"
	"ctchen222/three-in-a-row/internal/api/response"
	"ctchen222/three-in-a-row/internal/game"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusOf maps service errors onto HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNotYourTurn), errors.Is(err, apperror.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrMatchFinished),
		errors.Is(err, game.ErrInvalidSize):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrMatchNotFound),
		errors.Is(err, apperror.ErrDeviceNotFound),
		errors.Is(err, apperror.ErrNotWaiting):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an error envelope. Internal errors are logged and
// hidden from the caller.
func fail(c *gin.Context, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "Request failed", "http.path", c.FullPath(), "error", err)
		response.ErrorResponse(c, code, http.StatusText(code))
		return
	}
	response.ErrorResponse(c, code, err.Error())
}
