package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MahmoudAkram21/um-qura/internal/db"
	"github.com/MahmoudAkram21/um-qura/internal/http/api"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// pathID parses the numeric :id segment.
func pathID(ctx *gin.Context) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	return id, nil
}

// parsePagination reads page/limit query params, clamping to sane bounds.
func parsePagination(ctx *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(ctx.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func totalPages(total, limit int) int {
	return (total + limit - 1) / limit
}

// storeError maps db.ErrNotFound to 404 and everything else to a generic
// 500; driver detail goes to the log, never to the client.
func storeError(err error, notFoundMsg string) *api.APIError {
	if errors.Is(err, db.ErrNotFound) {
		return &api.APIError{Code: http.StatusNotFound, Message: notFoundMsg}
	}
	return internalError(err)
}

func internalError(err error) *api.APIError {
	log.Error().Err(err).Msg("store operation failed")
	return &api.APIError{Code: http.StatusInternalServerError, Message: "internal error"}
}
