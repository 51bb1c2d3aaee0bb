package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MahmoudAkram21/um-qura/internal/http/middleware"
	"github.com/MahmoudAkram21/um-qura/internal/model"
)

// APIError carries an HTTP status code and a client-facing message.
type APIError struct {
	Code    int
	Message string
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type HandlerFuncWithAuth func(ctx *gin.Context, admin *model.Admin) (any, *APIError)
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		admin, ok := middleware.GetCurrentAdmin(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, Response{Status: false, Message: "unauthorized"})
			return
		}

		result, apiErr := h(ctx, admin)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, Response{Status: false, Message: apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, Response{Status: true, Message: "ok", Data: result})
	}
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, Response{Status: false, Message: apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, Response{Status: true, Message: "ok", Data: result})
	}
}
