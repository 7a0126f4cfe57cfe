package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/finara-labs/finara-backend/internal/api/shared/dto"
	apierrors "github.com/finara-labs/finara-backend/internal/api/shared/errors"
	"github.com/finara-labs/finara-backend/internal/logger"
)

// respondOK wraps data in the success envelope
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.Response{Success: true, Data: data})
}

// respondOKWithMessage wraps data in the success envelope with a message
func respondOKWithMessage(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, dto.Response{Success: true, Data: data, Message: message})
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message))
}

// respondError maps err to its status and failure envelope. Server errors are logged.
func respondError(c *gin.Context, err error) {
	apiErr := apierrors.FromError(err)
	if apiErr.Status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)
	}
	_ = c.Error(err)
	c.JSON(apiErr.Status, apiErr)
}
