package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/biztime/internal/apperrors"
	"github.com/SscSPs/biztime/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondWithError writes the error envelope for err. Client errors log at Warn,
// everything else at Error.
func respondWithError(c *gin.Context, logger *slog.Logger, err error) {
	appErr := apperrors.From(err)

	if appErr.IsClientError() {
		logger.Warn("Request failed", slog.Int("status", appErr.Code), slog.String("error", err.Error()))
	} else {
		logger.Error("Request failed", slog.Int("status", appErr.Code), slog.String("error", err.Error()))
	}

	c.AbortWithStatusJSON(appErr.Code, dto.NewErrorResponse(appErr.Code, appErr.Message))
}

// respondWithBindError reports a request body that failed to bind or validate.
func respondWithBindError(c *gin.Context, logger *slog.Logger, err error) {
	respondWithError(c, logger, apperrors.NewValidationFailedError(dto.ValidationMessage(err)))
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Not Found"))
}
