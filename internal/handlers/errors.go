package handlers

import (
	"errors"
	"net/http"

	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"
	"github.com/agatodfddd/luxora-store/internal/services"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service failures to HTTP responses. Business
// rejections keep their reason code; transition conflicts are 409, other
// rule failures 422, missing records 404, everything else a logged 500.
func respondServiceError(c *gin.Context, log *logger.Logger, err error, resource string) {
	if domainErr, ok := services.AsDomainError(err); ok {
		status := http.StatusUnprocessableEntity
		if domainErr.Code == utils.CodeInvalidTransition {
			status = http.StatusConflict
		}
		utils.ErrorResponse(c, status, domainErr.Code, domainErr.Message)
		return
	}

	if errors.Is(err, interfaces.ErrNotFound) {
		utils.NotFoundResponse(c, resource)
		return
	}

	log.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
	utils.InternalServerErrorResponse(c)
}
