package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/sirupsen/logrus"
)

// respondError переводит доменные ошибки в HTTP-статусы
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var (
		validationErr *models.ValidationError
		notFoundErr   *models.NotFoundError
		stateErr      *models.InvalidStateError
		writeErr      *models.StorageWriteError
	)
	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: validationErr.Fields})
	case errors.As(err, &notFoundErr):
		log.WithError(err).Warn("Record not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundErr.Entity + " not found"})
	case errors.As(err, &stateErr):
		log.WithError(err).Warn("Invalid state transition")
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.As(err, &writeErr):
		log.WithError(err).Error("Storage write failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "storage unavailable, change was not saved"})
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
