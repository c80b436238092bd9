package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/service"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/util"
)

// writeServiceError maps service-layer errors onto HTTP responses:
// validation -> 400, duplicate id -> 400, not found -> 404, anything else
// -> 500 with the detail kept server-side.
func writeServiceError(c *gin.Context, logger *logrus.Logger, err error, logMsg, clientMsg string) {
	switch {
	case service.IsValidation(err):
		util.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrDuplicateID):
		util.JSONError(c, http.StatusBadRequest, "Property ID already exists. Please choose a unique ID.")
	case errors.Is(err, service.ErrNotFound):
		util.JSONError(c, http.StatusNotFound, "Entry not found")
	default:
		logger.WithError(err).Error(logMsg)
		util.ServerError(c, clientMsg)
	}
}
