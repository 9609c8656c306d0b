package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	apierrors "github.com/kizunaworks/backoffice/pkg/api/errors"
	"github.com/kizunaworks/backoffice/pkg/export"
	"github.com/kizunaworks/backoffice/pkg/metrics"
	"github.com/kizunaworks/backoffice/pkg/models"
	"github.com/labstack/echo/v4"
)

// ExportHandler handles contact ledger export endpoints
type ExportHandler struct {
	service   *export.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewExportHandler creates a new export handler. metrics may be nil.
func NewExportHandler(service *export.Service, m *metrics.Metrics) *ExportHandler {
	return &ExportHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// CreateExport godoc
// @Summary Export contact ledger rows
// @Description Write the ledger rows for a date window to an XLSX or CSV file
// @Tags Export
// @Accept json
// @Produce json
// @Param request body models.ExportRequest true "Export window and format"
// @Success 200 {object} models.ExportResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/exports [post]
func (h *ExportHandler) CreateExport(c echo.Context) error {
	var req models.ExportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Minute)
	defer cancel()

	resp, err := h.service.CreateExport(ctx, req)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordExportCreated()
	}

	return c.JSON(http.StatusOK, resp)
}
