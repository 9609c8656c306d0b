package handlers

import (
	"net/http"

	"github.com/kizunaworks/backoffice/pkg/models"
	"github.com/kizunaworks/backoffice/pkg/phone"
	"github.com/labstack/echo/v4"
)

// PhoneHandler handles phone inspection endpoints.
type PhoneHandler struct{}

// NewPhoneHandler creates a new phone handler.
func NewPhoneHandler() *PhoneHandler {
	return &PhoneHandler{}
}

// InspectPhoneRequest represents a phone inspection request.
type InspectPhoneRequest struct {
	Phone  string `json:"phone" validate:"required"`
	Region string `json:"region,omitempty"` // Optional, defaults to JP
}

// InspectPhone godoc
// @Summary Inspect a phone number
// @Description Return the digits-only ledger matching key alongside the libphonenumber view of a raw phone string
// @Tags Phone
// @Accept json
// @Produce json
// @Param request body InspectPhoneRequest true "Phone inspection request"
// @Success 200 {object} phone.Inspection
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/phone/inspect [post]
func (h *PhoneHandler) InspectPhone(c echo.Context) error {
	var req InspectPhoneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if req.Phone == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Phone number is required",
		})
	}

	result, err := phone.Inspect(req.Phone, req.Region)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, result)
}

// NormalizePhoneResponse represents a phone normalization response.
type NormalizePhoneResponse struct {
	Original string `json:"original"`
	Digits   string `json:"digits"`
}

// NormalizePhone godoc
// @Summary Reduce a phone number to its digits-only matching key
// @Description Strip every non-digit character, producing the key the sync engine matches ledger rows on
// @Tags Phone
// @Accept json
// @Produce json
// @Param request body InspectPhoneRequest true "Phone normalization request"
// @Success 200 {object} NormalizePhoneResponse
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/phone/normalize [post]
func (h *PhoneHandler) NormalizePhone(c echo.Context) error {
	var req InspectPhoneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if req.Phone == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "Phone number is required",
		})
	}

	return c.JSON(http.StatusOK, NormalizePhoneResponse{
		Original: req.Phone,
		Digits:   phone.NormalizeDigits(req.Phone),
	})
}
