package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gob-digital/app-rut/internal/config"
	"github.com/gob-digital/app-rut/internal/observability"
	"github.com/gob-digital/app-rut/internal/rut"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrorResponse is the body returned for request-level failures
type ErrorResponse struct {
	Error string `json:"error"`
}

// RUTValidationRequest carries the RUT to be validated
type RUTValidationRequest struct {
	// RUT in any accepted shape: "12345678-5", "12.345.678-5", "123456785"
	RUT string `json:"rut" binding:"required"`
}

// RUTValidationResponse is the result of a validation
type RUTValidationResponse struct {
	// Whether the RUT is valid
	Valid bool `json:"valid"`
	// Human readable result message
	Message string `json:"message"`
	// Machine readable failure kind, empty when valid
	ErrorKind string `json:"error_kind,omitempty"`
	// Numeric part, present when the input could be decomposed
	Number int `json:"number,omitempty"`
	// Check character carried by the input
	CheckDigit string `json:"check_digit,omitempty"`
	// Compact rendering ("12345678-5")
	Formatted string `json:"formatted,omitempty"`
	// Grouped rendering ("12.345.678-5")
	FormattedGrouped string `json:"formatted_grouped,omitempty"`
}

// RUTFormatRequest carries either a RUT string or a bare number
type RUTFormatRequest struct {
	// RUT string in any accepted shape; its check character is kept as-is
	RUT string `json:"rut,omitempty"`
	// Bare numeric part; the check character is computed
	Number *int `json:"number,omitempty"`
}

// RUTFormatResponse carries both canonical renderings
type RUTFormatResponse struct {
	Formatted        string `json:"formatted"`
	FormattedGrouped string `json:"formatted_grouped"`
}

// CheckDigitResponse carries a computed check character
type CheckDigitResponse struct {
	Number     int    `json:"number"`
	CheckDigit string `json:"check_digit"`
	// Number and check character concatenated without separators
	Full string `json:"full"`
}

// DecomposeResponse carries a decomposed RUT, without validation
type DecomposeResponse struct {
	Number     int    `json:"number"`
	CheckDigit string `json:"check_digit"`
}

// errorKind maps a rut validation error to its wire discriminator.
func errorKind(err error) string {
	var (
		belowErr    *rut.BelowMinimumError
		aboveErr    *rut.AboveMaximumError
		formatErr   *rut.CheckDigitFormatError
		checksumErr *rut.ChecksumError
		invalidErr  *rut.InvalidInputError
	)
	switch {
	case errors.As(err, &belowErr):
		return "below_minimum"
	case errors.As(err, &aboveErr):
		return "above_maximum"
	case errors.As(err, &formatErr):
		return "invalid_check_digit_format"
	case errors.As(err, &checksumErr):
		return "checksum_mismatch"
	case errors.As(err, &invalidErr):
		return "invalid_input"
	default:
		return "unknown"
	}
}

// ValidateRUT godoc
// @Summary Validate a RUT
// @Description Checks decomposition, numeric range and check digit. Invalid RUTs return 200 with valid=false and a descriptive message.
// @Tags rut
// @Accept json
// @Produce json
// @Param data body RUTValidationRequest true "RUT to validate"
// @Success 200 {object} RUTValidationResponse
// @Failure 400 {object} ErrorResponse
// @Router /rut/validate [post]
func ValidateRUT(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "ValidateRUT")
	defer span.End()

	var req RUTValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "field rut is required"})
		return
	}

	logger := observability.Logger().With(zap.String("rut", observability.MaskRUT(req.RUT)))
	span.SetAttributes(
		attribute.String("operation", "validate_rut"),
		attribute.String("rut", observability.MaskRUT(req.RUT)),
	)

	if err := rut.ValidateRange(req.RUT, config.AppConfig.RutMinNumber, config.AppConfig.RutMaxNumber); err != nil {
		kind := errorKind(err)
		observability.Validations.WithLabelValues(kind).Inc()
		span.SetAttributes(attribute.String("validation.error_kind", kind))
		logger.Info("rut rejected", zap.String("error_kind", kind))

		resp := RUTValidationResponse{
			Valid:     false,
			Message:   err.Error(),
			ErrorKind: kind,
		}
		// Range and checksum failures still decompose; invalid input does not.
		if number, dv, derr := rut.Decompose(req.RUT); derr == nil {
			resp.Number = number
			resp.CheckDigit = dv
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	observability.Validations.WithLabelValues("valid").Inc()
	logger.Info("rut validated")

	number, dv, _ := rut.Decompose(req.RUT)
	formatted, _ := rut.Format(req.RUT)
	grouped, _ := rut.FormatGrouped(req.RUT)

	c.JSON(http.StatusOK, RUTValidationResponse{
		Valid:            true,
		Message:          "rut is valid",
		Number:           number,
		CheckDigit:       dv,
		Formatted:        formatted,
		FormattedGrouped: grouped,
	})
}

// FormatRUT godoc
// @Summary Format a RUT
// @Description Renders a RUT in compact and grouped form. Accepts either a string (check digit preserved, never corrected) or a bare number (check digit computed). No validation is performed.
// @Tags rut
// @Accept json
// @Produce json
// @Param data body RUTFormatRequest true "RUT string or bare number"
// @Success 200 {object} RUTFormatResponse
// @Failure 400 {object} ErrorResponse
// @Router /rut/format [post]
func FormatRUT(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "FormatRUT")
	defer span.End()

	var req RUTFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must be valid JSON"})
		return
	}

	var input any
	switch {
	case req.RUT != "" && req.Number != nil:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "provide either rut or number, not both"})
		return
	case req.RUT != "":
		input = req.RUT
		observability.Formats.WithLabelValues("string").Inc()
	case req.Number != nil:
		input = *req.Number
		observability.Formats.WithLabelValues("number").Inc()
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "provide either rut or number"})
		return
	}

	formatted, err := rut.Format(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	grouped, err := rut.FormatGrouped(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	span.SetAttributes(attribute.String("operation", "format_rut"))
	c.JSON(http.StatusOK, RUTFormatResponse{
		Formatted:        formatted,
		FormattedGrouped: grouped,
	})
}

// GetCheckDigit godoc
// @Summary Compute the check digit for a number
// @Description Computes the modulo-11 check character for a bare RUT number.
// @Tags rut
// @Produce json
// @Param number path int true "Numeric part of the RUT"
// @Success 200 {object} CheckDigitResponse
// @Failure 400 {object} ErrorResponse
// @Router /rut/check-digit/{number} [get]
func GetCheckDigit(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "GetCheckDigit")
	defer span.End()

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "number must be an integer"})
		return
	}

	dv, err := rut.CheckDigit(number)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	full, err := rut.AppendCheckDigit(number)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	observability.CheckDigits.Inc()
	span.SetAttributes(attribute.Int("rut.number", number))

	c.JSON(http.StatusOK, CheckDigitResponse{
		Number:     number,
		CheckDigit: dv,
		Full:       full,
	})
}

// DecomposeRUT godoc
// @Summary Decompose a RUT
// @Description Splits a RUT into number and check character without any validation; a wrong check character is returned as-is.
// @Tags rut
// @Produce json
// @Param rut path string true "RUT in any accepted shape"
// @Success 200 {object} DecomposeResponse
// @Failure 400 {object} ErrorResponse
// @Router /rut/decompose/{rut} [get]
func DecomposeRUT(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "DecomposeRUT")
	defer span.End()

	number, dv, err := rut.Decompose(c.Param("rut"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	span.SetAttributes(attribute.Int("rut.number", number))
	c.JSON(http.StatusOK, DecomposeResponse{
		Number:     number,
		CheckDigit: dv,
	})
}
