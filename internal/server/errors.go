package server

import (
	"errors"
	"net/http"

	leaddomain "github.com/flowmetriclabs/aproi/internal/lead/domain"
	scenariodomain "github.com/flowmetriclabs/aproi/internal/scenario/domain"
	"github.com/gin-gonic/gin"
)

// APIError is the stable error envelope returned to callers. Code is the
// machine-readable reason; Message is for humans. Internal errors are never
// echoed verbatim.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Code }

var (
	ErrInvalidRequest = &APIError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "request body could not be parsed"}
	ErrInternal       = &APIError{Status: http.StatusInternalServerError, Code: "internal_error", Message: "an internal error occurred"}
)

func invalidRequestError() *APIError { return ErrInvalidRequest }

func newValidationError(field, code, message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: code, Field: field, Message: message}
}

func newNotFoundError(code, message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: code, Message: message}
}

// domainErrors maps sentinel errors from the domain packages onto the
// caller-facing envelope.
var domainErrors = map[error]*APIError{
	scenariodomain.ErrInvalidScenarioName:       newValidationError("scenario_name", "invalid_scenario_name", "scenario_name must be non-empty"),
	scenariodomain.ErrInvalidInvoiceVolume:      newValidationError("monthly_invoice_volume", "invalid_monthly_invoice_volume", "monthly_invoice_volume must be greater than zero"),
	scenariodomain.ErrInvalidStaffCount:         newValidationError("num_ap_staff", "invalid_num_ap_staff", "num_ap_staff must be greater than zero"),
	scenariodomain.ErrInvalidHoursPerInvoice:    newValidationError("avg_hours_per_invoice", "invalid_avg_hours_per_invoice", "avg_hours_per_invoice must be greater than zero"),
	scenariodomain.ErrInvalidHourlyWage:         newValidationError("hourly_wage", "invalid_hourly_wage", "hourly_wage must be greater than zero"),
	scenariodomain.ErrInvalidErrorRate:          newValidationError("error_rate_manual", "invalid_error_rate_manual", "error_rate_manual must be between 0 and 100"),
	scenariodomain.ErrInvalidErrorCost:          newValidationError("error_cost", "invalid_error_cost", "error_cost must not be negative"),
	scenariodomain.ErrInvalidTimeHorizon:        newValidationError("time_horizon_months", "invalid_time_horizon_months", "time_horizon_months must be greater than zero"),
	scenariodomain.ErrInvalidImplementationCost: newValidationError("one_time_implementation_cost", "invalid_one_time_implementation_cost", "one_time_implementation_cost must not be negative"),
	scenariodomain.ErrInvalidID:                 newValidationError("scenario_id", "invalid_scenario_id", "scenario id is not valid"),
	scenariodomain.ErrNotFound:                  newNotFoundError("scenario_not_found", "scenario does not exist"),
	leaddomain.ErrInvalidEmail:                  newValidationError("email", "invalid_email", "email must look like local-part@domain"),
	leaddomain.ErrInvalidFormat:                 newValidationError("format", "invalid_export_format", "format must be csv or json"),
}

// AbortWithError writes the error envelope and stops the handler chain.
// Unrecognized errors become an opaque 500.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		for sentinel, mapped := range domainErrors {
			if errors.Is(err, sentinel) {
				apiErr = mapped
				break
			}
		}
	}
	if apiErr == nil {
		_ = c.Error(err)
		apiErr = ErrInternal
	}
	c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
}
