package v1

import (
	"errors"
	"net/http"

	"github.com/centsible/backend/internal/budgeting"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"gorm.io/gorm"
)

type httpError struct {
	Error string `json:"error" example:"there is no budget for this month"`
}

var (
	errUserIDRequired     = errors.New("the X-User-ID header must be set to a valid UUID")
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errCopyModeInvalid    = errors.New("the mode must be 'copy'")
)

// badRequest are the errors callers can fix themselves.
var badRequest = []error{
	budgeting.ErrMonthInvalid,
	httputil.ErrInvalidBody,
	httputil.ErrRequestBodyEmpty,
	models.ErrAccountTypeInvalid,
	models.ErrTransactionTypeInvalid,
	models.ErrGoalTypeInvalid,
	models.ErrBudgetExists,
	errMonthNotSetInQuery,
	errCopyModeInvalid,
}

// status returns the HTTP status for an error. Reads are idempotent,
// nothing is retried here; the caller owns retry policy.
func status(err error) int {
	if errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, budgeting.ErrNoBudget) ||
		errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	for _, e := range badRequest {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}
