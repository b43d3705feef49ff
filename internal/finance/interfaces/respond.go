package interfaces

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

type RespondJSONFunc func(w http.ResponseWriter, status int, payload interface{})
type RespondErrorFunc func(w http.ResponseWriter, status int, message string)

// handleServiceError maps the error taxonomy to HTTP statuses. Persistence
// failures are logged with full detail and answered with a generic message.
func handleServiceError(respondError RespondErrorFunc, w http.ResponseWriter, err error, fallback string) {
	if financeErrors.IsValidationError(err) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, financeErrors.ErrInvalidCategory) {
		respondError(w, http.StatusForbidden, err.Error())
		return
	}
	if errors.Is(err, financeErrors.ErrNotFound) {
		respondError(w, http.StatusNotFound, financeErrors.ErrNotFound.Error())
		return
	}
	log.Printf("%s: %v", fallback, err)
	respondError(w, http.StatusInternalServerError, fallback)
}

// monthYearFromQuery reads ?month=1..12&year=; both default to the current
// UTC month.
func monthYearFromQuery(r *http.Request) (time.Month, int, error) {
	now := time.Now().UTC()
	month := now.Month()
	year := now.Year()

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, financeErrors.NewValidationError("Invalid month value")
		}
		month = time.Month(m)
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 1 {
			return 0, 0, financeErrors.NewValidationError("Invalid year value")
		}
		year = y
	}
	return month, year, nil
}
