package track

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/track-server/internal/service"
)

// Track is the API response model for a track.
// It is used only for responses, not for request bodies.
type Track struct {
	ID        string `json:"id" doc:"Track UUID"`
	Title     string `json:"title" doc:"Short title"`
	Amount    string `json:"amount" doc:"Decimal amount with a '.' separator"`
	Category  string `json:"category" doc:"Track category"`
	Date      string `json:"date,omitempty" doc:"RFC3339 date, absent when no date was recorded"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func trackFromService(t service.Track) Track {
	out := Track{
		ID:        t.ID.String(),
		Title:     t.Title,
		Amount:    t.Amount.StringFixed(2),
		Category:  t.Category.String(),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if t.Date != nil {
		out.Date = t.Date.Format(time.RFC3339)
	}
	return out
}

// serviceError maps a service error onto an HTTP status.
func serviceError(msg string, err error) error {
	var validationErr *service.ValidationError
	var parseErr *service.ParseError
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return huma.NewError(http.StatusBadRequest, msg, err)
	case errors.As(err, &parseErr):
		return huma.NewError(http.StatusBadRequest, msg, err)
	case errors.As(err, &notFoundErr):
		return huma.NewError(http.StatusNotFound, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}
	return date, nil
}
