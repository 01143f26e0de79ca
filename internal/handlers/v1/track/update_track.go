package track

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/track-server/internal/form"
	"github.com/carson-networks/track-server/internal/logging"
	"github.com/carson-networks/track-server/internal/service"
)

// UpdateTrackBody lists the fields to change. Omitted fields keep their
// stored value.
type UpdateTrackBody struct {
	Title     *string `json:"title,omitempty" minLength:"1" doc:"New title, cut to 15 characters"`
	Amount    *string `json:"amount,omitempty" doc:"New amount using the server locale's decimal separator"`
	Category  *string `json:"category,omitempty" enum:"Personal,Hobby,Transport,Food,Insurance,Savings" doc:"New category"`
	Date      *string `json:"date,omitempty" format:"date-time" doc:"New RFC3339 date"`
	ClearDate bool    `json:"clearDate,omitempty" doc:"Remove the stored date"`
}

// UpdateTrackInput is the Huma input for updating a track.
type UpdateTrackInput struct {
	ID   string `path:"id" format:"uuid" doc:"Track UUID"`
	Body UpdateTrackBody
}

// UpdateTrackOutput is the Huma output for updating a track.
type UpdateTrackOutput struct {
	Body Track
}

type trackUpdater interface {
	GetTrack(ctx context.Context, id uuid.UUID) (service.Track, error)
	UpdateTrack(ctx context.Context, id uuid.UUID, track service.Track) error
}

// UpdateTrackHandler handles PATCH /v1/track/{id}.
type UpdateTrackHandler struct {
	TrackService trackUpdater
	Validator    *form.AmountValidator
}

// NewUpdateTrackHandler creates a new UpdateTrackHandler.
func NewUpdateTrackHandler(svc trackUpdater, validator *form.AmountValidator) *UpdateTrackHandler {
	return &UpdateTrackHandler{TrackService: svc, Validator: validator}
}

// Register registers the update track endpoint with the Huma API.
func (h *UpdateTrackHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-track",
		Method:      http.MethodPatch,
		Path:        "/v1/track/{id}",
		Summary:     "Update track",
		Description: "Applies the given fields over the stored track.",
		Tags:        []string{"Tracks"},
	}, h.handle)
}

// applyUpdate types the requested changes into a form already seeded from
// the stored track.
func applyUpdate(f *form.FormState, body UpdateTrackBody) error {
	if body.Title != nil {
		f.SetTitle("")
		f.EnterTitle(*body.Title)
	}
	if body.Amount != nil {
		f.TypeAmount("")
		if !f.EnterAmount(*body.Amount) {
			return huma.NewError(http.StatusBadRequest, "invalid amount")
		}
	}
	if body.Category != nil {
		category, ok := service.ParseCategory(*body.Category)
		if !ok {
			return huma.NewError(http.StatusBadRequest, "invalid category")
		}
		f.SetCategory(category)
	}
	if body.ClearDate && body.Date != nil {
		return huma.NewError(http.StatusBadRequest, "date and clearDate are mutually exclusive")
	}
	if body.Date != nil {
		date, err := parseDate(*body.Date)
		if err != nil {
			return err
		}
		f.SetDate(date)
		f.SetDateEnabled(true)
	}
	if body.ClearDate {
		f.SetDateEnabled(false)
	}
	return nil
}

func (h *UpdateTrackHandler) handle(ctx context.Context, input *UpdateTrackInput) (*UpdateTrackOutput, error) {
	id, err := parseTrackID(input.ID)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	existing, err := h.timedStore(logData, func() (service.Track, error) {
		return h.TrackService.GetTrack(ctx, id)
	})
	if err != nil {
		return nil, serviceError("failed to load track", err)
	}

	f := form.NewFormState(h.Validator, existing.Category)
	f.LoadFrom(existing)
	if err := applyUpdate(f, input.Body); err != nil {
		return nil, err
	}

	var updated service.Track
	err = f.Submit(ctx, func(ctx context.Context, track service.Track) error {
		updated = track
		_, err := h.timedStore(logData, func() (service.Track, error) {
			return track, h.TrackService.UpdateTrack(ctx, id, track)
		})
		return err
	})
	if err != nil {
		return nil, serviceError("failed to update track", err)
	}

	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	return &UpdateTrackOutput{Body: trackFromService(updated)}, nil
}

// timedStore runs call and adds its duration to the request's trackStoreMs.
func (h *UpdateTrackHandler) timedStore(logData *logging.LogData, call func() (service.Track, error)) (service.Track, error) {
	if logData != nil {
		defer logData.AddToExistingTiming("trackStoreMs")()
	}
	return call()
}
