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

// CreateTrackBody is the request body for creating a track.
type CreateTrackBody struct {
	Title    string `json:"title" required:"true" minLength:"1" doc:"Short title, cut to 15 characters"`
	Amount   string `json:"amount" required:"true" doc:"Amount using the server locale's decimal separator, at most two decimals"`
	Category string `json:"category" required:"true" enum:"Personal,Hobby,Transport,Food,Insurance,Savings" doc:"Track category"`
	Date     string `json:"date,omitempty" format:"date-time" doc:"Optional RFC3339 date"`
}

// CreateTrackInput is the Huma input for creating a track.
type CreateTrackInput struct {
	Body CreateTrackBody
}

// CreateTrackResponse is the response body for a created track.
type CreateTrackResponse struct {
	ID string `json:"id" doc:"New track UUID"`
}

// CreateTrackOutput is the Huma output for creating a track.
type CreateTrackOutput struct {
	Status int
	Body   CreateTrackResponse
}

type trackCreator interface {
	CreateTrack(ctx context.Context, track service.Track) (uuid.UUID, error)
}

// CreateTrackHandler handles POST /v1/track.
type CreateTrackHandler struct {
	TrackService trackCreator
	Validator    *form.AmountValidator
}

// NewCreateTrackHandler creates a new CreateTrackHandler.
func NewCreateTrackHandler(svc trackCreator, validator *form.AmountValidator) *CreateTrackHandler {
	return &CreateTrackHandler{TrackService: svc, Validator: validator}
}

// Register registers the create track endpoint with the Huma API.
func (h *CreateTrackHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-track",
		Method:      http.MethodPost,
		Path:        "/v1/track",
		Summary:     "Create track",
		Description: "Creates a new track.",
		Tags:        []string{"Tracks"},
	}, h.handle)
}

// parseCreateTrackInput replays the body through a fresh form as if it had
// been typed, so the API accepts exactly what the form accepts.
func parseCreateTrackInput(validator *form.AmountValidator, input *CreateTrackInput) (*form.FormState, error) {
	category, ok := service.ParseCategory(input.Body.Category)
	if !ok {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category")
	}

	f := form.NewFormState(validator, category)
	f.EnterTitle(input.Body.Title)
	if !f.EnterAmount(input.Body.Amount) {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount")
	}

	if input.Body.Date != "" {
		date, err := parseDate(input.Body.Date)
		if err != nil {
			return nil, err
		}
		f.SetDate(date)
		f.SetDateEnabled(true)
	}
	return f, nil
}

func (h *CreateTrackHandler) handle(ctx context.Context, input *CreateTrackInput) (*CreateTrackOutput, error) {
	f, err := parseCreateTrackInput(h.Validator, input)
	if err != nil {
		return nil, err
	}

	var id uuid.UUID
	err = f.Submit(ctx, func(ctx context.Context, track service.Track) error {
		if logData := logging.GetLogData(ctx); logData != nil {
			defer logData.AddTiming("createTrackMs")()
		}
		var createErr error
		id, createErr = h.TrackService.CreateTrack(ctx, track)
		return createErr
	})
	if err != nil {
		return nil, serviceError("failed to create track", err)
	}

	return &CreateTrackOutput{
		Status: http.StatusCreated,
		Body:   CreateTrackResponse{ID: id.String()},
	}, nil
}
