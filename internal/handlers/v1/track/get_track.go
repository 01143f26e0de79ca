package track

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/track-server/internal/service"
)

// TrackIDInput identifies a track in the request path.
type TrackIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Track UUID"`
}

// GetTrackOutput is the Huma output for fetching a track.
type GetTrackOutput struct {
	Body Track
}

type trackGetter interface {
	GetTrack(ctx context.Context, id uuid.UUID) (service.Track, error)
}

// GetTrackHandler handles GET /v1/track/{id}.
type GetTrackHandler struct {
	TrackService trackGetter
}

// NewGetTrackHandler creates a new GetTrackHandler.
func NewGetTrackHandler(svc trackGetter) *GetTrackHandler {
	return &GetTrackHandler{TrackService: svc}
}

// Register registers the get track endpoint with the Huma API.
func (h *GetTrackHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-track",
		Method:      http.MethodGet,
		Path:        "/v1/track/{id}",
		Summary:     "Get track",
		Tags:        []string{"Tracks"},
	}, h.handle)
}

func parseTrackID(value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	return id, nil
}

func (h *GetTrackHandler) handle(ctx context.Context, input *TrackIDInput) (*GetTrackOutput, error) {
	id, err := parseTrackID(input.ID)
	if err != nil {
		return nil, err
	}

	track, err := h.TrackService.GetTrack(ctx, id)
	if err != nil {
		return nil, serviceError("failed to get track", err)
	}
	return &GetTrackOutput{Body: trackFromService(track)}, nil
}
