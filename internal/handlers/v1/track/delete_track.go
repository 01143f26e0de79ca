package track

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

type trackDeleter interface {
	DeleteTrack(ctx context.Context, id uuid.UUID) error
}

// DeleteTrackHandler handles DELETE /v1/track/{id}.
type DeleteTrackHandler struct {
	TrackService trackDeleter
}

// NewDeleteTrackHandler creates a new DeleteTrackHandler.
func NewDeleteTrackHandler(svc trackDeleter) *DeleteTrackHandler {
	return &DeleteTrackHandler{TrackService: svc}
}

// Register registers the delete track endpoint with the Huma API.
func (h *DeleteTrackHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-track",
		Method:        http.MethodDelete,
		Path:          "/v1/track/{id}",
		Summary:       "Delete track",
		Description:   "Deletes a track. Deleting an unknown track succeeds.",
		Tags:          []string{"Tracks"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTrackHandler) handle(ctx context.Context, input *TrackIDInput) (*struct{}, error) {
	id, err := parseTrackID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.TrackService.DeleteTrack(ctx, id); err != nil {
		return nil, serviceError("failed to delete track", err)
	}
	return &struct{}{}, nil
}
