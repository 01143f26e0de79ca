package track

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/track-server/internal/logging"
	"github.com/carson-networks/track-server/internal/service"
)

// ListTracksCursor represents a pagination cursor in request and response bodies.
type ListTracksCursor struct {
	Position int `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit    int `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
}

// ListTracksBody is the request body for listing tracks.
type ListTracksBody struct {
	Cursor *ListTracksCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTracksInput is the Huma input for listing tracks.
type ListTracksInput struct {
	Body ListTracksBody
}

// ListTracksResponseBody is the response body for listing tracks.
type ListTracksResponseBody struct {
	Tracks     []Track           `json:"tracks" doc:"Page of tracks in insertion order"`
	NextCursor *ListTracksCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTracksOutput is the Huma output for listing tracks.
type ListTracksOutput struct {
	Body ListTracksResponseBody
}

type trackLister interface {
	ListTracks(ctx context.Context, cursor *service.TrackCursor) ([]service.Track, *service.TrackCursor, error)
}

// ListTracksHandler handles POST /v1/track/list.
type ListTracksHandler struct {
	TrackService trackLister
}

// NewListTracksHandler creates a new ListTracksHandler.
func NewListTracksHandler(svc trackLister) *ListTracksHandler {
	return &ListTracksHandler{TrackService: svc}
}

// Register registers the list tracks endpoint with the Huma API.
func (h *ListTracksHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-tracks",
		Method:      http.MethodPost,
		Path:        "/v1/track/list",
		Summary:     "List tracks",
		Description: "Returns a paginated list of tracks in insertion order.",
		Tags:        []string{"Tracks"},
	}, h.handle)
}

// parseListTracksInput parses and validates the API input.
// Without a cursor, the service uses its default limit.
func parseListTracksInput(input *ListTracksInput) (*service.TrackCursor, error) {
	if input.Body.Cursor == nil {
		return nil, nil
	}

	if input.Body.Cursor.Position < 0 {
		return nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	return &service.TrackCursor{
		Position: input.Body.Cursor.Position,
		Limit:    input.Body.Cursor.Limit,
	}, nil
}

func (h *ListTracksHandler) handle(ctx context.Context, input *ListTracksInput) (*ListTracksOutput, error) {
	logData := logging.GetLogData(ctx)
	requestCursor, err := parseListTracksInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTracksMs")
	}
	tracks, nextCursor, err := h.TrackService.ListTracks(ctx, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError("failed to list tracks", err)
	}

	if logData != nil {
		logData.AddData("trackCount", len(tracks))
	}

	resp := ListTracksResponseBody{
		Tracks: make([]Track, len(tracks)),
	}
	for i, t := range tracks {
		resp.Tracks[i] = trackFromService(t)
	}

	if nextCursor != nil {
		resp.NextCursor = &ListTracksCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListTracksOutput{Body: resp}, nil
}
