package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/rivo/uniseg"

	"github.com/carson-networks/track-server/internal/operator/actions"
	"github.com/carson-networks/track-server/internal/storage"
	"github.com/carson-networks/track-server/internal/storage/sqlconfig"
)

const (
	defaultLimit   = 20
	maxTitleLength = 15
)

// TrackService handles track business logic. Reads go to storage directly;
// writes are queued through the processor.
type TrackService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewTrackService creates a new TrackService.
func NewTrackService(store *storage.Storage, processor ActionProcessor) *TrackService {
	return &TrackService{storage: store, processor: processor}
}

// CreateTrack persists a new track and returns its ID.
func (s *TrackService) CreateTrack(ctx context.Context, track Track) (uuid.UUID, error) {
	if err := validateTrack(track); err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, &PersistenceError{Op: "generate track id", Err: err}
	}

	action := &actions.CreateTrack{
		ID:       id,
		Title:    strings.TrimSpace(track.Title),
		Amount:   track.Amount,
		Category: track.Category.String(),
		Date:     track.Date,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, &PersistenceError{Op: "create track", Err: err}
	}
	return action.ID, nil
}

// UpdateTrack overwrites every mutable field of the track with the given ID.
func (s *TrackService) UpdateTrack(ctx context.Context, id uuid.UUID, track Track) error {
	if err := validateTrack(track); err != nil {
		return err
	}

	err := s.processor.Process(ctx, &actions.UpdateTrack{
		ID:       id,
		Title:    strings.TrimSpace(track.Title),
		Amount:   track.Amount,
		Category: track.Category.String(),
		Date:     track.Date,
	})
	return translateError("update track", id, err)
}

// DeleteTrack removes a track. Deleting an unknown ID succeeds.
func (s *TrackService) DeleteTrack(ctx context.Context, id uuid.UUID) error {
	err := s.processor.Process(ctx, &actions.DeleteTrack{ID: id})
	return translateError("delete track", id, err)
}

// GetTrack returns one track by ID.
func (s *TrackService) GetTrack(ctx context.Context, id uuid.UUID) (Track, error) {
	row, err := s.storage.Tracks.FindByID(ctx, id)
	if err != nil {
		return Track{}, translateError("get track", id, err)
	}
	return trackFromStorage(row), nil
}

// ListAll returns every track in insertion order.
func (s *TrackService) ListAll(ctx context.Context) ([]Track, error) {
	rows, err := s.storage.Tracks.List(ctx, nil)
	if err != nil {
		return nil, &PersistenceError{Op: "list tracks", Err: err}
	}

	tracks := make([]Track, len(rows))
	for i, row := range rows {
		tracks[i] = trackFromStorage(row)
	}
	return tracks, nil
}

// ListTracks returns a page of tracks in insertion order using
// offset-based cursors.
func (s *TrackService) ListTracks(ctx context.Context, cursor *TrackCursor) ([]Track, *TrackCursor, error) {
	limit := defaultLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}
	if offset < 0 {
		return nil, nil, &ValidationError{Field: "position", Reason: "must not be negative"}
	}

	rows, err := s.storage.Tracks.List(ctx, &sqlconfig.TrackFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, &PersistenceError{Op: "list tracks", Err: err}
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TrackCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &TrackCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	tracks := make([]Track, len(rows))
	for i, row := range rows {
		tracks[i] = trackFromStorage(row)
	}
	return tracks, nextCursor, nil
}

func validateTrack(track Track) error {
	title := strings.TrimSpace(track.Title)
	if title == "" {
		return &ValidationError{Field: "title", Reason: "must be filled"}
	}
	if uniseg.GraphemeClusterCount(title) > maxTitleLength {
		return &ValidationError{Field: "title", Reason: "must be at most 15 characters"}
	}
	if !track.Category.Valid() {
		return &ValidationError{Field: "category", Reason: "is not a known category"}
	}
	return nil
}

func translateError(op string, id uuid.UUID, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sqlconfig.ErrTrackNotFound) {
		return &NotFoundError{ID: id}
	}
	return &PersistenceError{Op: op, Err: err}
}
