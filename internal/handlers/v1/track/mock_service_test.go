package track

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/track-server/internal/form"
	"github.com/carson-networks/track-server/internal/service"
)

// mockTrackService is a testify mock covering every track handler interface.
type mockTrackService struct {
	mock.Mock
}

func (m *mockTrackService) CreateTrack(ctx context.Context, track service.Track) (uuid.UUID, error) {
	args := m.Called(ctx, track)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTrackService) GetTrack(ctx context.Context, id uuid.UUID) (service.Track, error) {
	args := m.Called(ctx, id)
	track, _ := args.Get(0).(service.Track)
	return track, args.Error(1)
}

func (m *mockTrackService) UpdateTrack(ctx context.Context, id uuid.UUID, track service.Track) error {
	args := m.Called(ctx, id, track)
	return args.Error(0)
}

func (m *mockTrackService) DeleteTrack(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTrackService) ListTracks(ctx context.Context, cursor *service.TrackCursor) ([]service.Track, *service.TrackCursor, error) {
	args := m.Called(ctx, cursor)
	tracks, _ := args.Get(0).([]service.Track)
	next, _ := args.Get(1).(*service.TrackCursor)
	return tracks, next, args.Error(2)
}

func testValidator() *form.AmountValidator {
	return form.NewAmountValidator('.')
}
