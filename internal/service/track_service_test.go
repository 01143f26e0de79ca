package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/track-server/internal/operator/actions"
	"github.com/carson-networks/track-server/internal/storage"
	"github.com/carson-networks/track-server/internal/storage/sqlconfig"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newTestService(t *testing.T) (*TrackService, *sqlconfig.MockITrackTable, *mockProcessor) {
	t.Helper()
	mockTable := sqlconfig.NewMockITrackTable(t)
	processor := new(mockProcessor)
	t.Cleanup(func() { processor.AssertExpectations(t) })
	store := &storage.Storage{Tracks: mockTable}
	return NewTrackService(store, processor), mockTable, processor
}

func groceries() Track {
	return Track{
		Title:    "  Groceries ",
		Amount:   decimal.RequireFromString("12.50"),
		Category: CategoryFood,
	}
}

// -- CreateTrack tests --

func TestCreateTrack_Success(t *testing.T) {
	svc, _, processor := newTestService(t)

	var queued *actions.CreateTrack
	processor.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.CreateTrack) bool {
		return a.Title == "Groceries" &&
			a.Amount.Equal(decimal.RequireFromString("12.50")) &&
			a.Category == "Food" &&
			a.Date == nil &&
			a.ID != uuid.Nil
	})).Run(func(args mock.Arguments) {
		queued = args.Get(1).(*actions.CreateTrack)
	}).Return(nil)

	id, err := svc.CreateTrack(context.Background(), groceries())

	require.NoError(t, err)
	assert.Equal(t, queued.ID, id)
}

func TestCreateTrack_BlankTitle(t *testing.T) {
	svc, _, processor := newTestService(t)

	track := groceries()
	track.Title = "   "
	id, err := svc.CreateTrack(context.Background(), track)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Field)
	assert.Equal(t, uuid.Nil, id)
	processor.AssertNotCalled(t, "Process")
}

func TestCreateTrack_TitleTooLong(t *testing.T) {
	svc, _, _ := newTestService(t)

	track := groceries()
	track.Title = "a title that is far too long"
	_, err := svc.CreateTrack(context.Background(), track)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateTrack_TitleLengthCountsGraphemeClusters(t *testing.T) {
	svc, _, processor := newTestService(t)

	processor.On("Process", mock.Anything, mock.Anything).Return(nil)

	track := groceries()
	track.Title = strings.Repeat("👨‍👩‍👧", maxTitleLength)
	_, err := svc.CreateTrack(context.Background(), track)
	require.NoError(t, err)

	track.Title = strings.Repeat("e\u0301", maxTitleLength+1)
	_, err = svc.CreateTrack(context.Background(), track)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Field)
}

func TestCreateTrack_UnknownCategory(t *testing.T) {
	svc, _, _ := newTestService(t)

	track := groceries()
	track.Category = "Gambling"
	_, err := svc.CreateTrack(context.Background(), track)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "category", validationErr.Field)
}

func TestCreateTrack_StorageError(t *testing.T) {
	svc, _, processor := newTestService(t)

	cause := errors.New("disk full")
	processor.On("Process", mock.Anything, mock.Anything).Return(cause)

	id, err := svc.CreateTrack(context.Background(), groceries())

	var persistenceErr *PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, uuid.Nil, id)
}

// -- UpdateTrack tests --

func TestUpdateTrack_Success(t *testing.T) {
	svc, _, processor := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	track := groceries()
	track.Date = &date

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.UpdateTrack) bool {
		return a.ID == id && a.Title == "Groceries" && a.Date != nil && a.Date.Equal(date)
	})).Return(nil)

	assert.NoError(t, svc.UpdateTrack(context.Background(), id, track))
}

func TestUpdateTrack_NotFound(t *testing.T) {
	svc, _, processor := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	processor.On("Process", mock.Anything, mock.Anything).Return(sqlconfig.ErrTrackNotFound)

	err := svc.UpdateTrack(context.Background(), id, groceries())

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, id, notFound.ID)
}

func TestUpdateTrack_StorageError(t *testing.T) {
	svc, _, processor := newTestService(t)

	processor.On("Process", mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	err := svc.UpdateTrack(context.Background(), uuid.Must(uuid.NewV4()), groceries())

	var persistenceErr *PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
}

// -- DeleteTrack tests --

func TestDeleteTrack_Success(t *testing.T) {
	svc, _, processor := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	processor.On("Process", mock.Anything, &actions.DeleteTrack{ID: id}).Return(nil)

	assert.NoError(t, svc.DeleteTrack(context.Background(), id))
}

func TestDeleteTrack_StorageError(t *testing.T) {
	svc, _, processor := newTestService(t)

	processor.On("Process", mock.Anything, mock.Anything).Return(errors.New("disk I/O error"))

	err := svc.DeleteTrack(context.Background(), uuid.Must(uuid.NewV4()))

	var persistenceErr *PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
}

// -- GetTrack tests --

func TestGetTrack_Success(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	row := makeStorageRows(1)[0]
	mockTable.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)

	track, err := svc.GetTrack(context.Background(), row.ID)

	require.NoError(t, err)
	assert.Equal(t, row.ID, track.ID)
	assert.Equal(t, CategoryFood, track.Category)
	assert.True(t, row.Amount.Equal(track.Amount))
}

func TestGetTrack_NotFound(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByID(mock.Anything, id).Return(nil, sqlconfig.ErrTrackNotFound)

	_, err := svc.GetTrack(context.Background(), id)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

// -- ListAll tests --

func makeStorageRows(n int) []*sqlconfig.Track {
	createdAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := make([]*sqlconfig.Track, n)
	for i := range rows {
		rows[i] = &sqlconfig.Track{
			ID:        uuid.Must(uuid.NewV4()),
			Title:     "Item",
			Amount:    decimal.RequireFromString("5.00"),
			Category:  "Food",
			CreatedAt: createdAt,
		}
	}
	return rows
}

func TestListAll_Success(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	rows := makeStorageRows(3)
	mockTable.EXPECT().List(mock.Anything, (*sqlconfig.TrackFilter)(nil)).Return(rows, nil)

	tracks, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, tracks, 3)
	for i := range rows {
		assert.Equal(t, rows[i].ID, tracks[i].ID, "order preserved")
	}
}

func TestListAll_StorageError(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	tracks, err := svc.ListAll(context.Background())

	var persistenceErr *PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
	assert.Nil(t, tracks)
}

// -- ListTracks tests --

func TestListTracks_NoResults(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Track{}, nil)

	tracks, nextCursor, err := svc.ListTracks(context.Background(), nil)

	assert.NoError(t, err)
	assert.Nil(t, tracks)
	assert.Nil(t, nextCursor)
}

func TestListTracks_SinglePage(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	rows := makeStorageRows(2)
	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TrackFilter) bool {
		return f.Limit == defaultLimit && f.Offset == 0
	})).Return(rows, nil)

	tracks, nextCursor, err := svc.ListTracks(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, tracks, 2)
	assert.Nil(t, nextCursor)
}

func TestListTracks_HasNextPage(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	rows := makeStorageRows(defaultLimit + 1)
	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)

	tracks, nextCursor, err := svc.ListTracks(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, tracks, defaultLimit, "truncated to default limit")
	require.NotNil(t, nextCursor)
	assert.Equal(t, defaultLimit, nextCursor.Position)
	assert.Equal(t, defaultLimit, nextCursor.Limit)
}

func TestListTracks_WithCursor(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	rows := makeStorageRows(3) // limit=2, returns 3 → has next page
	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TrackFilter) bool {
		return f.Limit == 2 && f.Offset == 20
	})).Return(rows, nil)

	tracks, nextCursor, err := svc.ListTracks(context.Background(), &TrackCursor{Position: 20, Limit: 2})

	assert.NoError(t, err)
	assert.Len(t, tracks, 2)
	require.NotNil(t, nextCursor)
	assert.Equal(t, 22, nextCursor.Position)
	assert.Equal(t, 2, nextCursor.Limit)
}

func TestListTracks_StorageError(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	tracks, nextCursor, err := svc.ListTracks(context.Background(), nil)

	assert.Error(t, err)
	assert.Nil(t, tracks)
	assert.Nil(t, nextCursor)
}

func TestListTracks_NegativePosition(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	tracks, next, err := svc.ListTracks(context.Background(), &TrackCursor{Position: -5, Limit: 10})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "position", validationErr.Field)
	assert.Nil(t, tracks)
	assert.Nil(t, next)
	mockTable.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
