package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrTrackNotFound is returned when no row matches the requested track ID.
var ErrTrackNotFound = errors.New("track not found")

// Track represents a track record.
type Track struct {
	ID        uuid.UUID
	Title     string
	Amount    decimal.Decimal
	Category  string
	Date      *time.Time
	CreatedAt time.Time
}

// TrackCreate is the input for creating a new track.
type TrackCreate struct {
	ID       uuid.UUID // generated if nil
	Title    string
	Amount   decimal.Decimal
	Category string
	Date     *time.Time
}

// TrackUpdate overwrites every mutable field of a track.
type TrackUpdate struct {
	Title    string
	Amount   decimal.Decimal
	Category string
	Date     *time.Time
}

// TrackFilter specifies paging for listing tracks.
type TrackFilter struct {
	Limit  int
	Offset int
}

// ITrackTable defines the interface for track storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ITrackTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Track, error)
	Insert(ctx context.Context, create *TrackCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *TrackUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *TrackFilter) ([]*Track, error)
}

const timeLayout = time.RFC3339Nano

// trackRow mirrors the tracks table. Times are stored as RFC3339 text.
type trackRow struct {
	Seq       int64           `db:"seq"`
	ID        uuid.UUID       `db:"id"`
	Title     string          `db:"title"`
	Amount    decimal.Decimal `db:"amount"`
	Category  string          `db:"category"`
	TrackDate sql.NullString  `db:"track_date"`
	CreatedAt string          `db:"created_at"`
}

func rowToTrack(row trackRow) (*Track, error) {
	createdAt, err := time.Parse(timeLayout, row.CreatedAt)
	if err != nil {
		return nil, err
	}
	track := &Track{
		ID:        row.ID,
		Title:     row.Title,
		Amount:    row.Amount,
		Category:  row.Category,
		CreatedAt: createdAt,
	}
	if row.TrackDate.Valid {
		date, err := time.Parse(timeLayout, row.TrackDate.String)
		if err != nil {
			return nil, err
		}
		track.Date = &date
	}
	return track, nil
}

func dateValue(date *time.Time) any {
	if date == nil {
		return nil
	}
	return date.UTC().Format(timeLayout)
}
