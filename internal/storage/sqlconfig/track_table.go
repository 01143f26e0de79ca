package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/bob/dialect/sqlite/um"
	"github.com/stephenafamo/scan"
)

const tableTracks = "tracks"

var trackColumns = []any{"seq", "id", "title", "amount", "category", "track_date", "created_at"}

var _ ITrackTable = (*TracksTable)(nil)

// TracksTable provides access to the tracks table through any bob executor,
// so the same code serves plain reads and writes inside a transaction.
type TracksTable struct {
	exec bob.Executor
	now  func() time.Time
}

func NewTracksTable(exec bob.Executor) *TracksTable {
	return &TracksTable{
		exec: exec,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// FindByID retrieves a track by its public ID.
func (t *TracksTable) FindByID(ctx context.Context, id uuid.UUID) (*Track, error) {
	q := sqlite.Select(
		sm.Columns(trackColumns...),
		sm.From(tableTracks),
		sm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[trackRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find track %s: %w", id, err)
	}
	return rowToTrack(row)
}

// Insert creates a new track and returns its ID.
func (t *TracksTable) Insert(ctx context.Context, create *TrackCreate) (uuid.UUID, error) {
	id := create.ID
	if id == uuid.Nil {
		var err error
		id, err = uuid.NewV4()
		if err != nil {
			return uuid.Nil, fmt.Errorf("generate track id: %w", err)
		}
	}

	q := sqlite.Insert(
		im.Into(tableTracks, "id", "title", "amount", "category", "track_date", "created_at"),
		im.Values(sqlite.Arg(
			id,
			create.Title,
			create.Amount,
			create.Category,
			dateValue(create.Date),
			t.now().Format(timeLayout),
		)),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return uuid.Nil, fmt.Errorf("insert track: %w", err)
	}
	return id, nil
}

// Update overwrites the mutable fields of a track. It returns
// ErrTrackNotFound when no row has the given ID.
func (t *TracksTable) Update(ctx context.Context, id uuid.UUID, update *TrackUpdate) error {
	q := sqlite.Update(
		um.Table(tableTracks),
		um.SetCol("title").ToArg(update.Title),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("category").ToArg(update.Category),
		um.SetCol("track_date").ToArg(dateValue(update.Date)),
		um.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return fmt.Errorf("update track %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update track %s: %w", id, err)
	}
	if affected == 0 {
		return ErrTrackNotFound
	}
	return nil
}

// Delete removes a track. Deleting an unknown ID is a no-op.
func (t *TracksTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := sqlite.Delete(
		dm.From(tableTracks),
		dm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return fmt.Errorf("delete track %s: %w", id, err)
	}
	return nil
}

// List returns tracks in insertion order. Nil filter returns all. A positive
// Limit fetches one extra row so callers can detect a following page.
func (t *TracksTable) List(ctx context.Context, filter *TrackFilter) ([]*Track, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(trackColumns...),
		sm.From(tableTracks),
	}
	if filter != nil && filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods, sm.OrderBy(sqlite.Quote("seq")).Asc())

	rows, err := bob.All(ctx, t.exec, sqlite.Select(queryMods...), scan.StructMapper[trackRow]())
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	result := make([]*Track, len(rows))
	for i, row := range rows {
		track, err := rowToTrack(row)
		if err != nil {
			return nil, fmt.Errorf("decode track %s: %w", row.ID, err)
		}
		result[i] = track
	}
	return result, nil
}
