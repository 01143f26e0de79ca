package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/track-server/internal/storage"
	"github.com/carson-networks/track-server/internal/storage/sqlconfig"
)

type UpdateTrack struct {
	ID       uuid.UUID
	Title    string
	Amount   decimal.Decimal
	Category string
	Date     *time.Time

	IAction
}

func (u *UpdateTrack) Name() string { return "UpdateTrack" }

// Perform overwrites the stored track. sqlconfig.ErrTrackNotFound is passed
// through untouched when the ID is unknown.
func (u *UpdateTrack) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Tracks.Update(ctx, u.ID, &sqlconfig.TrackUpdate{
		Title:    u.Title,
		Amount:   u.Amount,
		Category: u.Category,
		Date:     u.Date,
	})
}
