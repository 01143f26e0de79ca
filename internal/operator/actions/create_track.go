package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/track-server/internal/storage"
	"github.com/carson-networks/track-server/internal/storage/sqlconfig"
)

type CreateTrack struct {
	ID       uuid.UUID
	Title    string
	Amount   decimal.Decimal
	Category string
	Date     *time.Time

	IAction
}

func (c *CreateTrack) Name() string { return "CreateTrack" }

func (c *CreateTrack) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Tracks.Insert(ctx, &sqlconfig.TrackCreate{
		ID:       c.ID,
		Title:    c.Title,
		Amount:   c.Amount,
		Category: c.Category,
		Date:     c.Date,
	})
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}
