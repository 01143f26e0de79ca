package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/track-server/internal/storage"
)

type DeleteTrack struct {
	ID uuid.UUID

	IAction
}

func (d *DeleteTrack) Name() string { return "DeleteTrack" }

func (d *DeleteTrack) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Tracks.Delete(ctx, d.ID)
}
