package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/track-server/internal/storage/sqlconfig"
)

type Writer struct {
	tx     bob.Tx
	Tracks sqlconfig.ITrackTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:     tx,
		Tracks: sqlconfig.NewTracksTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
