package actions

import (
	"context"

	"github.com/carson-networks/track-server/internal/storage"
)

// IAction is one unit of write work. Perform runs inside a single
// transaction; returning an error rolls it back.
type IAction interface {
	Name() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
