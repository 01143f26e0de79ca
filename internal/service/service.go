package service

import (
	"context"

	"github.com/carson-networks/track-server/internal/operator/actions"
	"github.com/carson-networks/track-server/internal/storage"
)

// ActionProcessor runs a write action in its own transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Track *TrackService
}

// NewService creates a new Service with the given storage and write queue.
func NewService(store *storage.Storage, processor ActionProcessor) *Service {
	return &Service{
		Track: NewTrackService(store, processor),
	}
}
