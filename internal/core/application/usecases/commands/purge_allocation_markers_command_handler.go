package commands

import (
	"context"
	"time"
)

type PurgeAllocationMarkersCommandHandler struct {
	uowFactory AllocationUoWFactory
	now        func() time.Time
}

func NewPurgeAllocationMarkersCommandHandler(uowFactory AllocationUoWFactory) PurgeAllocationMarkersCommandHandler {
	return PurgeAllocationMarkersCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle deletes the markers and returns how many were removed.
func (h PurgeAllocationMarkersCommandHandler) Handle(ctx context.Context, cmd PurgeAllocationMarkersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	purged, err := uow.AllocationRepository().PurgeSettled(ctx, h.now().Add(-cmd.Retention()))
	if err != nil {
		return 0, err
	}

	if err = commit(ctx, uow); err != nil {
		return 0, err
	}
	return purged, nil
}
