package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/racefuel/racefuel-api/internal/database"
)

var (
	errShareNotPending = errors.New("shared event is no longer pending")
	errNotConnected    = errors.New("sender and receiver are not connected")
)

// acceptShare moves a pending share to ACCEPTED and gives the receiver a
// private copy of the event with its food instances and goals. The food
// items the instances use are copied into the receiver's account too, so
// the copy does not change when the sender edits or deletes theirs. q must
// be bound to a transaction; the status flip locks the share row so a
// concurrent accept or deny waits and then finds it no longer pending.
func acceptShare(ctx context.Context, q *database.Queries, share database.SharedEvent) (database.SharedEvent, database.Event, error) {
	connected, err := q.HasAcceptedConnection(ctx, database.HasAcceptedConnectionParams{
		UserA: share.SenderID,
		UserB: share.ReceiverID,
	})
	if err != nil {
		return database.SharedEvent{}, database.Event{}, fmt.Errorf("checking connection: %w", err)
	}
	if !connected {
		return database.SharedEvent{}, database.Event{}, errNotConnected
	}

	if _, err := transitionShare(ctx, q, share, ACCEPTED); err != nil {
		return database.SharedEvent{}, database.Event{}, err
	}

	copied, err := q.CopyEvent(ctx, database.CopyEventParams{
		UserID:   share.ReceiverID,
		SourceID: share.EventID,
	})
	if err != nil {
		return database.SharedEvent{}, database.Event{}, fmt.Errorf("copying event: %w", err)
	}

	_, err = q.CopyFoodInstances(ctx, database.CopyFoodInstancesParams{
		SourceEventID: share.EventID,
		UserID:        share.ReceiverID,
		TargetEventID: copied.ID,
	})
	if err != nil {
		return database.SharedEvent{}, database.Event{}, fmt.Errorf("copying food instances: %w", err)
	}

	_, err = q.CopyBaseGoals(ctx, database.CopyBaseGoalsParams{
		UserID:        share.ReceiverID,
		TargetEventID: copied.ID,
		SourceUserID:  share.SenderID,
		SourceEventID: share.EventID,
	})
	if err != nil {
		return database.SharedEvent{}, database.Event{}, fmt.Errorf("copying base goals: %w", err)
	}

	_, err = q.CopyHourlyGoals(ctx, database.CopyHourlyGoalsParams{
		UserID:        share.ReceiverID,
		TargetEventID: copied.ID,
		SourceUserID:  share.SenderID,
		SourceEventID: share.EventID,
	})
	if err != nil {
		return database.SharedEvent{}, database.Event{}, fmt.Errorf("copying hourly goals: %w", err)
	}

	accepted, err := q.SetSharedEventCopy(ctx, database.SetSharedEventCopyParams{
		ID:            share.ID,
		CopiedEventID: &copied.ID,
	})
	if err != nil {
		return database.SharedEvent{}, database.Event{}, fmt.Errorf("recording copied event: %w", err)
	}

	return accepted, copied, nil
}

// transitionShare flips a share out of PENDING. A share that is not pending
// any more yields errShareNotPending.
func transitionShare(ctx context.Context, q *database.Queries, share database.SharedEvent, to RequestStatus) (database.SharedEvent, error) {
	updated, err := q.TransitionSharedEvent(ctx, database.TransitionSharedEventParams{
		ID:     share.ID,
		Status: to.String(),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return database.SharedEvent{}, errShareNotPending
	}
	if err != nil {
		return database.SharedEvent{}, fmt.Errorf("updating share status: %w", err)
	}
	return updated, nil
}
