package charge

import (
	"context"

	"github.com/avetra/hrdesk/pkg/composables"
)

type CreatedEvent struct {
	Actor  string
	Result Charge
}

type UpdatedEvent struct {
	Actor  string
	Result Charge
}

type DeletedEvent struct {
	Actor string
	IDs   []string
}

func NewCreatedEvent(ctx context.Context, result Charge) CreatedEvent {
	actor, _ := composables.UseActor(ctx)
	return CreatedEvent{Actor: actor, Result: result}
}

func NewUpdatedEvent(ctx context.Context, result Charge) UpdatedEvent {
	actor, _ := composables.UseActor(ctx)
	return UpdatedEvent{Actor: actor, Result: result}
}

func NewDeletedEvent(ctx context.Context, ids []string) DeletedEvent {
	actor, _ := composables.UseActor(ctx)
	return DeletedEvent{Actor: actor, IDs: ids}
}
