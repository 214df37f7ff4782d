package repositories

import "context"

// Set bundles the repositories a workflow touches. Inside a transaction every
// member is bound to the same transaction scope.
type Set struct {
	MeetingTypes MeetingTypeRepository
	Meetings     MeetingRepository
	ActionItems  ActionItemRepository
	ItemStatuses ItemStatusRepository
}

// Atomic runs a function against a transaction-scoped repository set. The
// transaction commits when fn returns nil and rolls back when it returns an
// error or panics, so multi-row workflows are never partially visible.
type Atomic interface {
	Transaction(ctx context.Context, fn func(repos Set) error) error
}
