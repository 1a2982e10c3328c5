package todo

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Restore loads tasks and the filter text from storage. In ephemeral mode it resets to an empty state.
	Restore(ctx context.Context) error
	Board(ctx context.Context) Board
	Mode() Mode

	// Task actions
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error

	// SetFilter stores the lowercased filter text.
	SetFilter(ctx context.Context, text string) error
}
