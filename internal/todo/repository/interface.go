package repository

import (
	"context"

	"todo-manager/internal/todo"
)

// Repository persists the task list and the filter text. Every write is a
// total overwrite of its slot.
type Repository interface {
	TaskRepository
	FilterRepository
}

// TaskRepository stores the ordered task list.
type TaskRepository interface {
	// LoadTasks returns an empty list when nothing is stored or the stored payload is malformed.
	LoadTasks(ctx context.Context) ([]todo.Task, error)
	SaveTasks(ctx context.Context, tasks []todo.Task) error
}

// FilterRepository stores the last applied filter text.
type FilterRepository interface {
	LoadFilterText(ctx context.Context) (string, error)
	SaveFilterText(ctx context.Context, text string) error
}
