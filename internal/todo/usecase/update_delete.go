package usecase

import (
	"context"
	"slices"

	"todo-manager/internal/todo"
)

// Update replaces the task with input.ID at its current position. Returns ErrTaskNotFound
// without touching the list when the id is unknown.
func (uc *implUseCase) Update(ctx context.Context, input todo.UpdateTaskInput) (todo.UpdateTaskOutput, error) {
	if err := uc.validateFields(input.Title, input.User, input.Deadline); err != nil {
		return todo.UpdateTaskOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexOf(input.ID)
	if idx == -1 {
		uc.l.Errorf(ctx, "todo.usecase.Update: task %s (%q) was not found", input.ID, input.Title)
		return todo.UpdateTaskOutput{}, todo.ErrTaskNotFound
	}

	t := todo.Task{
		ID:         input.ID,
		Title:      input.Title,
		User:       input.User,
		Deadline:   input.Deadline,
		IsPriority: input.IsPriority,
	}
	uc.tasks[idx] = t
	uc.persistTasks(ctx)

	return todo.UpdateTaskOutput{Task: t}, nil
}

// Delete removes exactly one task. An unknown id is a logged no-op returning ErrTaskNotFound.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexOf(id)
	if idx == -1 {
		uc.l.Errorf(ctx, "todo.usecase.Delete: task %s was not found", id)
		return todo.ErrTaskNotFound
	}

	uc.tasks = slices.Delete(uc.tasks, idx, idx+1)
	uc.persistTasks(ctx)
	return nil
}

// DeleteAll truncates the list and persists the empty collection.
func (uc *implUseCase) DeleteAll(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.tasks = []todo.Task{}
	uc.persistTasks(ctx)
	return nil
}
