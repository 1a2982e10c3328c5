package usecase

import (
	"context"

	"todo-manager/internal/todo"
)

// Restore loads the persisted state. Load failures degrade to an empty state and are logged.
func (uc *implUseCase) Restore(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.tasks = []todo.Task{}
	uc.filterText = ""

	if uc.repo == nil {
		uc.l.Warnf(ctx, "todo.usecase.Restore: storage is not available, tasks will not persist")
		return nil
	}

	tasks, err := uc.repo.LoadTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.Restore LoadTasks: %v", err)
	} else {
		uc.tasks = tasks
	}

	filterText, err := uc.repo.LoadFilterText(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.Restore LoadFilterText: %v", err)
	} else {
		uc.filterText = todo.NormalizeFilter(filterText)
	}

	uc.l.Infof(ctx, "todo.usecase.Restore: restored %d tasks, filter=%q", len(uc.tasks), uc.filterText)
	return nil
}
