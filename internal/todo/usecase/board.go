package usecase

import (
	"context"
	"slices"

	"todo-manager/internal/todo"
)

// SetFilter stores the lowercased filter text and writes it through.
func (uc *implUseCase) SetFilter(ctx context.Context, text string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.filterText = todo.NormalizeFilter(text)
	uc.persistFilter(ctx)
	return nil
}

// Board returns a snapshot of the list with visibility applied.
func (uc *implUseCase) Board(ctx context.Context) todo.Board {
	uc.mu.Lock()
	tasks := slices.Clone(uc.tasks)
	filterText := uc.filterText
	uc.mu.Unlock()

	res := todo.ApplyFilter(tasks, filterText)

	items := make([]todo.BoardItem, len(tasks))
	for i, t := range tasks {
		items[i] = todo.BoardItem{Task: t, Visible: res.Visible[t.ID]}
	}

	notifications := uc.notifications.Values()
	slices.SortStableFunc(notifications, func(a, b todo.Notification) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return todo.Board{
		Items:           items,
		FilterText:      filterText,
		VisibleCount:    res.Count,
		Empty:           res.Empty,
		Notifications:   notifications,
		NotificationTTL: uc.notificationTTL,
		Users:           slices.Clone(uc.users),
		Mode:            uc.mode,
	}
}
