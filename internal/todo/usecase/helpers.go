package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"todo-manager/internal/todo"
)

const deadlineLayout = "2006-01-02"

// validateFields checks the editable fields shared by create and update.
func (uc *implUseCase) validateFields(title, user, deadline string) error {
	if strings.TrimSpace(title) == "" {
		return todo.ErrEmptyTitle
	}
	if !slices.Contains(uc.users, user) {
		return todo.ErrUnknownUser
	}
	if deadline != "" {
		if _, err := time.Parse(deadlineLayout, deadline); err != nil {
			return todo.ErrInvalidDeadline
		}
	}
	return nil
}

// indexOf returns the position of the task with id, or -1. Caller holds uc.mu.
func (uc *implUseCase) indexOf(id string) int {
	return slices.IndexFunc(uc.tasks, func(t todo.Task) bool { return t.ID == id })
}

// persistTasks writes the whole list through. Failures are logged and never undo the in-memory change.
// Caller holds uc.mu.
func (uc *implUseCase) persistTasks(ctx context.Context) {
	if uc.repo == nil {
		return
	}
	if err := uc.repo.SaveTasks(ctx, slices.Clone(uc.tasks)); err != nil {
		uc.l.Errorf(ctx, "todo.usecase.persistTasks: %v", err)
	}
}

// persistFilter mirrors persistTasks for the filter slot. Caller holds uc.mu.
func (uc *implUseCase) persistFilter(ctx context.Context) {
	if uc.repo == nil {
		return
	}
	if err := uc.repo.SaveFilterText(ctx, uc.filterText); err != nil {
		uc.l.Errorf(ctx, "todo.usecase.persistFilter: %v", err)
	}
}

// notify queues a transient message. It expires after the configured TTL and is
// not withdrawn when the task it mentions is deleted.
func (uc *implUseCase) notify(kind todo.NotificationKind, message string) {
	n := todo.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: uc.now(),
	}
	uc.notifications.Add(n.ID, n)
}
