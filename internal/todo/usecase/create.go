package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"todo-manager/internal/todo"
)

// Create appends a new task, writes the list through and queues a success notification.
func (uc *implUseCase) Create(ctx context.Context, input todo.CreateTaskInput) (todo.CreateTaskOutput, error) {
	if err := uc.validateFields(input.Title, input.User, input.Deadline); err != nil {
		return todo.CreateTaskOutput{}, err
	}

	t := todo.Task{
		ID:         uuid.NewString(),
		Title:      input.Title,
		User:       input.User,
		Deadline:   input.Deadline,
		IsPriority: input.IsPriority,
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.tasks = append(uc.tasks, t)
	uc.persistTasks(ctx)
	uc.notify(todo.NotificationSuccess, fmt.Sprintf("%s added successfully!", t.Title))

	return todo.CreateTaskOutput{Task: t}, nil
}
