package kv

import (
	"github.com/google/uuid"

	"todo-manager/internal/todo"
)

const (
	flagYes = "Y"
	flagNo  = "N"
)

// taskRecord is the stored shape of a task.
type taskRecord struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	User       string `json:"user"`
	Deadline   string `json:"deadline"`
	IsPriority string `json:"isPriority"`
}

func newTaskRecord(t todo.Task) taskRecord {
	flag := flagNo
	if t.IsPriority {
		flag = flagYes
	}
	return taskRecord{
		ID:         t.ID,
		Title:      t.Title,
		User:       t.User,
		Deadline:   t.Deadline,
		IsPriority: flag,
	}
}

// toTask converts a record back. Records written without an id get a new one.
func (rec taskRecord) toTask() todo.Task {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	return todo.Task{
		ID:         id,
		Title:      rec.Title,
		User:       rec.User,
		Deadline:   rec.Deadline,
		IsPriority: rec.IsPriority == flagYes,
	}
}
