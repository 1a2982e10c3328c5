package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"todo-manager/internal/todo"
	repo "todo-manager/internal/todo/repository"
)

// LoadTasks reads the todos slot. Absent or malformed payloads yield an empty list.
func (r *implRepository) LoadTasks(ctx context.Context) ([]todo.Task, error) {
	raw, ok, err := r.store.Get(ctx, SlotTasks)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LoadTasks"), err)
		return nil, repo.ErrFailedToLoad
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []todo.Task{}, nil
	}

	records, err := r.decodeTasks(raw)
	if err != nil {
		r.l.Warnf(ctx, "%s: malformed %q slot, starting empty: %v", r.dsn("LoadTasks"), SlotTasks, err)
		return []todo.Task{}, nil
	}

	tasks := make([]todo.Task, len(records))
	for i, rec := range records {
		tasks[i] = rec.toTask()
	}
	return tasks, nil
}

// SaveTasks overwrites the todos slot with the full list.
func (r *implRepository) SaveTasks(ctx context.Context, tasks []todo.Task) error {
	records := make([]taskRecord, len(tasks))
	for i, t := range tasks {
		records[i] = newTaskRecord(t)
	}

	data, err := json.Marshal(records)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("SaveTasks"), err)
		return repo.ErrFailedToSave
	}

	if err := r.store.Set(ctx, SlotTasks, string(data)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveTasks"), err)
		return repo.ErrFailedToSave
	}
	return nil
}

// LoadFilterText returns "" when the slot is absent.
func (r *implRepository) LoadFilterText(ctx context.Context) (string, error) {
	v, ok, err := r.store.Get(ctx, SlotFilterText)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LoadFilterText"), err)
		return "", repo.ErrFailedToLoad
	}
	if !ok {
		return "", nil
	}
	return v, nil
}

func (r *implRepository) SaveFilterText(ctx context.Context, text string) error {
	if err := r.store.Set(ctx, SlotFilterText, text); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveFilterText"), err)
		return repo.ErrFailedToSave
	}
	return nil
}

// decodeTasks validates raw against the slot schema before binding it.
func (r *implRepository) decodeTasks(raw string) ([]taskRecord, error) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := r.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	var records []taskRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("bind: %w", err)
	}
	return records, nil
}
