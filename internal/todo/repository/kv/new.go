package kv

import (
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todo-manager/internal/todo/repository"
	"todo-manager/pkg/kvstore"
	"todo-manager/pkg/log"
)

// Slot names shared with older clients of the same storage.
const (
	SlotTasks      = "todos"
	SlotFilterText = "filterTxt"
)

type implRepository struct {
	store  kvstore.Store
	schema *jsonschema.Schema
	l      log.Logger
}

// New creates a key-value backed Repository for the todo domain.
func New(store kvstore.Store, l log.Logger) repository.Repository {
	if store == nil {
		panic("todo/repository/kv: store is required")
	}
	return &implRepository{
		store:  store,
		schema: jsonschema.MustCompileString(tasksSchemaURL, tasksSchema),
		l:      l,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/kv.%s", method)
}
