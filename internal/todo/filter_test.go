package todo_test

import (
	"testing"

	"todo-manager/internal/todo"
)

func TestApplyFilter(t *testing.T) {
	tasks := []todo.Task{
		{ID: "1", Title: "Buy milk", User: "alice"},
		{ID: "2", Title: "Call mom", User: "bob"},
		{ID: "3", Title: "buy BREAD", User: "buyer"},
	}

	tests := []struct {
		name      string
		filter    string
		wantIDs   []string
		wantCount int
		wantEmpty bool
	}{
		{"empty filter shows all", "", []string{"1", "2", "3"}, 3, false},
		{"case-insensitive match", "BUY", []string{"1", "3"}, 2, false},
		{"substring in middle", "ll m", []string{"2"}, 1, false},
		{"title only, not user", "alice", nil, 0, true},
		{"no match", "xyz", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := todo.ApplyFilter(tasks, tt.filter)
			if res.Count != tt.wantCount {
				t.Errorf("expected count %d, got %d", tt.wantCount, res.Count)
			}
			if res.Empty != tt.wantEmpty {
				t.Errorf("expected empty=%v, got %v", tt.wantEmpty, res.Empty)
			}
			want := map[string]bool{}
			for _, id := range tt.wantIDs {
				want[id] = true
			}
			for _, task := range tasks {
				if res.Visible[task.ID] != want[task.ID] {
					t.Errorf("task %s (%q): expected visible=%v", task.ID, task.Title, want[task.ID])
				}
			}
		})
	}
}

func TestApplyFilterOnlyBuyMilk(t *testing.T) {
	tasks := []todo.Task{
		{ID: "a", Title: "Buy milk"},
		{ID: "b", Title: "Call mom"},
	}

	res := todo.ApplyFilter(tasks, "BUY")
	if !res.Visible["a"] || res.Visible["b"] {
		t.Errorf("expected only 'Buy milk' visible, got %v", res.Visible)
	}
}

func TestApplyFilterNoTasks(t *testing.T) {
	res := todo.ApplyFilter(nil, "")
	if !res.Empty || res.Count != 0 {
		t.Errorf("an empty list should raise the empty indicator, got %+v", res)
	}
}
