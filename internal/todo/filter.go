package todo

import "strings"

// FilterResult holds per-task visibility keyed by task ID.
type FilterResult struct {
	Visible map[string]bool
	Count   int
	Empty   bool
}

// NormalizeFilter returns the form in which filter text is compared and stored.
func NormalizeFilter(text string) string {
	return strings.ToLower(text)
}

// Matches reports whether the task title contains filterText, ignoring case.
// An empty filter matches every task.
func Matches(t Task, filterText string) bool {
	if filterText == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), NormalizeFilter(filterText))
}

// ApplyFilter computes the visibility of every task. Empty is set when no task is visible.
func ApplyFilter(tasks []Task, filterText string) FilterResult {
	res := FilterResult{Visible: make(map[string]bool, len(tasks))}
	for _, t := range tasks {
		ok := Matches(t, filterText)
		res.Visible[t.ID] = ok
		if ok {
			res.Count++
		}
	}
	res.Empty = res.Count == 0
	return res
}
