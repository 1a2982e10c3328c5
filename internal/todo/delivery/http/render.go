package http

import (
	"embed"
	"fmt"
	"html/template"

	"todo-manager/internal/todo"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageTemplate    = "index"
	htmlContentType = "text/html; charset=utf-8"
	textContentType = "text/plain; charset=utf-8"
	errRenderPage   = "The page could not be rendered."
)

// taskFields feeds the shared "task_fields" template used by both the add form and every item.
type taskFields struct {
	ID         string
	Title      string
	User       string
	Deadline   string
	IsPriority bool
	Users      []string
}

// itemView feeds the "todo_item" template.
type itemView struct {
	todo.BoardItem
	Users []string
}

// pageData is the root value of the page template.
type pageData struct {
	Board todo.Board
	Form  taskForm
	Error string
}

var templateFuncs = template.FuncMap{
	"fields": func(id, title, user, deadline string, isPriority bool, users []string) taskFields {
		return taskFields{ID: id, Title: title, User: user, Deadline: deadline, IsPriority: isPriority, Users: users}
	},
	"item": func(it todo.BoardItem, users []string) itemView {
		return itemView{BoardItem: it, Users: users}
	},
}

// parseTemplates loads the embedded page and item templates. The page cannot
// render at all without them, so callers treat an error as fatal.
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New(pageTemplate).Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for _, name := range []string{pageTemplate, "todo_item", "task_fields"} {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q is missing", name)
		}
	}
	return tmpl, nil
}
