package http

import (
	"todo-manager/internal/todo"
)

// --- Request DTOs ---

// taskForm is bound from the add form and from each item's edit form.
// An unchecked checkbox is absent from the submitted data and binds as "".
type taskForm struct {
	Title      string `form:"title"`
	User       string `form:"user"`
	Deadline   string `form:"deadline"`
	IsPriority string `form:"isPriority"`
}

// Priority reports whether the checkbox was submitted checked.
func (f taskForm) Priority() bool {
	switch f.IsPriority {
	case "Y", "y", "on", "true":
		return true
	}
	return false
}

func (f taskForm) toCreateInput() todo.CreateTaskInput {
	return todo.CreateTaskInput{
		Title:      f.Title,
		User:       f.User,
		Deadline:   f.Deadline,
		IsPriority: f.Priority(),
	}
}

func (f taskForm) toUpdateInput(id string) todo.UpdateTaskInput {
	return todo.UpdateTaskInput{
		ID:         id,
		Title:      f.Title,
		User:       f.User,
		Deadline:   f.Deadline,
		IsPriority: f.Priority(),
	}
}

type taskReq struct {
	Title      string `json:"title"       binding:"required,max=500"`
	User       string `json:"user"        binding:"required"`
	Deadline   string `json:"deadline"`
	IsPriority bool   `json:"is_priority"`
}

func (r taskReq) toCreateInput() todo.CreateTaskInput {
	return todo.CreateTaskInput{
		Title:      r.Title,
		User:       r.User,
		Deadline:   r.Deadline,
		IsPriority: r.IsPriority,
	}
}

func (r taskReq) toUpdateInput(id string) todo.UpdateTaskInput {
	return todo.UpdateTaskInput{
		ID:         id,
		Title:      r.Title,
		User:       r.User,
		Deadline:   r.Deadline,
		IsPriority: r.IsPriority,
	}
}

type filterReq struct {
	Filter string `json:"filter"`
}

// --- Response DTOs ---

type taskResp struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	User       string `json:"user"`
	Deadline   string `json:"deadline"`
	IsPriority bool   `json:"is_priority"`
}

func newTaskResp(t todo.Task) taskResp {
	return taskResp{
		ID:         t.ID,
		Title:      t.Title,
		User:       t.User,
		Deadline:   t.Deadline,
		IsPriority: t.IsPriority,
	}
}

type boardItemResp struct {
	taskResp
	Visible bool `json:"visible"`
}

type notificationResp struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type boardResp struct {
	Items         []boardItemResp    `json:"items"`
	Filter        string             `json:"filter"`
	VisibleCount  int                `json:"visible_count"`
	Empty         bool               `json:"empty"`
	Notifications []notificationResp `json:"notifications"`
	Users         []string           `json:"users"`
	Mode          string             `json:"mode"`
}

func (h *handler) newBoardResp(b todo.Board) boardResp {
	items := make([]boardItemResp, len(b.Items))
	for i, it := range b.Items {
		items[i] = boardItemResp{taskResp: newTaskResp(it.Task), Visible: it.Visible}
	}
	notifications := make([]notificationResp, len(b.Notifications))
	for i, n := range b.Notifications {
		notifications[i] = notificationResp{Kind: string(n.Kind), Message: n.Message}
	}
	return boardResp{
		Items:         items,
		Filter:        b.FilterText,
		VisibleCount:  b.VisibleCount,
		Empty:         b.Empty,
		Notifications: notifications,
		Users:         b.Users,
		Mode:          string(b.Mode),
	}
}

type taskDataResp struct {
	Task taskResp `json:"task"`
}
