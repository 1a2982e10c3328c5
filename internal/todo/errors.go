package todo

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("title is required")
	ErrUnknownUser     = errors.New("user is not a known assignee")
	ErrInvalidDeadline = errors.New("deadline must be a YYYY-MM-DD date")
)
