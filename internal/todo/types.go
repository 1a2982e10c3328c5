package todo

import "time"

// --- Domain Model ---

// Task is a single to-do entry. ID is generated on creation and never changes.
type Task struct {
	ID         string
	Title      string
	User       string
	Deadline   string // YYYY-MM-DD, may be empty
	IsPriority bool
}

// Mode is decided once at startup and fixed for the process lifetime.
type Mode string

const (
	// ModePersisted writes every mutation through to storage.
	ModePersisted Mode = "persisted"
	// ModeEphemeral keeps tasks in memory only.
	ModeEphemeral Mode = "ephemeral"
)

// NotificationKind mirrors the alert styles of the page.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationDanger  NotificationKind = "danger"
)

// Notification is a transient message shown above the list until it expires.
type Notification struct {
	ID        string
	Kind      NotificationKind
	Message   string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title      string
	User       string
	Deadline   string
	IsPriority bool
}

type UpdateTaskInput struct {
	ID         string
	Title      string
	User       string
	Deadline   string
	IsPriority bool
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task Task
}

type UpdateTaskOutput struct {
	Task Task
}

// BoardItem is a task together with its filter-driven visibility.
type BoardItem struct {
	Task    Task
	Visible bool
}

// Board is a consistent snapshot of everything the page renders.
type Board struct {
	Items           []BoardItem
	FilterText      string
	VisibleCount    int
	Empty           bool // no item matches the filter
	Notifications   []Notification
	NotificationTTL time.Duration // how long a notification stays on screen
	Users           []string
	Mode            Mode
}
