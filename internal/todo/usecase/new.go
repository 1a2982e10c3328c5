package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"todo-manager/internal/todo"
	"todo-manager/internal/todo/repository"
	pkgLog "todo-manager/pkg/log"
)

const (
	DefaultNotificationTTL = 3 * time.Second
	maxNotifications       = 32
)

// implUseCase owns the in-memory task list and is the only writer of persisted state.
// mu serializes actions so each one runs model, persistence and view steps without interleaving.
type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository // nil in ephemeral mode
	users []string
	mode  todo.Mode

	notifications   *expirable.LRU[string, todo.Notification]
	notificationTTL time.Duration
	now             func() time.Time

	mu         sync.Mutex
	tasks      []todo.Task
	filterText string
}

// Config is the dependency bag passed to New().
type Config struct {
	// Repo is nil when storage is unavailable; the use case then runs in ephemeral mode.
	Repo            repository.Repository
	Users           []string
	NotificationTTL time.Duration
}

// New creates a new todo UseCase. The mode is derived from cfg.Repo and never changes.
func New(l pkgLog.Logger, cfg Config) *implUseCase {
	ttl := cfg.NotificationTTL
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}

	mode := todo.ModePersisted
	if cfg.Repo == nil {
		mode = todo.ModeEphemeral
	}

	return &implUseCase{
		l:               l,
		repo:            cfg.Repo,
		users:           append([]string(nil), cfg.Users...),
		mode:            mode,
		notifications:   expirable.NewLRU[string, todo.Notification](maxNotifications, nil, ttl),
		notificationTTL: ttl,
		now:             time.Now,
		tasks:           []todo.Task{},
	}
}

// Mode reports whether mutations are written through to storage.
func (uc *implUseCase) Mode() todo.Mode {
	return uc.mode
}
