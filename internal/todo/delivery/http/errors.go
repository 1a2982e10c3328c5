package http

import (
	"errors"
	"net/http"

	"todo-manager/internal/todo"
	pkgErrors "todo-manager/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, todo.ErrEmptyTitle),
		errors.Is(err, todo.ErrUnknownUser),
		errors.Is(err, todo.ErrInvalidDeadline),
		errors.Is(err, errMissingID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// isValidationError reports whether err should be shown back to the user on the page.
func isValidationError(err error) bool {
	return errors.Is(err, todo.ErrEmptyTitle) ||
		errors.Is(err, todo.ErrUnknownUser) ||
		errors.Is(err, todo.ErrInvalidDeadline)
}
