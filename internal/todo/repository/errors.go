package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load record")
	ErrFailedToSave = errors.New("failed to save record")
)
