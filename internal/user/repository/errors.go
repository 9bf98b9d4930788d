package repository

import "errors"

var (
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToUpdate = errors.New("failed to update record")
)
