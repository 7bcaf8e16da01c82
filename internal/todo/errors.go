package todo

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTitleInvalid       = errors.New("title must be 1-200 characters after trimming")
	ErrDescriptionTooLong = errors.New("description must be at most 1000 characters")
)
