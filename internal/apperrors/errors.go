package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of
// the resource (e.g. reversing an already reversed entry).
var ErrConflict = errors.New("resource conflict")

// ErrClosedPeriod indicates an attempt to post into a closed accounting period.
var ErrClosedPeriod = errors.New("accounting period is closed")

// ErrInternal indicates an unexpected internal failure that should not be
// shown to callers in detail.
var ErrInternal = errors.New("internal error")
