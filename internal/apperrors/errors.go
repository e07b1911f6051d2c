package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that credentials are missing or wrong. The same
// error covers unknown usernames and bad passwords so callers cannot probe
// for accounts.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates that the operation is not allowed in the resource's
// current state, e.g. confirming an already confirmed payment or deleting a
// category while products still reference it.
var ErrConflict = errors.New("resource state conflict")
