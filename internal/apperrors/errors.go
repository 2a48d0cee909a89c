package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a requested transition is not allowed in the
// resource's current state (e.g. settling a debt that is already paid).
var ErrConflict = errors.New("conflicting state")

// ErrBadCipher indicates that an encrypted backup could not be opened.
// Wrong password and corrupt payload are deliberately indistinguishable.
var ErrBadCipher = errors.New("wrong password or corrupt file")

// ErrUnauthorized indicates a missing or invalid session token or PIN.
var ErrUnauthorized = errors.New("unauthorized")
