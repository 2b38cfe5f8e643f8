package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting user lacks the role required for the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrStaleState indicates that the expected precondition no longer holds
// because another actor already moved the resource (e.g. an order accepted by
// a second operator). Callers should treat it as "already processed".
var ErrStaleState = errors.New("resource state has changed")
