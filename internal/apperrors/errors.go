package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting party is not allowed to perform the operation.
var ErrForbidden = errors.New("not authorized")

// ErrInvalidTransition indicates a status change that would move a shipment
// backwards or mutate a shipment already in a terminal state.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrAlreadyDelivered indicates a delivery confirmation on a shipment that has
// already been delivered. It is a specific case of ErrInvalidTransition kept
// distinct so callers can surface a clearer message.
var ErrAlreadyDelivered = errors.New("shipment already delivered")
