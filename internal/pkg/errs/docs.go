// Package errs provides standardized error types for the load board service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package maps the service's error kinds onto concrete types:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation
//     failures of load terms or command input (see IsValidation)
//   - ObjectNotFoundError: an unknown load id
//   - ActorIsNotAuthorizedError: the caller's role or identity does not match the
//     actor a command requires
//   - StatusTransitionIsInvalidError: the command's source-status precondition
//     does not hold
//   - ConcurrencyConflictError: a claim lost the compare-and-swap race
//
// ErrPreconditionFailed is the bare sentinel stores return when a conditional
// update finds the row in a different status than expected; the application layer
// translates it into a state or conflict error.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
