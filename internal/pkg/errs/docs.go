// Package errs provides standardized error types for the order intake application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - TransitionNotAllowedError: For when an order status transition is not permitted
//   - GenerationExhaustedError: For when identifier generation runs out of attempts
//   - PersistenceFailedError: For when a write to the backing store did not complete
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
