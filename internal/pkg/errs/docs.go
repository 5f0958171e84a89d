// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an object cannot be found (NotFound)
//   - ObjectAlreadyExistsError: For when a unique key is already taken (DuplicateKey)
//   - PreconditionFailedError: For when a state transition is not allowed (PreconditionFailed)
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on the kind
//
// Adapters classify failures with errors.Is against the sentinels or errors.As
// against the struct types, which keeps transport mapping independent of the
// message wording.
package errs
