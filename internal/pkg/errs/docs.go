// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes generic validation errors:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - VersionIsInvalidError: For when an optimistic version check fails
//
// and the fulfillment taxonomy:
//   - ForbiddenError: role or ownership check failed
//   - InvalidStateError, InvalidTransitionError: operation not legal for the current status
//   - InsufficientStockError, NoStockLocationError, StaleAllocationError: allocation failures
//   - NotShippableError, IncompleteDeliveriesError: shipment rule violations
//   - TransportError: backing store or network failure
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the error
package errs
