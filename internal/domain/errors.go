package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Local validation errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgNoSelection       = "no item selected for planting"
	ErrMsgInvalidTarget     = "invalid target"
	ErrMsgBedLocked         = "bed is locked"
	ErrMsgBedOccupied       = "bed is occupied"
	ErrMsgNotReady          = "plant is not ready"
	ErrMsgPlantNotFound     = "plant not found"
	ErrMsgItemNotFound      = "item not found"

	// Dispatch errors
	ErrMsgActionInFlight = "another action is in flight"
	ErrMsgSessionClosed  = "session is closed"
	ErrMsgSessionNotLoad = "session is not loaded"

	// Remote errors
	ErrMsgActionRejected  = "action rejected by server"
	ErrMsgTransport       = "transport failure"
	ErrMsgInvalidResponse = "invalid server response"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Local validation errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrNoSelection       = errors.New(ErrMsgNoSelection)
	ErrInvalidTarget     = errors.New(ErrMsgInvalidTarget)
	ErrBedLocked         = errors.New(ErrMsgBedLocked)
	ErrBedOccupied       = errors.New(ErrMsgBedOccupied)
	ErrNotReady          = errors.New(ErrMsgNotReady)
	ErrPlantNotFound     = errors.New(ErrMsgPlantNotFound)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)

	// Dispatch errors
	ErrActionInFlight   = errors.New(ErrMsgActionInFlight)
	ErrSessionClosed    = errors.New(ErrMsgSessionClosed)
	ErrSessionNotLoaded = errors.New(ErrMsgSessionNotLoad)

	// Remote errors
	ErrActionRejected  = errors.New(ErrMsgActionRejected)
	ErrTransport       = errors.New(ErrMsgTransport)
	ErrInvalidResponse = errors.New(ErrMsgInvalidResponse)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// localValidationErrors are detected before any request leaves the session
var localValidationErrors = []error{
	ErrInsufficientFunds,
	ErrNoSelection,
	ErrInvalidTarget,
	ErrBedLocked,
	ErrBedOccupied,
	ErrNotReady,
	ErrPlantNotFound,
	ErrItemNotFound,
}

// IsLocalValidation reports whether err was produced by pre-validation
// rather than by a round trip to the authority.
func IsLocalValidation(err error) bool {
	for _, target := range localValidationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsRemoteFailure reports whether err came from the transport or the authority.
func IsRemoteFailure(err error) bool {
	return errors.Is(err, ErrActionRejected) ||
		errors.Is(err, ErrTransport) ||
		errors.Is(err, ErrInvalidResponse)
}
