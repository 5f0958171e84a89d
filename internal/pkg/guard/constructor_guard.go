// Package guard lets value objects, commands and queries detect that they were
// built by their constructor rather than declared as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is not meaningful.
// Only NewConstructorGuard produces a guard that validates.
//
// Example:
//
//	var ErrSlotNotConstructed = errors.New("DeliverySlot must be created via NewDeliverySlot")
//
//	type DeliverySlot struct {
//	    startsAt time.Time
//	    endsAt   time.Time
//	    guard    guard.ConstructorGuard
//	}
//
//	func (s DeliverySlot) Validate() error {
//	    return s.guard.Validate(ErrSlotNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
