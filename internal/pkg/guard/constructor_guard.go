// Package guard provides ConstructorGuard, a marker that lets commands, queries and
// value objects detect whether they were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is not usable.
// Only NewConstructorGuard sets the internal flag, so a struct literal or a
// zero value always fails Validate.
//
// Example:
//
//	var ErrCancelShipmentCommandIsNotConstructed = errors.New("CancelShipmentCommand must be created via NewCancelShipmentCommand")
//
//	type CancelShipmentCommand struct {
//	    shipmentID string
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c CancelShipmentCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
