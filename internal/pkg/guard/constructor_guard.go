// Package guard provides the ConstructorGuard pattern used by commands and
// value objects to ensure instances are only created through their designated
// constructor functions, never as bare zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed properly and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero
// values. Embed one in a struct and set it via NewConstructorGuard inside the
// struct's constructor; Validate then detects any instance that bypassed the
// constructor.
//
// Example:
//
//	type CancelJobCommand struct {
//	    jobID kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCancelJobCommand(jobID kernel.UUID) (CancelJobCommand, error) {
//	    if err := jobID.Validate(); err != nil {
//	        return CancelJobCommand{}, err
//	    }
//	    return CancelJobCommand{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CancelJobCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was constructed through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
