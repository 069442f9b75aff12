package domain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/mo"
)

// Principal identifies the caller of an administrative operation. The
// controller recognises exactly one principal (the owner) for every
// mutating call.
type Principal = common.Address

// ControllerState is the controller's mutable configuration. It lives in
// memory for the process lifetime; a restart re-seeds it from config.
type ControllerState struct {
	Owner         common.Address
	SystemAddress common.Address

	// Keeper is reserved: settable and reported but not read by any
	// operation on the current surface.
	Keeper mo.Option[common.Address]
}

// IsOwner reports whether p is the current owner principal.
func (s ControllerState) IsOwner(p Principal) bool {
	return s.Owner == p
}

// HasSystemAddress reports whether a non-zero system address is configured.
func (s ControllerState) HasSystemAddress() bool {
	return s.SystemAddress != (common.Address{})
}
