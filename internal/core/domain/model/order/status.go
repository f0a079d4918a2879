package order

import (
	"fmt"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The lifecycle is strictly
// linear with no branching:
//
//	Prep ──> Picked ──> OnRoute ──> Delivered
//
// A transition is legal only to the immediate successor. Delivered is
// terminal. Status is the internal vocabulary; the externally presented
// vocabulary is handled by External and StatusFromExternal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Prep is the initial status: the kitchen is preparing the order.
	Prep

	// Picked means the bound delivery partner has picked the order up.
	// From this point on the order can no longer be edited or deleted.
	Picked

	// OnRoute means the order is on its way to the customer.
	OnRoute

	// Delivered is the terminal status. No further transitions are allowed
	// and the bound partner is released when it is reached.
	Delivered
)

// statusFlow is the ordered sequence of valid statuses. Transition legality
// is defined by adjacency in this slice.
var statusFlow = []Status{Prep, Picked, OnRoute, Delivered}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Prep:      "PREP",
		Picked:    "PICKED",
		OnRoute:   "ON_ROUTE",
		Delivered: "DELIVERED",
	}
}

// StatusFromString parses the internal vocabulary name produced by String.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is one of the four lifecycle states.
func (s Status) Validate() error {
	if s.index() < 0 {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the internal vocabulary name of the status, or "Unknown"
// for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Advance validates the transition from s to target and returns the new
// status. The only legal move is one step forward in the flow:
//
//   - target behind the current status fails ("cannot move to a previous status")
//   - target more than one step ahead fails ("cannot skip status")
//   - target equal to the current status fails ("order is already in this status")
//
// All failures are conflicts and leave the caller's state untouched.
func (s Status) Advance(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	current, next := s.index(), target.index()
	switch {
	case next == current:
		return 0, errs.NewConflictError("order is already in this status")
	case next < current:
		return 0, errs.NewConflictError("cannot move to a previous status")
	case next > current+1:
		return 0, errs.NewConflictError("cannot skip status")
	}

	return target, nil
}

func (s Status) index() int {
	for i, status := range statusFlow {
		if status == s {
			return i
		}
	}
	return -1
}
