package order

import (
	"fmt"

	"shoporders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfilment workflow.
//
// State transitions:
//
//	Pending ──> Shipping ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are final states with no further transitions.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Orders in this status are awaiting confirmation and dispatch.
	Pending

	// Shipping indicates the order has been handed to fulfilment
	// and is on its way to the customer.
	Shipping

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was withdrawn before delivery.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Shipping:  "SHIPPING",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Shipping:  "SHIPPING",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getTransitions returns the allowed transition table.
// Absent keys are terminal states.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:  {Shipping, Cancelled},
		Shipping: {Delivered, Cancelled},
	}
}

// StatusFromString parses a status from its persisted or wire representation.
// The match is exact and case-sensitive ("PENDING", "SHIPPING", "DELIVERED", "CANCELLED").
// Returns an error for anything else; the free-form labels the legacy service
// accepted are deliberately rejected here.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Shipping, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
//
// Returns "PENDING", "SHIPPING", "DELIVERED" or "CANCELLED" for valid statuses
// and "UNKNOWN" for invalid status values.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are allowed from this status.
func (s Status) IsTerminal() bool {
	if err := s.Validate(); err != nil {
		return false
	}
	_, ok := getTransitions()[s]
	return !ok
}

// CanTransitionTo reports whether the transition table allows moving
// from the current status to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition to the next status.
//
// Valid transitions:
//   - Pending -> Shipping
//   - Pending -> Cancelled
//   - Shipping -> Delivered
//   - Shipping -> Cancelled
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, error) if next is not a valid status or the transition is not allowed
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition from %s to %s is not allowed", s, next),
		)
	}

	return next, nil
}
