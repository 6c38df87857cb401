// Package order provides domain entities and business logic for order management
// in the storefront. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns the order lines and manages identity,
//     dates, totals and lifecycle
//   - Line: A cart entry with a product reference, quantity and a unit price
//     snapshot taken when the order was placed
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, an owning user, and a contact email
//   - The shipping date must fall on or after the order date's calendar day
//   - Line totals are unit price times quantity, computed once at creation
//   - Order status follows a defined workflow: PENDING -> SHIPPING -> DELIVERED,
//     with CANCELLED reachable from any non-terminal state
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
