// Package order provides domain entities and business logic for order
// management in the order intake system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items,
//     total price, and lifecycle
//   - Item: A value object for one priced line within an order
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, customer, and raw order text
//   - Order status follows a defined workflow: Pending -> Confirmed -> Shipped,
//     with cancellation possible from Pending and Confirmed
//   - Shipped and Cancelled are terminal statuses
//   - The stored total always equals the sum of the line-item totals after
//     placement and after confirmation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
