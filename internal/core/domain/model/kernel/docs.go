// Package kernel provides core domain primitives for the order intake system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - OrderID: A value object for the short customer-facing order identifier,
//     together with a collision-checked generator
//   - Customer: A value object bundling the validated customer contact fields
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
