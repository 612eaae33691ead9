// Package services provides domain services for the order intake system:
// logic that operates on orders but does not belong to a single aggregate.
//
// The package includes:
//   - ParseItems: turns a customer's free-text order string into ordered
//     (quantity, item) pairs
//   - PriceCatalog: the immutable name -> unit price mapping loaded at startup
//   - PriceLines / Total: the bill computation primitive used at placement
//     (catalog prices) and at confirmation (operator prices)
//
// Free-text input is expected to be imperfect, so parsing and pricing defects
// resolve to documented defaults (quantity 1, price 0) instead of errors.
package services
