// Package order provides the Order aggregate root for the dispatch system:
// the line items, the customer destination, the derived total and dispatch
// estimate, and the append-only status history.
//
// The package includes:
//   - Order: the aggregate root owning lifecycle state and derived fields
//   - Status: a strictly linear state machine (Prep -> Picked -> OnRoute -> Delivered)
//   - the external status vocabulary used by API responses and push payloads
//
// Key business rules:
//   - status only ever moves forward exactly one step; Delivered is terminal
//   - the total always equals the sum of the line items
//   - the dispatch estimate is prep time plus the bound partner's ETA
//   - edits and deletion are only possible before pickup
//
// Derived fields are computed by explicit methods invoked by the mutating
// operations, never as implicit side effects of persistence.
package order
