// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - AssignmentCoordinator: binds delivery partners to orders and keeps the
//     order-side and partner-side of the binding consistent
//
// Domain services hold the rules that span the order and user aggregates;
// persistence of the coordinated changes is left to the application layer's
// unit of work.
package services
