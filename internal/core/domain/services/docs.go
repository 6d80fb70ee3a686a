// Package services provides domain services that implement business logic
// spanning multiple aggregates in the marketplace.
//
// The package includes:
//   - CodeGenerator: Produces one-time pickup and delivery verification codes
//   - AccessPolicy: Resolves which role an actor holds relative to an order
//
// Domain services hold no persistent state of their own; they coordinate
// between aggregates following Domain-Driven Design principles.
package services
