// Package kernel provides core domain primitives shared by the order and user
// aggregates. Its centerpiece is UUID, a value object for unique identifiers
// with validation and comparison capabilities.
//
// The primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
