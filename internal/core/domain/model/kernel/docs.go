// Package kernel provides the shared value objects of the load board domain.
//
// The package includes:
//   - UUID: identifier for loads and for actor identities
//   - Role and Actor: the authenticated caller of a command (business or trucker)
//   - Money: a non-negative, exact decimal amount used for load prices and earnings
//
// Value objects are immutable and validated on construction; zero values are
// rejected by their Validate methods.
package kernel
