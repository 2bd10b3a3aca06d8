// Package kernel contains shared value objects used across the domain model.
// These types form the building blocks of aggregates and entities: identifiers
// and other primitives that carry their own validation rules.
//
// All kernel types are immutable value objects constructed through factory
// functions; their zero values are invalid and fail Validate().
package kernel
