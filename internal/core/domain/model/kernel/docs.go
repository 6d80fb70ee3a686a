// Package kernel contains shared value objects used across all aggregates:
// UUID identifiers and Money amounts. Value objects are immutable, validated
// at construction, and safe for concurrent use.
package kernel
