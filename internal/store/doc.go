// Package store defines the persistence interfaces and the error taxonomy
// shared by all store implementations.
package store
