// Package store defines the persistence interfaces for the board's entities
// together with the error taxonomy shared by every implementation. Callers
// program against these interfaces; the in-memory and SQL-backed
// implementations live under internal/platform and are interchangeable.
package store
