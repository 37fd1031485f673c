// Package memstore provides in-process implementations of the store
// interfaces. Each store owns its backing map and identifier counter, so
// separate instances never share state; construct one per test or per
// process run. All operations are safe for concurrent callers.
package memstore
