// Package database provides the persistence abstraction for MeepleHub.
//
// The Database interface hides SurrealDB behind three query methods:
//   - Query: multiple results (SELECT queries returning lists)
//   - QueryOne: a single result (SELECT by record ID)
//   - Execute: no return value (CREATE/UPDATE/DELETE mutations)
//
// Transactions are BATCH-BASED: statements accumulate in memory and are
// wrapped in BEGIN TRANSACTION / COMMIT TRANSACTION at commit time. There
// is no isolation between Add() calls; all statements succeed or fail
// together. For multi-statement atomic writes prefer AtomicBatch.
//
// Standard errors cover the common failure cases; check them with
// errors.Is():
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // record does not exist
//	}
package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation
	// (e.g., duplicate login id).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate
	// with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")
)

// DuplicateError reports which key a uniqueness guard rejected. It matches
// ErrDuplicate under errors.Is, so existing checks keep working; callers
// that need the colliding key use errors.As.
type DuplicateError struct {
	Key string
}

func (e *DuplicateError) Error() string {
	return "duplicate " + e.Key
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// Database defines the interface for database operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds database connection settings
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
