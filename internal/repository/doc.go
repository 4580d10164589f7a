// Package repository implements data access for MeepleHub on top of the
// database abstraction. Repositories build SurrealQL with bound variables,
// parse the loosely typed results into models, and translate store errors
// into the database package's sentinel errors. Absent records are returned
// as (nil, nil) so services decide what "not found" means.
package repository
