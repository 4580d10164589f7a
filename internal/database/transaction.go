package database

// Atomic write utilities.
//
// AtomicBatch collects statements that must succeed together — the
// uniqueness pre-check plus write of a sign-up, or a post delete that
// must also remove its replies — and executes them as one
// BEGIN TRANSACTION / COMMIT TRANSACTION round trip. Variables are
// namespaced per statement so two statements can both bind $id without
// colliding.

import (
	"context"
	"fmt"
	"strings"
)

// AtomicBatch accumulates statements for a single atomic execution
type AtomicBatch struct {
	statements []string
	vars       map[string]interface{}
	varCounter int
}

// NewAtomicBatch creates a new atomic batch
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{
		statements: make([]string, 0),
		vars:       make(map[string]interface{}),
	}
}

// Add appends a statement, namespacing its variables to avoid collisions
// with other statements in the batch ($id becomes $v1_id, $v2_id, ...).
func (b *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	newQuery := query
	for name, value := range vars {
		b.varCounter++
		namespaced := fmt.Sprintf("v%d_%s", b.varCounter, name)
		newQuery = strings.ReplaceAll(newQuery, "$"+name, "$"+namespaced)
		b.vars[namespaced] = value
	}
	b.statements = append(b.statements, newQuery)
	return b
}

// Len returns the number of statements in the batch
func (b *AtomicBatch) Len() int {
	return len(b.statements)
}

// Build returns the complete transaction query and merged variables
func (b *AtomicBatch) Build() (string, map[string]interface{}) {
	if len(b.statements) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range b.statements {
		sb.WriteString(stmt)
		if !strings.HasSuffix(strings.TrimSpace(stmt), ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return sb.String(), b.vars
}

// Execute runs all statements as a single transaction
func (b *AtomicBatch) Execute(ctx context.Context, db Database) error {
	query, vars := b.Build()
	if query == "" {
		return nil
	}

	_, err := db.Query(ctx, query, vars)
	return err
}
