package repository

import (
	"context"

	"github.com/meeplehub/api/internal/database"
)

// fakeDB implements database.Database with func fields so tests can
// capture the query text and variables a repository builds.
type fakeDB struct {
	queryFunc    func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
	queryOneFunc func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
	executeFunc  func(ctx context.Context, query string, vars map[string]interface{}) error
}

func (f *fakeDB) Connect(ctx context.Context) error { return nil }
func (f *fakeDB) Close() error                      { return nil }
func (f *fakeDB) Ping(ctx context.Context) error    { return nil }

func (f *fakeDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if f.queryFunc != nil {
		return f.queryFunc(ctx, query, vars)
	}
	return nil, nil
}

func (f *fakeDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	if f.queryOneFunc != nil {
		return f.queryOneFunc(ctx, query, vars)
	}
	return nil, database.ErrNotFound
}

func (f *fakeDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	if f.executeFunc != nil {
		return f.executeFunc(ctx, query, vars)
	}
	return nil
}

// createdRowResult shapes a Query response holding a single created record.
func createdRowResult(row map[string]interface{}) []interface{} {
	return []interface{}{
		map[string]interface{}{
			"status": "OK",
			"result": []interface{}{row},
		},
	}
}
