// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"
	"fmt"
	"time"

	"rentals/internal/platform/store"
)

type (
	// Database is the document store surface repos bind against
	Database = store.Database

	// Collection is the per-collection surface used inside repos
	Collection = store.Collection
)

// Binder is a tiny factory that binds a domain repo to a specific Database
type Binder[T any] interface {
	Bind(Database) T
}

// BindFunc lets you create a Binder from a function
type BindFunc[T any] func(Database) T

// Bind calls the underlying function
func (f BindFunc[T]) Bind(db Database) T { return f(db) }

// RequireDatabase panics early on programmer error (nil db)
func RequireDatabase(db Database) Database {
	if db == nil {
		panic("repokit: nil Database")
	}
	return db
}

// MustBind is a convenience that validates db then binds
func MustBind[T any](b Binder[T], db Database) T {
	return b.Bind(RequireDatabase(db))
}

type guarder interface {
	Guard(context.Context) error
}

// MustPing panics if a dependency doesn't answer a Ping within timeout
func MustPing(ctx context.Context, name string, p interface{ Ping(context.Context) error }) {
	if p == nil {
		panic(fmt.Sprintf("%s: nil dependency", name))
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		panic(fmt.Sprintf("%s ping failed: %v", name, err))
	}
}

// MustGuard runs store.Guard and panics on any error (nice for service startup)
func MustGuard(ctx context.Context, st guarder) {
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
