package repokit

import (
	"context"
	"errors"
	"testing"

	"rentals/internal/platform/store"
	"rentals/internal/platform/testkit"
)

type stubDB struct{}

func (stubDB) Collection(string) store.Collection { return nil }

type stubRepo struct{ db Database }

func TestBindFuncAndMustBind(t *testing.T) {
	binder := BindFunc[stubRepo](func(db Database) stubRepo { return stubRepo{db: db} })

	got := MustBind[stubRepo](binder, stubDB{})
	if got.db == nil {
		t.Fatalf("bound repo lost its database")
	}

	testkit.MustPanic(t, func() { MustBind[stubRepo](binder, nil) })
	testkit.MustPanic(t, func() { RequireDatabase(nil) })
	testkit.MustNotPanic(t, func() { RequireDatabase(stubDB{}) })
}

type stubGuard struct{ err error }

func (g stubGuard) Guard(context.Context) error { return g.err }

func TestMustGuard(t *testing.T) {
	testkit.MustNotPanic(t, func() { MustGuard(context.Background(), stubGuard{}) })
	testkit.MustPanic(t, func() {
		MustGuard(context.Background(), stubGuard{err: errors.New("mongo down")})
	})
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestMustPing(t *testing.T) {
	testkit.MustNotPanic(t, func() { MustPing(context.Background(), "mongo", stubPinger{}) })
	testkit.MustPanic(t, func() {
		MustPing(context.Background(), "mongo", stubPinger{err: errors.New("no reply")})
	})
}
