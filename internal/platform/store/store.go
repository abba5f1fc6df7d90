// Package store provides a unified interface to optional storage backends
package store

import (
	"context"
	"errors"
	"fmt"

	"rentals/internal/platform/logger"
)

// Store is the facade for optional backends
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	// zero means a no op zerolog logger
	Log logger.Logger

	// Mongo is the document store seam, nil when disabled
	Mongo Database
}

// Database is the narrow document-database surface repos bind against
type Database interface {
	Collection(name string) Collection
}

// Collection is the minimal per-collection contract
// Cursor iteration is folded into the decode-all style calls so fakes stay tiny
type Collection interface {
	InsertOne(ctx context.Context, doc any) (id any, err error)
	InsertMany(ctx context.Context, docs []any) error
	UpdateOne(ctx context.Context, filter any, update any) (matched, modified int64, err error)
	FindOne(ctx context.Context, filter any, out any) error
	FindAll(ctx context.Context, filter any, out any) error
	Aggregate(ctx context.Context, pipeline any, out any) error
	EstimatedCount(ctx context.Context) (int64, error)
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store with the requested backends
// backends not enabled in cfg remain nil on the Store
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// defaults for zero logger to avoid nil checks
	s.Log = s.Log.With().Logger()

	if cfg.Mongo.Enabled {
		db, err := openMongo(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.Mongo = db
	}

	return s, nil
}

// Guard verifies all configured seams the Store knows about
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if s.Mongo != nil {
		if p, ok := any(s.Mongo).(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("mongo: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes all initialized backends gracefully
// nil backends are ignored
func (s *Store) Close(ctx context.Context) error {
	var errs []error

	if c, ok := s.Mongo.(interface{ Close(context.Context) error }); ok {
		if e := c.Close(ctx); e != nil {
			errs = append(errs, e)
		}
	}

	return errors.Join(errs...)
}
