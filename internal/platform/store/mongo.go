package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongoDB adapts *mongo.Database to the Database seam
type mongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

// mongoColl adapts *mongo.Collection to the Collection seam
type mongoColl struct{ c *mongo.Collection }

// openMongo connects, then pings with retry/backoff before publishing the adapter
func openMongo(ctx context.Context, cfg Config, s *Store) (Database, error) {
	opts := options.Client().ApplyURI(cfg.Mongo.URI())
	if cfg.AppName != "" {
		opts = opts.SetAppName(cfg.AppName)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	maxAttempts := cfg.Mongo.ConnectRetries
	if maxAttempts <= 0 {
		maxAttempts = 20
	}
	pingTimeout := cfg.Mongo.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	const (
		backoffStart   = 150 * time.Millisecond
		backoffCeiling = 2 * time.Second
	)

	var lastErr error
	backoff := backoffStart
	for i := 0; i < maxAttempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = client.Ping(toCtx, readpref.Primary())
		cancel()

		if lastErr == nil {
			s.Log.Debug().Str("db", cfg.Mongo.DBName).Msg("mongo connected")
			return &mongoDB{client: client, db: client.Database(cfg.Mongo.DBName)}, nil
		}
		if ctx.Err() != nil {
			_ = client.Disconnect(context.Background())
			return nil, ctx.Err()
		}
		time.Sleep(backoff)
		if backoff < backoffCeiling {
			backoff *= 2
			if backoff > backoffCeiling {
				backoff = backoffCeiling
			}
		}
	}

	_ = client.Disconnect(context.Background())
	return nil, fmt.Errorf("mongo ping failed after %d attempts: %w", maxAttempts, lastErr)
}

// Ping satisfies Pinger for Store.Guard
func (m *mongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close satisfies the optional closer checked by Store.Close
func (m *mongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *mongoDB) Collection(name string) Collection {
	return mongoColl{c: m.db.Collection(name)}
}

func (c mongoColl) InsertOne(ctx context.Context, doc any) (any, error) {
	res, err := c.c.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (c mongoColl) InsertMany(ctx context.Context, docs []any) error {
	_, err := c.c.InsertMany(ctx, docs)
	return err
}

func (c mongoColl) UpdateOne(ctx context.Context, filter any, update any) (int64, int64, error) {
	res, err := c.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (c mongoColl) FindOne(ctx context.Context, filter any, out any) error {
	return c.c.FindOne(ctx, filter).Decode(out)
}

func (c mongoColl) FindAll(ctx context.Context, filter any, out any) error {
	cur, err := c.c.Find(ctx, filter)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (c mongoColl) Aggregate(ctx context.Context, pipeline any, out any) error {
	cur, err := c.c.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (c mongoColl) EstimatedCount(ctx context.Context) (int64, error) {
	return c.c.EstimatedDocumentCount(ctx)
}
