package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MaxListings caps every fetch; the API never returns more documents.
const MaxListings = 500

var ErrMissingURI = errors.New("MONGODB_URI is not set")

type Config struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

// Store owns the Mongo client for the process lifetime. Connect is
// idempotent, so request paths may call it freely; Close tears the
// client down on shutdown.
type Store struct {
	cfg Config

	mu     sync.Mutex
	client *mongo.Client
}

func Open(cfg Config) *Store {
	if cfg.Database == "" {
		cfg.Database = "listings"
	}
	if cfg.Collection == "" {
		cfg.Collection = "properties"
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	return &Store{cfg: cfg}
}

func (s *Store) Connect(ctx context.Context) error {
	if s.cfg.URI == "" {
		return ErrMissingURI
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.cfg.URI))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("mongo ping: %w", err)
	}
	s.client = client
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	return err
}

// FetchListings reads up to limit raw documents with an empty filter.
// The limit is clamped to MaxListings regardless of what was asked for.
func (s *Store) FetchListings(ctx context.Context, limit int) ([]bson.M, error) {
	if err := s.Connect(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > MaxListings {
		limit = MaxListings
	}

	s.mu.Lock()
	coll := s.client.Database(s.cfg.Database).Collection(s.cfg.Collection)
	s.mu.Unlock()

	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}
	return docs, nil
}
