package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foliopress/pkg/core/document"
	"foliopress/pkg/observability"
)

// MongoStore persists catalogs as BSON documents, one per catalog, keyed
// by the catalog id. Suited to server deployments where documents outlive
// any single process.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig configures the Mongo backend.
type MongoConfig struct {
	URI        string // e.g. "mongodb://localhost:27017"
	Database   string // defaults to "foliopress"
	Collection string // defaults to "catalogs"
}

// NewMongoStore connects to MongoDB and prepares the catalog collection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "foliopress"
	}
	if cfg.Collection == "" {
		cfg.Collection = "catalogs"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*document.Catalog, error) {
	var c document.Catalog
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	observability.Store().OnGet("mongo", id, err)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find catalog %s: %w", id, err)
	}
	return &c, nil
}

func (s *MongoStore) Put(ctx context.Context, c *document.Catalog) error {
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c, options.Replace().SetUpsert(true))
	observability.Store().OnPut("mongo", c.ID, err)
	if err != nil {
		return fmt.Errorf("save catalog %s: %w", c.ID, err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete catalog %s: %w", id, err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]Summary, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "name": 1, "pages": 1, "updatedAt": 1}).
		SetSort(bson.M{"updatedAt": -1})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	defer cur.Close(ctx)

	var out []Summary
	for cur.Next(ctx) {
		var c document.Catalog
		if err := cur.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		out = append(out, summarize(&c))
	}
	return out, cur.Err()
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
