package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Defaults for the mongo backend.
const (
	DefaultMongoDatabase   = "slidekit"
	DefaultMongoCollection = "templates"
)

type mongoTemplate struct {
	ID        string    `bson:"_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Mongo stores one document per template. The encoded template is kept as
// a string so documents stay readable in the shell.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongo connects to uri and uses database/collection, falling back to
// the defaults when either is empty.
func NewMongo(ctx context.Context, uri, database, collection string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, transient(fmt.Errorf("ping mongo: %w", err))
	}
	if database == "" {
		database = DefaultMongoDatabase
	}
	if collection == "" {
		collection = DefaultMongoCollection
	}
	return &Mongo{client: client, coll: client.Database(database).Collection(collection)}, nil
}

func (m *Mongo) Name() string { return BackendMongo }

func (m *Mongo) Get(ctx context.Context, key string) ([]byte, error) {
	var doc mongoTemplate
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Data), nil
}

func (m *Mongo) Set(ctx context.Context, key string, data []byte) error {
	doc := mongoTemplate{ID: key, Data: string(data), UpdatedAt: time.Now().UTC()}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (m *Mongo) Delete(ctx context.Context, key string) error {
	_, err := m.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

func (m *Mongo) Keys(ctx context.Context) ([]string, error) {
	cur, err := m.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	keys := make([]string, len(docs))
	for i, d := range docs {
		keys[i] = d.ID
	}
	return keys, nil
}

func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

var _ Backend = (*Mongo)(nil)
