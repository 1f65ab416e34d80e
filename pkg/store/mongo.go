package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/errors"
)

// MongoOptions configures a [MongoStore].
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
}

// MongoStore keeps each profile as one document keyed by profile name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// profileDoc is the stored document: the state inlined next to its key.
type profileDoc struct {
	ID              string `bson:"_id"`
	dashboard.State `bson:",inline"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

// NewMongoStore connects to MongoDB and checks the connection.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, storageError(err, "connect to mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, storageError(err, "ping mongo")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(opts.Database).Collection(opts.Collection),
	}, nil
}

func (s *MongoStore) Load(ctx context.Context, profile string) (*dashboard.State, error) {
	if err := errors.ValidateProfileName(profile); err != nil {
		return nil, err
	}
	var doc profileDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": profile}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, storageError(err, "mongo find %s", profile)
	}
	return normalize(&doc.State), nil
}

func (s *MongoStore) Save(ctx context.Context, profile string, st *dashboard.State) error {
	if err := errors.ValidateProfileName(profile); err != nil {
		return err
	}
	doc := profileDoc{ID: profile, State: *st, UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": profile}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return storageError(err, "mongo upsert %s", profile)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, profile string) error {
	if err := errors.ValidateProfileName(profile); err != nil {
		return err
	}
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": profile}); err != nil {
		return storageError(err, "mongo delete %s", profile)
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
