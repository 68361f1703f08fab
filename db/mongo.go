package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"campus-board/config"
	"campus-board/internal/logger"
	"campus-board/literals"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// itemTables are the collections holding projectable item rows.
var itemTables = []string{
	literals.POST_TABLE,
	literals.LINK_TABLE,
	literals.CLASS_TABLE,
	literals.COMMENT_TABLE,
	literals.RATING_TABLE,
}

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig().Mongo

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(cfg.Database)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.InfoWithFields("MongoDB connected and indexes ensured", logger.Fields{
			"database": cfg.Database,
		})
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Disconnect closes the global client if Init succeeded.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Ping checks the primary; used by /health.
func Ping(ctx context.Context, d *mongo.Database) error {
	return d.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// every item table: unique application id
	for _, table := range itemTables {
		if _, err := d.Collection(table).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: literals.FIELD_ID, Value: 1}},
			Options: options.Index().SetName("uniq_id").SetUnique(true),
		}); err != nil {
			return err
		}
	}

	// comment: lookups by parent post / parent comment
	{
		if _, err := d.Collection(literals.COMMENT_TABLE).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: literals.FIELD_PARENT_POST, Value: 1}, {Key: literals.FIELD_TIMESTAMP, Value: -1}},
			Options: options.Index().SetName("idx_parent_post_timestamp"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection(literals.COMMENT_TABLE).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: literals.FIELD_PARENT_COMMENT, Value: 1}},
			Options: options.Index().SetName("idx_parent_comment"),
		}); err != nil {
			return err
		}
	}

	// rating: lookups by rated class
	if _, err := d.Collection(literals.RATING_TABLE).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: literals.FIELD_PARENT, Value: 1}, {Key: literals.FIELD_DATETIME, Value: -1}},
		Options: options.Index().SetName("idx_parent_datetime"),
	}); err != nil {
		return err
	}

	// vote: one vote per (voter, item)
	if _, err := d.Collection(literals.VOTE_TABLE).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: literals.FIELD_VOTER, Value: 1}, {Key: literals.FIELD_VOTE_ITEM, Value: 1}},
		Options: options.Index().SetName("uniq_voter_item").SetUnique(true),
	}); err != nil {
		return err
	}
	return nil
}
