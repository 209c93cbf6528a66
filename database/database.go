package database

import (
	"context"
	"fmt"
	"time"

	"healthtrack-api/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB wraps the shared mongo client for the process lifetime.
// Opened once in main, passed down, closed on shutdown.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect() (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(utils.EnvConfig.Database.URL))
	if err != nil {
		return nil, fmt.Errorf("connect mongo %s: %w", utils.EnvConfig.Database.URL, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &DB{client: client, db: client.Database(utils.EnvConfig.Database.Name)}, nil
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

func (d *DB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.client.Disconnect(ctx); err != nil {
		fmt.Println("mongo disconnect:", err.Error())
	}
}
