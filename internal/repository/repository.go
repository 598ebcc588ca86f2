// Package repository provides document store access layer.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	usersCollection      = "users"
	categoriesCollection = "categories"
	blogsCollection      = "blogs"
)

// Repository provides access to the users, categories and blogs collections.
type Repository struct {
	client     *mongo.Client
	users      *mongo.Collection
	categories *mongo.Collection
	blogs      *mongo.Collection
}

// New creates a new Repository connected to the given MongoDB deployment.
// The client is constructed here and owned by the caller's lifecycle;
// there is no lazy global connection.
func New(ctx context.Context, mongoURL, database string) (*Repository, error) {
	opts := options.Client().
		ApplyURI(mongoURL).
		SetMaxPoolSize(10).
		SetMinPoolSize(2).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(database)

	return &Repository{
		client:     client,
		users:      db.Collection(usersCollection),
		categories: db.Collection(categoriesCollection),
		blogs:      db.Collection(blogsCollection),
	}, nil
}

// Ping checks store connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (r *Repository) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = r.client.Disconnect(ctx)
}

// Client returns the underlying Mongo client.
// Use sparingly - prefer adding methods to Repository.
func (r *Repository) Client() *mongo.Client {
	return r.client
}
