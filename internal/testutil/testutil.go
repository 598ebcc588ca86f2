// Package testutil provides helpers for env-gated integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

// TestDatabase is the database name integration tests run against.
// It is dropped between tests, so it must never point at real data.
const TestDatabase = "inkwell_test"

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// DropTestDatabase removes the integration test database.
func DropTestDatabase(ctx context.Context, client *mongo.Client) error {
	if err := client.Database(TestDatabase).Drop(ctx); err != nil {
		return fmt.Errorf("drop test database: %w", err)
	}
	return nil
}
