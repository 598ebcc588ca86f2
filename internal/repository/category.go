package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell/inkwell/internal/model"
)

// Common errors for category repository operations.
var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CreateCategory inserts a new category and fills in its store-assigned ID.
func (r *Repository) CreateCategory(ctx context.Context, category *model.Category) error {
	result, err := r.categories.InsertOne(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		category.ID = id
	}

	return nil
}

// GetCategoryByID retrieves a category by its ID alone.
// The listing validation chain checks existence here; ownership is carried
// into the blog predicate, not re-checked on the category record.
func (r *Repository) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	var category model.Category
	if err := r.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return &category, nil
}

// GetCategoryByOwner retrieves a category scoped to its owner.
func (r *Repository) GetCategoryByOwner(ctx context.Context, id, owner primitive.ObjectID) (*model.Category, error) {
	filter := bson.M{
		"_id":  id,
		"user": owner,
	}

	var category model.Category
	if err := r.categories.FindOne(ctx, filter).Decode(&category); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by owner: %w", err)
	}

	return &category, nil
}

// ListCategories retrieves a user's categories ordered by creation time.
func (r *Repository) ListCategories(ctx context.Context, owner primitive.ObjectID) ([]*model.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.categories.Find(ctx, bson.M{"user": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := make([]*model.Category, 0)
	for cursor.Next(ctx) {
		var category model.Category
		if err := cursor.Decode(&category); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// UpdateCategory updates a category's title, scoped to (id, owner).
func (r *Repository) UpdateCategory(ctx context.Context, category *model.Category) error {
	filter := bson.M{
		"_id":  category.ID,
		"user": category.UserID,
	}
	update := bson.M{"$set": bson.M{
		"title":      category.Title,
		"updated_at": category.UpdatedAt,
	}}

	result, err := r.categories.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// DeleteCategory removes a category scoped to (id, owner).
// Blogs filed under the category are not touched.
func (r *Repository) DeleteCategory(ctx context.Context, id, owner primitive.ObjectID) error {
	result, err := r.categories.DeleteOne(ctx, bson.M{"_id": id, "user": owner})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
