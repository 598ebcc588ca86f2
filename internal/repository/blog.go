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

// Common errors for blog repository operations.
var (
	ErrBlogNotFound = errors.New("blog not found")
)

// CreateBlog inserts a new blog and fills in its store-assigned ID.
func (r *Repository) CreateBlog(ctx context.Context, blog *model.Blog) error {
	result, err := r.blogs.InsertOne(ctx, blog)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		blog.ID = id
	}

	return nil
}

// GetBlog retrieves a blog scoped to its owner and category.
// A blog owned by a different user or filed under a different category is
// reported as not found.
func (r *Repository) GetBlog(ctx context.Context, id, owner, category primitive.ObjectID) (*model.Blog, error) {
	filter := bson.M{
		"_id":      id,
		"user":     owner,
		"category": category,
	}

	var blog model.Blog
	if err := r.blogs.FindOne(ctx, filter).Decode(&blog); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	return &blog, nil
}

// GetBlogByOwner retrieves a blog scoped to its owner only.
// Mutation paths use this lookup; the category linkage is not re-verified.
func (r *Repository) GetBlogByOwner(ctx context.Context, id, owner primitive.ObjectID) (*model.Blog, error) {
	filter := bson.M{
		"_id":  id,
		"user": owner,
	}

	var blog model.Blog
	if err := r.blogs.FindOne(ctx, filter).Decode(&blog); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to get blog by owner: %w", err)
	}

	return &blog, nil
}

// ListBlogs runs a filtered, sorted, windowed fetch against the blogs
// collection. Returns an empty slice when the window has no matches.
func (r *Repository) ListBlogs(ctx context.Context, filter BlogFilter, page Page) ([]*model.Blog, error) {
	opts := options.Find().
		SetSort(blogSort).
		SetSkip(page.Skip()).
		SetLimit(page.Take())

	cursor, err := r.blogs.Find(ctx, filter.Document(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer cursor.Close(ctx)

	blogs := make([]*model.Blog, 0)
	for cursor.Next(ctx) {
		var blog model.Blog
		if err := cursor.Decode(&blog); err != nil {
			return nil, fmt.Errorf("failed to decode blog: %w", err)
		}
		blogs = append(blogs, &blog)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blogs: %w", err)
	}

	return blogs, nil
}

// UpdateBlog updates a blog's mutable fields (title and description).
// The update is scoped to (id, owner) so a non-owner cannot mutate it.
func (r *Repository) UpdateBlog(ctx context.Context, blog *model.Blog) error {
	filter := bson.M{
		"_id":  blog.ID,
		"user": blog.UserID,
	}
	update := bson.M{"$set": bson.M{
		"title":       blog.Title,
		"description": blog.Description,
		"updated_at":  blog.UpdatedAt,
	}}

	result, err := r.blogs.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrBlogNotFound
	}

	return nil
}

// DeleteBlog removes a blog scoped to (id, owner). Unconditional:
// no dependent records are touched.
func (r *Repository) DeleteBlog(ctx context.Context, id, owner primitive.ObjectID) error {
	result, err := r.blogs.DeleteOne(ctx, bson.M{"_id": id, "user": owner})
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrBlogNotFound
	}

	return nil
}
