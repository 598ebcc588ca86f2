package repository

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogFilter describes which blogs a listing query selects.
// Owner and Category are mandatory and always constrain the result;
// the remaining criteria are optional and only contribute a clause when set.
type BlogFilter struct {
	Owner    primitive.ObjectID
	Category primitive.ObjectID

	// Keyword, when non-empty, requires a case-insensitive substring match
	// on either the title or the description.
	Keyword string

	// CreatedFrom and CreatedTo bound created_at inclusively on either end.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// Document renders the filter as a store predicate. All active clauses are
// combined with logical AND; the keyword clause is itself a disjunction over
// the two text fields. Pure function of the filter.
func (f BlogFilter) Document() bson.M {
	filter := bson.M{
		"user":     f.Owner,
		"category": f.Category,
	}

	if f.Keyword != "" {
		// Quote metacharacters so the keyword is matched as a literal
		// substring, unanchored and unranked.
		pattern := regexp.QuoteMeta(f.Keyword)
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	switch {
	case f.CreatedFrom != nil && f.CreatedTo != nil:
		filter["created_at"] = bson.M{"$gte": *f.CreatedFrom, "$lte": *f.CreatedTo}
	case f.CreatedFrom != nil:
		filter["created_at"] = bson.M{"$gte": *f.CreatedFrom}
	case f.CreatedTo != nil:
		filter["created_at"] = bson.M{"$lte": *f.CreatedTo}
	}

	return filter
}

// Page is a 1-based pagination window. Callers are responsible for
// defaulting non-positive input before constructing one.
type Page struct {
	Number int64
	Size   int64
}

// Skip returns the number of records to skip before the window starts.
func (p Page) Skip() int64 {
	return (p.Number - 1) * p.Size
}

// Take returns the number of records in the window.
func (p Page) Take() int64 {
	return p.Size
}

// blogSort is the fixed listing order: ascending by creation time.
// There is no secondary key, so records created within the same tick may
// appear in either relative order across repeated queries.
var blogSort = bson.D{{Key: "created_at", Value: 1}}
