package repository

import (
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBlogFilter_ScopeOnly(t *testing.T) {
	owner := primitive.NewObjectID()
	category := primitive.NewObjectID()

	filter := BlogFilter{Owner: owner, Category: category}

	want := bson.M{
		"user":     owner,
		"category": category,
	}
	if got := filter.Document(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBlogFilter_Keyword(t *testing.T) {
	owner := primitive.NewObjectID()
	category := primitive.NewObjectID()

	filter := BlogFilter{
		Owner:    owner,
		Category: category,
		Keyword:  "react",
	}

	doc := filter.Document()

	or, ok := doc["$or"].(bson.A)
	if !ok {
		t.Fatalf("expected $or clause, got %v", doc["$or"])
	}
	if len(or) != 2 {
		t.Fatalf("expected 2 disjuncts, got %d", len(or))
	}

	title, ok := or[0].(bson.M)["title"].(bson.M)
	if !ok {
		t.Fatalf("expected title clause, got %v", or[0])
	}
	if title["$regex"] != "react" {
		t.Errorf("expected pattern %q, got %v", "react", title["$regex"])
	}
	if title["$options"] != "i" {
		t.Errorf("expected case-insensitive match, got options %v", title["$options"])
	}

	desc, ok := or[1].(bson.M)["description"].(bson.M)
	if !ok {
		t.Fatalf("expected description clause, got %v", or[1])
	}
	if desc["$regex"] != "react" {
		t.Errorf("expected pattern %q, got %v", "react", desc["$regex"])
	}
}

func TestBlogFilter_KeywordQuotesMetacharacters(t *testing.T) {
	filter := BlogFilter{
		Owner:    primitive.NewObjectID(),
		Category: primitive.NewObjectID(),
		Keyword:  "c++ (v2)",
	}

	doc := filter.Document()

	or := doc["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(bson.M)

	want := `c\+\+ \(v2\)`
	if title["$regex"] != want {
		t.Fatalf("expected quoted pattern %q, got %v", want, title["$regex"])
	}
}

func TestBlogFilter_KeywordWhitespacePreserved(t *testing.T) {
	filter := BlogFilter{
		Owner:    primitive.NewObjectID(),
		Category: primitive.NewObjectID(),
		Keyword:  "  deep dive ",
	}

	doc := filter.Document()

	or := doc["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(bson.M)

	// Surrounding whitespace is part of the literal substring.
	if title["$regex"] != "  deep dive " {
		t.Fatalf("expected whitespace preserved in pattern, got %q", title["$regex"])
	}
}

func TestBlogFilter_DateRangeCases(t *testing.T) {
	owner := primitive.NewObjectID()
	category := primitive.NewObjectID()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from *time.Time
		to   *time.Time
		want any
	}{
		{
			name: "both bounds inclusive",
			from: &start,
			to:   &end,
			want: bson.M{"$gte": start, "$lte": end},
		},
		{
			name: "only start",
			from: &start,
			want: bson.M{"$gte": start},
		},
		{
			name: "only end",
			to:   &end,
			want: bson.M{"$lte": end},
		},
		{
			name: "neither",
			want: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			filter := BlogFilter{
				Owner:       owner,
				Category:    category,
				CreatedFrom: test.from,
				CreatedTo:   test.to,
			}

			doc := filter.Document()

			got, present := doc["created_at"]
			if test.want == nil {
				if present {
					t.Fatalf("expected no date clause, got %v", got)
				}
				return
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Fatalf("expected %v, got %v", test.want, got)
			}
		})
	}
}

func TestBlogFilter_AllCriteriaCombined(t *testing.T) {
	owner := primitive.NewObjectID()
	category := primitive.NewObjectID()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	filter := BlogFilter{
		Owner:       owner,
		Category:    category,
		Keyword:     "go",
		CreatedFrom: &start,
		CreatedTo:   &end,
	}

	doc := filter.Document()

	if len(doc) != 4 {
		t.Fatalf("expected 4 top-level clauses, got %d: %v", len(doc), doc)
	}
	if doc["user"] != owner {
		t.Errorf("expected owner constraint to survive other criteria")
	}
	if doc["category"] != category {
		t.Errorf("expected category constraint to survive other criteria")
	}
}

func TestBlogFilter_Pure(t *testing.T) {
	filter := BlogFilter{
		Owner:    primitive.NewObjectID(),
		Category: primitive.NewObjectID(),
		Keyword:  "news",
	}

	first := filter.Document()
	second := filter.Document()

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical documents across calls, got %v and %v", first, second)
	}
}

func TestPage_Window(t *testing.T) {
	tests := []struct {
		name     string
		page     Page
		wantSkip int64
		wantTake int64
	}{
		{"first page", Page{Number: 1, Size: 10}, 0, 10},
		{"second page", Page{Number: 2, Size: 10}, 10, 10},
		{"third page", Page{Number: 3, Size: 10}, 20, 10},
		{"odd size", Page{Number: 4, Size: 7}, 21, 7},
		{"single item pages", Page{Number: 100, Size: 1}, 99, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.page.Skip(); got != test.wantSkip {
				t.Errorf("expected skip %d, got %d", test.wantSkip, got)
			}
			if got := test.page.Take(); got != test.wantTake {
				t.Errorf("expected take %d, got %d", test.wantTake, got)
			}
		})
	}
}

func TestBlogSort_AscendingByCreation(t *testing.T) {
	if len(blogSort) != 1 {
		t.Fatalf("expected a single sort key, got %d", len(blogSort))
	}
	if blogSort[0].Key != "created_at" || blogSort[0].Value != 1 {
		t.Fatalf("expected ascending created_at sort, got %v", blogSort)
	}
}
