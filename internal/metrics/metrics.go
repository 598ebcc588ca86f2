// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Blog management metrics
	IncBlogCreated()
	IncBlogUpdated()
	IncBlogDeleted()
	ObserveBlogListDuration(duration time.Duration)

	// Category management metrics
	IncCategoryCreated()
	IncCategoryUpdated()
	IncCategoryDeleted()
}
