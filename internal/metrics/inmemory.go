package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	BlogsCreated        uint64
	BlogsUpdated        uint64
	BlogsDeleted        uint64
	ListDurationCount   uint64
	ListDurationTotalNs int64
	CategoriesCreated   uint64
	CategoriesUpdated   uint64
	CategoriesDeleted   uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	blogsCreated        uint64
	blogsUpdated        uint64
	blogsDeleted        uint64
	listDurationCount   uint64
	listDurationTotalNs int64
	categoriesCreated   uint64
	categoriesUpdated   uint64
	categoriesDeleted   uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		BlogsCreated:        atomic.LoadUint64(&m.blogsCreated),
		BlogsUpdated:        atomic.LoadUint64(&m.blogsUpdated),
		BlogsDeleted:        atomic.LoadUint64(&m.blogsDeleted),
		ListDurationCount:   atomic.LoadUint64(&m.listDurationCount),
		ListDurationTotalNs: atomic.LoadInt64(&m.listDurationTotalNs),
		CategoriesCreated:   atomic.LoadUint64(&m.categoriesCreated),
		CategoriesUpdated:   atomic.LoadUint64(&m.categoriesUpdated),
		CategoriesDeleted:   atomic.LoadUint64(&m.categoriesDeleted),
	}
}

// IncBlogCreated increments the blog created counter.
func (m *InMemoryRecorder) IncBlogCreated() {
	atomic.AddUint64(&m.blogsCreated, 1)
}

// IncBlogUpdated increments the blog updated counter.
func (m *InMemoryRecorder) IncBlogUpdated() {
	atomic.AddUint64(&m.blogsUpdated, 1)
}

// IncBlogDeleted increments the blog deleted counter.
func (m *InMemoryRecorder) IncBlogDeleted() {
	atomic.AddUint64(&m.blogsDeleted, 1)
}

// ObserveBlogListDuration records a listing query duration.
func (m *InMemoryRecorder) ObserveBlogListDuration(duration time.Duration) {
	atomic.AddUint64(&m.listDurationCount, 1)
	atomic.AddInt64(&m.listDurationTotalNs, duration.Nanoseconds())
}

// IncCategoryCreated increments the category created counter.
func (m *InMemoryRecorder) IncCategoryCreated() {
	atomic.AddUint64(&m.categoriesCreated, 1)
}

// IncCategoryUpdated increments the category updated counter.
func (m *InMemoryRecorder) IncCategoryUpdated() {
	atomic.AddUint64(&m.categoriesUpdated, 1)
}

// IncCategoryDeleted increments the category deleted counter.
func (m *InMemoryRecorder) IncCategoryDeleted() {
	atomic.AddUint64(&m.categoriesDeleted, 1)
}
