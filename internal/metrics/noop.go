package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncBlogCreated is a no-op.
func (n *NoopRecorder) IncBlogCreated() {}

// IncBlogUpdated is a no-op.
func (n *NoopRecorder) IncBlogUpdated() {}

// IncBlogDeleted is a no-op.
func (n *NoopRecorder) IncBlogDeleted() {}

// ObserveBlogListDuration is a no-op.
func (n *NoopRecorder) ObserveBlogListDuration(duration time.Duration) {}

// IncCategoryCreated is a no-op.
func (n *NoopRecorder) IncCategoryCreated() {}

// IncCategoryUpdated is a no-op.
func (n *NoopRecorder) IncCategoryUpdated() {}

// IncCategoryDeleted is a no-op.
func (n *NoopRecorder) IncCategoryDeleted() {}
