package catalog

import "context"

// RefreshJob reloads the catalog from the authority on the worker pool
type RefreshJob struct {
	catalog *Catalog
}

// NewRefreshJob creates a refresh job for c
func NewRefreshJob(c *Catalog) *RefreshJob {
	return &RefreshJob{catalog: c}
}

// Name labels the job in worker metrics
func (j *RefreshJob) Name() string { return RefreshJobName }

// Process refreshes the catalog. Failures leave the previous entries serving.
func (j *RefreshJob) Process(ctx context.Context) error {
	return j.catalog.Refresh(ctx)
}
