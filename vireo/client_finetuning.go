package vireo

import (
	"context"
	"net/http"
)

// CreateFineTuningJob starts a fine-tuning job.
func (c *Client) CreateFineTuningJob(ctx context.Context, req *FineTuningJobCreateRequest) (*FineTuningJob, error) {
	var out FineTuningJob
	err := c.do(ctx, requestSpec{
		op:     "fine_tuning.jobs.create",
		method: http.MethodPost,
		path:   "/fine_tuning/jobs",
		body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFineTuningJob retrieves a fine-tuning job by ID.
func (c *Client) GetFineTuningJob(ctx context.Context, jobID string) (*FineTuningJob, error) {
	var out FineTuningJob
	err := c.do(ctx, requestSpec{
		op:     "fine_tuning.jobs.get",
		method: http.MethodGet,
		path:   "/fine_tuning/jobs/" + jobID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFineTuningJobs returns a page of fine-tuning jobs. params may be nil
// for server defaults.
func (c *Client) ListFineTuningJobs(ctx context.Context, params *ListParams) (*List[FineTuningJob], error) {
	var out List[FineTuningJob]
	err := c.do(ctx, requestSpec{
		op:     "fine_tuning.jobs.list",
		method: http.MethodGet,
		path:   "/fine_tuning/jobs",
		query:  params.values(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelFineTuningJob requests cancellation of a running fine-tuning job.
func (c *Client) CancelFineTuningJob(ctx context.Context, jobID string) (*FineTuningJob, error) {
	var out FineTuningJob
	err := c.do(ctx, requestSpec{
		op:     "fine_tuning.jobs.cancel",
		method: http.MethodPost,
		path:   "/fine_tuning/jobs/" + jobID + "/cancel",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFineTuningJobEvents returns a page of progress events for a job.
// params may be nil for server defaults.
func (c *Client) ListFineTuningJobEvents(ctx context.Context, jobID string, params *ListParams) (*List[FineTuningJobEvent], error) {
	var out List[FineTuningJobEvent]
	err := c.do(ctx, requestSpec{
		op:     "fine_tuning.jobs.events",
		method: http.MethodGet,
		path:   "/fine_tuning/jobs/" + jobID + "/events",
		query:  params.values(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
