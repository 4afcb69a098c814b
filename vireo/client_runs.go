package vireo

import (
	"context"
	"net/http"
	"time"
)

// CreateRun starts a run of an assistant over a thread.
func (c *Client) CreateRun(ctx context.Context, threadID string, req *RunCreateRequest) (*Run, error) {
	var out Run
	err := c.do(ctx, requestSpec{
		op:     "threads.runs.create",
		method: http.MethodPost,
		path:   "/threads/" + threadID + "/runs",
		body:   req,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateThreadAndRun creates a thread and immediately starts a run on it.
func (c *Client) CreateThreadAndRun(ctx context.Context, req *ThreadAndRunRequest) (*Run, error) {
	var out Run
	err := c.do(ctx, requestSpec{
		op:     "threads.runs.create_thread_and_run",
		method: http.MethodPost,
		path:   "/threads/runs",
		body:   req,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRun retrieves a run by ID.
func (c *Client) GetRun(ctx context.Context, threadID, runID string) (*Run, error) {
	var out Run
	err := c.do(ctx, requestSpec{
		op:     "threads.runs.get",
		method: http.MethodGet,
		path:   "/threads/" + threadID + "/runs/" + runID,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRuns returns a page of runs in a thread. params may be nil for server
// defaults.
func (c *Client) ListRuns(ctx context.Context, threadID string, params *ListParams) (*List[Run], error) {
	var out List[Run]
	err := c.do(ctx, requestSpec{
		op:     "threads.runs.list",
		method: http.MethodGet,
		path:   "/threads/" + threadID + "/runs",
		query:  params.values(),
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ModifyRun updates run metadata.
func (c *Client) ModifyRun(ctx context.Context, threadID, runID string, req *RunModifyRequest) (*Run, error) {
	var out Run
	err := c.do(ctx, requestSpec{
		op:     "threads.runs.modify",
		method: http.MethodPost,
		path:   "/threads/" + threadID + "/runs/" + runID,
		body:   req,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelRun requests cancellation of an in-progress run. The run moves to
// cancelling and later to cancelled; cancellation is not instantaneous.
func (c *Client) CancelRun(ctx context.Context, threadID, runID string) (*Run, error) {
	var out Run
	err := c.do(ctx, requestSpec{
		op:     "threads.runs.cancel",
		method: http.MethodPost,
		path:   "/threads/" + threadID + "/runs/" + runID + "/cancel",
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitToolOutputs delivers tool results to a run waiting in
// requires_action. All pending calls must be answered in one submission.
func (c *Client) SubmitToolOutputs(ctx context.Context, threadID, runID string, req *ToolOutputsRequest) (*Run, error) {
	var out Run
	err := c.do(ctx, requestSpec{
		op:     "threads.runs.submit_tool_outputs",
		method: http.MethodPost,
		path:   "/threads/" + threadID + "/runs/" + runID + "/submit_tool_outputs",
		body:   req,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PollRun polls a run until it reaches a terminal status or requires_action.
// It checks immediately, then on each tick, and returns the context error if
// the context is canceled first.
func (c *Client) PollRun(ctx context.Context, threadID, runID string, interval time.Duration) (*Run, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	run, err := c.GetRun(ctx, threadID, runID)
	if err != nil {
		return nil, err
	}

	for !run.Status.IsTerminal() && run.Status != RunStatusRequiresAction {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			run, err = c.GetRun(ctx, threadID, runID)
			if err != nil {
				return nil, err
			}
		}
	}

	return run, nil
}
