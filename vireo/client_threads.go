package vireo

import (
	"context"
	"net/http"
)

// CreateThread creates a new thread, optionally seeded with messages.
// req may be nil for an empty thread.
func (c *Client) CreateThread(ctx context.Context, req *ThreadCreateRequest) (*Thread, error) {
	var body any
	if req != nil {
		body = req
	}
	var out Thread
	err := c.do(ctx, requestSpec{
		op:     "threads.create",
		method: http.MethodPost,
		path:   "/threads",
		body:   body,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetThread retrieves a thread by ID.
func (c *Client) GetThread(ctx context.Context, threadID string) (*Thread, error) {
	var out Thread
	err := c.do(ctx, requestSpec{
		op:     "threads.get",
		method: http.MethodGet,
		path:   "/threads/" + threadID,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ModifyThread updates thread tool resources or metadata.
func (c *Client) ModifyThread(ctx context.Context, threadID string, req *ThreadModifyRequest) (*Thread, error) {
	var out Thread
	err := c.do(ctx, requestSpec{
		op:     "threads.modify",
		method: http.MethodPost,
		path:   "/threads/" + threadID,
		body:   req,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteThread deletes a thread and its messages.
func (c *Client) DeleteThread(ctx context.Context, threadID string) (*ThreadDeleteResponse, error) {
	var out ThreadDeleteResponse
	err := c.do(ctx, requestSpec{
		op:     "threads.delete",
		method: http.MethodDelete,
		path:   "/threads/" + threadID,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
