package vireo

import (
	"context"
	"net/http"
)

// CreateAssistant creates a new assistant.
func (c *Client) CreateAssistant(ctx context.Context, req *AssistantCreateRequest) (*Assistant, error) {
	var out Assistant
	err := c.do(ctx, requestSpec{
		op:     "assistants.create",
		method: http.MethodPost,
		path:   "/assistants",
		body:   req,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAssistant retrieves an assistant by ID.
func (c *Client) GetAssistant(ctx context.Context, assistantID string) (*Assistant, error) {
	var out Assistant
	err := c.do(ctx, requestSpec{
		op:     "assistants.get",
		method: http.MethodGet,
		path:   "/assistants/" + assistantID,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAssistants returns a page of assistants. params may be nil for server
// defaults.
func (c *Client) ListAssistants(ctx context.Context, params *ListParams) (*List[Assistant], error) {
	var out List[Assistant]
	err := c.do(ctx, requestSpec{
		op:     "assistants.list",
		method: http.MethodGet,
		path:   "/assistants",
		query:  params.values(),
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ModifyAssistant updates an assistant. Only non-nil request fields change.
func (c *Client) ModifyAssistant(ctx context.Context, assistantID string, req *AssistantModifyRequest) (*Assistant, error) {
	var out Assistant
	err := c.do(ctx, requestSpec{
		op:     "assistants.modify",
		method: http.MethodPost,
		path:   "/assistants/" + assistantID,
		body:   req,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAssistant deletes an assistant.
func (c *Client) DeleteAssistant(ctx context.Context, assistantID string) (*AssistantDeleteResponse, error) {
	var out AssistantDeleteResponse
	err := c.do(ctx, requestSpec{
		op:     "assistants.delete",
		method: http.MethodDelete,
		path:   "/assistants/" + assistantID,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
