package vireo

import (
	"context"
	"net/http"
	"net/url"
)

// CreateMessage appends a message to a thread.
func (c *Client) CreateMessage(ctx context.Context, threadID string, req *MessageCreateRequest) (*Message, error) {
	var out Message
	err := c.do(ctx, requestSpec{
		op:     "threads.messages.create",
		method: http.MethodPost,
		path:   "/threads/" + threadID + "/messages",
		body:   req,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMessage retrieves a message by ID.
func (c *Client) GetMessage(ctx context.Context, threadID, messageID string) (*Message, error) {
	var out Message
	err := c.do(ctx, requestSpec{
		op:     "threads.messages.get",
		method: http.MethodGet,
		path:   "/threads/" + threadID + "/messages/" + messageID,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *MessageListParams) values() url.Values {
	if p == nil {
		return url.Values{}
	}
	v := p.ListParams.values()
	if p.RunID != nil {
		v.Set("run_id", *p.RunID)
	}
	return v
}

// ListMessages returns a page of messages in a thread, optionally filtered
// to those created by one run. params may be nil for server defaults.
func (c *Client) ListMessages(ctx context.Context, threadID string, params *MessageListParams) (*List[Message], error) {
	var out List[Message]
	err := c.do(ctx, requestSpec{
		op:     "threads.messages.list",
		method: http.MethodGet,
		path:   "/threads/" + threadID + "/messages",
		query:  params.values(),
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ModifyMessage updates message metadata.
func (c *Client) ModifyMessage(ctx context.Context, threadID, messageID string, req *MessageModifyRequest) (*Message, error) {
	var out Message
	err := c.do(ctx, requestSpec{
		op:     "threads.messages.modify",
		method: http.MethodPost,
		path:   "/threads/" + threadID + "/messages/" + messageID,
		body:   req,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMessage deletes a message from a thread.
func (c *Client) DeleteMessage(ctx context.Context, threadID, messageID string) (*MessageDeleteResponse, error) {
	var out MessageDeleteResponse
	err := c.do(ctx, requestSpec{
		op:     "threads.messages.delete",
		method: http.MethodDelete,
		path:   "/threads/" + threadID + "/messages/" + messageID,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
