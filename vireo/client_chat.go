package vireo

import (
	"context"
	"net/http"
)

// CreateChatCompletion generates a model response for the given conversation.
func (c *Client) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletion, error) {
	var out ChatCompletion
	err := c.do(ctx, requestSpec{
		op:     "chat.completions.create",
		method: http.MethodPost,
		path:   "/chat/completions",
		body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
