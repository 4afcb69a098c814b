package vireo

import (
	"context"
	"net/http"
)

// CreateEmbeddings computes embedding vectors for the given input.
func (c *Client) CreateEmbeddings(ctx context.Context, req *EmbeddingRequest) (*EmbeddingResponse, error) {
	var out EmbeddingResponse
	err := c.do(ctx, requestSpec{
		op:     "embeddings.create",
		method: http.MethodPost,
		path:   "/embeddings",
		body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
