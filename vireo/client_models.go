package vireo

import (
	"context"
	"net/http"
)

// ListModels returns all models available to the caller. The models list is
// not paginated.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	var out List[Model]
	err := c.do(ctx, requestSpec{
		op:     "models.list",
		method: http.MethodGet,
		path:   "/models",
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetModel retrieves a model by ID.
func (c *Client) GetModel(ctx context.Context, modelID string) (*Model, error) {
	var out Model
	err := c.do(ctx, requestSpec{
		op:     "models.get",
		method: http.MethodGet,
		path:   "/models/" + modelID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteModel deletes a fine-tuned model owned by the caller.
func (c *Client) DeleteModel(ctx context.Context, modelID string) (*ModelDeleteResponse, error) {
	var out ModelDeleteResponse
	err := c.do(ctx, requestSpec{
		op:     "models.delete",
		method: http.MethodDelete,
		path:   "/models/" + modelID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
