package vireo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vireo-ai/vireo-go/core"
)

// CreateVectorStore creates a new vector store.
func (c *Client) CreateVectorStore(ctx context.Context, req *VectorStoreCreateRequest) (*VectorStore, error) {
	var out VectorStore
	err := c.do(ctx, requestSpec{
		op:     "vector_stores.create",
		method: http.MethodPost,
		path:   "/vector_stores",
		body:   req,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVectorStore retrieves a vector store by ID.
func (c *Client) GetVectorStore(ctx context.Context, vectorStoreID string) (*VectorStore, error) {
	var out VectorStore
	err := c.do(ctx, requestSpec{
		op:     "vector_stores.get",
		method: http.MethodGet,
		path:   "/vector_stores/" + vectorStoreID,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListVectorStores returns a page of vector stores. params may be nil for
// server defaults.
func (c *Client) ListVectorStores(ctx context.Context, params *ListParams) (*List[VectorStore], error) {
	var out List[VectorStore]
	err := c.do(ctx, requestSpec{
		op:     "vector_stores.list",
		method: http.MethodGet,
		path:   "/vector_stores",
		query:  params.values(),
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ModifyVectorStore updates vector store configuration.
func (c *Client) ModifyVectorStore(ctx context.Context, vectorStoreID string, req *VectorStoreModifyRequest) (*VectorStore, error) {
	var out VectorStore
	err := c.do(ctx, requestSpec{
		op:     "vector_stores.modify",
		method: http.MethodPost,
		path:   "/vector_stores/" + vectorStoreID,
		body:   req,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteVectorStore deletes a vector store. Attached files are detached but
// not deleted.
func (c *Client) DeleteVectorStore(ctx context.Context, vectorStoreID string) (*VectorStoreDeleteResponse, error) {
	var out VectorStoreDeleteResponse
	err := c.do(ctx, requestSpec{
		op:     "vector_stores.delete",
		method: http.MethodDelete,
		path:   "/vector_stores/" + vectorStoreID,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddVectorStoreFile attaches an uploaded file to a vector store for
// processing.
func (c *Client) AddVectorStoreFile(ctx context.Context, vectorStoreID string, req *VectorStoreFileAddRequest) (*VectorStoreFile, error) {
	var out VectorStoreFile
	err := c.do(ctx, requestSpec{
		op:     "vector_stores.files.add",
		method: http.MethodPost,
		path:   "/vector_stores/" + vectorStoreID + "/files",
		body:   req,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVectorStoreFile retrieves a vector store file attachment by ID.
func (c *Client) GetVectorStoreFile(ctx context.Context, vectorStoreID, fileID string) (*VectorStoreFile, error) {
	var out VectorStoreFile
	err := c.do(ctx, requestSpec{
		op:     "vector_stores.files.get",
		method: http.MethodGet,
		path:   "/vector_stores/" + vectorStoreID + "/files/" + fileID,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *VectorStoreFileListParams) values() url.Values {
	if p == nil {
		return url.Values{}
	}
	v := p.ListParams.values()
	if p.Filter != nil {
		v.Set("filter", string(*p.Filter))
	}
	return v
}

// ListVectorStoreFiles returns a page of files attached to a vector store,
// optionally filtered by processing status. params may be nil for server
// defaults.
func (c *Client) ListVectorStoreFiles(ctx context.Context, vectorStoreID string, params *VectorStoreFileListParams) (*List[VectorStoreFile], error) {
	var out List[VectorStoreFile]
	err := c.do(ctx, requestSpec{
		op:     "vector_stores.files.list",
		method: http.MethodGet,
		path:   "/vector_stores/" + vectorStoreID + "/files",
		query:  params.values(),
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteVectorStoreFile detaches a file from a vector store. The underlying
// uploaded file is untouched.
func (c *Client) DeleteVectorStoreFile(ctx context.Context, vectorStoreID, fileID string) (*VectorStoreFileDeleteResponse, error) {
	var out VectorStoreFileDeleteResponse
	err := c.do(ctx, requestSpec{
		op:     "vector_stores.files.delete",
		method: http.MethodDelete,
		path:   "/vector_stores/" + vectorStoreID + "/files/" + fileID,
		beta:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PollVectorStoreUntilReady polls a vector store until it reaches completed
// status. It returns an error if the store expires or the context is
// canceled.
func (c *Client) PollVectorStoreUntilReady(ctx context.Context, vectorStoreID string, interval time.Duration) (*VectorStore, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	vs, err := c.GetVectorStore(ctx, vectorStoreID)
	if err != nil {
		return nil, err
	}

	for vs.Status != VectorStoreStatusCompleted {
		if vs.Status == VectorStoreStatusExpired {
			return nil, &core.APIError{
				Code:    "vector_store_expired",
				Message: fmt.Sprintf("vector store %s has expired", vectorStoreID),
				Err:     core.ErrBadRequest,
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			vs, err = c.GetVectorStore(ctx, vectorStoreID)
			if err != nil {
				return nil, err
			}
		}
	}

	return vs, nil
}
