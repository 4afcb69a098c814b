package vireo

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

// UploadFile uploads a file for use by assistants, fine-tuning, or batch
// jobs. The body is multipart/form-data; uploads are not retried.
func (c *Client) UploadFile(ctx context.Context, req *FileUploadRequest) (*File, error) {
	var out File
	err := c.doMultipart(ctx, requestSpec{
		op:     "files.upload",
		method: http.MethodPost,
		path:   "/files",
	}, func(w *multipart.Writer) error {
		if err := w.WriteField("purpose", string(req.Purpose)); err != nil {
			return fmt.Errorf("failed to write purpose field: %w", err)
		}
		if req.ExpiresAfter != nil {
			if err := w.WriteField("expires_after[anchor]", req.ExpiresAfter.Anchor); err != nil {
				return fmt.Errorf("failed to write expires_after[anchor] field: %w", err)
			}
			if err := w.WriteField("expires_after[seconds]", strconv.Itoa(req.ExpiresAfter.Seconds)); err != nil {
				return fmt.Errorf("failed to write expires_after[seconds] field: %w", err)
			}
		}
		part, err := w.CreateFormFile("file", req.Filename)
		if err != nil {
			return fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := io.Copy(part, req.File); err != nil {
			return fmt.Errorf("failed to copy file contents: %w", err)
		}
		return nil
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFile retrieves file metadata by ID.
func (c *Client) GetFile(ctx context.Context, fileID string) (*File, error) {
	var out File
	err := c.do(ctx, requestSpec{
		op:     "files.get",
		method: http.MethodGet,
		path:   "/files/" + fileID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *FileListParams) values() url.Values {
	if p == nil {
		return url.Values{}
	}
	v := p.ListParams.values()
	if p.Purpose != nil {
		v.Set("purpose", string(*p.Purpose))
	}
	return v
}

// ListFiles returns a page of uploaded files, optionally filtered by
// purpose. params may be nil for server defaults.
func (c *Client) ListFiles(ctx context.Context, params *FileListParams) (*List[File], error) {
	var out List[File]
	err := c.do(ctx, requestSpec{
		op:     "files.list",
		method: http.MethodGet,
		path:   "/files",
		query:  params.values(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFile deletes an uploaded file.
func (c *Client) DeleteFile(ctx context.Context, fileID string) (*FileDeleteResponse, error) {
	var out FileDeleteResponse
	err := c.do(ctx, requestSpec{
		op:     "files.delete",
		method: http.MethodDelete,
		path:   "/files/" + fileID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFileContent downloads the raw bytes of a file.
func (c *Client) GetFileContent(ctx context.Context, fileID string) ([]byte, error) {
	return c.doRaw(ctx, requestSpec{
		op:     "files.content",
		method: http.MethodGet,
		path:   "/files/" + fileID + "/content",
	})
}
