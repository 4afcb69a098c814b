package vireo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireo-ai/vireo-go/core"
)

func TestCreateVectorStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vector_stores", r.URL.Path)
		assert.Equal(t, "assistants=v2", r.Header.Get("OpenAI-Beta"))

		var req VectorStoreCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "docs", req.Name)
		assert.Equal(t, []string{"file-abc"}, req.FileIDs)

		json.NewEncoder(w).Encode(VectorStore{
			ID:     "vs_123",
			Object: "vector_store",
			Name:   "docs",
			Status: VectorStoreStatusInProgress,
			FileCounts: VectorStoreFileCounts{
				InProgress: 1,
				Total:      1,
			},
		})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	vs, err := c.CreateVectorStore(context.Background(), &VectorStoreCreateRequest{
		Name:    "docs",
		FileIDs: []string{"file-abc"},
	})
	require.NoError(t, err)
	assert.Equal(t, "vs_123", vs.ID)
	assert.Equal(t, 1, vs.FileCounts.InProgress)
}

func TestPollVectorStoreUntilReady(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		status := VectorStoreStatusInProgress
		if n >= 3 {
			status = VectorStoreStatusCompleted
		}
		json.NewEncoder(w).Encode(VectorStore{ID: "vs_123", Status: status})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	vs, err := c.PollVectorStoreUntilReady(context.Background(), "vs_123", time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, VectorStoreStatusCompleted, vs.Status)
}

func TestPollVectorStoreExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(VectorStore{ID: "vs_123", Status: VectorStoreStatusExpired})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	_, err := c.PollVectorStoreUntilReady(context.Background(), "vs_123", time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBadRequest)
	assert.Contains(t, err.Error(), "expired")
}

func TestVectorStoreFileLifecycle(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /vector_stores/vs_123/files", func(w http.ResponseWriter, r *http.Request) {
		var req VectorStoreFileAddRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "file-abc", req.FileID)
		json.NewEncoder(w).Encode(VectorStoreFile{
			ID:            "file-abc",
			VectorStoreID: "vs_123",
			Status:        VectorStoreFileStatusInProgress,
		})
	})
	mux.HandleFunc("GET /vector_stores/vs_123/files", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "completed", r.URL.Query().Get("filter"))
		json.NewEncoder(w).Encode(List[VectorStoreFile]{
			Object: "list",
			Data:   []VectorStoreFile{{ID: "file-abc", Status: VectorStoreFileStatusCompleted}},
		})
	})
	mux.HandleFunc("DELETE /vector_stores/vs_123/files/file-abc", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(VectorStoreFileDeleteResponse{ID: "file-abc", Deleted: true})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	ctx := context.Background()

	added, err := c.AddVectorStoreFile(ctx, "vs_123", &VectorStoreFileAddRequest{FileID: "file-abc"})
	require.NoError(t, err)
	assert.Equal(t, VectorStoreFileStatusInProgress, added.Status)

	list, err := c.ListVectorStoreFiles(ctx, "vs_123", &VectorStoreFileListParams{
		Filter: Ptr(VectorStoreFileStatusCompleted),
	})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)

	deleted, err := c.DeleteVectorStoreFile(ctx, "vs_123", "file-abc")
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
}
