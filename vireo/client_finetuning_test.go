package vireo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFineTuningJobStatusIsTerminal(t *testing.T) {
	assert.True(t, FineTuningJobStatusSucceeded.IsTerminal())
	assert.True(t, FineTuningJobStatusFailed.IsTerminal())
	assert.True(t, FineTuningJobStatusCancelled.IsTerminal())
	assert.False(t, FineTuningJobStatusQueued.IsTerminal())
	assert.False(t, FineTuningJobStatusRunning.IsTerminal())
	assert.False(t, FineTuningJobStatusValidatingFiles.IsTerminal())
}

func TestCreateFineTuningJob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fine_tuning/jobs", r.URL.Path)

		var req FineTuningJobCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, "file-train", req.TrainingFile)

		json.NewEncoder(w).Encode(FineTuningJob{
			ID:           "ftjob-123",
			Object:       "fine_tuning.job",
			Model:        "gpt-4o-mini",
			Status:       FineTuningJobStatusValidatingFiles,
			TrainingFile: "file-train",
		})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	job, err := c.CreateFineTuningJob(context.Background(), &FineTuningJobCreateRequest{
		Model:        "gpt-4o-mini",
		TrainingFile: "file-train",
	})
	require.NoError(t, err)
	assert.Equal(t, "ftjob-123", job.ID)
	assert.False(t, job.Status.IsTerminal())
}

func TestHyperparametersPreserveAutoAndNumbers(t *testing.T) {
	req := FineTuningJobCreateRequest{
		Model:        "gpt-4o-mini",
		TrainingFile: "file-train",
		Hyperparameters: &Hyperparameters{
			NEpochs:   json.RawMessage(`"auto"`),
			BatchSize: json.RawMessage(`8`),
		},
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"n_epochs":"auto"`)
	assert.Contains(t, string(data), `"batch_size":8`)
	assert.NotContains(t, string(data), "learning_rate_multiplier")
}

func TestListFineTuningJobEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fine_tuning/jobs/ftjob-123/events", r.URL.Path)
		json.NewEncoder(w).Encode(List[FineTuningJobEvent]{
			Object: "list",
			Data: []FineTuningJobEvent{
				{ID: "ftevent-1", Level: FineTuningJobEventLevelInfo, Message: "job started"},
				{ID: "ftevent-2", Level: FineTuningJobEventLevelInfo, Message: "epoch 1/3 done"},
			},
			HasMore: false,
		})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	events, err := c.ListFineTuningJobEvents(context.Background(), "ftjob-123", nil)
	require.NoError(t, err)
	require.Len(t, events.Data, 2)
	assert.Equal(t, "job started", events.Data[0].Message)
}

func TestCancelFineTuningJob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fine_tuning/jobs/ftjob-123/cancel", r.URL.Path)
		json.NewEncoder(w).Encode(FineTuningJob{ID: "ftjob-123", Status: FineTuningJobStatusCancelled})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	job, err := c.CancelFineTuningJob(context.Background(), "ftjob-123")
	require.NoError(t, err)
	assert.True(t, job.Status.IsTerminal())
}

func TestListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		json.NewEncoder(w).Encode(List[Model]{
			Object: "list",
			Data: []Model{
				{ID: "gpt-4o", Object: "model", Created: 1700000000, OwnedBy: "system"},
				{ID: "gpt-4o-mini", Object: "model", OwnedBy: "system"},
			},
		})
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	models, err := c.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "gpt-4o", models[0].ID)
	assert.Equal(t, "2023-11-14T22:13:20Z", models[0].Created.String())
}
