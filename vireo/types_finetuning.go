package vireo

import (
	"encoding/json"

	"github.com/vireo-ai/vireo-go/core"
)

// FineTuningJobStatus represents the server-driven job state machine,
// observed by the client.
type FineTuningJobStatus string

const (
	FineTuningJobStatusValidatingFiles FineTuningJobStatus = "validating_files"
	FineTuningJobStatusQueued          FineTuningJobStatus = "queued"
	FineTuningJobStatusRunning         FineTuningJobStatus = "running"
	FineTuningJobStatusSucceeded       FineTuningJobStatus = "succeeded"
	FineTuningJobStatusFailed          FineTuningJobStatus = "failed"
	FineTuningJobStatusCancelled       FineTuningJobStatus = "cancelled"
)

// fineTuningJobTerminal is the explicit table of states a job never leaves.
var fineTuningJobTerminal = map[FineTuningJobStatus]bool{
	FineTuningJobStatusSucceeded: true,
	FineTuningJobStatusFailed:    true,
	FineTuningJobStatusCancelled: true,
}

// IsTerminal reports whether the job has reached a state it never leaves.
func (s FineTuningJobStatus) IsTerminal() bool {
	return fineTuningJobTerminal[s]
}

// Hyperparameters tunes training. Fields accept a number or the string
// "auto", so they are raw JSON to preserve either form verbatim.
type Hyperparameters struct {
	BatchSize              json.RawMessage `json:"batch_size,omitempty"`
	LearningRateMultiplier json.RawMessage `json:"learning_rate_multiplier,omitempty"`
	NEpochs                json.RawMessage `json:"n_epochs,omitempty"`
}

// FineTuningJobError carries the failure reason of a failed job.
type FineTuningJobError struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Param   *string `json:"param,omitempty"`
}

// FineTuningJob is one training job.
type FineTuningJob struct {
	ID              string              `json:"id"`
	Object          string              `json:"object"`
	CreatedAt       core.UnixTime       `json:"created_at"`
	FinishedAt      *core.UnixTime      `json:"finished_at,omitempty"`
	Model           string              `json:"model"`
	FineTunedModel  *string             `json:"fine_tuned_model,omitempty"`
	OrganizationID  string              `json:"organization_id,omitempty"`
	Status          FineTuningJobStatus `json:"status"`
	Hyperparameters *Hyperparameters    `json:"hyperparameters,omitempty"`
	TrainingFile    string              `json:"training_file"`
	ValidationFile  *string             `json:"validation_file,omitempty"`
	ResultFiles     []string            `json:"result_files,omitempty"`
	TrainedTokens   *int64              `json:"trained_tokens,omitempty"`
	Error           *FineTuningJobError `json:"error,omitempty"`
	Seed            *int                `json:"seed,omitempty"`
}

// FineTuningJobCreateRequest contains parameters for starting a job.
type FineTuningJobCreateRequest struct {
	Model           string           `json:"model"`
	TrainingFile    string           `json:"training_file"`
	ValidationFile  *string          `json:"validation_file,omitempty"`
	Hyperparameters *Hyperparameters `json:"hyperparameters,omitempty"`
	Suffix          *string          `json:"suffix,omitempty"`
	Seed            *int             `json:"seed,omitempty"`
}

// FineTuningJobEventLevel classifies job event severity.
type FineTuningJobEventLevel string

const (
	FineTuningJobEventLevelInfo  FineTuningJobEventLevel = "info"
	FineTuningJobEventLevelWarn  FineTuningJobEventLevel = "warn"
	FineTuningJobEventLevelError FineTuningJobEventLevel = "error"
)

// FineTuningJobEvent is one progress event of a running job.
type FineTuningJobEvent struct {
	ID        string                  `json:"id"`
	Object    string                  `json:"object"`
	CreatedAt core.UnixTime           `json:"created_at"`
	Level     FineTuningJobEventLevel `json:"level"`
	Message   string                  `json:"message"`
}
