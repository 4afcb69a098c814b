package vireo

// EmbeddingEncodingFormat selects the vector wire encoding.
type EmbeddingEncodingFormat string

const (
	EmbeddingEncodingFormatFloat  EmbeddingEncodingFormat = "float"
	EmbeddingEncodingFormatBase64 EmbeddingEncodingFormat = "base64"
)

// EmbeddingRequest contains parameters for an embeddings call. Input
// accepts a string or a slice of strings.
type EmbeddingRequest struct {
	Model          string                  `json:"model"`
	Input          any                     `json:"input"`
	EncodingFormat EmbeddingEncodingFormat `json:"encoding_format,omitempty"`
	Dimensions     *int                    `json:"dimensions,omitempty"`
	User           string                  `json:"user,omitempty"`
}

// Embedding is one vector in an embeddings response.
type Embedding struct {
	Object    string    `json:"object"`
	Index     int       `json:"index"`
	Embedding []float64 `json:"embedding"`
}

// EmbeddingUsage reports token consumption of an embeddings call.
type EmbeddingUsage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// EmbeddingResponse is the full embeddings result.
type EmbeddingResponse struct {
	Object string         `json:"object"`
	Data   []Embedding    `json:"data"`
	Model  string         `json:"model"`
	Usage  EmbeddingUsage `json:"usage"`
}
