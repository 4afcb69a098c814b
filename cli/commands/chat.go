package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vireo-ai/vireo-go/core"
	"github.com/vireo-ai/vireo-go/vireo"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitAPI        = 2
	ExitNetwork    = 3
)

var (
	prompt      string
	system      string
	temperature float32
	maxTokens   int
	stream      bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Send a chat completion request",
	Long: `Send a chat completion request.

Examples:
  vireo chat --model gpt-4o --prompt "Hello"
  vireo chat --prompt "Hello" --stream
  vireo chat --prompt "Hello" --json`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVar(&prompt, "prompt", "", "User message (required)")
	chatCmd.Flags().StringVar(&system, "system", "", "System message")
	chatCmd.Flags().Float32Var(&temperature, "temperature", 0, "Temperature (0 = use default)")
	chatCmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Max tokens (0 = use default)")
	chatCmd.Flags().BoolVar(&stream, "stream", false, "Enable streaming output")

	_ = chatCmd.MarkFlagRequired("prompt")
}

func runChat(cmd *cobra.Command, args []string) error {
	modelID := GetModel()
	if modelID == "" {
		return exitWithCode(ExitValidation, fmt.Errorf("model required: use --model flag or set default_model in config"))
	}

	client, err := newClient()
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	req := &vireo.ChatCompletionRequest{
		Model: modelID,
	}
	if system != "" {
		req.Messages = append(req.Messages, vireo.ChatMessage{Role: vireo.ChatRoleSystem, Content: system})
	}
	req.Messages = append(req.Messages, vireo.ChatMessage{Role: vireo.ChatRoleUser, Content: prompt})

	if temperature > 0 {
		req.Temperature = vireo.Ptr(temperature)
	}
	if maxTokens > 0 {
		req.MaxTokens = vireo.Ptr(maxTokens)
	}

	ctx := context.Background()

	if stream {
		return runStreamingChat(ctx, client, req)
	}
	return runNonStreamingChat(ctx, client, req)
}

func runNonStreamingChat(ctx context.Context, client *vireo.Client, req *vireo.ChatCompletionRequest) error {
	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		return handleChatError(err)
	}

	if IsJSONOutput() {
		return outputJSON(resp)
	}

	// Text output
	fmt.Printf("> %s\n", prompt)
	if msg := resp.FirstChoice(); msg != nil {
		fmt.Println(msg.Content)
	}
	return nil
}

func runStreamingChat(ctx context.Context, client *vireo.Client, req *vireo.ChatCompletionRequest) error {
	chatStream, err := client.StreamChatCompletion(ctx, req)
	if err != nil {
		return handleChatError(err)
	}

	if IsJSONOutput() {
		// Accumulate for JSON output
		resp, err := vireo.DrainChatStream(ctx, chatStream)
		if err != nil {
			return handleChatError(err)
		}
		return outputJSON(resp)
	}

	// Stream text output
	fmt.Printf("> %s\n", prompt)

	var finalResp *vireo.ChatCompletion
	var streamErr error

	// Read chunks as they arrive
	for chunk := range chatStream.Ch {
		fmt.Print(chunk.Delta)
	}

	// Check for errors
	select {
	case err := <-chatStream.Err:
		if err != nil {
			streamErr = err
		}
	default:
	}

	// Get final response
	select {
	case resp := <-chatStream.Final:
		finalResp = resp
	default:
	}

	// Print final newline
	fmt.Println()

	if streamErr != nil {
		return handleChatError(streamErr)
	}

	// Log usage if verbose
	if IsVerbose() && finalResp != nil {
		fmt.Fprintf(os.Stderr, "Usage: %d prompt + %d completion = %d total tokens\n",
			finalResp.Usage.PromptTokens,
			finalResp.Usage.CompletionTokens,
			finalResp.Usage.TotalTokens)
	}

	return nil
}

func handleChatError(err error) error {
	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		if IsJSONOutput() {
			outputErrorJSON(apiErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", apiErr.Message)
			if apiErr.RequestID != "" {
				fmt.Fprintf(os.Stderr, "  Request ID: %s\n", apiErr.RequestID)
			}
		}

		// Determine exit code based on error type
		switch {
		case errors.Is(err, core.ErrNetwork):
			return exitWithCode(ExitNetwork, err)
		default:
			return exitWithCode(ExitAPI, err)
		}
	}

	// Network errors
	if errors.Is(err, core.ErrNetwork) {
		if IsJSONOutput() {
			outputSimpleErrorJSON("network_error", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: network error: %v\n", err)
		}
		return exitWithCode(ExitNetwork, err)
	}

	// Generic error
	if IsJSONOutput() {
		outputSimpleErrorJSON("error", err.Error())
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return exitWithCode(ExitAPI, err)
}

func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func outputErrorJSON(apiErr *core.APIError) {
	output := map[string]interface{}{
		"error": map[string]interface{}{
			"type":       apiErr.Code,
			"message":    apiErr.Message,
			"status":     apiErr.Status,
			"request_id": apiErr.RequestID,
		},
	}

	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	enc.Encode(output)
}

func outputSimpleErrorJSON(errType, message string) {
	output := map[string]interface{}{
		"error": map[string]interface{}{
			"type":    errType,
			"message": message,
		},
	}

	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	enc.Encode(output)
}

// exitError wraps an error with an exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) ExitCode() int {
	return e.code
}

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}
