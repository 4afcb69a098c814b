// Package vireo is a strongly typed client for the Vireo generative AI API.
//
// # Quick Start
//
//	client, err := vireo.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.CreateChatCompletion(ctx, &vireo.ChatCompletionRequest{
//	    Model: "gpt-4o",
//	    Messages: []vireo.ChatMessage{
//	        {Role: vireo.ChatRoleUser, Content: "Hello"},
//	    },
//	})
//
// # Content Blocks
//
// Message content is a tagged union: each block carries a type discriminator
// and exactly one populated variant. [ContentBlock] round-trips losslessly
// through JSON, and decoding fails loudly on unknown discriminators instead
// of guessing:
//
//	var block vireo.ContentBlock
//	if err := json.Unmarshal(data, &block); err != nil {
//	    if errors.Is(err, core.ErrUnknownContentType) {
//	        // the API introduced a variant this client doesn't know
//	    }
//	}
//
// # Optional Fields
//
// Request types use pointer fields for server-defaulted parameters: nil
// means the field is absent from the wire and the server default applies,
// which is not the same as sending a zero or a null. [Ptr] builds pointers
// inline:
//
//	req.Temperature = vireo.Ptr(float32(0.2))
//
// Enum defaults follow the same rule. A [ResponseFormat] of Auto and an
// [ImageDetail] of Auto are never written; decoding normalizes the absent
// field back to the default so round-trips stay exact.
//
// # Streaming
//
// [Client.StreamChatCompletion] and [Client.StreamRun] return channel-based
// streams. All channels are closed when a stream ends, the error channel
// emits at most one error, and [DrainChatStream] collapses a stream back
// into a complete response.
package vireo
