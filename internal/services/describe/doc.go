// Package describe provides the OpenRouter vision client that turns a
// rasterized illustration into a short scene description.
//
// # Call Contract
//
// Client.Describe sends a single chat-completion request carrying the PNG as
// a base64 data URL and constrains the response to JSON with exactly one
// field: {"description": "..."}. Any response that does not yield a
// non-empty description is a hard failure for that call. The client never
// retries; failure isolation lives at the per-item boundary in the batch
// runner.
//
// # Configuration
//
// Requires api_key and model; base_url, referer, title, and timeout are
// optional and default to OpenRouter values.
package describe
