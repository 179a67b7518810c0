package api

import "time"

// DefaultBaseURL is the single source of truth for the CLI API target.
const DefaultBaseURL = "http://localhost:8000"

// NewDefaultClient builds a client pointed at the default API URL.
func NewDefaultClient(apiKey string, timeout ...time.Duration) *Client {
	return NewClient(DefaultBaseURL, apiKey, timeout...)
}

// NewClientForServer builds a client for serverURL, falling back to the default.
func NewClientForServer(serverURL, apiKey string, timeout ...time.Duration) *Client {
	if serverURL == "" {
		return NewDefaultClient(apiKey, timeout...)
	}
	return NewClient(serverURL, apiKey, timeout...)
}
