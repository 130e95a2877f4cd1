// Package common contains small helpers and constants shared by the
// ArtSpace client packages.
package common

// Header names set on every outbound API request.
const (
	RequestIDHeaderName = "X-Request-ID"
	UserAgentHeaderName = "User-Agent"
)
