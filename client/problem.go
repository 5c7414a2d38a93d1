package client

import "fmt"

// Problem represents an RFC 9457 Problem Details error body returned by an
// HTTP backend. It implements error and is returned unchanged to whoever
// called the registry.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	// Code is an API-specific machine-readable error code, when present.
	Code int `json:"code,omitempty"`
}

// Error implements the error interface
func (p *Problem) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}
