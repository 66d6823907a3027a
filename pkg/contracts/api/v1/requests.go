// Package api contains the request contracts of the Supply Chain Pulse HTTP API.
package api

// AIQueryRequest is the body of POST /ai-query
type AIQueryRequest struct {
	Question string `json:"question" validate:"required,notblank,max=500"`
}
