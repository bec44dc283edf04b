package dto

import "time"

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse creates a health response with current timestamp.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// MatchResponse reports the outcome of a match query. "No match" is a
// normal 200 response with Matched=false, never an error.
type MatchResponse struct {
	Matched bool    `json:"matched"`
	ID      string  `json:"id,omitempty"`     // matched candidate's id, when supplied
	Index   int     `json:"index"`            // position in the request's candidate list
	Method  string  `json:"method,omitempty"` // "reference" or "score"
	Score   float64 `json:"score"`            // heuristic score; 0 for reference matches
}

// NoMatch is the response for a query that found no confident candidate.
func NoMatch() MatchResponse {
	return MatchResponse{Matched: false, Index: -1}
}
