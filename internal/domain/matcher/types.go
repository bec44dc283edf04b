package matcher

import (
	"github.com/bookkept/matchd/internal/model"
)

// Config holds matcher configuration.
type Config struct {
	// Threshold is the minimum heuristic score required to accept a
	// match that was not decided by a unique reference.
	Threshold float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Threshold: 75.0,
	}
}

// Method records how a match was decided.
type Method string

const (
	// MethodReference means a unique normalized-reference equality
	// decided the match outright, bypassing scoring.
	MethodReference Method = "reference"
	// MethodScore means the heuristic score decided the match.
	MethodScore Method = "score"
)

// AttachmentMatch is the result of FindAttachment.
type AttachmentMatch struct {
	Attachment *model.Attachment
	Index      int // position in the caller's candidate slice
	Method     Method
	Score      float64 // heuristic score; 0 for reference matches
}

// TransactionMatch is the result of FindTransaction.
type TransactionMatch struct {
	Transaction *model.Transaction
	Index       int
	Method      Method
	Score       float64
}
