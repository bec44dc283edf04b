// Package matcher pairs bank transactions with invoice/receipt
// attachments from bookkeeping workflows.
//
// A query is one record plus a candidate list of the opposite kind, and
// the answer is at most one candidate. The decision is two-phase:
//   - Reference priority: a unique normalized payment reference equality
//     is authoritative and decides the match without scoring.
//   - Heuristic fallback: every candidate is scored on amount, date, and
//     counterparty-name proximity, and the best candidate wins if it
//     reaches the configured threshold.
//
// The engine is pure and stateless: it never mutates its inputs, holds no
// state across calls, and performs no I/O, so concurrent callers need no
// coordination.
//
// Example usage:
//
//	m := matcher.New(matcher.DefaultConfig())
//	result := m.FindAttachment(tx, attachments)
//	if result != nil {
//		// Found a match!
//		attachment := result.Attachment
//	}
package matcher

import (
	"github.com/bookkept/matchd/internal/model"
)

// Matcher answers single match queries between transactions and
// attachments.
type Matcher struct {
	config Config
}

// New creates a new matcher with the given config.
func New(config Config) *Matcher {
	return &Matcher{
		config: config,
	}
}

// refOutcome tags the result of the reference pass so the fallthrough to
// scoring is explicit: only a unique hit decides the match, and an
// inconclusive reference carries no partial credit into scoring.
type refOutcome int

const (
	refAbsent       refOutcome = iota // query has no usable reference
	refInconclusive                   // zero or several candidates share it
	refUnique
)

// matchByReference resolves the reference pass over normalized references.
// It returns the index of the single candidate sharing the query
// reference, or -1 with the outcome explaining why no candidate was
// identified.
func matchByReference(queryRef string, candidateRefs []string) (int, refOutcome) {
	ref := NormalizeReference(queryRef)
	if ref == "" {
		return -1, refAbsent
	}
	found := -1
	hits := 0
	for i, candidate := range candidateRefs {
		if NormalizeReference(candidate) == ref {
			found = i
			hits++
		}
	}
	if hits == 1 {
		return found, refUnique
	}
	return -1, refInconclusive
}

// FindAttachment returns the best matching attachment for a transaction,
// or nil when no candidate is convincing enough. Absence is a normal
// outcome, not an error.
//
// Ties in the scoring phase go to the earlier candidate (the comparison is
// strict-greater), so callers that need deterministic answers must supply
// a stably ordered candidate slice.
func (m *Matcher) FindAttachment(tx *model.Transaction, candidates []*model.Attachment) *AttachmentMatch {
	if tx == nil {
		return nil
	}

	refs := make([]string, len(candidates))
	for i, att := range candidates {
		if att != nil {
			refs[i] = att.Data.Reference
		}
	}
	if i, outcome := matchByReference(tx.Reference, refs); outcome == refUnique {
		return &AttachmentMatch{Attachment: candidates[i], Index: i, Method: MethodReference}
	}

	best := -1
	bestScore := 0.0
	for i, att := range candidates {
		if att == nil {
			continue
		}
		if score := ScorePair(tx, att); score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 || bestScore < m.config.Threshold {
		return nil
	}
	return &AttachmentMatch{Attachment: candidates[best], Index: best, Method: MethodScore, Score: bestScore}
}

// FindTransaction returns the best matching transaction for an
// attachment, mirroring FindAttachment: reference priority first, then
// heuristic scoring against the same threshold.
func (m *Matcher) FindTransaction(att *model.Attachment, candidates []*model.Transaction) *TransactionMatch {
	if att == nil {
		return nil
	}

	refs := make([]string, len(candidates))
	for i, tx := range candidates {
		if tx != nil {
			refs[i] = tx.Reference
		}
	}
	if i, outcome := matchByReference(att.Data.Reference, refs); outcome == refUnique {
		return &TransactionMatch{Transaction: candidates[i], Index: i, Method: MethodReference}
	}

	best := -1
	bestScore := 0.0
	for i, tx := range candidates {
		if tx == nil {
			continue
		}
		if score := ScorePair(tx, att); score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 || bestScore < m.config.Threshold {
		return nil
	}
	return &TransactionMatch{Transaction: candidates[best], Index: best, Method: MethodScore, Score: bestScore}
}
