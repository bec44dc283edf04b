package matcher

import (
	"github.com/shopspring/decimal"

	"github.com/bookkept/matchd/internal/model"
)

// Amount difference buckets, in account currency.
var (
	amountExact = decimal.RequireFromString("0.01")
	amountNear  = decimal.RequireFromString("1")
	amountLoose = decimal.RequireFromString("5")
)

// ScorePair computes the heuristic confidence score for one
// (transaction, attachment) pair. It is used as the fallback when no
// unique reference match exists and adds up three independent signals:
//
//	amount |diff| <= 0.01 / 1.0 / 5.0    -> +40 / +30 / +10
//	closest date distance 0 / <=3 / <=7  -> +35 / +20 / +10
//	name ratio >= 0.90 / 0.80 / 0.70     -> +30 / +20 / +10
//
// A missing or unusable field contributes nothing; the maximum attainable
// score is 105. References are resolved in a separate reference-first
// pass and deliberately never feed into the score, so a deterministic
// identifier is not double-counted as a probabilistic signal.
func ScorePair(tx *model.Transaction, att *model.Attachment) float64 {
	score := 0.0

	// Amount proximity on absolute values, with tolerance for cents.
	if txAmt, ok := txAmount(tx); ok {
		if attAmt, ok := attAmount(att); ok {
			diff := txAmt.Sub(attAmt).Abs()
			switch {
			case diff.Cmp(amountExact) <= 0:
				score += 40
			case diff.Cmp(amountNear) <= 0:
				score += 30
			case diff.Cmp(amountLoose) <= 0:
				score += 10
			}
		}
	}

	// Date proximity, using the closest of the attachment's dates.
	if days, ok := dateDistanceDays(tx, att); ok {
		switch {
		case days == 0:
			score += 35
		case days <= 3:
			score += 20
		case days <= 7:
			score += 10
		}
	}

	// Counterparty name similarity, best of recipient/issuer/supplier.
	switch ratio := maxNameSimilarity(tx, att); {
	case ratio >= 0.90:
		score += 30
	case ratio >= 0.80:
		score += 20
	case ratio >= 0.70:
		score += 10
	}

	return score
}
