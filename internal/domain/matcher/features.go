package matcher

import (
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/shopspring/decimal"

	"github.com/bookkept/matchd/internal/model"
)

const dayFormat = "2006-01-02"

// txAmount returns the transaction amount as an absolute value. The sign
// only encodes direction (expense vs income) and carries no matching
// signal.
func txAmount(tx *model.Transaction) (decimal.Decimal, bool) {
	if tx.Amount == nil {
		return decimal.Decimal{}, false
	}
	return tx.Amount.Abs(), true
}

// attAmount returns the attachment's document total as an absolute value.
func attAmount(att *model.Attachment) (decimal.Decimal, bool) {
	if att.Data.TotalAmount == nil {
		return decimal.Decimal{}, false
	}
	return att.Data.TotalAmount.Abs(), true
}

// parseDay parses a YYYY-MM-DD calendar date. Anything else is unusable.
func parseDay(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	day, err := time.Parse(dayFormat, value)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func txDate(tx *model.Transaction) (time.Time, bool) {
	return parseDay(tx.Date)
}

// attDates collects every usable date on the attachment. Invoices carry
// invoicing and due dates, receipts a receiving date; unparseable entries
// are dropped.
func attDates(att *model.Attachment) []time.Time {
	var dates []time.Time
	for _, value := range []string{att.Data.InvoicingDate, att.Data.DueDate, att.Data.ReceivingDate} {
		if day, ok := parseDay(value); ok {
			dates = append(dates, day)
		}
	}
	return dates
}

// dateDistanceDays returns the smallest absolute day distance between the
// transaction date and any date on the attachment. Unavailable when either
// side has no usable date.
func dateDistanceDays(tx *model.Transaction, att *model.Attachment) (int, bool) {
	txDay, ok := txDate(tx)
	if !ok {
		return 0, false
	}
	dates := attDates(att)
	if len(dates) == 0 {
		return 0, false
	}
	best := -1
	for _, day := range dates {
		days := int(txDay.Sub(day).Hours() / 24)
		if days < 0 {
			days = -days
		}
		if best < 0 || days < best {
			best = days
		}
	}
	return best, true
}

func txName(tx *model.Transaction) string {
	return strings.ToLower(strings.TrimSpace(tx.Contact))
}

// nameSimilarity is the Gestalt ratio over the two strings' runes, the
// longest-matching-block measure difflib uses. It is deterministic and
// tolerant of minor typos, spacing, and suffix differences. Empty input on
// either side yields 0.
func nameSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}

// maxNameSimilarity compares the transaction contact against every
// counterparty field on the attachment and keeps the best ratio. The
// contact may correspond to the recipient, issuer, or supplier depending
// on whether the document is a sales invoice, purchase invoice, or
// receipt; taking the maximum avoids having to know the role up front.
func maxNameSimilarity(tx *model.Transaction, att *model.Attachment) float64 {
	name := txName(tx)
	if name == "" {
		return 0
	}
	best := 0.0
	for _, candidate := range []string{att.Data.Recipient, att.Data.Issuer, att.Data.Supplier} {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		if candidate == "" {
			continue
		}
		if ratio := nameSimilarity(name, candidate); ratio > best {
			best = ratio
		}
	}
	return best
}
