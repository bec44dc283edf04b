package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/bookkept/matchd/internal/api/dto"
	"github.com/bookkept/matchd/internal/domain/matcher"
	"github.com/bookkept/matchd/internal/infrastructure/config"
	"github.com/bookkept/matchd/internal/model"
)

// ReconcileFlags holds the CLI flags for the reconcile command.
type ReconcileFlags struct {
	TransactionsPath string
	AttachmentsPath  string
	ConfigPath       string
}

// ParseReconcileFlags parses command line flags for the reconcile
// command.
func ParseReconcileFlags() *ReconcileFlags {
	flags := &ReconcileFlags{}
	flag.StringVar(&flags.TransactionsPath, "transactions", "transactions.json", "Path to the transactions JSON file")
	flag.StringVar(&flags.AttachmentsPath, "attachments", "attachments.json", "Path to the attachments JSON file")
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "Configuration file path")
	flag.Parse()
	return flags
}

// ReconcileLine is the outcome for one transaction in a batch run.
type ReconcileLine struct {
	Index       int
	Transaction *model.Transaction
	Match       *matcher.AttachmentMatch // nil = no confident match
}

// ReconcileSummary aggregates one batch run.
type ReconcileSummary struct {
	Transactions int
	ByReference  int
	ByScore      int
	Unmatched    int
}

// Reconcile answers one independent query per transaction against the
// full attachment list. It does not attempt a globally optimal
// assignment: the same attachment may win for several transactions, which
// is surfaced as-is for the bookkeeper to resolve.
func Reconcile(m *matcher.Matcher, txs []*model.Transaction, atts []*model.Attachment) ([]ReconcileLine, ReconcileSummary) {
	lines := make([]ReconcileLine, 0, len(txs))
	summary := ReconcileSummary{Transactions: len(txs)}

	for i, tx := range txs {
		match := m.FindAttachment(tx, atts)
		lines = append(lines, ReconcileLine{Index: i, Transaction: tx, Match: match})

		switch {
		case match == nil:
			summary.Unmatched++
		case match.Method == matcher.MethodReference:
			summary.ByReference++
		default:
			summary.ByScore++
		}
	}

	return lines, summary
}

// RunReconcile loads both record files, matches every transaction, and
// prints the outcome.
func RunReconcile(cfg *config.Config, flags *ReconcileFlags) error {
	txs, err := loadTransactions(flags.TransactionsPath)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	atts, err := loadAttachments(flags.AttachmentsPath)
	if err != nil {
		return fmt.Errorf("load attachments: %w", err)
	}

	PrintHeader(len(txs), len(atts))

	lines, summary := Reconcile(NewMatcher(cfg), txs, atts)
	for _, line := range lines {
		PrintLine(line)
	}
	PrintSummary(summary)

	return nil
}

// loadTransactions reads a JSON array of transactions. Amounts decode
// leniently: a malformed amount makes that field absent, it does not fail
// the batch.
func loadTransactions(path string) ([]*model.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payloads []dto.TransactionPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	txs := make([]*model.Transaction, len(payloads))
	for i, p := range payloads {
		txs[i] = p.ToModel()
	}
	return txs, nil
}

func loadAttachments(path string) ([]*model.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payloads []dto.AttachmentPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	atts := make([]*model.Attachment, len(payloads))
	for i, p := range payloads {
		atts[i] = p.ToModel()
	}
	return atts, nil
}
