package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/optimisticbyte/sms-expense-engine/internal/models"
)

// CSVWriter writes extracted transactions to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes transactions to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, txns []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, txns)
}

// Write writes transactions in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, txns []models.Transaction) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader {
		header := []string{"Date", "Merchant", "Amount", "Bank", "Mode", "Reference", "Sender"}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	for _, txn := range txns {
		row := []string{
			time.UnixMilli(txn.OccurredAtMillis).UTC().Format(time.RFC3339),
			txn.Merchant,
			txn.Amount.StringFixed(2),
			string(txn.Details.Bank),
			string(txn.Details.Mode),
			txn.Details.ReferenceNo,
			txn.Sender,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
