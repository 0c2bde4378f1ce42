package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/optimisticbyte/sms-expense-engine/internal/models"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			Amount:           decimal.RequireFromString("450.5"),
			Merchant:         "Amazon",
			OccurredAtMillis: 1735171200000,
			Sender:           "VM-HDFCBK",
			Details: models.Details{
				Bank:        models.BankHDFC,
				Mode:        models.ModeUPI,
				ReferenceNo: "405512345678",
			},
		},
		{
			Amount:           decimal.RequireFromString("1200"),
			Merchant:         "Unknown",
			OccurredAtMillis: 1735257600000,
			Sender:           "AX-ICICIB",
			Details: models.Details{
				Bank: models.BankICICI,
			},
		},
	}
}

func TestCSVWriterWithHeader(t *testing.T) {
	w := &CSVWriter{IncludeHeader: true}
	var buf bytes.Buffer
	if err := w.Write(&buf, sampleTransactions()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "Date,Merchant,Amount,Bank,Mode,Reference,Sender" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "2024-12-26T00:00:00Z,Amazon,450.50,HDFC,UPI,405512345678,VM-HDFCBK" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if lines[2] != "2024-12-27T00:00:00Z,Unknown,1200.00,ICICI,,,AX-ICICIB" {
		t.Errorf("unexpected second row: %q", lines[2])
	}
}

func TestCSVWriterWithoutHeader(t *testing.T) {
	w := &CSVWriter{}
	var buf bytes.Buffer
	if err := w.Write(&buf, sampleTransactions()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if strings.HasPrefix(lines[0], "Date,") {
		t.Errorf("header written without IncludeHeader: %q", lines[0])
	}
}

func TestCSVWriterEmpty(t *testing.T) {
	w := &CSVWriter{IncludeHeader: true}
	var buf bytes.Buffer
	if err := w.Write(&buf, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "Date,Merchant,Amount,Bank,Mode,Reference,Sender" {
		t.Errorf("expected header only, got %q", got)
	}
}
