// Package parser turns raw bank SMS notifications into structured expense
// records. Messages that are not trackable debits are rejected as a normal
// outcome, never as an error: adversarially formatted input is the steady
// state here.
package parser

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/optimisticbyte/sms-expense-engine/internal/models"
	"github.com/optimisticbyte/sms-expense-engine/internal/patterns"
)

// Parser is a stateless extraction engine over an immutable pattern
// library. A single Parser is safe for concurrent use.
type Parser struct {
	lib *patterns.Library
	log zerolog.Logger
}

// New returns a Parser backed by the default pattern library.
func New() *Parser {
	return NewWithLibrary(patterns.Default())
}

// NewWithLibrary returns a Parser over a custom library. Logging is off
// until WithLogger is called.
func NewWithLibrary(lib *patterns.Library) *Parser {
	return &Parser{lib: lib, log: zerolog.Nop()}
}

// WithLogger returns a copy of the Parser that emits diagnostics (pattern
// misses on known banks) to the given logger.
func (p *Parser) WithLogger(log zerolog.Logger) *Parser {
	return &Parser{lib: p.lib, log: log}
}

// Parse runs one message through the pipeline and returns the extracted
// Transaction, or nil when the message is not a trackable expense.
func (p *Parser) Parse(sender, body string, timestampMillis int64) *models.Transaction {
	return p.ParseMessage(models.RawMessage{
		Sender:          sender,
		Body:            body,
		TimestampMillis: timestampMillis,
	}).Transaction
}

// ParseMessage is Parse with an explicit rejection reason, for callers
// (and tests) that need to know why a message produced no record.
//
// The pipeline is a single pass: classify, reject non-debits, extract the
// amount, extract the merchant (which never rejects), emit.
func (p *Parser) ParseMessage(msg models.RawMessage) models.ParseResult {
	if !p.IsTransactionMessage(msg.Body) {
		return models.ParseResult{Reason: models.RejectNotTransaction}
	}

	// Credits are classified only to be rejected; income is not tracked.
	if p.ClassifyDirection(msg.Body) != models.DirectionDebit {
		return models.ParseResult{Reason: models.RejectNotDebit}
	}

	amount, err := p.extractAmount(msg.Body)
	if err != nil {
		reason := models.RejectNoAmount
		if err == errBadAmount {
			reason = models.RejectBadAmount
		}
		return models.ParseResult{Reason: reason}
	}

	merchant := p.ExtractMerchant(msg.Sender, msg.Body)

	return models.ParseResult{Transaction: &models.Transaction{
		ID:               uuid.NewString(),
		Amount:           amount,
		Merchant:         merchant,
		OccurredAtMillis: msg.TimestampMillis,
		Sender:           msg.Sender,
		RawText:          msg.Body,
		Details:          p.extractDetails(msg.Sender, msg.Body),
	}}
}
