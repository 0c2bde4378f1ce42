package models

import "github.com/shopspring/decimal"

// SpendingLimit is a user-defined cap on spend within a date window, owned
// by an external store. A nil or empty Categories slice means the limit
// covers all categories; EndAtMillis == 0 means the window is open-ended.
type SpendingLimit struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	StartAtMillis int64           `json:"startAtMillis"`
	EndAtMillis   int64           `json:"endAtMillis"`
	Categories    []int           `json:"categories,omitempty"`
}

// AllCategories reports whether the limit applies regardless of category.
func (l SpendingLimit) AllCategories() bool {
	return len(l.Categories) == 0
}

// LimitStatus is the evaluated state of one limit. It is recomputed on
// every evaluation and never persisted.
type LimitStatus struct {
	Limit       SpendingLimit   `json:"limit"`
	SpentAmount decimal.Decimal `json:"spentAmount"`
	IsBreached  bool            `json:"isBreached"`
}
