// Package budget evaluates spending limits against extracted transactions.
// Evaluation is a pure function over its inputs: statuses are recomputed
// from scratch on every call and never stored, so it is safe to run on
// every change of the transaction or limit collections. Breach-transition
// tracking (notify once per crossing) belongs to the caller.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/optimisticbyte/sms-expense-engine/internal/models"
)

// Evaluate computes the spent amount and breach state for each limit,
// independently, preserving the input limit order. A limit is breached
// only when spend strictly exceeds it; spending exactly the limit is not
// a breach.
func Evaluate(limits []models.SpendingLimit, transactions []models.Transaction) []models.LimitStatus {
	statuses := make([]models.LimitStatus, 0, len(limits))
	for _, limit := range limits {
		spent := spentAmount(limit, transactions)
		statuses = append(statuses, models.LimitStatus{
			Limit:       limit,
			SpentAmount: spent,
			IsBreached:  spent.GreaterThan(limit.Amount),
		})
	}
	return statuses
}

// spentAmount sums the transactions inside the limit's window and
// category scope. Bounds are inclusive; EndAtMillis == 0 means the
// window never closes. Uncategorized transactions only count toward
// all-category limits.
func spentAmount(limit models.SpendingLimit, transactions []models.Transaction) decimal.Decimal {
	scope := make(map[int]struct{}, len(limit.Categories))
	for _, id := range limit.Categories {
		scope[id] = struct{}{}
	}

	spent := decimal.Zero
	for _, txn := range transactions {
		if txn.OccurredAtMillis < limit.StartAtMillis {
			continue
		}
		if limit.EndAtMillis != 0 && txn.OccurredAtMillis > limit.EndAtMillis {
			continue
		}
		if !limit.AllCategories() {
			if txn.CategoryID == nil {
				continue
			}
			if _, ok := scope[*txn.CategoryID]; !ok {
				continue
			}
		}
		spent = spent.Add(txn.Amount)
	}
	return spent
}
