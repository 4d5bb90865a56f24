package budgeting

import (
	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// lookbackMonths bounds the rolling available-balance computation.
// History older than the horizon is treated as a zero starting balance;
// the horizon also sizes the transaction window the loader fetches.
const lookbackMonths = 24

// walkOptions configure the available-balance walk for one category.
type walkOptions struct {
	// carryNegative lets a negative balance survive months without a
	// budget. Only credit-card payment categories carry debt this way.
	carryNegative bool

	// creditAccount is the credit account funded by this payment
	// category. Its transactions feed the walk through the credit-card
	// sub-ledger and are excluded from regular category activity.
	creditAccount *models.Account
}

// available computes the rolling envelope balance for the category at
// the ledger's target month.
//
// The walk visits the lookback window oldest month first. A month
// without a budget row is a gap from before the user started
// budgeting: debt does not carry across the gap (unless flagged), a
// positive cushion does. In budgeted months the balance rolls over
// with its sign, so overspending propagates until the user covers it.
func (l *ledger) available(categoryID uuid.UUID, opts walkOptions) decimal.Decimal {
	available := decimal.Zero

	var exclude *uuid.UUID
	if opts.creditAccount != nil {
		exclude = &opts.creditAccount.ID
	}

	for month := l.targetMonth.AddDate(0, -(lookbackMonths - 1)); !month.After(l.targetMonth); month = month.AddDate(0, 1) {
		budgetID, ok := l.budgetIDByMonth[keyOf(month)]
		if !ok {
			if available.IsNegative() && !opts.carryNegative {
				available = decimal.Zero
			}
			continue
		}

		adjustment := decimal.Zero
		if opts.creditAccount != nil {
			adjustment = l.creditAdjustment(*opts.creditAccount, month)
		}

		available = available.
			Add(l.budgeted(categoryID, budgetID)).
			Add(l.activitySum(categoryID, month, exclude)).
			Add(adjustment)
	}

	return available
}
