package budgeting

import (
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
)

// creditAdjustment returns charges minus payments for the credit
// account in one month. The result feeds the payment category's walk
// month by month, so uncovered charges from earlier months compound
// across the rolling window.
//
// Charges grow when money moves into the payment pot: a categorized
// purchase shifts its funding from the spending category onto the
// card, an uncategorized inflow (e.g. a starting credit balance) is
// money the card owes the user. Payments shrink the pot: an actual
// payment transfer, or uncategorized debt such as a starting balance,
// which was never funded by any category.
func (l *ledger) creditAdjustment(account models.Account, month types.Month) decimal.Decimal {
	paymentCategoryID := *account.PaymentCategoryID

	charges := decimal.Zero
	payments := decimal.Zero

	for _, t := range l.accountTransactions[account.ID] {
		if !month.Contains(t.Date) {
			continue
		}

		// Split parents carry no money of their own, only their
		// children count.
		if t.IsSplit {
			continue
		}

		switch t.Type {
		case models.TransactionExpense:
			if t.CategoryID != nil && *t.CategoryID != paymentCategoryID {
				// amounts are stored negative for expenses
				charges = charges.Add(t.Amount.Neg())
			} else if t.CategoryID == nil && !t.IsSplitChild() {
				payments = payments.Sub(t.Amount)
			}
		case models.TransactionIncome:
			if t.CategoryID == nil && !t.IsSplitChild() {
				charges = charges.Add(t.Amount)
			}
		case models.TransactionTransfer:
			if t.Amount.IsPositive() && !t.IsSplitChild() {
				payments = payments.Add(t.Amount)
			}
		}
	}

	return charges.Sub(payments)
}
