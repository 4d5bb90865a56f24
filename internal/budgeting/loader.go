package budgeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// budgetRef is the id and month of a budget, all the walker needs to
// know about it.
type budgetRef struct {
	ID    uuid.UUID
	Month types.Month
}

// allocationAmount is one allocation row reduced to the columns the
// to-be-budgeted calculation reads.
type allocationAmount struct {
	CategoryID uuid.UUID
	BudgetID   uuid.UUID
	Amount     decimal.Decimal
}

// dataset is the raw result of the acquisition phase. Everything the
// compute phase needs is in here; no data access happens afterwards.
type dataset struct {
	budget             models.Budget
	accounts           []models.Account
	budgets            []budgetRef
	currentAllocations []models.CategoryAllocation
	allAllocations     []allocationAmount
	transactions       []models.Transaction
	income             []models.Transaction
}

// load resolves the target budget and issues the bulk reads.
//
// The reads run in two rounds: the first resolves accounts and budgets,
// the second needs their ID sets. Within a round the queries are
// independent and run concurrently; any failure aborts the request.
func (s Service) load(ctx context.Context, userID uuid.UUID, month types.Month) (*dataset, error) {
	var budget models.Budget
	err := s.db.WithContext(ctx).
		Where(&models.Budget{UserID: userID, Month: month}).
		First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoBudget
	}
	if err != nil {
		return nil, fmt.Errorf("resolving budget: %w", err)
	}

	ds := &dataset{budget: budget}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where(&models.Account{UserID: userID}).
			Find(&ds.accounts).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Model(&models.Budget{}).
			Where(&models.Budget{UserID: userID}).
			Select("id", "month").
			Find(&ds.budgets).Error
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading accounts and budgets: %w", err)
	}

	accountIDs := make([]uuid.UUID, 0, len(ds.accounts))
	onBudgetIDs := make([]uuid.UUID, 0, len(ds.accounts))
	for _, account := range ds.accounts {
		accountIDs = append(accountIDs, account.ID)
		if account.IsOnBudget() {
			onBudgetIDs = append(onBudgetIDs, account.ID)
		}
	}

	budgetIDs := make([]uuid.UUID, 0, len(ds.budgets))
	for _, ref := range ds.budgets {
		budgetIDs = append(budgetIDs, ref.ID)
	}

	windowStart := time.Time(month.AddDate(0, -(lookbackMonths - 1)))
	endExclusive := time.Time(month.AddDate(0, 1))

	g, gctx = errgroup.WithContext(ctx)

	// Allocations of the target month with the category metadata the
	// summary needs. Hidden categories never show up in summaries.
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Joins("JOIN categories ON categories.id = category_allocations.category_id AND categories.deleted_at IS NULL").
			Where("category_allocations.budget_id = ?", budget.ID).
			Where("categories.is_hidden = ?", false).
			Order("categories.name ASC").
			Preload("Category.Group").
			Preload("Category.Goal").
			Find(&ds.currentAllocations).Error
	})

	// All allocations across all budgets of the user, for the
	// to-be-budgeted calculation and the per-category walk.
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Model(&models.CategoryAllocation{}).
			Where("budget_id IN ?", budgetIDs).
			Select("category_id", "budget_id", "amount").
			Find(&ds.allAllocations).Error
	})

	// The transaction window covering the walk horizon.
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("account_id IN ?", accountIDs).
			Where("date >= ? AND date < ?", windowStart, endExclusive).
			Find(&ds.transactions).Error
	})

	// All-time income on on-budget accounts, top-level transactions
	// only. No lower date bound: to-be-budgeted reaches back to the
	// first income the user ever recorded.
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("account_id IN ?", onBudgetIDs).
			Where(&models.Transaction{Type: models.TransactionIncome}).
			Where("parent_transaction_id IS NULL").
			Find(&ds.income).Error
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading budget data: %w", err)
	}

	return ds, nil
}
