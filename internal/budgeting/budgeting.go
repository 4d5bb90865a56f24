// Package budgeting computes the monthly budget summary: for every
// category the budgeted amount, the activity of the month and the
// rolling available balance, plus the global to-be-budgeted figure.
//
// The computation runs in two phases. The acquisition phase issues a
// small, fixed number of bulk reads. The compute phase is synchronous
// and pure: it builds in-memory indices from the loaded rows once and
// walks them per category, so the query count per request is
// independent of the number of categories and months.
package budgeting

import (
	"errors"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMonthInvalid = errors.New("the month must be between 1 and 12")
	ErrNoBudget     = errors.New("there is no budget for this month")
)

// Service computes budget summaries from the database.
type Service struct {
	db *gorm.DB
}

// NewService returns a Service reading from db.
func NewService(db *gorm.DB) Service {
	return Service{db: db}
}

// Goal is the goal configuration attached to a category row.
type Goal struct {
	ID            uuid.UUID           `json:"id"`
	GoalType      models.GoalType     `json:"goalType"`
	TargetAmount  decimal.NullDecimal `json:"targetAmount"`
	TargetDate    *time.Time          `json:"targetDate"`
	MonthlyAmount decimal.NullDecimal `json:"monthlyAmount"`
}

// CategoryRow is the summary for one category in the target month.
type CategoryRow struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	GroupName string          `json:"groupName"`
	IsSystem  bool            `json:"isSystem"`
	Budgeted  decimal.Decimal `json:"budgeted"`  // amount allocated for the target month
	Activity  decimal.Decimal `json:"activity"`  // sum of transactions in the target month
	Available decimal.Decimal `json:"available"` // rolling envelope balance at the target month
	Goal      *Goal           `json:"goal"`

	// group ordering, only used while assembling the summary
	groupSortOrder int
}

// Summary is the full budget summary for one month.
type Summary struct {
	ID           uuid.UUID       `json:"id"` // The ID of the budget
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	ToBeBudgeted decimal.Decimal `json:"toBeBudgeted"`
	Categories   []CategoryRow   `json:"categories"`
}
