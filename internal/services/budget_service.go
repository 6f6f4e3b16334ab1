package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expenseease/internal/dto"
	"expenseease/internal/models"
	"expenseease/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBudgetCategory and friends bootstrap every new account with one
	// active budget.
	DefaultBudgetCategory   = "General"
	defaultBudgetWindowDays = 30

	// adjustMaxAttempts bounds the optimistic-lock retry loop.
	adjustMaxAttempts = 3

	trailingSpendDays = 90
)

var (
	ErrBudgetContention = errors.New("budget adjustment contention, try again")

	defaultBudgetAmount = decimal.NewFromInt(500)

	// Trailing-90-day categories under this total get no dynamic budget at all.
	dynamicBudgetFloor = decimal.NewFromInt(10)

	// Owners with no spend last week still get a small top-up base.
	autoBudgetFallbackSpend = decimal.NewFromInt(100)

	monthsInTrailingWindow = decimal.NewFromInt(3)
	monthlySuggestedFactor = decimal.NewFromFloat(0.9)
	weeklySuggestedFactor  = decimal.NewFromFloat(0.2)

	overspendStepSmall = decimal.NewFromFloat(1.1)
	overspendStepLarge = decimal.NewFromFloat(1.2)
	autoBudgetMarkup   = decimal.NewFromFloat(1.2)

	nearingLimitRatio = decimal.NewFromFloat(models.NearingLimitRatio)
)

// BudgetService computes spend against budgets, applies the overspend
// ratchet, and generates budgets from trailing spend. Weekly budgets always
// reconcile against the current calendar week; monthly budgets against their
// own stored window.
type BudgetService struct {
	budgetRepo        repositories.BudgetRepositoryInterface
	categoryRepo      repositories.CategoryRepositoryInterface
	transactionRepo   repositories.TransactionRepositoryInterface
	dynamicBudgetRepo repositories.DynamicBudgetRepositoryInterface
	notifier          NotifierInterface
	metrics           MetricsRecorderInterface
	logger            *slog.Logger

	// now is swapped in tests to pin the calendar week.
	now func() time.Time
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	dynamicBudgetRepo repositories.DynamicBudgetRepositoryInterface,
	notifier NotifierInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &BudgetService{
		budgetRepo:        budgetRepo,
		categoryRepo:      categoryRepo,
		transactionRepo:   transactionRepo,
		dynamicBudgetRepo: dynamicBudgetRepo,
		notifier:          notifier,
		metrics:           metrics,
		logger:            logger,
		now:               time.Now,
	}
}

// CreateBudget creates a budget for the owner, materializing the category if
// it does not exist yet
func (s *BudgetService) CreateBudget(ownerID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, ErrInvalidAmountFormat
	}

	startDate, err := time.Parse(ingestDateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := time.Parse(ingestDateLayout, req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	category, err := s.categoryRepo.EnsureExists(ownerID, req.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure category: %w", err)
	}

	budget := &models.Budget{
		OwnerID:    ownerID,
		CategoryID: category.ID,
		Amount:     amount,
		Period:     req.Period,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	if err := s.budgetRepo.Create(budget); err != nil {
		return nil, err
	}

	s.logger.Info("budget created",
		slog.String("owner_id", ownerID.String()),
		slog.String("budget_id", budget.ID.String()),
		slog.String("category", category.Name),
		slog.String("period", budget.Period))

	return budget, nil
}

// CreateDefaultBudget synthesizes the one budget every new account starts
// with: General, 500, monthly, starting today. The registration flow calls
// this exactly once per account.
func (s *BudgetService) CreateDefaultBudget(ownerID uuid.UUID) (*models.Budget, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}

	category, err := s.categoryRepo.EnsureExists(ownerID, DefaultBudgetCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure default category: %w", err)
	}

	today := models.TruncateToDay(s.now())
	budget := &models.Budget{
		OwnerID:    ownerID,
		CategoryID: category.ID,
		Amount:     defaultBudgetAmount,
		Period:     models.BudgetPeriodMonthly,
		StartDate:  today,
		EndDate:    today.AddDate(0, 0, defaultBudgetWindowDays),
	}

	if err := s.budgetRepo.Create(budget); err != nil {
		return nil, err
	}

	s.logger.Info("default budget created",
		slog.String("owner_id", ownerID.String()),
		slog.String("budget_id", budget.ID.String()))

	return budget, nil
}

// SpentAmount sums debit spend against the budget. Monthly budgets reconcile
// against their stored [start_date, end_date]; weekly budgets against the
// current calendar week regardless of their stored range.
func (s *BudgetService) SpentAmount(budget *models.Budget) (decimal.Decimal, error) {
	category, err := s.categoryRepo.GetByID(budget.OwnerID, budget.CategoryID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve budget category: %w", err)
	}

	start, end := s.spendWindow(budget)
	return s.transactionRepo.SumDebitsForCategoryBetween(budget.OwnerID, category.Name, start, end)
}

func (s *BudgetService) spendWindow(budget *models.Budget) (time.Time, time.Time) {
	if budget.Period == models.BudgetPeriodWeekly {
		weekStart := models.WeekStart(s.now())
		return weekStart, endOfDay(weekStart.AddDate(0, 0, 6))
	}
	return models.TruncateToDay(budget.StartDate), endOfDay(budget.EndDate)
}

func endOfDay(t time.Time) time.Time {
	return models.TruncateToDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// PreviousWeekSpent sums debit spend for the category over the calendar week
// immediately before the current one
func (s *BudgetService) PreviousWeekSpent(ownerID uuid.UUID, category string) (decimal.Decimal, error) {
	weekStart := models.WeekStart(s.now())
	prevStart := weekStart.AddDate(0, 0, -7)
	prevEnd := endOfDay(weekStart.AddDate(0, 0, -1))
	return s.transactionRepo.SumDebitsForCategoryBetween(ownerID, category, prevStart, prevEnd)
}

// GetBudgetSummaries computes the live overview for every budget of the
// owner. Budgets nearing their limit raise a notification as a side effect.
func (s *BudgetService) GetBudgetSummaries(ownerID uuid.UUID) ([]dto.BudgetSummaryResponse, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}

	budgets, err := s.budgetRepo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.BudgetSummaryResponse, 0, len(budgets))
	for i := range budgets {
		budget := &budgets[i]

		category, err := s.categoryRepo.GetByID(ownerID, budget.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve budget category: %w", err)
		}

		spent, err := s.SpentAmount(budget)
		if err != nil {
			return nil, err
		}

		// Remaining may go negative: that signals overspend, not an error.
		remaining := budget.Amount.Sub(spent)
		nearing := s.isNearingLimit(budget, spent)
		active := budget.IsActive(s.now())

		if nearing && active {
			s.notifier.Notify(ownerID, models.NotificationKindBudgetNearingLimit, budget.ID,
				fmt.Sprintf("Your %s budget is nearing its limit: %s of %s spent",
					category.Name, spent.StringFixed(2), budget.Amount.StringFixed(2)))
		}

		summaries = append(summaries, dto.BudgetSummaryResponse{
			ID:             budget.ID,
			Category:       category.Name,
			Amount:         budget.Amount.StringFixed(2),
			Spent:          spent.StringFixed(2),
			Remaining:      remaining.StringFixed(2),
			Period:         budget.Period,
			StartDate:      budget.StartDate,
			EndDate:        budget.EndDate,
			IsNearingLimit: nearing,
			IsActive:       active,
		})
	}

	return summaries, nil
}

func (s *BudgetService) isNearingLimit(budget *models.Budget, spent decimal.Decimal) bool {
	return spent.GreaterThanOrEqual(budget.Amount.Mul(nearingLimitRatio))
}

// AdjustBudget applies the overspend ratchet: when spend exceeds the amount,
// bump it by 20% if spend exceeds 120% of the amount, else by 10%. The
// amount never decreases. Contention with concurrent adjusters is resolved
// by optimistic retry.
func (s *BudgetService) AdjustBudget(ownerID, budgetID uuid.UUID) (*models.Budget, bool, error) {
	if ownerID == uuid.Nil {
		return nil, false, ErrInvalidOwnerID
	}

	for attempt := 1; attempt <= adjustMaxAttempts; attempt++ {
		budget, err := s.budgetRepo.GetByID(ownerID, budgetID)
		if err != nil {
			return nil, false, err
		}

		spent, err := s.SpentAmount(budget)
		if err != nil {
			return nil, false, err
		}

		if !spent.GreaterThan(budget.Amount) {
			return budget, false, nil
		}

		step := overspendStepSmall
		if spent.GreaterThan(budget.Amount.Mul(overspendStepLarge)) {
			step = overspendStepLarge
		}
		newAmount := budget.Amount.Mul(step).Round(2)

		err = s.budgetRepo.UpdateAmountWithOptimisticLock(budget.ID, newAmount, budget.Version)
		if err != nil {
			if errors.Is(err, models.ErrOptimisticLockConflict) {
				continue
			}
			return nil, false, err
		}

		budget.Amount = newAmount
		budget.Version++

		s.metrics.IncrementCounter("budget.adjusted", nil)
		s.notifier.Notify(ownerID, models.NotificationKindBudgetAdjusted, budget.ID,
			fmt.Sprintf("Budget increased to %s after overspend", newAmount.StringFixed(2)))
		s.logger.Info("budget adjusted",
			slog.String("owner_id", ownerID.String()),
			slog.String("budget_id", budget.ID.String()),
			slog.String("new_amount", newAmount.StringFixed(2)))

		return budget, true, nil
	}

	return nil, false, ErrBudgetContention
}

// DeleteBudget removes one budget owned by the given user
func (s *BudgetService) DeleteBudget(ownerID, budgetID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return ErrInvalidOwnerID
	}
	return s.budgetRepo.Delete(ownerID, budgetID)
}

// GenerateDynamicBudgets rebuilds the owner's suggested-budget snapshot for
// one period from the trailing 90 days of debit spend. Categories whose
// trailing total is under the floor are skipped entirely. The prior snapshot
// for the (owner, period) pair is replaced wholesale.
func (s *BudgetService) GenerateDynamicBudgets(ownerID uuid.UUID, period string) ([]models.DynamicBudget, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	if !models.IsValidBudgetPeriod(period) {
		return nil, models.ErrInvalidBudgetPeriod
	}

	since := s.now().AddDate(0, 0, -trailingSpendDays)
	spends, err := s.transactionRepo.SumDebitsByCategorySince(ownerID, since)
	if err != nil {
		return nil, err
	}

	factor := monthlySuggestedFactor
	if period == models.BudgetPeriodWeekly {
		factor = weeklySuggestedFactor
	}

	generatedAt := s.now()
	budgets := make([]models.DynamicBudget, 0, len(spends))
	for _, spend := range spends {
		if spend.Total.LessThan(dynamicBudgetFloor) {
			continue
		}

		averageMonthly := spend.Total.Div(monthsInTrailingWindow)
		budgets = append(budgets, models.DynamicBudget{
			OwnerID:     ownerID,
			Period:      period,
			Category:    spend.Category,
			Amount:      averageMonthly.Mul(factor).Round(2),
			GeneratedAt: generatedAt,
		})
	}

	if err := s.dynamicBudgetRepo.ReplaceForPeriod(ownerID, period, budgets); err != nil {
		return nil, err
	}

	s.metrics.RecordGauge("dynamic_budgets.generated", float64(len(budgets)), map[string]string{
		"period": period,
	})
	s.logger.Info("dynamic budgets generated",
		slog.String("owner_id", ownerID.String()),
		slog.String("period", period),
		slog.Int("count", len(budgets)))

	return budgets, nil
}

// GetDynamicBudgets returns the owner's latest suggested-budget snapshot for
// a period
func (s *BudgetService) GetDynamicBudgets(ownerID uuid.UUID, period string) ([]models.DynamicBudget, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	if !models.IsValidBudgetPeriod(period) {
		return nil, models.ErrInvalidBudgetPeriod
	}
	return s.dynamicBudgetRepo.GetByOwnerAndPeriod(ownerID, period)
}

// AutoCreateBudgets tops up the owner: every category without a budget
// covering today gets a weekly budget for [today, today+6d] sized at 120% of
// last week's spend (or of a fallback base when nothing was spent). Existing
// covering budgets are never touched.
func (s *BudgetService) AutoCreateBudgets(ownerID uuid.UUID) (int, error) {
	if ownerID == uuid.Nil {
		return 0, ErrInvalidOwnerID
	}

	categories, err := s.categoryRepo.GetByOwnerID(ownerID)
	if err != nil {
		return 0, err
	}

	today := models.TruncateToDay(s.now())
	created := 0

	for _, category := range categories {
		covered, err := s.budgetRepo.ExistsCovering(ownerID, category.ID, today)
		if err != nil {
			return created, err
		}
		if covered {
			continue
		}

		spend, err := s.PreviousWeekSpent(ownerID, category.Name)
		if err != nil {
			return created, err
		}
		if spend.IsZero() {
			spend = autoBudgetFallbackSpend
		}

		budget := &models.Budget{
			OwnerID:    ownerID,
			CategoryID: category.ID,
			Amount:     spend.Mul(autoBudgetMarkup).Round(2),
			Period:     models.BudgetPeriodWeekly,
			StartDate:  today,
			EndDate:    today.AddDate(0, 0, 6),
		}

		if err := s.budgetRepo.Create(budget); err != nil {
			return created, fmt.Errorf("failed to auto-create budget for %s: %w", category.Name, err)
		}

		created++
		s.metrics.IncrementCounter("budget.auto_created", nil)
		s.notifier.Notify(ownerID, models.NotificationKindAutoBudgetCreated, budget.ID,
			fmt.Sprintf("A weekly %s budget of %s was created for you",
				category.Name, budget.Amount.StringFixed(2)))
	}

	if created > 0 {
		s.logger.Info("auto-created budgets",
			slog.String("owner_id", ownerID.String()),
			slog.Int("created", created))
	}

	return created, nil
}
