package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_Validate(t *testing.T) {
	ownerID := uuid.New()
	categoryID := uuid.New()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		budget  Budget
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid monthly budget",
			budget: Budget{
				OwnerID:    ownerID,
				CategoryID: categoryID,
				Amount:     decimal.NewFromFloat(500.00),
				Period:     BudgetPeriodMonthly,
				StartDate:  start,
				EndDate:    end,
			},
			wantErr: false,
		},
		{
			name: "valid weekly budget",
			budget: Budget{
				OwnerID:    ownerID,
				CategoryID: categoryID,
				Amount:     decimal.NewFromFloat(100.00),
				Period:     BudgetPeriodWeekly,
				StartDate:  start,
				EndDate:    start.AddDate(0, 0, 6),
			},
			wantErr: false,
		},
		{
			name: "missing owner",
			budget: Budget{
				CategoryID: categoryID,
				Amount:     decimal.NewFromFloat(500.00),
				Period:     BudgetPeriodMonthly,
				StartDate:  start,
				EndDate:    end,
			},
			wantErr: true,
			errMsg:  "owner ID is required",
		},
		{
			name: "missing category",
			budget: Budget{
				OwnerID:   ownerID,
				Amount:    decimal.NewFromFloat(500.00),
				Period:    BudgetPeriodMonthly,
				StartDate: start,
				EndDate:   end,
			},
			wantErr: true,
			errMsg:  "category ID is required",
		},
		{
			name: "invalid period",
			budget: Budget{
				OwnerID:    ownerID,
				CategoryID: categoryID,
				Amount:     decimal.NewFromFloat(500.00),
				Period:     "yearly",
				StartDate:  start,
				EndDate:    end,
			},
			wantErr: true,
			errMsg:  "invalid budget period",
		},
		{
			name: "non-positive amount",
			budget: Budget{
				OwnerID:    ownerID,
				CategoryID: categoryID,
				Amount:     decimal.Zero,
				Period:     BudgetPeriodMonthly,
				StartDate:  start,
				EndDate:    end,
			},
			wantErr: true,
			errMsg:  "budget amount must be positive",
		},
		{
			name: "start after end",
			budget: Budget{
				OwnerID:    ownerID,
				CategoryID: categoryID,
				Amount:     decimal.NewFromFloat(500.00),
				Period:     BudgetPeriodMonthly,
				StartDate:  end,
				EndDate:    start,
			},
			wantErr: true,
			errMsg:  "start date must not be after end date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.budget.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBudget_Covers(t *testing.T) {
	budget := Budget{
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"day before start", time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC), false},
		{"start day", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"start day with time-of-day", time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC), true},
		{"mid range", time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), true},
		{"end day late evening", time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC), true},
		{"day after end", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, budget.Covers(tt.date))
		})
	}
}

func TestBudget_IsExpired(t *testing.T) {
	budget := Budget{
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	// still active on the last day, even late in the evening
	assert.False(t, budget.IsExpired(time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC)))
	assert.True(t, budget.IsExpired(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, budget.IsExpired(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func TestBudget_BeforeCreate(t *testing.T) {
	budget := Budget{
		OwnerID:    uuid.New(),
		CategoryID: uuid.New(),
		Amount:     decimal.NewFromFloat(300.00),
		Period:     BudgetPeriodMonthly,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	err := budget.BeforeCreate(nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, budget.ID)
	assert.NotZero(t, budget.CreatedAt)
	assert.NotZero(t, budget.UpdatedAt)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "monday maps to itself",
			input:    time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC),
			expected: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "wednesday maps to monday",
			input:    time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "sunday maps to previous monday",
			input:    time.Date(2025, 6, 8, 23, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "week spanning month boundary",
			input:    time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekStart(tt.input))
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, 6, 15, 18, 45, 30, 123, time.UTC)
	out := TruncateToDay(in)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), out)
}

func TestIsValidBudgetPeriod(t *testing.T) {
	assert.True(t, IsValidBudgetPeriod(BudgetPeriodWeekly))
	assert.True(t, IsValidBudgetPeriod(BudgetPeriodMonthly))
	assert.False(t, IsValidBudgetPeriod("daily"))
	assert.False(t, IsValidBudgetPeriod(""))
}
