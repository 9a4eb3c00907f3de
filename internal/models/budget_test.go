package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smartfinance/backend/internal/models"
	"github.com/smartfinance/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBudgetBeforeSave() {
	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{
			"negative amount",
			models.Budget{Amount: decimal.NewFromFloat(-100), Category: types.CategoryFood},
			models.ErrAmountNotPositive,
		},
		{
			"invalid category",
			models.Budget{Amount: decimal.NewFromFloat(100), Category: "Subscriptions"},
			models.ErrCategoryInvalid,
		},
		{
			"valid",
			models.Budget{Amount: decimal.NewFromFloat(100), Category: types.CategoryFood},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.budget.BeforeSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetUniquePerCategoryAndMonth() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestBudget(models.Budget{
		UserID:   user.ID,
		Category: types.CategoryFood,
		Amount:   decimal.NewFromFloat(5000),
		Month:    types.NewMonth(2026, 8),
	})

	duplicate := models.Budget{
		UserID:   user.ID,
		Category: types.CategoryFood,
		Amount:   decimal.NewFromFloat(3000),
		Month:    types.NewMonth(2026, 8),
	}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetMonthNotUnique)

	// The same category in another month is fine
	_ = suite.createTestBudget(models.Budget{
		UserID:   user.ID,
		Category: types.CategoryFood,
		Amount:   decimal.NewFromFloat(3000),
		Month:    types.NewMonth(2026, 9),
	})
}

func (suite *TestSuiteStandard) TestBudgetUniquePerUser() {
	first := suite.createTestUser(models.User{Subject: "first"})
	second := suite.createTestUser(models.User{Subject: "second"})

	// Different users can budget the same category and month
	_ = suite.createTestBudget(models.Budget{
		UserID:   first.ID,
		Category: types.CategoryRent,
		Amount:   decimal.NewFromFloat(15000),
		Month:    types.NewMonth(2026, 8),
	})

	_ = suite.createTestBudget(models.Budget{
		UserID:   second.ID,
		Category: types.CategoryRent,
		Amount:   decimal.NewFromFloat(18000),
		Month:    types.NewMonth(2026, 8),
	})
}
