package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartfinance/backend/internal/models"
	"github.com/smartfinance/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestTransactionBeforeSave() {
	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{
			"negative amount",
			models.Transaction{Amount: decimal.NewFromFloat(-10), Category: types.CategoryFood, Type: types.TypeExpense},
			models.ErrAmountNotPositive,
		},
		{
			"zero amount",
			models.Transaction{Amount: decimal.Zero, Category: types.CategoryFood, Type: types.TypeExpense},
			models.ErrAmountNotPositive,
		},
		{
			"invalid category",
			models.Transaction{Amount: decimal.NewFromFloat(10), Category: "Gadgets", Type: types.TypeExpense},
			models.ErrCategoryInvalid,
		},
		{
			"invalid type",
			models.Transaction{Amount: decimal.NewFromFloat(10), Category: types.CategoryFood, Type: "transfer"},
			models.ErrTransactionTypeInvalid,
		},
		{
			"valid",
			models.Transaction{Amount: decimal.NewFromFloat(10), Category: types.CategoryFood, Type: types.TypeExpense},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.transaction.BeforeSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	user := suite.createTestUser(models.User{})

	title := "  Lunch at the office \t"

	transaction := suite.createTestTransaction(models.Transaction{
		UserID:   user.ID,
		Title:    title,
		Amount:   decimal.NewFromFloat(250),
		Category: types.CategoryFood,
		Type:     types.TypeExpense,
	})

	assert.Equal(suite.T(), strings.TrimSpace(title), transaction.Title)
}

func (suite *TestSuiteStandard) TestTransactionDateNormalized() {
	user := suite.createTestUser(models.User{})

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		suite.Assert().FailNow("Could not load timezone", err.Error())
	}

	transaction := suite.createTestTransaction(models.Transaction{
		UserID:   user.ID,
		Title:    "Groceries",
		Amount:   decimal.NewFromFloat(450),
		Category: types.CategoryFood,
		Type:     types.TypeExpense,
		Date:     time.Date(2026, 8, 14, 18, 45, 12, 0, berlin),
	})

	assert.Equal(suite.T(), time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC), transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToToday() {
	user := suite.createTestUser(models.User{})

	transaction := suite.createTestTransaction(models.Transaction{
		UserID:   user.ID,
		Title:    "Groceries",
		Amount:   decimal.NewFromFloat(450),
		Category: types.CategoryFood,
		Type:     types.TypeExpense,
	})

	year, month, day := time.Now().In(time.UTC).Date()
	assert.Equal(suite.T(), time.Date(year, month, day, 0, 0, 0, 0, time.UTC), transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	err := models.DB.First(&models.Transaction{}, "id = ?", "4c83719a-8c1f-4c0f-b8ab-9dfebbc64cc4").Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no transaction matching your query", err.Error())
}
