package models_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartfinance/backend/internal/models"
	"github.com/smartfinance/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBillBeforeSave() {
	tests := []struct {
		name string
		bill models.Bill
		err  error
	}{
		{
			"zero amount",
			models.Bill{Amount: decimal.Zero, Category: types.CategoryBills},
			models.ErrAmountNotPositive,
		},
		{
			"invalid category",
			models.Bill{Amount: decimal.NewFromFloat(1200), Category: "Utilities"},
			models.ErrCategoryInvalid,
		},
		{
			"valid",
			models.Bill{Amount: decimal.NewFromFloat(1200), Category: types.CategoryBills},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.bill.BeforeSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestBillDueDateNormalized() {
	user := suite.createTestUser(models.User{})

	bill := suite.createTestBill(models.Bill{
		UserID:   user.ID,
		Name:     "Electricity",
		Amount:   decimal.NewFromFloat(1200),
		Category: types.CategoryBills,
		DueDate:  time.Date(2026, 9, 15, 16, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)),
	})

	assert.Equal(suite.T(), time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), bill.DueDate)
}

func (suite *TestSuiteStandard) TestBillNotFound() {
	err := models.DB.First(&models.Bill{}, "id = ?", "3a8cb4ad-1b0f-4e6d-a935-05e95a0a2c2d").Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no bill matching your query", err.Error())
}
