package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/smartfinance/backend/internal/models"
	"github.com/smartfinance/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestClosedDatabaseIsGeneralError() {
	user := suite.createTestUser(models.User{})
	suite.CloseDB()

	transaction := models.Transaction{
		UserID:   user.ID,
		Title:    "Groceries",
		Amount:   decimal.NewFromFloat(450),
		Category: types.CategoryFood,
		Type:     types.TypeExpense,
	}
	err := models.DB.Create(&transaction).Error

	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
