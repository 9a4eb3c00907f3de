package v1

import (
	"github.com/google/uuid"
	"github.com/smartfinance/backend/internal/models"
)

// financialData loads everything of a user's finances in one place. The
// health score and the AI assistant both work on the full picture.
// Transactions come back newest first.
func financialData(userID uuid.UUID) ([]models.Transaction, []models.Budget, []models.Goal, []models.Bill, error) {
	var transactions []models.Transaction
	err := models.DB.
		Where("user_id = ?", userID).
		Order("date(transactions.date) DESC, transactions.created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, nil, nil, nil, err
	}

	var budgets []models.Budget
	err = models.DB.Where("user_id = ?", userID).Find(&budgets).Error
	if err != nil {
		return nil, nil, nil, nil, err
	}

	var goals []models.Goal
	err = models.DB.Where("user_id = ?", userID).Find(&goals).Error
	if err != nil {
		return nil, nil, nil, nil, err
	}

	var bills []models.Bill
	err = models.DB.
		Where("user_id = ?", userID).
		Order("date(bills.due_date) ASC").
		Find(&bills).Error
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return transactions, budgets, goals, bills, nil
}
