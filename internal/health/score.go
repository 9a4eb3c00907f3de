// Package health implements the financial health score.
//
// The score is a deterministic aggregation over a user's transactions,
// budgets, goals and bills. All input is passed in by the caller, the
// package itself never touches the database or the system clock.
package health

import (
	"math"
	"time"

	"github.com/smartfinance/backend/internal/models"
	"github.com/smartfinance/backend/internal/types"
)

// Factor is the score of a single factor of the health score.
type Factor struct {
	Score    int    `json:"score" example:"32"`
	MaxScore int    `json:"maxScore" example:"40"`
	Label    string `json:"label" example:"Savings Ratio"`
}

// Breakdown is the full health score with its four factors.
//
// TotalScore is always the sum of the four factor scores. Since the factor
// maximums add up to 100, the total is in [0, 100].
type Breakdown struct {
	TotalScore      int    `json:"totalScore" example:"78"`
	Rating          string `json:"rating" example:"Very Good"`
	SavingsRatio    Factor `json:"savingsRatio"`
	BudgetAdherence Factor `json:"budgetAdherence"`
	GoalProgress    Factor `json:"goalProgress"`
	BillManagement  Factor `json:"billManagement"`
}

const (
	maxSavingsRatio    = 40
	maxBudgetAdherence = 25
	maxGoalProgress    = 25
	maxBillManagement  = 10

	// Score granted when there is no data to judge budget adherence or
	// goal progress by. 50% of the maximum is a policy choice, not a
	// derived value.
	neutralShare = 0.5

	// Points deducted per overdue bill.
	overduePenalty = 3
)

// Calculate computes the health score breakdown.
//
// The reference time is read exactly once by the caller so that a score is
// internally consistent even when it is computed across a midnight or
// month boundary.
func Calculate(transactions []models.Transaction, budgets []models.Budget, goals []models.Goal, bills []models.Bill, now time.Time) Breakdown {
	savingsRatio := savingsRatio(transactions)
	budgetAdherence := budgetAdherence(transactions, budgets, types.MonthOf(now))
	goalProgress := goalProgress(goals)
	billManagement := billManagement(bills, now)

	totalScore := savingsRatio.Score + budgetAdherence.Score + goalProgress.Score + billManagement.Score

	return Breakdown{
		TotalScore:      totalScore,
		Rating:          rating(totalScore),
		SavingsRatio:    savingsRatio,
		BudgetAdherence: budgetAdherence,
		GoalProgress:    goalProgress,
		BillManagement:  billManagement,
	}
}

// savingsRatio scores the overall savings rate across all transactions.
//
// The payout per rate point improves with higher savings rates: every band
// scales the linear (rate/50)*max mapping with its own factor.
func savingsRatio(transactions []models.Transaction) Factor {
	factor := Factor{MaxScore: maxSavingsRatio, Label: "Savings Ratio"}

	var totalIncome, totalExpenses float64
	for _, t := range transactions {
		switch t.Type {
		case types.TypeIncome:
			totalIncome += t.Amount.InexactFloat64()
		case types.TypeExpense:
			totalExpenses += t.Amount.InexactFloat64()
		}
	}

	// Without income there is no rate to judge
	if totalIncome == 0 {
		return factor
	}

	savingsRate := (totalIncome - totalExpenses) / totalIncome * 100

	var score int
	switch {
	case savingsRate >= 50:
		score = maxSavingsRatio
	case savingsRate >= 30:
		score = round(savingsRate / 50 * maxSavingsRatio * 0.9)
	case savingsRate >= 20:
		score = round(savingsRate / 50 * maxSavingsRatio * 0.7)
	case savingsRate >= 10:
		score = round(savingsRate / 50 * maxSavingsRatio * 0.5)
	case savingsRate > 0:
		score = round(savingsRate / 50 * maxSavingsRatio * 0.3)
	}

	factor.Score = clamp(score, maxSavingsRatio)
	return factor
}

// budgetAdherence scores how well the current month's budgets are kept.
//
// Spending is compared per category against the budgets of the current
// month. Overspending beyond 150% of a budget contributes zero, it is
// never negative.
func budgetAdherence(transactions []models.Transaction, budgets []models.Budget, month types.Month) Factor {
	factor := Factor{MaxScore: maxBudgetAdherence, Label: "Budget Adherence"}

	if len(budgets) == 0 {
		factor.Score = round(maxBudgetAdherence * neutralShare)
		return factor
	}

	var currentMonthBudgets []models.Budget
	for _, b := range budgets {
		if b.Month.Equal(month) {
			currentMonthBudgets = append(currentMonthBudgets, b)
		}
	}

	if len(currentMonthBudgets) == 0 {
		factor.Score = round(maxBudgetAdherence * neutralShare)
		return factor
	}

	categorySpending := make(map[types.Category]float64)
	for _, t := range transactions {
		if t.Type == types.TypeExpense && month.Contains(t.Date) {
			categorySpending[t.Category] += t.Amount.InexactFloat64()
		}
	}

	var totalAdherence float64
	var budgetCount int
	for _, b := range currentMonthBudgets {
		budgetAmount := b.Amount.InexactFloat64()
		if budgetAmount <= 0 {
			continue
		}

		adherenceRate := 1 - math.Min(categorySpending[b.Category]/budgetAmount, 1.5)
		totalAdherence += math.Max(0, adherenceRate)
		budgetCount++
	}

	averageAdherence := neutralShare
	if budgetCount > 0 {
		averageAdherence = totalAdherence / float64(budgetCount)
	}

	factor.Score = clamp(round(averageAdherence*maxBudgetAdherence), maxBudgetAdherence)
	return factor
}

// goalProgress scores the average progress towards all savings goals.
//
// Goals without a positive target count towards the average but contribute
// no progress.
func goalProgress(goals []models.Goal) Factor {
	factor := Factor{MaxScore: maxGoalProgress, Label: "Goal Progress"}

	if len(goals) == 0 {
		factor.Score = round(maxGoalProgress * neutralShare)
		return factor
	}

	var totalProgress float64
	for _, g := range goals {
		target := g.TargetAmount.InexactFloat64()
		if target > 0 {
			totalProgress += math.Min(g.CurrentAmount.InexactFloat64()/target, 1)
		}
	}

	averageProgress := totalProgress / float64(len(goals))

	factor.Score = clamp(round(averageProgress*maxGoalProgress), maxGoalProgress)
	return factor
}

// billManagement scores the handling of bills. Only overdue bills count,
// being on time for upcoming bills is not separately rewarded.
func billManagement(bills []models.Bill, now time.Time) Factor {
	factor := Factor{MaxScore: maxBillManagement, Label: "Bill Management"}

	// No bills to manage is perfect management
	if len(bills) == 0 {
		factor.Score = maxBillManagement
		return factor
	}

	var overdue int
	for _, b := range bills {
		if b.DueDate.Before(now) {
			overdue++
		}
	}

	score := maxBillManagement - overduePenalty*overdue
	if score < 0 {
		score = 0
	}

	factor.Score = clamp(score, maxBillManagement)
	return factor
}

// rating maps a total score to its qualitative band.
func rating(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Very Good"
	case score >= 60:
		return "Good"
	case score >= 45:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// round rounds half up, matching the rounding of every sub-computation.
// Rounding happens per factor, never on the aggregate.
func round(f float64) int {
	return int(math.Round(f))
}

func clamp(score, maxScore int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
