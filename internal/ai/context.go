package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/smartfinance/backend/internal/models"
	"github.com/smartfinance/backend/internal/types"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ContextData is the financial data the assistant is grounded in.
//
// Transactions are expected in the storage order, newest first. Now is the
// reference time for the month comparison and the upcoming-bill cutoff,
// read once per request by the caller.
type ContextData struct {
	Transactions []models.Transaction
	Budgets      []models.Budget
	Goals        []models.Goal
	Bills        []models.Bill
	Now          time.Time
}

// Amounts use Indian digit grouping, the product targets Indian users.
var enIN = message.NewPrinter(language.MustParse("en-IN"))

// inr formats an amount with the rupee symbol and exactly two decimals.
func inr(v float64) string {
	return enIN.Sprintf("₹%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// inrShort formats an amount with the rupee symbol and no forced decimals.
func inrShort(v float64) string {
	return enIN.Sprintf("₹%v", number.Decimal(v, number.MaxFractionDigits(2)))
}

// SystemPrompt assembles the system message for the chat assistant from
// the user's financial data.
func (d ContextData) SystemPrompt() string {
	var totalIncome, totalExpenses float64
	spendingByCategory := make(map[types.Category]float64)
	for _, t := range d.Transactions {
		switch t.Type {
		case types.TypeIncome:
			totalIncome += t.Amount.InexactFloat64()
		case types.TypeExpense:
			totalExpenses += t.Amount.InexactFloat64()
			spendingByCategory[t.Category] += t.Amount.InexactFloat64()
		}
	}

	currentMonth := types.MonthOf(d.Now)
	lastMonth := currentMonth.AddDate(0, -1)

	var currentMonthExpenses, lastMonthExpenses float64
	for _, t := range d.Transactions {
		if t.Type != types.TypeExpense {
			continue
		}
		if currentMonth.Contains(t.Date) {
			currentMonthExpenses += t.Amount.InexactFloat64()
		} else if lastMonth.Contains(t.Date) {
			lastMonthExpenses += t.Amount.InexactFloat64()
		}
	}

	var categoryLines []string
	for _, category := range types.Categories() {
		if amount, ok := spendingByCategory[category]; ok {
			categoryLines = append(categoryLines, fmt.Sprintf("  - %s: %s", category, inr(amount)))
		}
	}
	categoryBreakdown := "  No expenses recorded"
	if len(categoryLines) > 0 {
		categoryBreakdown = strings.Join(categoryLines, "\n")
	}

	var transactionLines []string
	for i, t := range d.Transactions {
		if i == 10 {
			break
		}
		transactionLines = append(transactionLines, fmt.Sprintf("  - %s: %s (%s) - %s [%s]",
			t.Date.Format("2006-01-02"), t.Title, t.Category, inr(t.Amount.InexactFloat64()), t.Type))
	}
	recentTransactions := "  No transactions yet"
	if len(transactionLines) > 0 {
		recentTransactions = strings.Join(transactionLines, "\n")
	}

	var upcoming []models.Bill
	for _, b := range d.Bills {
		if !b.DueDate.Before(d.Now) {
			upcoming = append(upcoming, b)
		}
	}
	var billLines []string
	for i, b := range upcoming {
		if i == 5 {
			break
		}
		billLines = append(billLines, fmt.Sprintf("  - %s: %s due on %s",
			b.Name, inrShort(b.Amount.InexactFloat64()), b.DueDate.Format("2006-01-02")))
	}
	upcomingBills := "  No upcoming bills"
	if len(billLines) > 0 {
		upcomingBills = strings.Join(billLines, "\n")
	}

	var goalLines []string
	for i, g := range d.Goals {
		if i == 5 {
			break
		}
		var progress float64
		if target := g.TargetAmount.InexactFloat64(); target > 0 {
			progress = g.CurrentAmount.InexactFloat64() / target * 100
		}
		goalLines = append(goalLines, fmt.Sprintf("  - %s: %s / %s (%.0f%%)",
			g.Title, inrShort(g.CurrentAmount.InexactFloat64()), inrShort(g.TargetAmount.InexactFloat64()), progress))
	}
	goalsInfo := "  No active goals"
	if len(goalLines) > 0 {
		goalsInfo = strings.Join(goalLines, "\n")
	}

	change := inr(currentMonthExpenses - lastMonthExpenses)
	if currentMonthExpenses > lastMonthExpenses {
		change = "+" + change
	}

	return fmt.Sprintf(`You are SmartFinance, a helpful personal finance assistant for Indian users. Analyze the user's actual financial data and provide clear, actionable advice using Indian Rupees (₹).

IMPORTANT FORMATTING RULES:
- ALWAYS use ₹ (Indian Rupee) symbol for all amounts
- NEVER use asterisks (*) for bold or emphasis
- NEVER use markdown formatting symbols
- Use simple bullet points with dashes (-)
- Use plain text only
- Use line breaks for clarity
- Use emojis sparingly (💰 📊 ✅ ⚠️ 💡)

USER'S FINANCIAL DATA:

Summary:
  Total Income: %s
  Total Expenses: %s
  Net Balance: %s

Monthly Comparison:
  Current Month Spending: %s
  Last Month Spending: %s
  Change: %s

Spending by Category:
%s

Active Budgets: %d
Savings Goals: %d

Goals Progress:
%s

Upcoming Bills: %d
%s

Recent Transactions (last 10):
%s

HOW TO RESPOND:
1. Answer questions using the actual data above
2. Be specific - use real numbers from their transactions
3. Always use ₹ symbol for amounts
4. Structure responses with clear sections (use line breaks)
5. Keep it conversational and easy to understand
6. Provide actionable tips based on their spending patterns
7. NO markdown symbols - plain text only
8. Reference their actual budgets, goals, and bills when relevant`,
		inr(totalIncome),
		inr(totalExpenses),
		inr(totalIncome-totalExpenses),
		inr(currentMonthExpenses),
		inr(lastMonthExpenses),
		change,
		categoryBreakdown,
		len(d.Budgets),
		len(d.Goals),
		goalsInfo,
		len(upcoming),
		upcomingBills,
		recentTransactions,
	)
}
