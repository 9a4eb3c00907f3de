// Package voice converts a spoken transaction command into a draft
// transaction.
//
// The parser is intentionally small: it locates an amount, classifies the
// transaction via fixed keyword tables and derives a title and date. The
// keyword tables are ordered and the first match wins, changing their order
// changes results.
package voice

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/smartfinance/backend/internal/types"
)

// ErrNoAmount is returned when the transcript contains no parseable
// amount. It is the only way parsing can fail, the caller should prompt
// for manual entry.
var ErrNoAmount = errors.New("could not find an amount in the transcript")

// ParsedTransaction is a draft transaction derived from a transcript.
type ParsedTransaction struct {
	Amount   string
	Type     types.TransactionType
	Category types.Category
	Title    string
	Date     time.Time
}

// Digits with optional thousands separators and up to two decimal places,
// optionally prefixed with a currency symbol.
var amountPattern = regexp.MustCompile(`₹?\s*([0-9,]+(?:\.[0-9]{1,2})?)`)

// Words that carry no meaning for the title.
var stopWordPattern = regexp.MustCompile(`\b(add|expense|income|spent|paid|received|earned|bought|purchase|for|the|was|is)\b`)

// Title text following "for", up to a trailing temporal word.
var forClausePattern = regexp.MustCompile(`for\s+(.+?)(?:\s+(?:on|yesterday|today|tomorrow)|\s*$)`)

var expenseKeywords = []string{"expense", "spent", "paid", "bought", "purchase"}

var incomeKeywords = []string{"income", "salary", "received", "earned", "got"}

// categoryKeywords maps transcript keywords to categories. The order is a
// silent tie-break rule: scanning stops at the first keyword found.
var categoryKeywords = []struct {
	keyword  string
	category types.Category
}{
	{"food", types.CategoryFood},
	{"groceries", types.CategoryFood},
	{"grocery", types.CategoryFood},
	{"restaurant", types.CategoryFood},
	{"dining", types.CategoryFood},
	{"eat", types.CategoryFood},
	{"rent", types.CategoryRent},
	{"lease", types.CategoryRent},
	{"bills", types.CategoryBills},
	{"bill", types.CategoryBills},
	{"utilities", types.CategoryBills},
	{"utility", types.CategoryBills},
	{"electricity", types.CategoryBills},
	{"water", types.CategoryBills},
	{"transport", types.CategoryTransport},
	{"transportation", types.CategoryTransport},
	{"taxi", types.CategoryTransport},
	{"uber", types.CategoryTransport},
	{"gas", types.CategoryTransport},
	{"fuel", types.CategoryTransport},
	{"entertainment", types.CategoryEntertainment},
	{"movie", types.CategoryEntertainment},
	{"game", types.CategoryEntertainment},
	{"fun", types.CategoryEntertainment},
}

// Parse converts a transcript into a draft transaction.
//
// The reference time determines the date of the draft: "yesterday" and
// "tomorrow" shift it by one day, everything else is recorded for the
// reference day itself.
func Parse(transcript string, now time.Time) (ParsedTransaction, error) {
	normalized := strings.TrimSpace(strings.ToLower(transcript))

	amountMatch := amountPattern.FindStringSubmatch(normalized)
	if amountMatch == nil {
		return ParsedTransaction{}, ErrNoAmount
	}
	amount := strings.ReplaceAll(amountMatch[1], ",", "")

	transactionType := transactionType(normalized)
	category, categoryKeyword := category(normalized)

	return ParsedTransaction{
		Amount:   amount,
		Type:     transactionType,
		Category: category,
		Title:    title(normalized, category, categoryKeyword, transactionType),
		Date:     date(normalized, now),
	}, nil
}

// transactionType classifies the transcript. The expense list is scanned
// first and a match suppresses the income scan entirely, so a transcript
// containing keywords from both lists is an expense.
func transactionType(normalized string) types.TransactionType {
	for _, keyword := range expenseKeywords {
		if strings.Contains(normalized, keyword) {
			return types.TypeExpense
		}
	}

	for _, keyword := range incomeKeywords {
		if strings.Contains(normalized, keyword) {
			return types.TypeIncome
		}
	}

	return types.TypeExpense
}

// category returns the category of the first matching keyword and the
// keyword itself for use as a title fallback.
func category(normalized string) (types.Category, string) {
	for _, entry := range categoryKeywords {
		if strings.Contains(normalized, entry.keyword) {
			return entry.category, entry.keyword
		}
	}

	return types.CategoryOther, ""
}

// title derives the transaction title.
//
// Text following "for" is preferred. Otherwise the amount and a fixed
// stop-word list are stripped from the transcript, with the matched
// category keyword and the type name as fallbacks for an empty remainder.
func title(normalized string, category types.Category, categoryKeyword string, transactionType types.TransactionType) string {
	var title string

	if forMatch := forClausePattern.FindStringSubmatch(normalized); forMatch != nil {
		title = strings.TrimSpace(forMatch[1])
	} else {
		remaining := normalized
		if loc := amountPattern.FindStringIndex(remaining); loc != nil {
			remaining = remaining[:loc[0]] + remaining[loc[1]:]
		}
		remaining = strings.TrimSpace(stopWordPattern.ReplaceAllString(remaining, ""))

		switch {
		case remaining != "":
			title = remaining
		case categoryKeyword != "":
			title = categoryKeyword
		default:
			title = string(transactionType)
		}
	}

	title = capitalize(title)

	if strings.TrimSpace(title) == "" {
		if category != types.CategoryOther {
			return string(category)
		}
		return capitalize(string(transactionType))
	}

	return title
}

func date(normalized string, now time.Time) time.Time {
	if strings.Contains(normalized, "yesterday") {
		return now.AddDate(0, 0, -1)
	}
	if strings.Contains(normalized, "tomorrow") {
		return now.AddDate(0, 0, 1)
	}
	return now
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
