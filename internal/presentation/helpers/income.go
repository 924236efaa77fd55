package helpers

import (
	"math"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
)

// MergeWeeklyExpenses builds the month's five weekly slots for a new
// submission, with the submitted week's total placed in its slot and
// unreported weeks at zero. Each existing record contributes only its own
// week's slot: that is the authoritative figure for that week (it is the one
// a week update edits), while the record's copies of other weeks are
// snapshots that may have gone stale since.
func MergeWeeklyExpenses(existing []models.IncomeRecord, week string, amount float64) []models.WeeklyExpense {
	slots := make(map[string]float64, len(models.WeekLabels))

	for _, record := range existing {
		for _, entry := range record.WeeklyExpenses {
			if entry.Week == record.Week {
				slots[record.Week] = entry.Amount
			}
		}
	}
	slots[week] = amount

	merged := make([]models.WeeklyExpense, 0, len(models.WeekLabels))
	for _, label := range models.WeekLabels {
		merged = append(merged, models.WeeklyExpense{Week: label, Amount: slots[label]})
	}

	return merged
}

func SumWeeklyExpenses(entries []models.WeeklyExpense) float64 {
	var total float64
	for _, entry := range entries {
		total += entry.Amount
	}
	return total
}

// RecomputeTotals derives totalSpent and savings from the record's weekly
// slots. Every write path goes through here so the derived fields can never
// drift from the slots they summarize.
func RecomputeTotals(record *models.IncomeRecord) {
	record.TotalSpent = SumWeeklyExpenses(record.WeeklyExpenses)
	record.Savings = record.Salary - record.TotalSpent
}

// SavingsPercentage returns savings as a share of salary, rounded to two
// decimal places.
func SavingsPercentage(salary float64, savings float64) float64 {
	if salary <= 0 {
		return 0
	}
	return math.Round(savings/salary*10000) / 100
}

// WeekIndex returns the slot index of a week label, or -1 for an unknown
// label.
func WeekIndex(week string) int {
	for i, label := range models.WeekLabels {
		if label == week {
			return i
		}
	}
	return -1
}
