package application

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spendwise/spendwise/internal/finance/domain"
)

// The monthly view is derived through a fixed pipeline: sort descending,
// filter by period, filter by search, group by calendar day, total. Every
// step is pure and works on copies, never on the caller's slice.

// SortByDateDesc returns a copy sorted newest first. The sort is stable, so
// transactions sharing a date keep their stored order.
func SortByDateDesc(transactions []domain.Transaction) []domain.Transaction {
	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// FilterByMonth keeps transactions whose date falls in the given calendar
// month and year.
func FilterByMonth(transactions []domain.Transaction, month time.Month, year int) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if transaction.Date.Month() == month && transaction.Date.Year() == year {
			filtered = append(filtered, transaction)
		}
	}
	return filtered
}

// FilterBySearch keeps transactions whose category, note or account contains
// the query, case-insensitively. An empty query matches everything.
func FilterBySearch(transactions []domain.Transaction, query string) []domain.Transaction {
	if query == "" {
		return transactions
	}
	q := strings.ToLower(query)
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if strings.Contains(strings.ToLower(transaction.Category), q) ||
			strings.Contains(strings.ToLower(transaction.Note), q) ||
			strings.Contains(strings.ToLower(transaction.Account), q) {
			filtered = append(filtered, transaction)
		}
	}
	return filtered
}

// DayKey identifies one calendar day as "M/D/YYYY-Wkd", e.g. "1/5/2024-Fri".
func DayKey(date time.Time) string {
	return fmt.Sprintf("%d/%d/%d-%s", int(date.Month()), date.Day(), date.Year(), date.Weekday().String()[:3])
}

type DayGroup struct {
	Key          string               `json:"key"`
	Transactions []domain.Transaction `json:"transactions"`
}

// GroupByDay buckets transactions by calendar day. Groups appear in the
// order their day first occurs in the input (the caller sorts descending, so
// newest day first); within a group, transactions are re-sorted ascending by
// date, stable for equal dates.
func GroupByDay(transactions []domain.Transaction) []DayGroup {
	index := make(map[string]int)
	var groups []DayGroup
	for _, transaction := range transactions {
		key := DayKey(transaction.Date)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{Key: key})
		}
		groups[i].Transactions = append(groups[i].Transactions, transaction)
	}
	for i := range groups {
		group := groups[i].Transactions
		sort.SliceStable(group, func(a, b int) bool {
			return group[a].Date.Before(group[b].Date)
		})
	}
	return groups
}

type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// SumTotals sums income and expense amounts and derives the signed net.
// Transfers carry no accounting weight and are excluded from both sides.
func SumTotals(transactions []domain.Transaction) Totals {
	var totals Totals
	for _, transaction := range transactions {
		switch transaction.Type {
		case domain.TypeIncome:
			totals.Income += transaction.Amount
		case domain.TypeExpense:
			totals.Expense += transaction.Amount
		}
	}
	totals.Net = totals.Income - totals.Expense
	return totals
}

type MonthlyReport struct {
	Groups []DayGroup `json:"groups"`
	Totals Totals     `json:"totals"`
}

// BuildMonthlyReport composes the full pipeline for one (month, year) and
// search query.
func BuildMonthlyReport(transactions []domain.Transaction, month time.Month, year int, query string) MonthlyReport {
	sorted := SortByDateDesc(transactions)
	matched := FilterBySearch(FilterByMonth(sorted, month, year), query)
	return MonthlyReport{
		Groups: GroupByDay(matched),
		Totals: SumTotals(matched),
	}
}
