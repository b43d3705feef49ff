package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spendwise/spendwise/internal/finance/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthlyReport_JanuaryScenario(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: "t1", Type: domain.TypeIncome, Date: day(2024, time.January, 5), Account: "Cash 💸", Category: "Salary 💼", Amount: 500},
		{ID: "t2", Type: domain.TypeExpense, Date: day(2024, time.January, 5), Account: "Card 💳", Category: "Food 🍔", Amount: 200},
		{ID: "t3", Type: domain.TypeExpense, Date: day(2024, time.February, 1), Account: "Card 💳", Category: "Food 🍔", Amount: 50},
	}

	report := BuildMonthlyReport(transactions, time.January, 2024, "")

	assert.Equal(t, 500.0, report.Totals.Income)
	assert.Equal(t, 200.0, report.Totals.Expense)
	assert.Equal(t, 300.0, report.Totals.Net)

	assert.Len(t, report.Groups, 1)
	assert.Equal(t, "1/5/2024-Fri", report.Groups[0].Key)
	assert.Len(t, report.Groups[0].Transactions, 2)
}

func TestGroupByDay_PartitionAndOrdering(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: "a", Date: day(2024, time.March, 10)},
		{ID: "b", Date: time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)},
		{ID: "c", Date: day(2024, time.March, 3)},
		{ID: "d", Date: day(2024, time.March, 1)},
	}

	groups := GroupByDay(SortByDateDesc(transactions))

	// Every transaction lands in exactly one group.
	total := 0
	for _, group := range groups {
		total += len(group.Transactions)
	}
	assert.Equal(t, len(transactions), total)

	// Newest day first, oldest last.
	assert.Equal(t, "3/10/2024-Sun", groups[0].Key)
	assert.Equal(t, "3/3/2024-Sun", groups[1].Key)
	assert.Equal(t, "3/1/2024-Fri", groups[2].Key)

	// Within a day, transactions run ascending by time.
	assert.Equal(t, "a", groups[0].Transactions[0].ID)
	assert.Equal(t, "b", groups[0].Transactions[1].ID)
}

func TestFilterByMonth_KeepsOnlyMatchingPeriod(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: "jan2024", Date: day(2024, time.January, 15)},
		{ID: "jan2023", Date: day(2023, time.January, 15)},
		{ID: "feb2024", Date: day(2024, time.February, 15)},
	}

	filtered := FilterByMonth(transactions, time.January, 2024)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "jan2024", filtered[0].ID)
}

func TestFilterBySearch(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: "a", Category: "Food 🍔", Note: "lunch", Account: "Card 💳"},
		{ID: "b", Category: "Travel ✈️", Note: "", Account: "Cash 💸"},
	}

	assert.Len(t, FilterBySearch(transactions, ""), 2)

	matched := FilterBySearch(transactions, "FOOD")
	assert.Len(t, matched, 1)
	assert.Equal(t, "a", matched[0].ID)

	matched = FilterBySearch(transactions, "cash")
	assert.Len(t, matched, 1)
	assert.Equal(t, "b", matched[0].ID)

	// Filtering twice with the same query changes nothing.
	assert.Equal(t, matched, FilterBySearch(matched, "cash"))
}

func TestSumTotals_TransfersAreExcluded(t *testing.T) {
	totals := SumTotals([]domain.Transaction{
		{Type: domain.TypeIncome, Amount: 1000},
		{Type: domain.TypeExpense, Amount: 400},
		{Type: domain.TypeTransfer, Amount: 9999},
	})

	assert.Equal(t, 1000.0, totals.Income)
	assert.Equal(t, 400.0, totals.Expense)
	assert.Equal(t, totals.Income-totals.Expense, totals.Net)
}

func TestSortByDateDesc_DoesNotMutateInput(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: "old", Date: day(2024, time.January, 1)},
		{ID: "new", Date: day(2024, time.June, 1)},
	}

	sorted := SortByDateDesc(transactions)

	assert.Equal(t, "new", sorted[0].ID)
	assert.Equal(t, "old", transactions[0].ID)
}
