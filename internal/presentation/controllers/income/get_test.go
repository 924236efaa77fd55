package income

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/domain/usecase"
	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFindIncome struct {
	records    []models.IncomeRecord
	lastFilter *usecase.FindIncomeByUserIdInputRepository
}

func (f *fakeFindIncome) Find(filter *usecase.FindIncomeByUserIdInputRepository) ([]models.IncomeRecord, error) {
	f.lastFilter = filter
	return f.records, nil
}

func handleGet(t *testing.T, repo *fakeFindIncome, userId string, query string) (*presentationProtocols.HttpResponse, *GetIncomeControllerResponse) {
	t.Helper()

	controller := NewGetIncomeController(repo)

	header := http.Header{}
	if userId != "" {
		header.Set("UserId", userId)
	}

	params, err := url.ParseQuery(query)
	require.NoError(t, err)

	response := controller.Handle(presentationProtocols.HttpRequest{
		Header:    header,
		UrlParams: params,
	})

	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	var decoded GetIncomeControllerResponse
	if response.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return response, &decoded
}

func TestGetIncomeEmptyMonthReturnsZeroAggregate(t *testing.T) {
	repo := &fakeFindIncome{records: []models.IncomeRecord{}}

	response, decoded := handleGet(t, repo, primitive.NewObjectID().Hex(), "month=March&year=2025")

	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Empty(t, decoded.Records)
	require.NotNil(t, decoded.Aggregate)
	assert.Equal(t, 0.0, decoded.Aggregate.TotalSalary)
	assert.Equal(t, 0.0, decoded.Aggregate.TotalSpent)
	assert.Equal(t, 0.0, decoded.Aggregate.TotalSavings)
	require.Len(t, decoded.Aggregate.WeeklyTotals, 5)
	for _, entry := range decoded.Aggregate.WeeklyTotals {
		assert.Equal(t, 0.0, entry.Amount)
	}
}

func TestGetIncomeUnfilteredOmitsAggregate(t *testing.T) {
	repo := &fakeFindIncome{records: []models.IncomeRecord{{Month: "March", Week: "Week 1"}}}

	response, decoded := handleGet(t, repo, primitive.NewObjectID().Hex(), "")

	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Len(t, decoded.Records, 1)
	assert.Nil(t, decoded.Aggregate)
}

func TestGetIncomeAggregatesFilteredRecords(t *testing.T) {
	// Records shaped the way submissions store them: each weekly array holds
	// the whole month as of its write, so the Week 2 record repeats Week 1's
	// amount and carries the month-to-date totals. The aggregate must count
	// each week and the shared salary exactly once.
	repo := &fakeFindIncome{records: []models.IncomeRecord{
		{
			Week: "Week 1", Salary: 40000, TotalSpent: 8000, Savings: 32000,
			CategoryExpenses: models.CategoryExpenses{Fixed: 8000},
			WeeklyExpenses: []models.WeeklyExpense{
				{Week: "Week 1", Amount: 8000}, {Week: "Week 2"},
				{Week: "Week 3"}, {Week: "Week 4"}, {Week: "Week 5"},
			},
		},
		{
			Week: "Week 2", Salary: 40000, TotalSpent: 17000, Savings: 23000,
			CategoryExpenses: models.CategoryExpenses{Fixed: 8000, Variables: 1000},
			WeeklyExpenses: []models.WeeklyExpense{
				{Week: "Week 1", Amount: 8000}, {Week: "Week 2", Amount: 9000},
				{Week: "Week 3"}, {Week: "Week 4"}, {Week: "Week 5"},
			},
		},
	}}

	response, decoded := handleGet(t, repo, primitive.NewObjectID().Hex(), "month=March&year=2025")

	require.Equal(t, http.StatusOK, response.StatusCode)
	require.NotNil(t, decoded.Aggregate)
	assert.Equal(t, 40000.0, decoded.Aggregate.TotalSalary)
	assert.Equal(t, 17000.0, decoded.Aggregate.TotalSpent)
	assert.Equal(t, 23000.0, decoded.Aggregate.TotalSavings)
	assert.Equal(t, 8000.0, decoded.Aggregate.WeeklyTotals[0].Amount)
	assert.Equal(t, 9000.0, decoded.Aggregate.WeeklyTotals[1].Amount)
	assert.Equal(t, 0.0, decoded.Aggregate.WeeklyTotals[2].Amount)
	assert.Equal(t, 16000.0, decoded.Aggregate.CategoryTotals.Fixed)
	assert.Equal(t, 1000.0, decoded.Aggregate.CategoryTotals.Variables)
	assert.Equal(t, 0.0, decoded.Aggregate.CategoryTotals.Investments)
}

func TestGetIncomeAggregateReflectsUpdatedWeek(t *testing.T) {
	// Week 1 was updated to 10000 after Week 2 was submitted; the Week 2
	// record's snapshot still says 8000. The aggregate follows each record's
	// own slot.
	repo := &fakeFindIncome{records: []models.IncomeRecord{
		{
			Week: "Week 1", Salary: 40000,
			WeeklyExpenses: []models.WeeklyExpense{
				{Week: "Week 1", Amount: 10000}, {Week: "Week 2"},
				{Week: "Week 3"}, {Week: "Week 4"}, {Week: "Week 5"},
			},
		},
		{
			Week: "Week 2", Salary: 40000,
			WeeklyExpenses: []models.WeeklyExpense{
				{Week: "Week 1", Amount: 8000}, {Week: "Week 2", Amount: 9000},
				{Week: "Week 3"}, {Week: "Week 4"}, {Week: "Week 5"},
			},
		},
	}}

	response, decoded := handleGet(t, repo, primitive.NewObjectID().Hex(), "month=March&year=2025")

	require.Equal(t, http.StatusOK, response.StatusCode)
	require.NotNil(t, decoded.Aggregate)
	assert.Equal(t, 10000.0, decoded.Aggregate.WeeklyTotals[0].Amount)
	assert.Equal(t, 9000.0, decoded.Aggregate.WeeklyTotals[1].Amount)
	assert.Equal(t, 19000.0, decoded.Aggregate.TotalSpent)
	assert.Equal(t, 21000.0, decoded.Aggregate.TotalSavings)
}

func TestGetIncomeInvalidMonthRejected(t *testing.T) {
	response, _ := handleGet(t, &fakeFindIncome{}, primitive.NewObjectID().Hex(), "month=Marchember&year=2025")

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestGetIncomeUnauthenticated(t *testing.T) {
	response, _ := handleGet(t, &fakeFindIncome{}, "", "")

	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
}
