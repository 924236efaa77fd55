package income

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func handleExport(t *testing.T, repo *fakeFindIncome, userId string, query string) *presentationProtocols.HttpResponse {
	t.Helper()

	controller := NewExportIncomeController(repo)

	header := http.Header{}
	if userId != "" {
		header.Set("UserId", userId)
	}

	params, err := url.ParseQuery(query)
	require.NoError(t, err)

	return controller.Handle(presentationProtocols.HttpRequest{
		Header:    header,
		UrlParams: params,
	})
}

func TestExportIncomeWritesRowPerRecord(t *testing.T) {
	date := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	repo := &fakeFindIncome{records: []models.IncomeRecord{
		{
			Month: "March", Week: "Week 2", Salary: 40000,
			TotalSpent: 17000, Savings: 23000,
			CategoryExpenses: models.CategoryExpenses{Fixed: 8000, Variables: 1000},
			Date:             date.AddDate(0, 0, 7),
		},
		{
			Month: "March", Week: "Week 1", Salary: 40000,
			TotalSpent: 8000, Savings: 32000,
			CategoryExpenses: models.CategoryExpenses{Fixed: 8000},
			Date:             date,
		},
	}}

	response := handleExport(t, repo, primitive.NewObjectID().Hex(), "month=March&year=2025")

	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		response.Headers.Get("Content-Type"))
	assert.Contains(t, response.Headers.Get("Content-Disposition"), "fintrix-income.xlsx")

	file, err := excelize.OpenReader(response.Body)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Month", rows[0][0])
	assert.Equal(t, "Week 2", rows[1][1])
	assert.Equal(t, "Week 1", rows[2][1])
	assert.Equal(t, "17000", rows[1][6])
	assert.Equal(t, "2025-03-03", rows[2][9])
}

func TestExportIncomeInvalidFilterRejected(t *testing.T) {
	response := handleExport(t, &fakeFindIncome{}, primitive.NewObjectID().Hex(), "month=Marchember&year=2025")

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestExportIncomeUnauthenticated(t *testing.T) {
	response := handleExport(t, &fakeFindIncome{}, "", "")

	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
}
