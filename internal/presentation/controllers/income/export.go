package income

import (
	"io"
	"net/http"
	"strconv"

	"github.com/fintrix/fintrix-backend/internal/domain/usecase"
	"github.com/fintrix/fintrix-backend/internal/presentation/helpers"
	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExportIncomeController struct {
	FindIncomeByUserIdRepository usecase.FindIncomeByUserIdRepository
	Validate                     *validator.Validate
}

func NewExportIncomeController(findIncomeByUserId usecase.FindIncomeByUserIdRepository) *ExportIncomeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &ExportIncomeController{
		FindIncomeByUserIdRepository: findIncomeByUserId,
		Validate:                     validate,
	}
}

const exportSheetName = "Income"

func (c *ExportIncomeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse("unauthorized access",
			presentationProtocols.CodeUnauthorized, http.StatusUnauthorized)
	}

	yearInt, _ := strconv.Atoi(r.UrlParams.Get("year"))
	filter := &GetIncomeFilterParams{
		Month: r.UrlParams.Get("month"),
		Year:  yearInt,
	}
	if err := c.Validate.Struct(filter); err != nil {
		return helpers.CreateErrorResponse(helpers.GetErrorMessages(c.Validate, err),
			presentationProtocols.CodeValidation, http.StatusBadRequest)
	}

	records, err := c.FindIncomeByUserIdRepository.Find(&usecase.FindIncomeByUserIdInputRepository{
		UserId: userId,
		Month:  filter.Month,
		Year:   filter.Year,
	})
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when retrieving income records",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}

	file := excelize.NewFile()
	file.SetSheetName("Sheet1", exportSheetName)

	header := []interface{}{
		"Month", "Week", "Salary", "Fixed", "Variables", "Investments",
		"Total Spent", "Savings", "Note", "Date",
	}
	if err := file.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return helpers.CreateErrorResponse("an error occurred when building spreadsheet",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}

	for i, record := range records {
		row := []interface{}{
			record.Month,
			record.Week,
			record.Salary,
			record.CategoryExpenses.Fixed,
			record.CategoryExpenses.Variables,
			record.CategoryExpenses.Investments,
			record.TotalSpent,
			record.Savings,
			record.Note,
			record.Date.Format("2006-01-02"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return helpers.CreateErrorResponse("an error occurred when building spreadsheet",
				presentationProtocols.CodeInternal, http.StatusInternalServerError)
		}
		if err := file.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return helpers.CreateErrorResponse("an error occurred when building spreadsheet",
				presentationProtocols.CodeInternal, http.StatusInternalServerError)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when writing spreadsheet",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	headers.Set("Content-Disposition", `attachment; filename="fintrix-income.xlsx"`)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(buf),
		StatusCode: http.StatusOK,
		Headers:    headers,
	}
}
