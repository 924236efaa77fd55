package income

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/domain/usecase"
	"github.com/fintrix/fintrix-backend/internal/presentation/helpers"
	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetIncomeController struct {
	FindIncomeByUserIdRepository usecase.FindIncomeByUserIdRepository
	Validate                     *validator.Validate
}

func NewGetIncomeController(findIncomeByUserId usecase.FindIncomeByUserIdRepository) *GetIncomeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &GetIncomeController{
		FindIncomeByUserIdRepository: findIncomeByUserId,
		Validate:                     validate,
	}
}

type GetIncomeFilterParams struct {
	Month string `json:"month" validate:"required_with=Year,omitempty,oneof=January February March April May June July August September October November December"`
	Year  int    `json:"year" validate:"required_with=Month,omitempty,min=1,max=9999"`
}

type IncomeAggregate struct {
	WeeklyTotals   []models.WeeklyExpense  `json:"weeklyTotals"`
	CategoryTotals models.CategoryExpenses `json:"categoryTotals"`
	TotalSalary    float64                 `json:"totalSalary"`
	TotalSpent     float64                 `json:"totalSpent"`
	TotalSavings   float64                 `json:"totalSavings"`
}

type GetIncomeControllerResponse struct {
	Records   []models.IncomeRecord `json:"records"`
	Aggregate *IncomeAggregate      `json:"aggregate,omitempty"`
}

func (c *GetIncomeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse("unauthorized access",
			presentationProtocols.CodeUnauthorized, http.StatusUnauthorized)
	}

	filter, errHttp := c.getFilters(&r.UrlParams)
	if errHttp != nil {
		return errHttp
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

	response := &GetIncomeControllerResponse{
		Records: records,
	}
	if filter.Month != "" && filter.Year != 0 {
		response.Aggregate = aggregateRecords(records)
	}

	return helpers.CreateResponse(response, http.StatusOK)
}

func (c *GetIncomeController) getFilters(urlQueries *url.Values) (*GetIncomeFilterParams, *presentationProtocols.HttpResponse) {
	yearInt, _ := strconv.Atoi(urlQueries.Get("year"))

	params := &GetIncomeFilterParams{
		Month: urlQueries.Get("month"),
		Year:  yearInt,
	}

	if err := c.Validate.Struct(params); err != nil {
		return nil, helpers.CreateErrorResponse(helpers.GetErrorMessages(c.Validate, err),
			presentationProtocols.CodeValidation, http.StatusBadRequest)
	}

	return params, nil
}

// aggregateRecords folds the filtered records into per-week, per-category and
// grand totals. Each record's weekly array carries the whole month as of its
// write, so only the record's own-week slot counts toward the totals; the
// salary is shared by every record of the month and counted once. Zero records
// yield a zero-valued aggregate, not an error.
func aggregateRecords(records []models.IncomeRecord) *IncomeAggregate {
	aggregate := &IncomeAggregate{
		WeeklyTotals: make([]models.WeeklyExpense, len(models.WeekLabels)),
	}
	for i, label := range models.WeekLabels {
		aggregate.WeeklyTotals[i] = models.WeeklyExpense{Week: label}
	}

	for _, record := range records {
		for _, entry := range record.WeeklyExpenses {
			if entry.Week != record.Week {
				continue
			}
			if i := helpers.WeekIndex(entry.Week); i >= 0 {
				aggregate.WeeklyTotals[i].Amount = entry.Amount
			}
		}
		aggregate.CategoryTotals.Fixed += record.CategoryExpenses.Fixed
		aggregate.CategoryTotals.Variables += record.CategoryExpenses.Variables
		aggregate.CategoryTotals.Investments += record.CategoryExpenses.Investments
		aggregate.TotalSalary = record.Salary
	}
	aggregate.TotalSpent = helpers.SumWeeklyExpenses(aggregate.WeeklyTotals)
	aggregate.TotalSavings = aggregate.TotalSalary - aggregate.TotalSpent

	return aggregate
}
