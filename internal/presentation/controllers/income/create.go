package income

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/domain/usecase"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/redis_repository"
	"github.com/fintrix/fintrix-backend/internal/presentation/helpers"
	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateIncomeController struct {
	CreateIncomeRepository      usecase.CreateIncomeRepository
	FindIncomeByMonthRepository usecase.FindIncomeByMonthRepository
	Validate                    *validator.Validate
	RedisURL                    string
}

func NewCreateIncomeController(
	createIncome usecase.CreateIncomeRepository,
	findIncomeByMonth usecase.FindIncomeByMonthRepository,
	redisURL string,
) *CreateIncomeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateIncomeController{
		CreateIncomeRepository:      createIncome,
		FindIncomeByMonthRepository: findIncomeByMonth,
		Validate:                    validate,
		RedisURL:                    redisURL,
	}
}

type CategoryAmountsBody struct {
	Fixed         float64 `json:"fixed" validate:"min=0"`
	Food          float64 `json:"food" validate:"min=0"`
	Shopping      float64 `json:"shopping" validate:"min=0"`
	Entertainment float64 `json:"entertainment" validate:"min=0"`
	Investments   float64 `json:"investments" validate:"min=0"`
}

type CreateIncomeControllerBody struct {
	Salary           float64                `json:"salary" validate:"required,gt=0"`
	CategoryExpenses *CategoryAmountsBody   `json:"categoryExpenses"`
	WeeklyExpenses   []models.WeeklyExpense `json:"weeklyExpenses"`
	Month            string                 `json:"month" validate:"required,oneof=January February March April May June July August September October November December"`
	Week             string                 `json:"week" validate:"required,oneof='Week 1' 'Week 2' 'Week 3' 'Week 4' 'Week 5'"`
	Note             string                 `json:"note" validate:"max=500"`
}

type CreateIncomeControllerSummary struct {
	Salary            float64 `json:"salary"`
	TotalExpenses     float64 `json:"totalExpenses"`
	Savings           float64 `json:"savings"`
	SavingsPercentage float64 `json:"savingsPercentage"`
}

type CreateIncomeControllerResponse struct {
	Record  *models.IncomeRecord           `json:"record"`
	Summary *CreateIncomeControllerSummary `json:"summary"`
}

func (c *CreateIncomeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse("unauthorized access",
			presentationProtocols.CodeUnauthorized, http.StatusUnauthorized)
	}

	var body CreateIncomeControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return helpers.CreateErrorResponse("all amounts must be numbers",
				presentationProtocols.CodeValidation, http.StatusBadRequest)
		}
		return helpers.CreateErrorResponse("invalid body request",
			presentationProtocols.CodeValidation, http.StatusBadRequest)
	}

	if body.CategoryExpenses == nil {
		return helpers.CreateErrorResponse("categoryExpenses is required",
			presentationProtocols.CodeMissingCategories, http.StatusBadRequest)
	}

	// The client may echo back a weekly array it read earlier; it is only
	// accepted in the expected five-slot shape, and the merged array is
	// re-derived server-side regardless.
	if body.WeeklyExpenses != nil && len(body.WeeklyExpenses) != len(models.WeekLabels) {
		return helpers.CreateErrorResponse("weekly expenses must be an array of 5 values",
			presentationProtocols.CodeInvalidWeeklyExpenses, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateErrorResponse(helpers.GetErrorMessages(c.Validate, err),
			presentationProtocols.CodeValidation, http.StatusBadRequest)
	}

	year := time.Now().Year()
	existing, err := c.FindIncomeByMonthRepository.FindByMonth(userId, body.Month, year)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when finding income records",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}

	for _, record := range existing {
		if record.Week == body.Week {
			return helpers.CreateErrorResponse("income for this week has already been submitted",
				presentationProtocols.CodeDuplicateWeek, http.StatusBadRequest)
		}
	}

	// Once a month has started, its salary and base living cost are fixed by
	// the first submission; caller-supplied values are not trusted after that.
	salary := body.Salary
	fixed := body.CategoryExpenses.Fixed
	if len(existing) > 0 {
		salary = existing[0].Salary
		fixed = existing[0].CategoryExpenses.Fixed
	}

	variables := body.CategoryExpenses.Food + body.CategoryExpenses.Shopping + body.CategoryExpenses.Entertainment
	currentWeekTotal := fixed + variables + body.CategoryExpenses.Investments

	record := &models.IncomeRecord{
		UserId: userId,
		Salary: salary,
		Month:  body.Month,
		Week:   body.Week,
		Year:   year,
		CategoryExpenses: models.CategoryExpenses{
			Fixed:       fixed,
			Variables:   variables,
			Investments: body.CategoryExpenses.Investments,
		},
		WeeklyExpenses: helpers.MergeWeeklyExpenses(existing, body.Week, currentWeekTotal),
		Note:           body.Note,
	}
	helpers.RecomputeTotals(record)

	if record.Savings < 0 {
		return helpers.CreateErrorResponse("expenses exceed salary",
			presentationProtocols.CodeExpensesExceedSalary, http.StatusBadRequest)
	}

	created, err := c.CreateIncomeRepository.Create(record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return helpers.CreateErrorResponse("income for this week has already been submitted",
				presentationProtocols.CodeConflict, http.StatusConflict)
		}
		return helpers.CreateErrorResponse("an error occurred when creating income record",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}

	if c.RedisURL != "" {
		if err := redis_repository.InvalidateSummary(c.RedisURL, userId.Hex()); err != nil {
			log.Printf("summary cache invalidation failed: %v", err)
		}
	}

	return helpers.CreateResponse(&CreateIncomeControllerResponse{
		Record: created,
		Summary: &CreateIncomeControllerSummary{
			Salary:            created.Salary,
			TotalExpenses:     created.TotalSpent,
			Savings:           created.Savings,
			SavingsPercentage: helpers.SavingsPercentage(created.Salary, created.Savings),
		},
	}, http.StatusCreated)
}
