package income

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/domain/usecase"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/redis_repository"
	"github.com/fintrix/fintrix-backend/internal/presentation/helpers"
	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateWeekController struct {
	FindIncomeByIdRepository usecase.FindIncomeByIdRepository
	UpdateIncomeRepository   usecase.UpdateIncomeRepository
	Validate                 *validator.Validate
	RedisURL                 string
}

func NewUpdateWeekController(
	findIncomeById usecase.FindIncomeByIdRepository,
	updateIncome usecase.UpdateIncomeRepository,
	redisURL string,
) *UpdateWeekController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateWeekController{
		FindIncomeByIdRepository: findIncomeById,
		UpdateIncomeRepository:   updateIncome,
		Validate:                 validate,
		RedisURL:                 redisURL,
	}
}

type UpdateWeekControllerBody struct {
	RecordId string  `json:"recordId" validate:"required"`
	Week     string  `json:"week" validate:"required,oneof='Week 1' 'Week 2' 'Week 3' 'Week 4' 'Week 5'"`
	Amount   float64 `json:"amount" validate:"min=0"`
}

type UpdateWeekControllerResponse struct {
	Record *models.IncomeRecord `json:"record"`
}

func (c *UpdateWeekController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse("unauthorized access",
			presentationProtocols.CodeUnauthorized, http.StatusUnauthorized)
	}

	var body UpdateWeekControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateErrorResponse("invalid body request",
			presentationProtocols.CodeValidation, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateErrorResponse(helpers.GetErrorMessages(c.Validate, err),
			presentationProtocols.CodeValidation, http.StatusBadRequest)
	}

	recordId, err := primitive.ObjectIDFromHex(body.RecordId)
	if err != nil {
		return helpers.CreateErrorResponse("invalid record ID format",
			presentationProtocols.CodeValidation, http.StatusBadRequest)
	}

	record, err := c.FindIncomeByIdRepository.FindById(recordId, userId)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when finding income record",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}
	if record == nil {
		return helpers.CreateErrorResponse("income record not found",
			presentationProtocols.CodeNotFound, http.StatusNotFound)
	}

	// The update replaces an existing slot; it never inserts one.
	slot := -1
	for i, entry := range record.WeeklyExpenses {
		if entry.Week == body.Week {
			slot = i
			break
		}
	}
	if slot < 0 {
		return helpers.CreateErrorResponse("week not found in this record",
			presentationProtocols.CodeWeekNotFound, http.StatusBadRequest)
	}

	record.WeeklyExpenses[slot].Amount = body.Amount
	helpers.RecomputeTotals(record)

	if record.Savings < 0 {
		return helpers.CreateErrorResponse("expenses exceed salary",
			presentationProtocols.CodeExpensesExceedSalary, http.StatusBadRequest)
	}

	updated, err := c.UpdateIncomeRepository.Update(record)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when updating income record",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}

	if c.RedisURL != "" {
		if err := redis_repository.InvalidateSummary(c.RedisURL, userId.Hex()); err != nil {
			log.Printf("summary cache invalidation failed: %v", err)
		}
	}

	return helpers.CreateResponse(&UpdateWeekControllerResponse{
		Record: updated,
	}, http.StatusOK)
}
