package user

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/domain/usecase"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/redis_repository"
	"github.com/fintrix/fintrix-backend/internal/presentation/helpers"
	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DashboardController struct {
	FindUserByIdRepository     usecase.FindUserByIdRepository
	FindLatestIncomeRepository usecase.FindLatestIncomeRepository
	RedisURL                   string
}

// NewDashboardController builds the summary endpoint. An empty redisURL
// disables caching.
func NewDashboardController(
	findUserById usecase.FindUserByIdRepository,
	findLatestIncome usecase.FindLatestIncomeRepository,
	redisURL string,
) *DashboardController {
	return &DashboardController{
		FindUserByIdRepository:     findUserById,
		FindLatestIncomeRepository: findLatestIncome,
		RedisURL:                   redisURL,
	}
}

type SpendingDistributionEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type DashboardControllerResponse struct {
	UserName             string                      `json:"userName"`
	Savings              float64                     `json:"savings"`
	TotalSpent           float64                     `json:"totalSpent"`
	WeeklyExpenses       []models.WeeklyExpense      `json:"weeklyExpenses"`
	SpendingDistribution []SpendingDistributionEntry `json:"spendingDistribution"`
}

func (c *DashboardController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId := r.Header.Get("UserId")
	if _, err := primitive.ObjectIDFromHex(userId); err != nil {
		return helpers.CreateErrorResponse("unauthorized access",
			presentationProtocols.CodeUnauthorized, http.StatusUnauthorized)
	}

	if c.RedisURL != "" {
		cached, found, err := redis_repository.FindSummary(c.RedisURL, userId)
		if err != nil {
			log.Printf("summary cache read failed: %v", err)
		} else if found {
			return &presentationProtocols.HttpResponse{
				Body:       io.NopCloser(bytes.NewReader([]byte(cached))),
				StatusCode: http.StatusOK,
			}
		}
	}

	user, err := c.FindUserByIdRepository.FindById(userId)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when finding user",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateErrorResponse("user not found",
			presentationProtocols.CodeNotFound, http.StatusNotFound)
	}

	latest, err := c.FindLatestIncomeRepository.FindLatest(user.Id)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when finding financial data",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}
	if latest == nil {
		return helpers.CreateErrorResponse("financial data not found",
			presentationProtocols.CodeNotFound, http.StatusNotFound)
	}

	summary := &DashboardControllerResponse{
		UserName:       user.Name,
		Savings:        latest.Savings,
		TotalSpent:     latest.TotalSpent,
		WeeklyExpenses: latest.WeeklyExpenses,
		SpendingDistribution: []SpendingDistributionEntry{
			{Name: "Fixed", Value: latest.CategoryExpenses.Fixed},
			{Name: "Variables", Value: latest.CategoryExpenses.Variables},
			{Name: "Investments", Value: latest.CategoryExpenses.Investments},
		},
	}

	if c.RedisURL != "" {
		if encoded, err := json.Marshal(summary); err == nil {
			if err := redis_repository.SaveSummary(c.RedisURL, userId, string(encoded)); err != nil {
				log.Printf("summary cache write failed: %v", err)
			}
		}
	}

	return helpers.CreateResponse(summary, http.StatusOK)
}
