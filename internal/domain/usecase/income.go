package usecase

import (
	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateIncomeRepository interface {
	Create(*models.IncomeRecord) (*models.IncomeRecord, error)
}

type FindIncomeByUserIdInputRepository struct {
	UserId primitive.ObjectID
	Month  string
	Year   int
}

type FindIncomeByUserIdRepository interface {
	Find(*FindIncomeByUserIdInputRepository) ([]models.IncomeRecord, error)
}

// FindIncomeByMonthRepository returns the month's records sorted by creation
// time ascending, so the first element is the submission that fixed the month's
// salary and base living cost.
type FindIncomeByMonthRepository interface {
	FindByMonth(userId primitive.ObjectID, month string, year int) ([]models.IncomeRecord, error)
}

type FindIncomeByIdRepository interface {
	FindById(id primitive.ObjectID, userId primitive.ObjectID) (*models.IncomeRecord, error)
}

type FindLatestIncomeRepository interface {
	FindLatest(userId primitive.ObjectID) (*models.IncomeRecord, error)
}

type UpdateIncomeRepository interface {
	Update(*models.IncomeRecord) (*models.IncomeRecord, error)
}
