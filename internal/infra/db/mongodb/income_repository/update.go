package income_repository

import (
	"context"
	"time"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateIncomeMongoRepository struct {
	Db *mongo.Database
}

func NewUpdateIncomeMongoRepository(db *mongo.Database) *UpdateIncomeMongoRepository {
	return &UpdateIncomeMongoRepository{
		Db: db,
	}
}

func (u *UpdateIncomeMongoRepository) Update(record *models.IncomeRecord) (*models.IncomeRecord, error) {
	collection := u.Db.Collection("incomes")

	updated := *record
	updated.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": updated.Id, "user_id": updated.UserId}, bson.M{
		"$set": bson.M{
			"weekly_expenses": updated.WeeklyExpenses,
			"total_spent":     updated.TotalSpent,
			"savings":         updated.Savings,
			"updated_at":      updated.UpdatedAt,
		},
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
