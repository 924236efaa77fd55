package income_repository

import (
	"context"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindIncomeByMonthMongoRepository struct {
	Db *mongo.Database
}

func NewFindIncomeByMonthMongoRepository(db *mongo.Database) *FindIncomeByMonthMongoRepository {
	return &FindIncomeByMonthMongoRepository{
		Db: db,
	}
}

// FindByMonth returns the month's records oldest first, so callers can read
// the month's fixed salary and base cost off the first element.
func (f *FindIncomeByMonthMongoRepository) FindByMonth(userId primitive.ObjectID, month string, year int) ([]models.IncomeRecord, error) {
	collection := f.Db.Collection("incomes")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{
		"user_id": userId,
		"month":   month,
		"year":    year,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.IncomeRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
