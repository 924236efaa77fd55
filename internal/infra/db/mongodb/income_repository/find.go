package income_repository

import (
	"context"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/domain/usecase"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindIncomeMongoRepository struct {
	Db *mongo.Database
}

func NewFindIncomeMongoRepository(db *mongo.Database) *FindIncomeMongoRepository {
	return &FindIncomeMongoRepository{
		Db: db,
	}
}

// Find returns the user's records sorted by submission date descending. When
// the filter carries a month and year, only records dated inside that calendar
// month are returned.
func (f *FindIncomeMongoRepository) Find(filter *usecase.FindIncomeByUserIdInputRepository) ([]models.IncomeRecord, error) {
	collection := f.Db.Collection("incomes")

	query := bson.M{"user_id": filter.UserId}
	if filter.Month != "" && filter.Year != 0 {
		month, ok := helpers.MonthByName(filter.Month)
		if ok {
			start, end := helpers.MonthRange(filter.Year, month)
			query["date"] = bson.M{"$gte": start, "$lt": end}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := collection.Find(ctx, query, opts)
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
