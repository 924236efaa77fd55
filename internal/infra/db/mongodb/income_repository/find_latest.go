package income_repository

import (
	"context"
	"errors"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindLatestIncomeMongoRepository struct {
	Db *mongo.Database
}

func NewFindLatestIncomeMongoRepository(db *mongo.Database) *FindLatestIncomeMongoRepository {
	return &FindLatestIncomeMongoRepository{
		Db: db,
	}
}

func (f *FindLatestIncomeMongoRepository) FindLatest(userId primitive.ObjectID) (*models.IncomeRecord, error) {
	collection := f.Db.Collection("incomes")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}})

	var record models.IncomeRecord
	err := collection.FindOne(ctx, bson.M{"user_id": userId}, opts).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}
