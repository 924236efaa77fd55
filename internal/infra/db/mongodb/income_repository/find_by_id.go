package income_repository

import (
	"context"
	"errors"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindIncomeByIdMongoRepository struct {
	Db *mongo.Database
}

func NewFindIncomeByIdMongoRepository(db *mongo.Database) *FindIncomeByIdMongoRepository {
	return &FindIncomeByIdMongoRepository{
		Db: db,
	}
}

// FindById scopes the lookup to the owning user, so a record id from another
// account behaves exactly like a missing record.
func (f *FindIncomeByIdMongoRepository) FindById(id primitive.ObjectID, userId primitive.ObjectID) (*models.IncomeRecord, error) {
	collection := f.Db.Collection("incomes")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var record models.IncomeRecord
	err := collection.FindOne(ctx, bson.M{"_id": id, "user_id": userId}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}
