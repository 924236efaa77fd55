package income_repository

import (
	"context"
	"time"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateIncomeMongoRepository struct {
	Db *mongo.Database
}

func NewCreateIncomeMongoRepository(db *mongo.Database) *CreateIncomeMongoRepository {
	return &CreateIncomeMongoRepository{
		Db: db,
	}
}

func (c *CreateIncomeMongoRepository) Create(record *models.IncomeRecord) (*models.IncomeRecord, error) {
	collection := c.Db.Collection("incomes")

	recordToSave := *record
	recordToSave.Id = primitive.NewObjectID()
	recordToSave.CreatedAt = time.Now()
	recordToSave.UpdatedAt = time.Now()
	if recordToSave.Date.IsZero() {
		recordToSave.Date = recordToSave.CreatedAt
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, recordToSave)
	if err != nil {
		return nil, err
	}

	return &recordToSave, nil
}
