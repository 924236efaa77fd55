package user_repository

import (
	"context"
	"errors"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindUserByIdMongoRepository struct {
	Db *mongo.Database
}

func NewFindUserByIdMongoRepository(db *mongo.Database) *FindUserByIdMongoRepository {
	return &FindUserByIdMongoRepository{
		Db: db,
	}
}

func (f *FindUserByIdMongoRepository) FindById(id string) (*models.User, error) {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	collection := f.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err = collection.FindOne(ctx, bson.M{"_id": objectId}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
