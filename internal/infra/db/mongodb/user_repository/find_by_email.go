package user_repository

import (
	"context"
	"errors"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindUserByEmailMongoRepository struct {
	Db *mongo.Database
}

func NewFindUserByEmailMongoRepository(db *mongo.Database) *FindUserByEmailMongoRepository {
	return &FindUserByEmailMongoRepository{
		Db: db,
	}
}

func (f *FindUserByEmailMongoRepository) FindByEmail(email string) (*models.User, error) {
	collection := f.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
