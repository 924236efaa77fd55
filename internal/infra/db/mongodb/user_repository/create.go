package user_repository

import (
	"context"
	"time"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateUserMongoRepository struct {
	Db *mongo.Database
}

func NewCreateUserMongoRepository(db *mongo.Database) *CreateUserMongoRepository {
	return &CreateUserMongoRepository{
		Db: db,
	}
}

func (c *CreateUserMongoRepository) Create(user *models.UserInput) (*models.User, error) {
	collection := c.Db.Collection("users")

	userToSave := models.User{
		Id:        primitive.NewObjectID(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, userToSave)
	if err != nil {
		return nil, err
	}

	return &userToSave, nil
}
