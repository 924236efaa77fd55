package usecase

import "github.com/fintrix/fintrix-backend/internal/domain/models"

type CreateUserRepository interface {
	Create(*models.UserInput) (*models.User, error)
}

type FindUserByEmailRepository interface {
	FindByEmail(email string) (*models.User, error)
}

type FindUserByIdRepository interface {
	FindById(id string) (*models.User, error)
}
