package factory

import (
	"os"

	controllers "github.com/fintrix/fintrix-backend/internal/presentation/controllers/user"

	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/income_repository"
	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/user_repository"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeRegisterUserController(db *mongo.Database) *controllers.RegisterUserController {
	createUserRepository := user_repository.NewCreateUserMongoRepository(db)
	findUserByEmailRepository := user_repository.NewFindUserByEmailMongoRepository(db)

	return controllers.NewRegisterUserController(createUserRepository, findUserByEmailRepository)
}

func MakeLoginUserController(db *mongo.Database) *controllers.LoginUserController {
	findUserByEmailRepository := user_repository.NewFindUserByEmailMongoRepository(db)

	return controllers.NewLoginUserController(findUserByEmailRepository)
}

func MakeLogoutUserController() *controllers.LogoutUserController {
	return controllers.NewLogoutUserController()
}

func MakeDashboardController(db *mongo.Database) *controllers.DashboardController {
	findUserByIdRepository := user_repository.NewFindUserByIdMongoRepository(db)
	findLatestIncomeRepository := income_repository.NewFindLatestIncomeMongoRepository(db)

	return controllers.NewDashboardController(
		findUserByIdRepository,
		findLatestIncomeRepository,
		os.Getenv("REDIS_URL"),
	)
}
