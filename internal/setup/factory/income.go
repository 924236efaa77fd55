package factory

import (
	"os"

	controllers "github.com/fintrix/fintrix-backend/internal/presentation/controllers/income"

	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/income_repository"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateIncomeController(db *mongo.Database) *controllers.CreateIncomeController {
	createIncomeRepository := income_repository.NewCreateIncomeMongoRepository(db)
	findIncomeByMonthRepository := income_repository.NewFindIncomeByMonthMongoRepository(db)

	return controllers.NewCreateIncomeController(
		createIncomeRepository,
		findIncomeByMonthRepository,
		os.Getenv("REDIS_URL"),
	)
}

func MakeGetIncomeController(db *mongo.Database) *controllers.GetIncomeController {
	findIncomeByUserIdRepository := income_repository.NewFindIncomeMongoRepository(db)

	return controllers.NewGetIncomeController(findIncomeByUserIdRepository)
}

func MakeUpdateWeekController(db *mongo.Database) *controllers.UpdateWeekController {
	findIncomeByIdRepository := income_repository.NewFindIncomeByIdMongoRepository(db)
	updateIncomeRepository := income_repository.NewUpdateIncomeMongoRepository(db)

	return controllers.NewUpdateWeekController(
		findIncomeByIdRepository,
		updateIncomeRepository,
		os.Getenv("REDIS_URL"),
	)
}

func MakeExportIncomeController(db *mongo.Database) *controllers.ExportIncomeController {
	findIncomeByUserIdRepository := income_repository.NewFindIncomeMongoRepository(db)

	return controllers.NewExportIncomeController(findIncomeByUserIdRepository)
}
