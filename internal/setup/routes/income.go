package routes

import (
	"net/http"

	"github.com/fintrix/fintrix-backend/internal/setup/adapters"
	"github.com/fintrix/fintrix-backend/internal/setup/factory"
	"github.com/fintrix/fintrix-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func IncomeRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /income", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateIncomeController(db)),
	))

	server.Handle("GET /income", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetIncomeController(db)),
	))

	server.Handle("PATCH /income/week", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateWeekController(db)),
	))

	server.Handle("GET /income/export", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeExportIncomeController(db)),
	))
}
