package routes

import (
	"net/http"

	"github.com/fintrix/fintrix-backend/internal/setup/adapters"
	"github.com/fintrix/fintrix-backend/internal/setup/factory"
	"github.com/fintrix/fintrix-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func UserRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /register", adapters.AdaptRoute(factory.MakeRegisterUserController(db)))
	server.Handle("POST /login", adapters.AdaptRoute(factory.MakeLoginUserController(db)))
	server.Handle("POST /logout", adapters.AdaptRoute(factory.MakeLogoutUserController()))

	server.Handle("GET /income/summary", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDashboardController(db)),
	))
}
