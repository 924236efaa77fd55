package config

import (
	"net/http"

	"github.com/fintrix/fintrix-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database) {
	apiServer := http.NewServeMux()
	routes.UserRoutes(apiServer, db)
	routes.IncomeRoutes(apiServer, db)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
