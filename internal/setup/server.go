package setup

import (
	"net/http"
	"os"

	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/helpers"
	"github.com/fintrix/fintrix-backend/internal/setup/config"
	"github.com/fintrix/fintrix-backend/web"
)

func Server() *http.ServeMux {
	mux := http.NewServeMux()

	databaseName := os.Getenv("MONGO_DB")
	if databaseName == "" {
		databaseName = "fintrix"
	}

	db := helpers.MongoHelper(os.Getenv("MONGO_URL"), databaseName)
	helpers.EnsureIndexes(db)

	config.SetupRoutes(mux, db)

	mux.Handle("/", http.FileServer(http.FS(web.Static())))

	return mux
}
