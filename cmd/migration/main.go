package main

import (
	"todo-backend/config"
	"todo-backend/pkg/infrastructure/datastore"
	"todo-backend/pkg/infrastructure/logger"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})
	log := logger.New()
	defer log.Sync()

	// NewClient creates the schema when it is missing.
	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalw("failed creating schema resources", "error", err)
	}
	defer client.Close()

	log.Infow("schema is up to date", "path", config.C.Database.Path)
}
