// Command migrate applies the database schema.
package main

import (
	"log"

	"plume/internal/config"
	"plume/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		return err
	}

	if err := database.Migrate(db); err != nil {
		return err
	}

	log.Println("schema migrations applied")
	return nil
}
