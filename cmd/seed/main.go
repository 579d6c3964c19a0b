// Command seed fills a development database with demo data.
package main

import (
	"log"

	"plume/internal/bootstrap"
	"plume/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("refusing to seed a production database")
	}

	if _, _, _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{SeedDemo: true}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("demo data seeded")
}
