package service

import (
	"log"

	"inkwell/app/repositories"
)

// RunInit provisions the database file, schema, and seed post without
// starting the server.
func RunInit() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	db.Close()
	log.Printf("Database ready at %s", cfg.DBPath)
}

// RunClean deletes every post from the database.
func RunClean() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	res, err := db.Exec(`DELETE FROM posts`)
	if err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	n, _ := res.RowsAffected()
	log.Printf("Deleted %d posts", n)
}
